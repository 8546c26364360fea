package service_test

import (
	"testing"

	"asset-tracker-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestQREncoderProducesPNG(t *testing.T) {
	encoder := service.NewQREncoder()

	png, err := encoder.Encode("http://localhost:8080/public/assets/abc")

	assert.NoError(t, err)
	assert.Equal(t, pngMagic, png[:8])
}

// Printed labels must stay scannable against reprints, so the same URL
// has to encode to the same bytes every time.
func TestQREncoderIsDeterministic(t *testing.T) {
	url := "http://localhost:8080/public/assets/3c9f0a52"

	first, err := service.NewQREncoder().Encode(url)
	assert.NoError(t, err)

	second, err := service.NewQREncoder().Encode(url)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQREncoderCachesRepeatedLookups(t *testing.T) {
	encoder := service.NewQREncoder()
	url := "http://localhost:8080/public/assets/cached"

	first, err := encoder.Encode(url)
	assert.NoError(t, err)

	second, err := encoder.Encode(url)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQREncoderRejectsOversizedPayload(t *testing.T) {
	encoder := service.NewQREncoder()

	// QR version 40 tops out around 2953 bytes at medium recovery
	huge := make([]byte, 5000)
	for i := range huge {
		huge[i] = 'a'
	}

	_, err := encoder.Encode(string(huge))

	assert.Error(t, err)
}
