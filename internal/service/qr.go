package service

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	qrcode "github.com/skip2/go-qrcode"
)

// Fixed encoder parameters. These are not user-configurable: labels
// printed today must stay scannable and byte-identical to labels
// printed tomorrow for the same asset.
const (
	qrRecoveryLevel = qrcode.Medium
	qrPixelSize     = 256
)

// QREncoder turns a URL into a scannable PNG image. Encoding is
// deterministic for a given input.
type QREncoder interface {
	Encode(url string) ([]byte, error)
}

// qrEncoder is the go-qrcode backed implementation with an in-memory
// PNG cache; since output is deterministic the cache never goes stale.
type qrEncoder struct {
	cache *cache.Cache
}

// NewQREncoder creates a QR encoder with a bounded-lifetime PNG cache
func NewQREncoder() QREncoder {
	return &qrEncoder{
		cache: cache.New(15*time.Minute, 30*time.Minute),
	}
}

// Encode returns the PNG bytes of a QR code for the given URL
func (e *qrEncoder) Encode(url string) ([]byte, error) {
	if cached, found := e.cache.Get(url); found {
		return cached.([]byte), nil
	}

	png, err := qrcode.Encode(url, qrRecoveryLevel, qrPixelSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %q: %w", url, err)
	}

	e.cache.Set(url, png, cache.DefaultExpiration)
	return png, nil
}
