package service_test

import (
	"fmt"
	"testing"

	"asset-tracker-backend/internal/database/models"
	"asset-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLabelService() *service.LabelService {
	return service.NewLabelService(service.NewQREncoder(), func(publicID string) string {
		return "http://localhost:8080/public/assets/" + publicID
	})
}

func makeAssets(n int) []models.Asset {
	assets := make([]models.Asset, n)
	for i := range assets {
		assets[i] = models.Asset{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      fmt.Sprintf("Asset %02d", i+1),
			Status:    models.AssetStatusAvailable,
		}
	}
	return assets
}

func TestBuildSheetPageCount(t *testing.T) {
	svc := newLabelService()
	contact := service.OwnerContact{CompanyName: "Acme GmbH"}

	tests := []struct {
		assets    int
		wantPages int
	}{
		{assets: 1, wantPages: 1},
		{assets: 24, wantPages: 1},
		{assets: 25, wantPages: 2},
		{assets: 48, wantPages: 2},
		{assets: 49, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d assets", tt.assets), func(t *testing.T) {
			pdf, err := svc.BuildSheet(makeAssets(tt.assets), contact)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPages, pdf.PageCount())
		})
	}
}

func TestBuildSheetEmpty(t *testing.T) {
	svc := newLabelService()

	pdf, err := svc.BuildSheet(nil, service.OwnerContact{})

	assert.NoError(t, err)
	assert.Equal(t, 0, pdf.PageCount())
}

func TestRenderPDFProducesDocument(t *testing.T) {
	svc := newLabelService()
	contact := service.OwnerContact{
		CompanyName: "Acme GmbH",
		Phone:       "+49-30-555-0100",
		Email:       "office@acme.example.com",
	}

	data, err := svc.RenderPDF(makeAssets(3), contact)

	assert.NoError(t, err)
	assert.True(t, len(data) > 1000, "expected a non-trivial document, got %d bytes", len(data))
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPDFOmitsEmptyContactLines(t *testing.T) {
	svc := newLabelService()

	// No contact info at all still renders a valid sheet
	data, err := svc.RenderPDF(makeAssets(1), service.OwnerContact{})

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTruncateLabelName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short name untouched", in: "Drill", want: "Drill"},
		{name: "exactly 18 chars untouched", in: "123456789012345678", want: "123456789012345678"},
		{name: "19 chars truncated", in: "1234567890123456789", want: "123456789012345678..."},
		{name: "long name truncated", in: "ThinkPad X1 Carbon Gen 11 Ultra", want: "ThinkPad X1 Carbon..."},
		{name: "multibyte runes counted as characters", in: "Büromöbel Größenwahnsinn", want: "Büromöbel Größenwa..."},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.TruncateLabelName(tt.in))
		})
	}
}
