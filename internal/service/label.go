package service

import (
	"bytes"
	"fmt"

	"asset-tracker-backend/internal/database/models"

	"github.com/jung-kurt/gofpdf"
)

// Label sheet geometry: a fixed 3x8 grid of 70mm x 37mm labels on A4,
// matching standard 24-up adhesive label sheets. The grid is centered
// by splitting the leftover page size into symmetric margins.
const (
	labelCols   = 3
	labelRows   = 8
	labelsPerPage = labelCols * labelRows

	labelWidth  = 70.0 // mm
	labelHeight = 37.0 // mm

	pageWidth  = 210.0 // A4 portrait, mm
	pageHeight = 297.0

	qrSize  = 25.0 // mm, square on the left of each label
	qrInset = 2.0  // mm from the label's left edge

	nameMaxChars = 18
)

// OwnerContact is the company metadata printed on every label
type OwnerContact struct {
	CompanyName string
	Phone       string
	Email       string
}

// LabelService arranges assets into printable QR label sheets
type LabelService struct {
	encoder        QREncoder
	publicAssetURL func(publicID string) string
}

// NewLabelService creates a new label service. publicAssetURL builds the
// stable public link encoded into each QR code.
func NewLabelService(encoder QREncoder, publicAssetURL func(publicID string) string) *LabelService {
	return &LabelService{
		encoder:        encoder,
		publicAssetURL: publicAssetURL,
	}
}

// BuildSheet lays the given assets out into label cells, 24 per page, in
// the order given (callers sort by name). Zero assets produces a
// zero-page document; callers short-circuit before invoking for user
// facing flows.
func (s *LabelService) BuildSheet(assets []models.Asset, contact OwnerContact) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	marginX := (pageWidth - labelCols*labelWidth) / 2
	marginY := (pageHeight - labelRows*labelHeight) / 2

	for i := range assets {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		cell := i % labelsPerPage
		col := cell % labelCols
		row := cell / labelCols

		x := marginX + float64(col)*labelWidth
		y := marginY + float64(row)*labelHeight

		if err := s.drawLabel(pdf, &assets[i], contact, x, y); err != nil {
			return nil, err
		}
	}

	return pdf, nil
}

// RenderPDF builds the sheet and serializes it to PDF bytes
func (s *LabelService) RenderPDF(assets []models.Asset, contact OwnerContact) ([]byte, error) {
	pdf, err := s.BuildSheet(assets, contact)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render label pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel renders one label cell: faint cutting border, QR square on
// the left, stacked text lines on the right.
func (s *LabelService) drawLabel(pdf *gofpdf.Fpdf, asset *models.Asset, contact OwnerContact, x, y float64) error {
	// Cutting guide
	pdf.SetDrawColor(204, 204, 204)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// QR code, vertically centered in the cell
	png, err := s.encoder.Encode(s.publicAssetURL(asset.ID.String()))
	if err != nil {
		return err
	}
	imgName := "qr-" + asset.ID.String()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))

	qrX := x + qrInset
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, opts, 0, "")

	// Text block to the right of the QR code
	textX := qrX + qrSize + 3
	lineY := y + 6

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(textX, lineY, TruncateLabelName(asset.Name))
	lineY += 4

	// Short id as a fallback if the code can't be scanned
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(textX, lineY, "ID: "+asset.ShortID())
	lineY += 5

	// Owner contact lines: each one omitted entirely when empty
	if contact.CompanyName != "" {
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(77, 77, 77)
		pdf.Text(textX, lineY, contact.CompanyName)
		lineY += 3.5
	}
	if contact.Phone != "" {
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(102, 102, 102)
		pdf.Text(textX, lineY, "Tel: "+contact.Phone)
		lineY += 3
	}
	if contact.Email != "" {
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(102, 102, 102)
		pdf.Text(textX, lineY, contact.Email)
	}

	return nil
}

// TruncateLabelName shortens an asset name to fit a single label line.
// Names longer than 18 characters get an ellipsis; there is no wrapping.
func TruncateLabelName(name string) string {
	runes := []rune(name)
	if len(runes) <= nameMaxChars {
		return name
	}
	return string(runes[:nameMaxChars]) + "..."
}
