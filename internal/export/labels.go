package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each decal label's QR code.
type LabelInfo struct {
	Session  string  `json:"session"`
	Piece    int     `json:"piece"`
	Of       int     `json:"of"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
	DecalW   float64 `json:"decal_w_in"`
	DecalH   float64 `json:"decal_h_in"`
	DecalX   float64 `json:"decal_x_in"`
	DecalY   float64 `json:"decal_y_in"`
	Artwork  string  `json:"artwork"`
	Opacity  float64 `json:"opacity"`
}

// MaxLabels caps how many labels one export prints.
const MaxLabels = 300

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels prints one QR-coded label per decal in the quote so each
// printed piece can be matched to its door at installation.
func ExportLabels(path string, q QuoteSheet) error {
	if q.Quote.Quantity > MaxLabels {
		return fmt.Errorf("too many labels: %d (max %d)", q.Quote.Quantity, MaxLabels)
	}
	labels := CollectLabelInfos(q)
	if len(labels) == 0 {
		return fmt.Errorf("no decals to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, tr); err != nil {
			return fmt.Errorf("failed to render label %d: %w", label.Piece, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, tr func(string) string) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.Session, info.Piece)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, tr(fmt.Sprintf("Puerta %d de %d", info.Piece, info.Of)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("Puerta %.1f x %.1f in", info.WidthIn, info.HeightIn)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+8.5)
	decal := fmt.Sprintf("Vinil %.1f x %.1f @ (%.1f, %.1f)", info.DecalW, info.DecalH, info.DecalX, info.DecalY)
	pdf.CellFormat(textW, 3.5, decal, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, tr(truncate(pdf, info.Artwork, textW)), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+16)
	pdf.CellFormat(textW, 3, info.Session, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos returns one label per decal in the quote, at most MaxLabels.
func CollectLabelInfos(q QuoteSheet) []LabelInfo {
	n := q.Quote.Quantity
	if n < 1 {
		return nil
	}
	doorW, doorH := q.DoorInches()
	decal := q.DecalRect()

	labels := make([]LabelInfo, 0, min(n, MaxLabels))
	for i := 1; i <= n && i <= MaxLabels; i++ {
		labels = append(labels, LabelInfo{
			Session:  q.SessionID,
			Piece:    i,
			Of:       n,
			WidthIn:  round2(doorW),
			HeightIn: round2(doorH),
			DecalW:   round2(decal.Width),
			DecalH:   round2(decal.Height),
			DecalX:   round2(decal.X),
			DecalY:   round2(decal.Y),
			Artwork:  q.Artwork,
			Opacity:  q.Placement.OpacityPct,
		})
	}
	return labels
}
