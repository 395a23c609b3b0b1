package export

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/DecoraPuertas/internal/money"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	contentTop   = marginTop + headerHeight + 10.0
	columnGap    = 10.0
	leftColumnW  = 85.0
	diagramH     = 70.0
	quoteQRSize  = 35.0
)

// ExportPDF writes a one-page quote: the rendered preview, a dimensioned
// placement diagram, the price summary and a QR code with the quote data.
func ExportPDF(path string, q QuoteSheet, f money.Formatter) error {
	if q.Quote.Quantity < 1 {
		return fmt.Errorf("quote has no doors")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	renderHeader(pdf, q, tr)

	y := contentTop
	if q.Preview != nil {
		h, err := drawPreviewImage(pdf, q, marginLeft, y, leftColumnW, pageHeight-contentTop-diagramH-marginBottom-15)
		if err != nil {
			return err
		}
		y += h + 8
	}
	drawPlacementDiagram(pdf, q, marginLeft, y, leftColumnW, diagramH, tr)

	rightX := marginLeft + leftColumnW + columnGap
	rightW := pageWidth - marginRight - rightX
	endY := renderSummary(pdf, q, f, rightX, contentTop, rightW, tr)

	if err := drawQuoteQR(pdf, q, rightX, endY+8, tr); err != nil {
		return err
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		tr("Generado por DecoraPuertas - Vinil decorativo para puertas"), "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, q QuoteSheet, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr("Cotización de vinil para puerta"), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	meta := fmt.Sprintf("Sesión %s  |  %s", q.SessionID, q.CreatedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, tr(meta), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight+6, pageWidth-marginRight, marginTop+headerHeight+6)
	pdf.SetTextColor(0, 0, 0)
}

// drawPreviewImage embeds the rendered preview scaled to fit the box and
// returns the height used.
func drawPreviewImage(pdf *fpdf.Fpdf, q QuoteSheet, x, y, maxW, maxH float64) (float64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, q.Preview); err != nil {
		return 0, fmt.Errorf("failed to encode preview: %w", err)
	}

	b := q.Preview.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, nil
	}
	scale := math.Min(maxW/float64(b.Dx()), maxH/float64(b.Dy()))
	w := float64(b.Dx()) * scale
	h := float64(b.Dy()) * scale
	x += (maxW - w) / 2

	name := "preview_" + q.SessionID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")

	// Door frame
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	pdf.Rect(x, y, w, h, "D")
	return h, pdf.Error()
}

// drawPlacementDiagram draws the door to scale with the decal rectangle and
// inch dimensions.
func drawPlacementDiagram(pdf *fpdf.Fpdf, q QuoteSheet, x, y, maxW, maxH float64, tr func(string) string) {
	doorW, doorH := q.DoorInches()
	if doorW <= 0 || doorH <= 0 {
		return
	}
	scale := math.Min((maxW-10)/doorW, (maxH-8)/doorH)
	canvasW := doorW * scale
	canvasH := doorH * scale
	offsetX := x + 10 + (maxW-10-canvasW)/2
	offsetY := y

	// Door
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Decal, drawn translucent at the chosen opacity
	decal := q.DecalRect()
	if !decal.Empty() {
		pdf.SetAlpha(q.Placement.Opacity(), "Normal")
		pdf.SetFillColor(33, 150, 243)
		pdf.Rect(offsetX+decal.X*scale, offsetY+decal.Y*scale, decal.Width*scale, decal.Height*scale, "F")
		pdf.SetAlpha(1, "Normal")
		pdf.SetDrawColor(13, 71, 161)
		pdf.SetLineWidth(0.3)
		pdf.Rect(offsetX+decal.X*scale, offsetY+decal.Y*scale, decal.Width*scale, decal.Height*scale, "D")
	}

	drawDimensionAnnotations(pdf, doorW, doorH, offsetX, offsetY, canvasW, canvasH)

	if !decal.Empty() {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(13, 71, 161)
		pdf.SetXY(offsetX, offsetY+canvasH+5)
		label := fmt.Sprintf("Vinil: %.1f x %.1f in", decal.Width, decal.Height)
		pdf.CellFormat(canvasW, 4, tr(label), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// drawDimensionAnnotations adds width and height labels outside the door rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, doorW, doorH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f in", doorW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.1f in", doorH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummary draws the label/value table and returns the Y below it.
func renderSummary(pdf *fpdf.Fpdf, q QuoteSheet, f money.Formatter, x, y, w float64, tr func(string) string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 7, tr("Resumen"), "", 0, "L", false, 0, "")
	y += 9

	labelW := w * 0.45
	for _, line := range q.Lines(f) {
		total := line.Label == "Total"
		pdf.SetXY(x, y)
		if total {
			pdf.SetFillColor(230, 230, 230)
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(labelW, 7, tr(line.Label), "B", 0, "L", total, 0, "")
		pdf.SetFont("Helvetica", "B", fontSizeFor(total))
		pdf.CellFormat(w-labelW, 7, tr(truncate(pdf, line.Value, w-labelW-2)), "B", 0, "R", total, 0, "")
		y += 7
	}

	y += 3
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(x, y)
	note := fmt.Sprintf("Tarifa de %s por pie cuadrado. El total se redondea hacia arriba al peso entero.",
		f.Format(int64(q.Quote.RatePerSqFt)))
	pdf.MultiCell(w, 4, tr(note), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	return pdf.GetY()
}

// drawQuoteQR places a QR code encoding the quote JSON.
func drawQuoteQR(pdf *fpdf.Fpdf, q QuoteSheet, x, y float64, tr func(string) string) error {
	data, err := q.JSON()
	if err != nil {
		return err
	}
	qrPNG, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	name := "qr_quote_" + q.SessionID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(name, x, y, quoteQRSize, quoteQRSize, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(x+quoteQRSize+3, y+quoteQRSize/2-2)
	pdf.CellFormat(40, 4, tr("Escanee para ver la cotización"), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return pdf.Error()
}

func fontSizeFor(total bool) float64 {
	if total {
		return 11
	}
	return 9
}

// truncate shortens s with an ellipsis until it fits within w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
