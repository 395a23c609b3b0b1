package export

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/piwi3910/DecoraPuertas/internal/money"
	"github.com/xuri/excelize/v2"
)

// QuoteSheetName is the worksheet holding the quote.
const QuoteSheetName = "Cotizacion"

// pesoFormat shows whole pesos with thousands separators.
var pesoFormat = `"RD$ "#,##0`

// ExportXLSX writes the quote as a spreadsheet: a summary block with the
// formatted prices, a numeric block for accounting and the preview image.
func ExportXLSX(path string, q QuoteSheet, fm money.Formatter) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", QuoteSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	sheet := QuoteSheetName

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	peso, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pesoFormat})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	set := func(cell string, v any) {
		if err == nil {
			err = f.SetCellValue(sheet, cell, v)
		}
	}

	set("A1", "Cotización de vinil para puerta")
	set("A2", "Sesión")
	set("B2", q.SessionID)
	set("A3", "Fecha")
	set("B3", q.CreatedAt.Format("2006-01-02 15:04"))

	row := 5
	for _, line := range q.Lines(fm) {
		set(fmt.Sprintf("A%d", row), line.Label)
		set(fmt.Sprintf("B%d", row), line.Value)
		row++
	}

	row++
	numericStart := row
	numeric := []struct {
		label string
		value any
	}{
		{"Ancho (ft)", round2(q.Dimensions.WidthFt)},
		{"Alto (ft)", round2(q.Dimensions.HeightFt)},
		{"Área (ft²)", round2(q.Quote.AreaSqFt)},
		{"Tarifa por ft²", q.Quote.RatePerSqFt},
		{"Cantidad", q.Quote.Quantity},
		{"Precio por puerta", q.Quote.RoundedUnitPrice()},
		{"Total", q.Quote.Total},
	}
	for _, n := range numeric {
		set(fmt.Sprintf("A%d", row), n.label)
		set(fmt.Sprintf("B%d", row), n.value)
		row++
	}
	if err != nil {
		return fmt.Errorf("failed to write cells: %w", err)
	}

	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A1", title},
		{"A2", "A3", bold},
		{"A5", fmt.Sprintf("A%d", numericStart-2), bold},
		{fmt.Sprintf("A%d", numericStart), fmt.Sprintf("A%d", row-1), bold},
		{fmt.Sprintf("B%d", row-2), fmt.Sprintf("B%d", row-1), peso},
		{fmt.Sprintf("B%d", row-4), fmt.Sprintf("B%d", row-4), peso},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(sheet, s.from, s.to, s.style); err != nil {
			return fmt.Errorf("failed to style cells: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 30); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if q.Preview != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, q.Preview); err != nil {
			return fmt.Errorf("failed to encode preview: %w", err)
		}
		pic := &excelize.Picture{
			Extension: ".png",
			File:      buf.Bytes(),
			Format:    &excelize.GraphicOptions{AltText: "Vista previa", LockAspectRatio: true},
		}
		if err := f.AddPictureFromBytes(sheet, "D2", pic); err != nil {
			return fmt.Errorf("failed to add preview: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}
