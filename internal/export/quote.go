// Package export writes door decal quotes to PDF, XLSX and DXF files and
// prints QR-coded production labels for each decal.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/piwi3910/DecoraPuertas/internal/engine"
	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/money"
)

// QuoteSheet is a snapshot of a session taken for export.
type QuoteSheet struct {
	SessionID     string
	CreatedAt     time.Time
	Unit          model.Unit
	Width         float64 // As entered, in Unit
	Height        float64 // As entered, in Unit
	Dimensions    model.DoorDimensions
	Quantity      int
	Placement     model.PlacementState
	Artwork       string  // Short artwork description, never a data URI
	ArtworkAspect float64 // Width / height of the artwork, 1 when unknown
	Quote         model.PriceQuote
	Preview       image.Image // Rendered door, optional
}

// NewQuoteSheet snapshots s. preview may be nil.
func NewQuoteSheet(s *model.Session, preview image.Image, artworkAspect float64) QuoteSheet {
	if artworkAspect <= 0 {
		artworkAspect = 1
	}
	return QuoteSheet{
		SessionID:     s.ID,
		CreatedAt:     time.Now(),
		Unit:          s.Unit,
		Width:         s.Width,
		Height:        s.Height,
		Dimensions:    s.Dimensions(),
		Quantity:      s.Quantity,
		Placement:     s.Placement,
		Artwork:       s.ActiveArtwork().Describe(),
		ArtworkAspect: artworkAspect,
		Quote:         s.Quote(),
		Preview:       preview,
	}
}

// QuoteInfo is the payload encoded into quote QR codes.
type QuoteInfo struct {
	Session    string  `json:"session"`
	WidthFt    float64 `json:"width_ft"`
	HeightFt   float64 `json:"height_ft"`
	AreaSqFt   float64 `json:"area_sqft"`
	Quantity   int     `json:"qty"`
	Rate       float64 `json:"rate"`
	UnitPrice  int64   `json:"unit_price"`
	Total      int64   `json:"total"`
	Artwork    string  `json:"artwork"`
	ScalePct   float64 `json:"scale"`
	OpacityPct float64 `json:"opacity"`
	OffsetXPct float64 `json:"x"`
	OffsetYPct float64 `json:"y"`
}

// Info returns the QR payload for q.
func (q QuoteSheet) Info() QuoteInfo {
	return QuoteInfo{
		Session:    q.SessionID,
		WidthFt:    round2(q.Dimensions.WidthFt),
		HeightFt:   round2(q.Dimensions.HeightFt),
		AreaSqFt:   round2(q.Quote.AreaSqFt),
		Quantity:   q.Quote.Quantity,
		Rate:       q.Quote.RatePerSqFt,
		UnitPrice:  q.Quote.RoundedUnitPrice(),
		Total:      q.Quote.Total,
		Artwork:    q.Artwork,
		ScalePct:   q.Placement.ScalePct,
		OpacityPct: q.Placement.OpacityPct,
		OffsetXPct: q.Placement.OffsetXPct,
		OffsetYPct: q.Placement.OffsetYPct,
	}
}

// JSON returns the QR payload as compact JSON.
func (q QuoteSheet) JSON() (string, error) {
	data, err := json.Marshal(q.Info())
	if err != nil {
		return "", fmt.Errorf("failed to marshal quote info: %w", err)
	}
	return string(data), nil
}

// Line is one label/value row of a quote summary.
type Line struct {
	Label string
	Value string
}

// Lines returns the human-readable quote summary shared by all formats.
func (q QuoteSheet) Lines(f money.Formatter) []Line {
	return []Line{
		{"Medidas", fmt.Sprintf("%s x %s %s", trimFloat(q.Width), trimFloat(q.Height), q.Unit)},
		{"Medidas (pies)", fmt.Sprintf("%.2f x %.2f ft", q.Dimensions.WidthFt, q.Dimensions.HeightFt)},
		{"Área por puerta", fmt.Sprintf("%.2f ft²", q.Quote.AreaSqFt)},
		{"Tarifa", fmt.Sprintf("%s / ft²", f.Format(int64(q.Quote.RatePerSqFt)))},
		{"Precio por puerta", f.Format(q.Quote.RoundedUnitPrice())},
		{"Cantidad", fmt.Sprintf("%d", q.Quote.Quantity)},
		{"Total", f.Format(q.Quote.Total)},
		{"Diseño", q.Artwork},
		{"Escala", fmt.Sprintf("%.0f%%", q.Placement.ScalePct)},
		{"Opacidad", fmt.Sprintf("%.0f%%", q.Placement.OpacityPct)},
		{"Posición", fmt.Sprintf("X %.0f%%, Y %.0f%%", q.Placement.OffsetXPct, q.Placement.OffsetYPct)},
	}
}

// DoorInches returns the door size in inches.
func (q QuoteSheet) DoorInches() (w, h float64) {
	return model.FeetTo(q.Dimensions.WidthFt, model.UnitInch), model.FeetTo(q.Dimensions.HeightFt, model.UnitInch)
}

// DecalRect returns the decal rectangle in door inches, origin at the door's
// top-left corner, clipped to the door.
func (q QuoteSheet) DecalRect() engine.Rect {
	doorW, doorH := q.DoorInches()
	pv := engine.Compose(q.Dimensions, q.Placement, model.ArtworkRef{}, false)
	door := engine.Rect{Width: doorW, Height: doorH}
	return door.Intersect(pv.ArtworkRect(doorW, doorH, q.ArtworkAspect))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", round2(v))
}
