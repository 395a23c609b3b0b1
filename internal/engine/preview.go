package engine

import (
	"math"

	"github.com/piwi3910/DecoraPuertas/internal/model"
)

const (
	// minPreviewFt keeps degenerate dimensions from dividing by zero.
	minPreviewFt = 0.1
	// minAspectRatio keeps very narrow doors renderable.
	minAspectRatio = 0.3
)

// Preview describes how to render the artwork over the door surface.
type Preview struct {
	AspectRatio float64          // Door width / height, >= 0.3
	Background  model.ArtworkRef // Artwork to draw
	FitSizePct  float64          // Artwork width as % of the surface width
	AnchorXPct  float64          // Background-position X, %
	AnchorYPct  float64          // Background-position Y, %
	Opacity     float64          // 0.5 .. 1
	Transitions bool             // Ease changes; off while dragging
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// AspectRatio returns the display aspect ratio of the door.
func AspectRatio(d model.DoorDimensions) float64 {
	w := math.Max(d.WidthFt, minPreviewFt)
	h := math.Max(d.HeightFt, minPreviewFt)
	return math.Max(w/h, minAspectRatio)
}

// Compose combines door geometry, placement and artwork into a Preview.
// Inputs are trusted to be clamped already.
func Compose(d model.DoorDimensions, p model.PlacementState, art model.ArtworkRef, dragging bool) Preview {
	return Preview{
		AspectRatio: AspectRatio(d),
		Background:  art,
		FitSizePct:  p.ScalePct,
		AnchorXPct:  p.OffsetXPct,
		AnchorYPct:  p.OffsetYPct,
		Opacity:     p.OpacityPct / 100,
		Transitions: !dragging,
	}
}

// ComposeSession is Compose for a session's current state.
func ComposeSession(s *model.Session, dragging bool) Preview {
	return Compose(s.Dimensions(), s.Placement, s.ActiveArtwork(), dragging)
}

// SurfaceSize returns the largest surface with the preview's aspect ratio
// fitting inside maxWidth x maxHeight. A non-positive bound is unbounded.
func (p Preview) SurfaceSize(maxWidth, maxHeight float64) (w, h float64) {
	if maxWidth <= 0 && maxHeight <= 0 {
		return 0, 0
	}
	ar := p.AspectRatio
	if ar <= 0 {
		ar = minAspectRatio
	}
	w = maxWidth
	h = w / ar
	if maxHeight > 0 && (h > maxHeight || maxWidth <= 0) {
		h = maxHeight
		w = h * ar
	}
	return w, h
}

// ArtworkRect places artwork of the given aspect ratio (width/height) on a
// surface: it is FitSizePct of the surface width wide and anchored like a
// background-position, so 0% is flush left/top and 100% flush right/bottom.
func (p Preview) ArtworkRect(surfaceW, surfaceH, artworkAspect float64) Rect {
	if artworkAspect <= 0 || math.IsNaN(artworkAspect) || math.IsInf(artworkAspect, 0) {
		artworkAspect = 1
	}
	w := surfaceW * p.FitSizePct / 100
	h := w / artworkAspect
	return Rect{
		X:      (surfaceW - w) * p.AnchorXPct / 100,
		Y:      (surfaceH - h) * p.AnchorYPct / 100,
		Width:  w,
		Height: h,
	}
}

// Intersect returns the overlap of r and o, or a zero Rect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
