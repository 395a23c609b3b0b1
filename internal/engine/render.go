package engine

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// SurfaceColor is the bare door panel behind the vinyl.
var SurfaceColor = color.NRGBA{R: 250, G: 250, B: 250, A: 255}

// Render rasterizes the door surface at w x h pixels with the artwork scaled,
// anchored and faded as described by p. A nil artwork renders the bare surface.
func (p Preview) Render(artwork image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(SurfaceColor), image.Point{}, draw.Src)

	if artwork == nil {
		return dst
	}
	sb := artwork.Bounds()
	if sb.Empty() {
		return dst
	}

	aspect := float64(sb.Dx()) / float64(sb.Dy())
	r := p.ArtworkRect(float64(w), float64(h), aspect)
	dr := image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.Width)),
		int(math.Round(r.Y+r.Height)),
	)
	if dr.Empty() || !dr.Overlaps(dst.Bounds()) {
		return dst
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), artwork, sb, draw.Src, nil)

	alpha := uint8(math.Round(clamp01(p.Opacity) * 255))
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(dst, dr, scaled, image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
