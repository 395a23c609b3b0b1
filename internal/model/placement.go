package model

import "math"

// Placement ranges, all in percent.
const (
	MinScalePct   = 50.0
	MaxScalePct   = 200.0
	MinOpacityPct = 50.0
	MaxOpacityPct = 100.0
	MinOffsetPct  = 0.0
	MaxOffsetPct  = 100.0
)

// PlacementState is the transform applied to the artwork over the door surface.
// Offsets are percentages of the surface width/height and anchor the artwork
// the same way a CSS background-position does.
type PlacementState struct {
	ScalePct   float64 `json:"scale_pct"`
	OpacityPct float64 `json:"opacity_pct"`
	OffsetXPct float64 `json:"offset_x_pct"`
	OffsetYPct float64 `json:"offset_y_pct"`
}

// DefaultPlacement returns the centered, unscaled, fully opaque placement.
func DefaultPlacement() PlacementState {
	return PlacementState{
		ScalePct:   100,
		OpacityPct: 100,
		OffsetXPct: 50,
		OffsetYPct: 50,
	}
}

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p PlacementState) SetScale(v float64) PlacementState {
	p.ScalePct = Clamp(v, MinScalePct, MaxScalePct)
	return p
}

func (p PlacementState) SetOpacity(v float64) PlacementState {
	p.OpacityPct = Clamp(v, MinOpacityPct, MaxOpacityPct)
	return p
}

func (p PlacementState) SetOffsetX(v float64) PlacementState {
	p.OffsetXPct = Clamp(v, MinOffsetPct, MaxOffsetPct)
	return p
}

func (p PlacementState) SetOffsetY(v float64) PlacementState {
	p.OffsetYPct = Clamp(v, MinOffsetPct, MaxOffsetPct)
	return p
}

// SetOffset sets both offsets at once.
func (p PlacementState) SetOffset(x, y float64) PlacementState {
	return p.SetOffsetX(x).SetOffsetY(y)
}

// Normalized re-clamps every field, e.g. after loading a snapshot.
func (p PlacementState) Normalized() PlacementState {
	return p.SetScale(p.ScalePct).SetOpacity(p.OpacityPct).SetOffset(p.OffsetXPct, p.OffsetYPct)
}

// Opacity returns the opacity as a fraction in [0.5, 1].
func (p PlacementState) Opacity() float64 {
	return p.OpacityPct / 100.0
}
