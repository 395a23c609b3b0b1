package model

import (
	"math"
	"strconv"
	"strings"
)

// Unit is the length unit a buyer enters door dimensions in.
type Unit string

const (
	UnitInch       Unit = "in"
	UnitCentimeter Unit = "cm"
	UnitFoot       Unit = "ft"
)

const (
	inchesPerFoot      = 12.0
	centimetersPerFoot = 30.48
)

// Units lists the selectable units in display order.
var Units = []Unit{UnitInch, UnitCentimeter, UnitFoot}

func (u Unit) String() string {
	return string(u)
}

// Label returns the human-readable name shown in the unit selector.
func (u Unit) Label() string {
	switch u {
	case UnitInch:
		return "Pulgadas (in)"
	case UnitCentimeter:
		return "Centímetros (cm)"
	default:
		return "Pies (ft)"
	}
}

// ParseUnit maps a unit tag or name to a Unit. Unknown input is treated as feet.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches", "\"":
		return UnitInch
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return UnitCentimeter
	default:
		return UnitFoot
	}
}

// UnitFromLabel is the inverse of Unit.Label for the unit selector widget.
func UnitFromLabel(label string) Unit {
	for _, u := range Units {
		if u.Label() == label {
			return u
		}
	}
	return ParseUnit(label)
}

// ToFeet normalizes a raw magnitude in the given unit to feet.
// Negative and non-finite magnitudes normalize to 0.
func ToFeet(magnitude float64, unit Unit) float64 {
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) || magnitude < 0 {
		return 0
	}
	switch unit {
	case UnitInch:
		return magnitude / inchesPerFoot
	case UnitCentimeter:
		return magnitude / centimetersPerFoot
	default:
		return magnitude
	}
}

// FeetTo converts a length in feet back into the given unit.
func FeetTo(feet float64, unit Unit) float64 {
	switch unit {
	case UnitInch:
		return feet * inchesPerFoot
	case UnitCentimeter:
		return feet * centimetersPerFoot
	default:
		return feet
	}
}

// ParseMagnitude reads a numeric text field. Empty or unparsable text yields 0
// because the field may be transiently empty while the buyer is typing.
func ParseMagnitude(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// DoorDimensions holds the door size normalized to feet.
type DoorDimensions struct {
	WidthFt  float64 `json:"width_ft"`
	HeightFt float64 `json:"height_ft"`
}

// NewDoorDimensions normalizes a raw width and height in the given unit.
func NewDoorDimensions(width, height float64, unit Unit) DoorDimensions {
	return DoorDimensions{
		WidthFt:  ToFeet(width, unit),
		HeightFt: ToFeet(height, unit),
	}
}

// AreaSqFt returns the door area in square feet, 0 for degenerate input.
func (d DoorDimensions) AreaSqFt() float64 {
	area := math.Max(d.WidthFt, 0) * math.Max(d.HeightFt, 0)
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return 0
	}
	return area
}
