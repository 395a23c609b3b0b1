package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFeet(t *testing.T) {
	for _, m := range []float64{0, 1, 12, 36, 74, 91.44, 203.2, 1000} {
		assert.Equal(t, m/12, ToFeet(m, UnitInch), "inch %v", m)
		assert.Equal(t, m/30.48, ToFeet(m, UnitCentimeter), "cm %v", m)
		assert.Equal(t, m, ToFeet(m, UnitFoot), "ft %v", m)
	}
}

func TestToFeetInvalidMagnitude(t *testing.T) {
	for _, m := range []float64{-1, -0.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, u := range Units {
			if got := ToFeet(m, u); got != 0 {
				t.Errorf("ToFeet(%v, %s) = %v, want 0", m, u, got)
			}
		}
	}
}

func TestToFeetUnknownUnitIsIdentity(t *testing.T) {
	assert.Equal(t, 7.5, ToFeet(7.5, Unit("furlong")))
}

func TestParseUnit(t *testing.T) {
	tests := map[string]Unit{
		"in":         UnitInch,
		"Inch":       UnitInch,
		" inches ":   UnitInch,
		"cm":         UnitCentimeter,
		"CENTIMETER": UnitCentimeter,
		"ft":         UnitFoot,
		"feet":       UnitFoot,
		"":           UnitFoot,
		"yd":         UnitFoot,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseUnit(in), "ParseUnit(%q)", in)
	}
}

func TestUnitLabelRoundTrip(t *testing.T) {
	for _, u := range Units {
		assert.Equal(t, u, UnitFromLabel(u.Label()))
	}
}

func TestFeetToInverse(t *testing.T) {
	for _, u := range Units {
		assert.InDelta(t, 42.0, FeetTo(ToFeet(42, u), u), 1e-9, "unit %s", u)
	}
}

func TestParseMagnitude(t *testing.T) {
	assert.Equal(t, 36.0, ParseMagnitude("36"))
	assert.Equal(t, 91.44, ParseMagnitude(" 91.44 "))
	assert.Equal(t, 0.0, ParseMagnitude(""))
	assert.Equal(t, 0.0, ParseMagnitude("abc"))
	assert.Equal(t, 0.0, ToFeet(ParseMagnitude("NaN"), UnitInch))
}

func TestDoorDimensions(t *testing.T) {
	d := NewDoorDimensions(36, 74, UnitInch)
	assert.InDelta(t, 3.0, d.WidthFt, 1e-12)
	assert.InDelta(t, 74.0/12.0, d.HeightFt, 1e-12)
	assert.InDelta(t, 18.5, d.AreaSqFt(), 1e-9)

	neg := NewDoorDimensions(-36, 74, UnitInch)
	assert.Equal(t, 0.0, neg.WidthFt)
	assert.Equal(t, 0.0, neg.AreaSqFt())
}
