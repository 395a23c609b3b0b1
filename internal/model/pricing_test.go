package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteInchDoor(t *testing.T) {
	w := ToFeet(36, UnitInch)
	h := ToFeet(74, UnitInch)
	q := Quote(w, h, 1, 99)

	assert.InDelta(t, 3.0, w, 1e-12)
	assert.InDelta(t, 6.1667, h, 1e-4)
	assert.InDelta(t, 18.5, q.AreaSqFt, 1e-9)
	assert.InDelta(t, 1831.5, q.UnitPrice, 1e-6)
	assert.Equal(t, int64(1832), q.Total)
	assert.Equal(t, 1, q.Quantity)
}

func TestQuoteCentimeterDoorMatchesInchDoor(t *testing.T) {
	// 91.44 cm = 36 in, 187.96 cm = 74 in
	inch := Quote(ToFeet(36, UnitInch), ToFeet(74, UnitInch), 1, 99)
	cm := Quote(ToFeet(91.44, UnitCentimeter), ToFeet(187.96, UnitCentimeter), 2, 99)

	assert.InDelta(t, inch.AreaSqFt, cm.AreaSqFt, 1e-9)
	assert.InDelta(t, inch.UnitPrice, cm.UnitPrice, 1e-6)
	assert.Equal(t, int64(math.Ceil(cm.UnitPrice*2)), cm.Total)
	assert.InDelta(t, 3663, float64(cm.Total), 1)
}

func TestQuoteCentimeter80InchDoor(t *testing.T) {
	// 203.2 cm is an 80" door
	assert.InDelta(t, ToFeet(80, UnitInch), ToFeet(203.2, UnitCentimeter), 1e-9)
}

func TestQuoteAreaPriceIgnoresQuantity(t *testing.T) {
	one := Quote(3, 7, 1, 99)
	three := Quote(3, 7, 3, 99)

	if one.UnitPrice != three.UnitPrice {
		t.Errorf("area price should not depend on quantity: %.2f vs %.2f", one.UnitPrice, three.UnitPrice)
	}
	if three.Total != int64(math.Ceil(one.UnitPrice*3)) {
		t.Errorf("expected total %d, got %d", int64(math.Ceil(one.UnitPrice*3)), three.Total)
	}
}

func TestQuoteQuantityCoercion(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		want int
	}{
		{"zero", 0, 1},
		{"negative", -4, 1},
		{"fraction below one", 0.7, 1},
		{"fraction floors", 2.9, 2},
		{"NaN", math.NaN(), 1},
		{"normal", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote(3, 6, tt.qty, 99)
			assert.Equal(t, tt.want, q.Quantity)
		})
	}
}

func TestQuoteDegenerateDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 6},
		{"negative height", 3, -6},
		{"NaN width", math.NaN(), 6},
		{"infinite height", 3, math.Inf(1)},
		{"infinite and zero", math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote(tt.w, tt.h, 1, 99)
			assert.Equal(t, 0.0, q.AreaSqFt)
			assert.Equal(t, int64(0), q.Total)
		})
	}
}

func TestQuoteBadRateFallsBack(t *testing.T) {
	q := Quote(1, 1, 1, 0)
	assert.Equal(t, DefaultRatePerSqFt, q.RatePerSqFt)
	assert.Equal(t, int64(99), q.Total)
}

func TestQuoteMonotonic(t *testing.T) {
	sizes := []float64{0, 0.5, 1, 2.25, 3, 6.1666, 7, 10}
	qtys := []float64{1, 2, 3, 10}

	for _, h := range sizes {
		for _, qty := range qtys {
			prev := int64(-1)
			for _, w := range sizes {
				got := Quote(w, h, qty, 99).Total
				if got < prev {
					t.Fatalf("total decreased with width: w=%.4f h=%.4f qty=%.0f total=%d prev=%d", w, h, qty, got, prev)
				}
				prev = got
			}
		}
	}

	for _, w := range sizes {
		prev := int64(-1)
		for _, qty := range []float64{0, 1, 2, 3, 4, 50} {
			got := Quote(w, 6.5, qty, 99).Total
			if got < prev {
				t.Fatalf("total decreased with quantity: w=%.4f qty=%.0f total=%d prev=%d", w, qty, got, prev)
			}
			prev = got
		}
	}
}

func TestRoundedUnitPrice(t *testing.T) {
	assert.Equal(t, int64(1832), PriceQuote{UnitPrice: 1831.5}.RoundedUnitPrice())
	assert.Equal(t, int64(99), PriceQuote{UnitPrice: 99}.RoundedUnitPrice())
	assert.Equal(t, int64(0), PriceQuote{}.RoundedUnitPrice())
}

func TestQuoteSaturatesHugeDoors(t *testing.T) {
	prev := int64(-1)
	for _, side := range []float64{1e6, 1e7, 1e8, 1e9, 1e10, 1e150} {
		got := Quote(side, side, 2, 99).Total
		if got < prev {
			t.Fatalf("total decreased at side=%g: total=%d prev=%d", side, got, prev)
		}
		prev = got
	}

	assert.Equal(t, int64(990000000000000000), Quote(1e8, 1e8, 1, 99).Total)
	assert.Equal(t, int64(math.MaxInt64), Quote(1e9, 1e9, 1, 99).Total)
	assert.Equal(t, int64(math.MaxInt64), Quote(1e150, 1e150, 1, 99).Total)
	assert.Equal(t, int64(math.MaxInt64), Quote(1e9, 1e9, 1, 99).RoundedUnitPrice())
}
