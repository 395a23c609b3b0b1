package model

import "math"

// DefaultRatePerSqFt is the vinyl price in Dominican pesos per square foot.
const DefaultRatePerSqFt = 99.0

// PriceQuote holds the results of a decal pricing calculation.
type PriceQuote struct {
	AreaSqFt    float64 `json:"area_sq_ft"`    // Door area in square feet
	RatePerSqFt float64 `json:"rate_per_sqft"` // Rate used (RD$ per sq ft)
	Quantity    int     `json:"quantity"`      // Number of decals, always >= 1
	UnitPrice   float64 `json:"unit_price"`    // Area price for a single decal, not rounded
	Total       int64   `json:"total"`         // ceil(UnitPrice * Quantity), whole pesos
}

// NormalizeQuantity floors a raw quantity and clamps it to a minimum of 1.
func NormalizeQuantity(q float64) int {
	if math.IsNaN(q) || q < 1 {
		return 1
	}
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(q))
}

// Quote computes the area price and the rounded-up total for a door decal.
// It never fails: degenerate dimensions price at 0 and a bad quantity counts as 1.
func Quote(widthFt, heightFt, quantity, rate float64) PriceQuote {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		rate = DefaultRatePerSqFt
	}
	area := DoorDimensions{WidthFt: widthFt, HeightFt: heightFt}.AreaSqFt()
	qty := NormalizeQuantity(quantity)

	unitPrice := area * rate
	total := math.Ceil(unitPrice * float64(qty))

	return PriceQuote{
		AreaSqFt:    area,
		RatePerSqFt: rate,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Total:       wholePesos(total),
	}
}

// wholePesos converts a rounded-up amount to int64, saturating at
// math.MaxInt64 for amounts int64 cannot hold.
func wholePesos(v float64) int64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case math.IsInf(v, 1) || v >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(v)
}

// QuoteDimensions is Quote for already-normalized door dimensions.
func QuoteDimensions(d DoorDimensions, quantity int, rate float64) PriceQuote {
	return Quote(d.WidthFt, d.HeightFt, float64(quantity), rate)
}

// RoundedUnitPrice is the single-decal price rounded up to whole pesos.
func (q PriceQuote) RoundedUnitPrice() int64 {
	return wholePesos(math.Ceil(q.UnitPrice))
}
