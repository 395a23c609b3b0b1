package model

import "github.com/google/uuid"

// Default door entered on a fresh session: a standard 36" x 74" interior door.
const (
	DefaultWidth    = 36.0
	DefaultHeight   = 74.0
	DefaultQuantity = 1
)

// Session is the state of one configurator: what the buyer typed, the chosen
// artwork and how it is placed. Dimensions and price are derived on demand.
type Session struct {
	ID          string           `json:"id"`
	Unit        Unit             `json:"unit"`
	Width       float64          `json:"width"`  // Raw width in Unit
	Height      float64          `json:"height"` // Raw height in Unit
	Quantity    int              `json:"quantity"`
	RatePerSqFt float64          `json:"rate_per_sqft"`
	Placement   PlacementState   `json:"placement"`
	Artwork     ArtworkSelection `json:"artwork"`
}

// NewSession returns a session with the default door, the first catalog
// sample selected and the artwork centered.
func NewSession(catalog Catalog) *Session {
	return &Session{
		ID:          uuid.New().String()[:8],
		Unit:        UnitInch,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Quantity:    DefaultQuantity,
		RatePerSqFt: DefaultRatePerSqFt,
		Placement:   DefaultPlacement(),
		Artwork:     ArtworkSelection{SampleID: catalog.First()},
	}
}

// Dimensions returns the door size normalized to feet.
func (s *Session) Dimensions() DoorDimensions {
	return NewDoorDimensions(s.Width, s.Height, s.Unit)
}

// Quote prices the current configuration.
func (s *Session) Quote() PriceQuote {
	return QuoteDimensions(s.Dimensions(), s.Quantity, s.RatePerSqFt)
}

// SetUnit changes the unit the raw width/height are interpreted in.
// The raw numbers are kept, matching what the buyer sees in the fields.
func (s *Session) SetUnit(u Unit) {
	s.Unit = ParseUnit(string(u))
}

func (s *Session) SetWidth(v float64) {
	s.Width = v
}

func (s *Session) SetHeight(v float64) {
	s.Height = v
}

// SetQuantity stores a quantity floored and clamped to at least 1.
func (s *Session) SetQuantity(q float64) {
	s.Quantity = NormalizeQuantity(q)
}

// SelectSample activates a catalog sample and drops any upload.
func (s *Session) SelectSample(id string) {
	s.Artwork = s.Artwork.SelectSample(id)
}

// SetUpload activates an uploaded artwork.
func (s *Session) SetUpload(u *Upload) {
	s.Artwork = s.Artwork.SetUpload(u)
}

// ActiveArtwork returns the artwork shown on the door.
func (s *Session) ActiveArtwork() ArtworkRef {
	return s.Artwork.Active()
}

// ResetPlacement restores the centered, unscaled placement.
func (s *Session) ResetPlacement() {
	s.Placement = DefaultPlacement()
}
