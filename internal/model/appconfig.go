package model

// AppConfig holds application-wide preferences and session defaults.
type AppConfig struct {
	// Pricing and defaults applied to new sessions
	RatePerSqFt     float64 `json:"rate_per_sqft"`
	DefaultUnit     Unit    `json:"default_unit"`
	DefaultWidth    float64 `json:"default_width"`
	DefaultHeight   float64 `json:"default_height"`
	DefaultQuantity int     `json:"default_quantity"`

	// Catalog and preview
	CatalogDir      string  `json:"catalog_dir"`       // Directory holding 1.png ... 5.png
	PreviewMaxWidth float64 `json:"preview_max_width"` // px

	// Application preferences
	RecentExports []string `json:"recent_exports"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
}

const defaultPreviewMaxWidth = 420.0

// DefaultAppConfig returns an AppConfig populated with the shop defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RatePerSqFt:     DefaultRatePerSqFt,
		DefaultUnit:     UnitInch,
		DefaultWidth:    DefaultWidth,
		DefaultHeight:   DefaultHeight,
		DefaultQuantity: DefaultQuantity,
		CatalogDir:      "assets/catalog",
		PreviewMaxWidth: defaultPreviewMaxWidth,
		RecentExports:   []string{},
		Theme:           "system",
	}
}

// Catalog returns the sample catalog served from the configured directory.
func (c AppConfig) Catalog() Catalog {
	return DefaultCatalog(c.CatalogDir)
}

// ApplyToSession copies the configured defaults into a session.
// This is used when starting a new session so it inherits the saved preferences.
func (c AppConfig) ApplyToSession(s *Session) {
	if c.RatePerSqFt > 0 {
		s.RatePerSqFt = c.RatePerSqFt
	}
	if c.DefaultUnit != "" {
		s.SetUnit(c.DefaultUnit)
	}
	if c.DefaultWidth > 0 {
		s.Width = c.DefaultWidth
	}
	if c.DefaultHeight > 0 {
		s.Height = c.DefaultHeight
	}
	s.SetQuantity(float64(c.DefaultQuantity))
}

// MaxPreviewWidth returns the configured preview width cap, or the default.
func (c AppConfig) MaxPreviewWidth() float64 {
	if c.PreviewMaxWidth <= 0 {
		return defaultPreviewMaxWidth
	}
	return c.PreviewMaxWidth
}

// AddRecentExport records an exported file, most recent first, capped at 10.
func (c *AppConfig) AddRecentExport(path string) {
	out := []string{path}
	for _, p := range c.RecentExports {
		if p != path && len(out) < 10 {
			out = append(out, p)
		}
	}
	c.RecentExports = out
}
