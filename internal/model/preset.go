package model

import (
	"time"

	"github.com/google/uuid"
)

// DesignPreset is a saved door size, catalog sample and placement that can be
// reapplied to a session. Uploaded artwork is not stored.
type DesignPreset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"created_at"`
	Unit      Unit           `json:"unit"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	SampleID  string         `json:"sample_id"`
	Placement PlacementState `json:"placement"`
}

// NewDesignPreset captures the session's door and design under name.
func NewDesignPreset(name string, s *Session) DesignPreset {
	return DesignPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Unit:      s.Unit,
		Width:     s.Width,
		Height:    s.Height,
		SampleID:  s.Artwork.SampleID,
		Placement: s.Placement,
	}
}

// ApplyTo loads the preset into s. The sample is only selected if it exists
// in catalog; otherwise the current artwork is kept.
func (p DesignPreset) ApplyTo(s *Session, catalog Catalog) {
	s.SetUnit(p.Unit)
	s.SetWidth(p.Width)
	s.SetHeight(p.Height)
	s.Placement = p.Placement.Normalized()
	if _, ok := catalog.Lookup(p.SampleID); ok {
		s.SelectSample(p.SampleID)
	}
}

// PresetStore holds a collection of design presets.
type PresetStore struct {
	Presets []DesignPreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []DesignPreset{},
	}
}

// Add adds a preset, replacing any existing preset with the same name.
func (ps *PresetStore) Add(p DesignPreset) {
	for i := range ps.Presets {
		if ps.Presets[i].Name == p.Name {
			ps.Presets[i] = p
			return
		}
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *DesignPreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names for UI dropdowns.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}

// FindByName returns a pointer to the preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *DesignPreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}
