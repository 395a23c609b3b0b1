package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArtworkKind tells whether the active artwork comes from the catalog or an upload.
type ArtworkKind int

const (
	ArtworkNone   ArtworkKind = iota // Nothing selected
	ArtworkSample                    // One of the catalog samples
	ArtworkUpload                    // A file uploaded by the buyer
)

func (k ArtworkKind) String() string {
	switch k {
	case ArtworkSample:
		return "Sample"
	case ArtworkUpload:
		return "Upload"
	default:
		return "None"
	}
}

// Sample is one catalog artwork.
type Sample struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	File  string `json:"file"` // File name relative to the catalog directory
}

// Catalog is the fixed, ordered list of sample artworks.
type Catalog struct {
	Dir     string   `json:"dir"`
	Samples []Sample `json:"samples"`
}

// DefaultCatalog returns the five stock samples served from dir.
func DefaultCatalog(dir string) Catalog {
	samples := make([]Sample, 0, 5)
	for i := 1; i <= 5; i++ {
		samples = append(samples, Sample{
			ID:    fmt.Sprintf("sample-%d", i),
			Label: fmt.Sprintf("Muestra %d", i),
			File:  fmt.Sprintf("%d.png", i),
		})
	}
	return Catalog{Dir: dir, Samples: samples}
}

// Lookup returns the sample with the given ID.
func (c Catalog) Lookup(id string) (Sample, bool) {
	for _, s := range c.Samples {
		if s.ID == id {
			return s, true
		}
	}
	return Sample{}, false
}

// Path resolves a sample's file inside the catalog directory.
func (c Catalog) Path(s Sample) string {
	return filepath.Join(c.Dir, s.File)
}

// First returns the ID of the first sample, or "" for an empty catalog.
func (c Catalog) First() string {
	if len(c.Samples) == 0 {
		return ""
	}
	return c.Samples[0].ID
}

// Upload is artwork read from a buyer's file, held in memory as a data URI.
type Upload struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	DataURI   string `json:"-"`
	Width     int    `json:"width"`  // Pixel width, 0 if unknown
	Height    int    `json:"height"` // Pixel height, 0 if unknown
}

// Aspect returns width/height of the upload, or 1 when unknown.
func (u Upload) Aspect() float64 {
	if u.Width <= 0 || u.Height <= 0 {
		return 1
	}
	return float64(u.Width) / float64(u.Height)
}

// ArtworkRef identifies the artwork to render.
type ArtworkRef struct {
	Kind     ArtworkKind `json:"kind"`
	SampleID string      `json:"sample_id,omitempty"`
	Upload   *Upload     `json:"upload,omitempty"`
}

// Source returns a stable reference string: the sample ID or the data URI.
func (r ArtworkRef) Source() string {
	switch r.Kind {
	case ArtworkSample:
		return r.SampleID
	case ArtworkUpload:
		if r.Upload != nil {
			return r.Upload.DataURI
		}
	}
	return ""
}

// Describe returns a short label for summaries and exports. Data URIs are never
// included since they can be megabytes long.
func (r ArtworkRef) Describe() string {
	switch r.Kind {
	case ArtworkSample:
		return r.SampleID
	case ArtworkUpload:
		if r.Upload != nil && r.Upload.Name != "" {
			return r.Upload.Name
		}
		return "upload"
	default:
		return "-"
	}
}

// ArtworkSelection tracks the chosen catalog sample and the optional upload.
// The upload, when present, is the active artwork.
type ArtworkSelection struct {
	SampleID string  `json:"sample_id"`
	Upload   *Upload `json:"-"`
}

// SelectSample activates a catalog sample and discards any upload.
func (s ArtworkSelection) SelectSample(id string) ArtworkSelection {
	return ArtworkSelection{SampleID: id}
}

// SetUpload activates an uploaded artwork, replacing any previous upload.
// A nil or empty upload leaves the selection unchanged.
func (s ArtworkSelection) SetUpload(u *Upload) ArtworkSelection {
	if u == nil || u.DataURI == "" {
		return s
	}
	cp := *u
	s.Upload = &cp
	return s
}

// ClearUpload drops the upload and falls back to the remembered sample.
func (s ArtworkSelection) ClearUpload() ArtworkSelection {
	s.Upload = nil
	return s
}

// Active returns the artwork currently shown on the door.
func (s ArtworkSelection) Active() ArtworkRef {
	if s.Upload != nil {
		return ArtworkRef{Kind: ArtworkUpload, Upload: s.Upload}
	}
	if s.SampleID != "" {
		return ArtworkRef{Kind: ArtworkSample, SampleID: s.SampleID}
	}
	return ArtworkRef{Kind: ArtworkNone}
}

// IsSampleActive reports whether the given sample is the highlighted one.
func (s ArtworkSelection) IsSampleActive(id string) bool {
	return s.Upload == nil && s.SampleID == id
}

// HasUpload reports whether an uploaded artwork is active.
func (s ArtworkSelection) HasUpload() bool {
	return s.Upload != nil
}

// IsImageMediaType reports whether a MIME type is an image/* type.
func IsImageMediaType(mt string) bool {
	return strings.HasPrefix(strings.ToLower(mt), "image/")
}

// RecommendedDPI is the minimum print resolution suggested to buyers.
const RecommendedDPI = 150.0

// EffectiveDPI returns the print resolution of artwork pixelWidth pixels wide
// when scaled to scalePct of a door doorWidthFt wide. 0 when unknown.
func EffectiveDPI(pixelWidth int, doorWidthFt, scalePct float64) float64 {
	printedIn := doorWidthFt * inchesPerFoot * scalePct / 100
	if pixelWidth <= 0 || printedIn <= 0 {
		return 0
	}
	return float64(pixelWidth) / printedIn
}
