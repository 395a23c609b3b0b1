package model

import (
	"testing"
)

func TestNewDesignPreset(t *testing.T) {
	s := NewSession(DefaultCatalog(""))
	s.SelectSample("sample-3")
	s.Placement = s.Placement.SetScale(140).SetOffset(20, 80)

	p := NewDesignPreset("Puerta principal", s)

	if p.Name != "Puerta principal" {
		t.Errorf("expected name 'Puerta principal', got %q", p.Name)
	}
	if p.ID == "" {
		t.Error("expected non-empty ID")
	}
	if p.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if p.SampleID != "sample-3" {
		t.Errorf("expected sample-3, got %q", p.SampleID)
	}
	if p.Width != 36 || p.Height != 74 || p.Unit != UnitInch {
		t.Errorf("unexpected door %v x %v %s", p.Width, p.Height, p.Unit)
	}
	if p.Placement.ScalePct != 140 {
		t.Errorf("expected scale 140, got %v", p.Placement.ScalePct)
	}
}

func TestDesignPresetApplyTo(t *testing.T) {
	catalog := DefaultCatalog("")
	src := NewSession(catalog)
	src.SetUnit(UnitCentimeter)
	src.SetWidth(80)
	src.SetHeight(200)
	src.SelectSample("sample-2")
	src.Placement = src.Placement.SetOpacity(70)
	p := NewDesignPreset("cm", src)

	dst := NewSession(catalog)
	dst.SetQuantity(3)
	dst.SetUpload(&Upload{Name: "x.png", DataURI: "data:image/png;base64,AA=="})
	p.ApplyTo(dst, catalog)

	if dst.Unit != UnitCentimeter || dst.Width != 80 || dst.Height != 200 {
		t.Errorf("door not applied: %v x %v %s", dst.Width, dst.Height, dst.Unit)
	}
	if dst.Quantity != 3 {
		t.Errorf("quantity should be kept, got %d", dst.Quantity)
	}
	if dst.Artwork.HasUpload() || dst.Artwork.SampleID != "sample-2" {
		t.Errorf("expected sample-2 selected, got %+v", dst.Artwork)
	}
	if dst.Placement.OpacityPct != 70 {
		t.Errorf("expected opacity 70, got %v", dst.Placement.OpacityPct)
	}
}

func TestDesignPresetApplyToUnknownSample(t *testing.T) {
	catalog := DefaultCatalog("")
	s := NewSession(catalog)
	p := DesignPreset{Unit: UnitFoot, Width: 3, Height: 7, SampleID: "sample-99",
		Placement: PlacementState{ScalePct: 500, OpacityPct: 10, OffsetXPct: -5, OffsetYPct: 50}}

	p.ApplyTo(s, catalog)
	if s.Artwork.SampleID != "sample-1" {
		t.Errorf("unknown sample should keep current artwork, got %q", s.Artwork.SampleID)
	}
	want := PlacementState{ScalePct: 200, OpacityPct: 50, OffsetXPct: 0, OffsetYPct: 50}
	if s.Placement != want {
		t.Errorf("expected clamped placement %+v, got %+v", want, s.Placement)
	}
}

func TestPresetStore_AddRemove(t *testing.T) {
	store := NewPresetStore()

	a := DesignPreset{ID: "a", Name: "Alpha"}
	b := DesignPreset{ID: "b", Name: "Beta"}
	store.Add(a)
	store.Add(b)

	if len(store.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(store.Presets))
	}
	if !store.Remove("a") {
		t.Error("expected Remove to return true")
	}
	if store.Remove("nonexistent") {
		t.Error("expected Remove to return false for nonexistent ID")
	}
	if len(store.Presets) != 1 || store.Presets[0].Name != "Beta" {
		t.Errorf("unexpected presets after remove: %+v", store.Presets)
	}
}

func TestPresetStore_AddReplacesSameName(t *testing.T) {
	store := NewPresetStore()
	store.Add(DesignPreset{ID: "1", Name: "Casa", Width: 30})
	store.Add(DesignPreset{ID: "2", Name: "Casa", Width: 36})

	if len(store.Presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(store.Presets))
	}
	if store.Presets[0].Width != 36 {
		t.Errorf("expected replaced width 36, got %v", store.Presets[0].Width)
	}
}

func TestPresetStore_Find(t *testing.T) {
	store := NewPresetStore()
	store.Add(DesignPreset{ID: "x1", Name: "Oficina"})

	if p := store.FindByID("x1"); p == nil || p.Name != "Oficina" {
		t.Errorf("FindByID failed: %+v", p)
	}
	if store.FindByID("nope") != nil {
		t.Error("expected nil for unknown ID")
	}
	if p := store.FindByName("Oficina"); p == nil || p.ID != "x1" {
		t.Errorf("FindByName failed: %+v", p)
	}
	if store.FindByName("nope") != nil {
		t.Error("expected nil for unknown name")
	}
	names := store.Names()
	if len(names) != 1 || names[0] != "Oficina" {
		t.Errorf("unexpected names %v", names)
	}
}
