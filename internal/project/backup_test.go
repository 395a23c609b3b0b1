package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DecoraPuertas/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.RatePerSqFt = 110
	cfg.Theme = "dark"
	presets := model.NewPresetStore()
	presets.Add(model.DesignPreset{ID: "p1", Name: "Entrada", SampleID: "sample-2"})

	if err := ExportAllData(path, cfg, presets); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.RatePerSqFt != 110 {
		t.Errorf("expected RatePerSqFt=110, got %f", backup.Config.RatePerSqFt)
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", backup.Config.Theme)
	}
	if len(backup.Presets.Presets) != 1 || backup.Presets.Presets[0].Name != "Entrada" {
		t.Errorf("expected preset Entrada, got %+v", backup.Presets.Presets)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"theme":"dark"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	if err := ExportAllData(path, cfg, model.NewPresetStore()); err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataNilRecentExports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2025-01-01T00:00:00Z","config":{"recent_exports":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentExports == nil {
		t.Error("RecentExports should not be nil after import")
	}
	if backup.Config.RatePerSqFt != model.DefaultRatePerSqFt {
		t.Errorf("missing rate should keep the default, got %f", backup.Config.RatePerSqFt)
	}
}

func TestImportAllDataNegativeRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := []byte(`{"version":"1.0.0","config":{"rate_per_sqft":-5}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestImportAllDataWithoutPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	content := `{"version": "1.0.0", "created_at": "2026-01-01T00:00:00Z", "config": {"rate_per_sqft": 99}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backup.Presets.Presets == nil {
		t.Error("expected non-nil presets for a backup without presets")
	}
	if backup.Config.PreviewMaxWidth != 420 {
		t.Errorf("expected default preview width, got %v", backup.Config.PreviewMaxWidth)
	}
}
