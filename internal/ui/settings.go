package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(formatRaw(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	unitLabels := make([]string, len(model.Units))
	for i, u := range model.Units {
		unitLabels[i] = u.Label()
	}
	unitSelect := widget.NewSelect(unitLabels, func(selected string) {
		cfg.DefaultUnit = model.UnitFromLabel(selected)
	})
	unitSelect.SetSelected(model.ParseUnit(string(cfg.DefaultUnit)).Label())

	themeSelect := widget.NewSelect(ThemeNames, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	catalogEntry := widget.NewEntry()
	catalogEntry.SetText(cfg.CatalogDir)
	catalogEntry.OnChanged = func(text string) {
		cfg.CatalogDir = text
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Tema", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Precio por pie² (RD$)", floatEntry(&cfg.RatePerSqFt)),
		widget.NewFormItem("Unidad por defecto", unitSelect),
		widget.NewFormItem("Ancho por defecto", floatEntry(&cfg.DefaultWidth)),
		widget.NewFormItem("Alto por defecto", floatEntry(&cfg.DefaultHeight)),
		widget.NewFormItem("Cantidad por defecto", intEntry(&cfg.DefaultQuantity)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Carpeta de muestras", catalogEntry),
		widget.NewFormItem("Ancho máximo del preview (px)", floatEntry(&cfg.PreviewMaxWidth)),
	}

	d := dialog.NewForm("Preferencias", "Guardar", "Cancelar", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.applyConfig(cfg); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Preferencias guardadas",
					"Los valores por defecto se aplican a la próxima cotización nueva.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 520))
	d.Show()
}

// applyConfig validates, stores and persists cfg. Rate changes take effect
// on the open session; other defaults wait for the next new quote.
func (a *App) applyConfig(cfg model.AppConfig) error {
	if cfg.RatePerSqFt <= 0 {
		return fmt.Errorf("rate must be positive, got %v", cfg.RatePerSqFt)
	}
	catalogChanged := cfg.CatalogDir != a.config.CatalogDir
	a.config = cfg
	a.theme.SetThemeName(cfg.Theme)
	if a.fyneApp != nil {
		a.fyneApp.Settings().SetTheme(a.theme)
	}
	a.session.RatePerSqFt = cfg.RatePerSqFt
	if catalogChanged {
		a.catalog = cfg.Catalog()
		a.loadCatalogImages()
	}
	if a.summary.total != nil {
		a.refreshSummary()
		a.refreshPlacement()
	}
	a.log.Info("settings updated", "rate", cfg.RatePerSqFt, "theme", cfg.Theme)
	return a.saveConfig()
}

// showImportExportDialog displays the backup import/export dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Exportar todos los datos...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.presets); err != nil {
				a.log.Error("backup export failed", "path", path, "err", err)
				dialog.ShowError(err, a.window)
			} else {
				a.log.Info("backup exported", "path", path)
				dialog.ShowInformation("Exportación completa",
					fmt.Sprintf("Datos exportados a:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("decorapuertas-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Importar datos...", func() {
		dialog.ShowConfirm("Importar datos",
			"Importar reemplazará tus preferencias actuales.\n\n¿Deseas continuar?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						a.log.Error("backup import failed", "path", path, "err", err)
						dialog.ShowError(err, a.window)
						return
					}
					a.presets = backup.Presets
					if err := project.SavePresets(presetPath(), a.presets); err != nil {
						a.log.Warn("failed to save imported designs", "err", err)
					}
					if err := a.applyConfig(backup.Config); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Importación completa",
						fmt.Sprintf("Datos importados de la copia creada el %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Exporta tus preferencias y diseños guardados a un archivo de respaldo,\no importa un respaldo exportado anteriormente."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Importar / Exportar datos", "Cerrar", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// configPath is where saveConfig writes; tests point it at a temp dir.
var configPath = project.DefaultConfigPath

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(configPath(), a.config)
}
