package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/project"
)

// presetPath is where presets are stored; tests point it at a temp dir.
var presetPath = project.DefaultPresetPath

func (a *App) loadPresets() {
	store, err := project.LoadPresets(presetPath())
	if err != nil {
		a.log.Warn("saved designs unavailable", "err", err)
		store = model.NewPresetStore()
	}
	a.presets = store
}

// savePreset stores the current design under name.
func (a *App) savePreset(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name is empty")
	}
	a.presets.Add(model.NewDesignPreset(name, a.session))
	if err := project.SavePresets(presetPath(), a.presets); err != nil {
		return err
	}
	a.log.Info("design saved", "name", name)
	return nil
}

// applyPreset loads a saved design into the session as one undo step.
func (a *App) applyPreset(name string) bool {
	p := a.presets.FindByName(name)
	if p == nil {
		return false
	}
	a.recordChange("Diseño guardado", func() {
		p.ApplyTo(a.session, a.catalog)
	})
	a.refreshAll()
	return true
}

func (a *App) deletePreset(name string) error {
	p := a.presets.FindByName(name)
	if p == nil {
		return nil
	}
	a.presets.Remove(p.ID)
	return project.SavePresets(presetPath(), a.presets)
}

func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Ej. Puerta principal")

	d := dialog.NewForm("Guardar diseño", "Guardar", "Cancelar",
		[]*widget.FormItem{widget.NewFormItem("Nombre", nameEntry)},
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.savePreset(nameEntry.Text); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save design: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(380, 160))
	d.Show()
}

func (a *App) showPresetsDialog() {
	names := a.presets.Names()
	if len(names) == 0 {
		dialog.ShowInformation("Diseños guardados", "Todavía no has guardado ningún diseño.", a.window)
		return
	}

	selected := names[0]
	picker := widget.NewSelect(names, func(s string) { selected = s })
	picker.SetSelected(selected)

	deleteBtn := widget.NewButton("Eliminar", func() {
		if err := a.deletePreset(selected); err != nil {
			dialog.ShowError(fmt.Errorf("failed to delete design: %w", err), a.window)
			return
		}
		picker.Options = a.presets.Names()
		picker.ClearSelected()
		picker.Refresh()
	})

	d := dialog.NewForm("Diseños guardados", "Abrir", "Cerrar",
		[]*widget.FormItem{
			widget.NewFormItem("Diseño", picker),
			widget.NewFormItem("", deleteBtn),
		},
		func(ok bool) {
			if ok && selected != "" {
				a.applyPreset(selected)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(380, 200))
	d.Show()
}
