package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DecoraPuertas/internal/engine"
	"github.com/piwi3910/DecoraPuertas/internal/export"
)

// previewExportWidth is the pixel width of the door image embedded in exports.
const previewExportWidth = 420

// exportFileName builds the suggested file name for a session export.
func exportFileName(sessionID, suffix, ext string) string {
	name := "decorapuertas"
	if sessionID != "" {
		name += "-" + sessionID
	}
	if suffix != "" {
		name += "-" + suffix
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// quoteSheet snapshots the session with a freshly rendered door preview.
func (a *App) quoteSheet() export.QuoteSheet {
	pv := engine.ComposeSession(a.session, false)
	w, h := pv.SurfaceSize(previewExportWidth, 0)
	preview := pv.Render(a.artworkImage(), int(w), int(h))
	return export.NewQuoteSheet(a.session, preview, a.artworkAspect())
}

func (a *App) exportPDF() {
	a.exportFile("pdf", exportFileName(a.session.ID, "cotizacion", "pdf"), func(path string, q export.QuoteSheet) error {
		return export.ExportPDF(path, q, a.money)
	})
}

func (a *App) exportXLSX() {
	a.exportFile("xlsx", exportFileName(a.session.ID, "cotizacion", "xlsx"), func(path string, q export.QuoteSheet) error {
		return export.ExportXLSX(path, q, a.money)
	})
}

func (a *App) exportDXF() {
	a.exportFile("dxf", exportFileName(a.session.ID, "corte", "dxf"), export.ExportDXF)
}

func (a *App) exportLabels() {
	if a.session.Quantity > export.MaxLabels {
		dialog.ShowError(fmt.Errorf("se pueden imprimir hasta %d etiquetas por pedido", export.MaxLabels), a.window)
		return
	}
	a.exportFile("labels", exportFileName(a.session.ID, "etiquetas", "pdf"), export.ExportLabels)
}

// exportFile asks for a destination and writes the current quote there.
func (a *App) exportFile(kind, defaultName string, write func(path string, q export.QuoteSheet) error) {
	q := a.quoteSheet()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.writeExport(kind, path, q, write); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Exportación completa",
			fmt.Sprintf("Archivo guardado en:\n%s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// writeExport runs write and records path in the recent exports.
func (a *App) writeExport(kind, path string, q export.QuoteSheet, write func(string, export.QuoteSheet) error) error {
	if err := write(path, q); err != nil {
		a.log.Error("export failed", "kind", kind, "path", path, "err", err)
		return fmt.Errorf("failed to export %s: %w", kind, err)
	}
	a.log.Info("export complete", "kind", kind, "path", path, "session", q.SessionID, "total", q.Quote.Total)

	a.config.AddRecentExport(path)
	if err := a.saveConfig(); err != nil {
		a.log.Warn("failed to save recent exports", "err", err)
	}
	return nil
}

func (a *App) showRecentExports() {
	if len(a.config.RecentExports) == 0 {
		dialog.ShowInformation("Exportaciones recientes", "Todavía no has exportado ninguna cotización.", a.window)
		return
	}
	list := container.NewVBox()
	for _, p := range a.config.RecentExports {
		l := widget.NewLabel(filepath.Base(p))
		list.Add(container.NewVBox(l, caption(filepath.Dir(p))))
	}
	d := dialog.NewCustom("Exportaciones recientes", "Cerrar", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(480, 360))
	d.Show()
}
