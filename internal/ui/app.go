package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/DecoraPuertas/internal/engine"
	"github.com/piwi3910/DecoraPuertas/internal/importer"
	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/money"
	"github.com/piwi3910/DecoraPuertas/internal/ui/widgets"
)

const thumbSize = 160

var artworkExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  model.AppConfig
	theme   *DecoraTheme
	log     *slog.Logger
	money   money.Formatter

	session *model.Session
	catalog model.Catalog
	history *History
	drag    *engine.Controller

	presets model.PresetStore

	sampleImages map[string]image.Image
	uploadImages map[*model.Upload]image.Image // Decoded uploads, nil when undecodable

	// UI references for dynamic updates
	door        *widgets.DoorPreview
	gallery     *widgets.CatalogGrid
	unitSelect  *widget.Select
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	qtyEntry    *widget.Entry
	sliders     []*placementSlider
	uploadNote  *widget.Label
	dpiNote     *widget.Label
	undoBtn     *ttwidget.Button
	redoBtn     *ttwidget.Button
	summary     summaryLabels

	// syncing is set while widgets are updated from the session so their
	// change callbacks do not feed back into it.
	syncing bool
	// pending is the state before a continuous edit (slider or drag),
	// pushed onto the history when the edit ends.
	pending *Snapshot
}

type summaryLabels struct {
	width, height, area, price *widget.Label
	formArea, formTotal        *widget.Label
	total, quantityNote        *widget.Label
	rateNote                   *widget.Label
	estimate                   *widget.Label
}

// placementSlider binds one slider to one placement field.
type placementSlider struct {
	name   string
	slider *widget.Slider
	label  *widget.Label
	get    func(model.PlacementState) float64
	set    func(model.PlacementState, float64) model.PlacementState
}

// NewApp creates the configurator for one session seeded from cfg.
func NewApp(fyneApp fyne.App, window fyne.Window, cfg model.AppConfig, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		fyneApp:      fyneApp,
		window:       window,
		config:       cfg,
		theme:        NewDecoraTheme(cfg.Theme),
		log:          logger,
		money:        money.DOP(),
		catalog:      cfg.Catalog(),
		history:      NewHistory(),
		uploadImages: make(map[*model.Upload]image.Image),
	}
	a.session = a.newSession()
	if fyneApp != nil {
		fyneApp.Settings().SetTheme(a.theme)
	}
	a.loadCatalogImages()
	a.loadPresets()
	return a
}

// Session returns the configurator state.
func (a *App) Session() *model.Session {
	return a.session
}

func (a *App) newSession() *model.Session {
	s := model.NewSession(a.catalog)
	a.config.ApplyToSession(s)
	return s
}

// loadCatalogImages decodes the sample artworks. A missing file leaves its
// tile without a picture.
func (a *App) loadCatalogImages() {
	a.sampleImages = make(map[string]image.Image, len(a.catalog.Samples))
	for _, s := range a.catalog.Samples {
		img, err := importer.LoadImage(a.catalog.Path(s))
		if err != nil {
			a.log.Warn("catalog sample unavailable", "sample", s.ID, "err", err)
			continue
		}
		a.sampleImages[s.ID] = img
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("Archivo",
		fyne.NewMenuItem("Nueva cotización", func() {
			a.newQuote()
		}),
		fyne.NewMenuItem("Subir diseño...", func() {
			a.showUploadDialog()
		}),
		fyne.NewMenuItem("Guardar diseño...", func() {
			a.showSavePresetDialog()
		}),
		fyne.NewMenuItem("Diseños guardados...", func() {
			a.showPresetsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exportar cotización (PDF)...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Exportar cotización (Excel)...", func() {
			a.exportXLSX()
		}),
		fyne.NewMenuItem("Exportar contorno de corte (DXF)...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItem("Imprimir etiquetas de producción...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItem("Exportaciones recientes...", func() {
			a.showRecentExports()
		}),
	)

	editMenu := fyne.NewMenu("Editar",
		fyne.NewMenuItem("Deshacer", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Rehacer", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Restablecer posición", func() {
			a.resetPlacement()
		}),
		fyne.NewMenuItem("Quitar diseño subido", func() {
			a.clearUpload()
		}),
	)

	settingsMenu := fyne.NewMenu("Ajustes",
		fyne.NewMenuItem("Preferencias...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Importar / Exportar datos...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Ayuda",
		fyne.NewMenuItem("Preguntas frecuentes", func() {
			a.showFAQDialog()
		}),
		fyne.NewMenuItem("Acerca de", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, settingsMenu, helpMenu))

	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"Acerca de DecoraPuertas",
		"DecoraPuertas: vinil adhesivo a la medida\n\n"+
			"Configura las medidas de tu puerta, elige o sube un diseño\n"+
			"y obtén el precio al instante.\n\n"+
			"Versión 1.0.0",
		a.window,
	)
}

func (a *App) showFAQDialog() {
	d := dialog.NewCustom("Preguntas frecuentes", "Cerrar", a.buildFAQ(), a.window)
	d.Resize(fyne.NewSize(520, 420))
	d.Show()
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.door = widgets.NewDoorPreview(float32(a.config.MaxPreviewWidth()))
	a.drag = engine.NewController(a.door)
	a.drag.OnStateChange = a.onDragStateChange
	a.door.OnPointer = a.handlePointer

	left := container.NewVBox(
		a.buildDimensionsPanel(),
		a.buildCatalogPanel(),
		a.buildPlacementPanel(),
		a.buildCheckoutBar(),
	)
	right := container.NewVBox(
		a.buildPreviewPanel(),
		panel("Preguntas frecuentes", a.buildFAQ()),
	)

	a.refreshAll()

	split := container.NewHSplit(container.NewVScroll(left), container.NewVScroll(right))
	split.SetOffset(0.45)
	return container.NewBorder(a.buildHeader(), nil, nil, nil, split)
}

// ─── Layout helpers ────────────────────────────────────────

func panel(title string, content ...fyne.CanvasObject) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return widget.NewCard("", "", container.NewVBox(append([]fyne.CanvasObject{heading}, content...)...))
}

func caption(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	l.Importance = widget.LowImportance
	return l
}

func boldLabel() *widget.Label {
	return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// statCard shows a small caption over a bold value on a rounded background.
func statCard(title string, value *widget.Label) fyne.CanvasObject {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = 10
	return container.NewStack(bg, container.NewPadded(container.NewVBox(caption(title), value)))
}

func (a *App) buildHeader() fyne.CanvasObject {
	logoBg := canvas.NewRectangle(theme.Color(theme.ColorNameForeground))
	logoBg.CornerRadius = 12
	logoText := canvas.NewText("DV", theme.Color(theme.ColorNameBackground))
	logoText.TextStyle = fyne.TextStyle{Bold: true}
	logo := container.NewGridWrap(fyne.NewSize(40, 40), container.NewStack(logoBg, container.NewCenter(logoText)))

	title := widget.NewLabelWithStyle("DecoraPuertas", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	tagline := caption(fmt.Sprintf("Vinil adhesivo a la medida, RD$ %.0f/ft²", a.session.RatePerSqFt))

	contact := widget.NewButton("Contactar", func() {
		dialog.ShowInformation("Contactar", "Escríbenos y te ayudamos con tu pedido.", a.window)
	})
	contact.Importance = widget.HighImportance

	return container.NewVBox(
		container.NewHBox(logo, container.NewVBox(title, tagline), layout.NewSpacer(), contact),
		widget.NewSeparator(),
	)
}

// ─── Dimensions Panel ──────────────────────────────────────

func (a *App) buildDimensionsPanel() fyne.CanvasObject {
	labels := make([]string, len(model.Units))
	for i, u := range model.Units {
		labels[i] = u.Label()
	}
	a.unitSelect = widget.NewSelect(labels, func(label string) {
		if a.syncing {
			return
		}
		a.session.SetUnit(model.UnitFromLabel(label))
		a.onDimensionsChanged()
	})

	a.widthEntry = a.numberEntry(func(v float64) { a.session.SetWidth(v) })
	a.heightEntry = a.numberEntry(func(v float64) { a.session.SetHeight(v) })
	a.qtyEntry = a.numberEntry(func(v float64) { a.session.SetQuantity(v) })

	a.summary.formArea = boldLabel()
	a.summary.formTotal = boldLabel()
	a.summary.rateNote = caption("")

	form := container.NewGridWithColumns(3,
		container.NewVBox(widget.NewLabel("Unidad"), a.unitSelect),
		container.NewVBox(widget.NewLabel("Ancho"), a.widthEntry),
		container.NewVBox(widget.NewLabel("Alto"), a.heightEntry),
	)
	totals := container.NewGridWithColumns(3,
		container.NewVBox(widget.NewLabel("Cantidad"), a.qtyEntry),
		statCard("Área estimada", a.summary.formArea),
		statCard("Precio total", a.summary.formTotal),
	)
	return panel("Dimensiones de tu puerta", form, totals, a.summary.rateNote)
}

// numberEntry returns an entry whose parsed value is passed to apply.
// Unparsable text counts as 0 and is never rejected.
func (a *App) numberEntry(apply func(float64)) *widget.Entry {
	e := widget.NewEntry()
	e.OnChanged = func(text string) {
		if a.syncing {
			return
		}
		apply(model.ParseMagnitude(text))
		a.onDimensionsChanged()
	}
	return e
}

func (a *App) onDimensionsChanged() {
	a.refreshSummary()
	a.refreshPlacement()
}

// ─── Catalog Panel ─────────────────────────────────────────

func (a *App) buildCatalogPanel() fyne.CanvasObject {
	thumbs := make(map[string]image.Image, len(a.sampleImages))
	for id, img := range a.sampleImages {
		thumbs[id] = importer.Thumbnail(img, thumbSize, thumbSize)
	}
	a.gallery = widgets.NewCatalogGrid(a.catalog.Samples, thumbs, a.selectSample, a.showUploadDialog)
	a.uploadNote = caption(uploadHint)
	a.dpiNote = caption("")
	a.dpiNote.Importance = widget.WarningImportance
	return panel("Elige un diseño o sube el tuyo", a.gallery, a.uploadNote, a.dpiNote)
}

func (a *App) selectSample(id string) {
	a.recordChange("Muestra", func() {
		a.session.SelectSample(id)
	})
	a.log.Info("sample selected", "sample", id)
	a.refreshArtwork()
}

func (a *App) showUploadDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.log.Warn("artwork dialog failed", "err", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		a.uploadArtwork(reader, reader.URI().Name())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(artworkExts))
	d.Show()
}

// uploadArtwork makes the artwork read from r active. A read failure is
// logged and leaves the current artwork unchanged.
func (a *App) uploadArtwork(r io.Reader, name string) {
	res, err := importer.ReadArtwork(r, name)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, importer.ErrNotImage) || errors.Is(err, importer.ErrEmpty) {
			level = slog.LevelWarn
		}
		a.log.Log(context.Background(), level, "artwork upload ignored", "file", name, "err", err)
		return
	}
	for _, w := range res.Warnings {
		a.log.Warn("artwork upload", "file", name, "warning", w)
	}

	a.recordChange("Subir diseño", func() {
		a.session.SetUpload(res.Upload)
	})
	a.uploadImages[a.session.Artwork.Upload] = res.Image
	a.log.Info("artwork uploaded", "file", name, "media_type", res.Upload.MediaType,
		"width", res.Upload.Width, "height", res.Upload.Height)
	a.refreshArtwork()
}

func (a *App) clearUpload() {
	if !a.session.Artwork.HasUpload() {
		return
	}
	a.recordChange("Quitar diseño", func() {
		a.session.Artwork = a.session.Artwork.ClearUpload()
	})
	a.refreshArtwork()
}

// artworkImage returns the decoded pixels of the active artwork, or nil.
func (a *App) artworkImage() image.Image {
	ref := a.session.ActiveArtwork()
	switch ref.Kind {
	case model.ArtworkSample:
		return a.sampleImages[ref.SampleID]
	case model.ArtworkUpload:
		if img, ok := a.uploadImages[ref.Upload]; ok {
			return img
		}
		img, err := importer.DecodeUpload(ref.Upload)
		if err != nil {
			a.log.Warn("upload preview unavailable", "file", ref.Upload.Name, "err", err)
		}
		a.uploadImages[ref.Upload] = img
		return img
	}
	return nil
}

// artworkAspect returns width/height of the active artwork, 1 when unknown.
func (a *App) artworkAspect() float64 {
	if img := a.artworkImage(); img != nil {
		b := img.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			return float64(b.Dx()) / float64(b.Dy())
		}
	}
	if ref := a.session.ActiveArtwork(); ref.Upload != nil {
		return ref.Upload.Aspect()
	}
	return 1
}

// artworkPixelWidth returns the active artwork width in pixels, 0 if unknown.
func (a *App) artworkPixelWidth() int {
	if img := a.artworkImage(); img != nil {
		return img.Bounds().Dx()
	}
	if ref := a.session.ActiveArtwork(); ref.Upload != nil {
		return ref.Upload.Width
	}
	return 0
}

// ─── Placement Panel ───────────────────────────────────────

func (a *App) buildPlacementPanel() fyne.CanvasObject {
	a.sliders = []*placementSlider{
		a.newPlacementSlider("Escala", model.MinScalePct, model.MaxScalePct,
			func(p model.PlacementState) float64 { return p.ScalePct }, model.PlacementState.SetScale),
		a.newPlacementSlider("Opacidad", model.MinOpacityPct, model.MaxOpacityPct,
			func(p model.PlacementState) float64 { return p.OpacityPct }, model.PlacementState.SetOpacity),
		a.newPlacementSlider("Posición X", model.MinOffsetPct, model.MaxOffsetPct,
			func(p model.PlacementState) float64 { return p.OffsetXPct }, model.PlacementState.SetOffsetX),
		a.newPlacementSlider("Posición Y", model.MinOffsetPct, model.MaxOffsetPct,
			func(p model.PlacementState) float64 { return p.OffsetYPct }, model.PlacementState.SetOffsetY),
	}

	grid := container.NewGridWithColumns(2)
	for _, ps := range a.sliders {
		grid.Add(container.NewVBox(ps.label, ps.slider))
	}

	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Deshacer", a.undo)
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Rehacer", a.redo)
	reset := newButtonWithTooltip("Restablecer", theme.ViewRefreshIcon(),
		"Centrar el diseño al 100% de escala y opacidad", a.resetPlacement)
	toolbar := container.NewHBox(a.undoBtn, a.redoBtn, layout.NewSpacer(), reset)

	return panel("Ajustes del diseño en la puerta", grid, caption(dragTip), toolbar)
}

func (a *App) newPlacementSlider(name string, lo, hi float64,
	get func(model.PlacementState) float64,
	set func(model.PlacementState, float64) model.PlacementState) *placementSlider {
	ps := &placementSlider{
		name:   name,
		slider: widget.NewSlider(lo, hi),
		label:  widget.NewLabel(""),
		get:    get,
		set:    set,
	}
	ps.slider.Step = 1
	ps.slider.OnChanged = func(v float64) {
		if a.syncing {
			return
		}
		a.beginChange(name)
		a.session.Placement = ps.set(a.session.Placement, v)
		a.refreshPlacement()
	}
	ps.slider.OnChangeEnded = func(float64) {
		if a.syncing {
			return
		}
		a.commitChange()
	}
	return ps
}

func (a *App) resetPlacement() {
	a.recordChange("Restablecer", a.session.ResetPlacement)
	a.refreshPlacement()
}

// ─── Dragging ──────────────────────────────────────────────

func (a *App) handlePointer(ev engine.PointerEvent) {
	before := a.session.Placement
	a.session.Placement = a.drag.Handle(a.session.Placement, ev)
	if a.session.Placement != before {
		a.refreshPlacement()
	}
}

// onDragStateChange opens and closes the history entry for a drag and keeps
// text selection off while dragging.
func (a *App) onDragStateChange(dragging bool) {
	a.log.Debug("drag state", "dragging", dragging)
	if dragging {
		a.beginChange("Arrastrar")
		a.window.Canvas().Unfocus()
		return
	}
	a.commitChange()
	a.refreshPlacement()
}

// ─── History ───────────────────────────────────────────────

// beginChange records the state before a continuous edit, once.
func (a *App) beginChange(label string) {
	if a.pending != nil {
		return
	}
	snap := MakeSnapshot(a.session, label)
	a.pending = &snap
}

// commitChange pushes the state recorded by beginChange if anything changed.
func (a *App) commitChange() {
	if a.pending == nil {
		return
	}
	if !a.pending.SameState(MakeSnapshot(a.session, "")) {
		a.history.Push(*a.pending)
	}
	a.pending = nil
	a.pruneUploadImages()
	a.refreshHistoryButtons()
}

// recordChange applies a discrete edit and records it for undo.
func (a *App) recordChange(label string, apply func()) {
	a.commitChange()
	before := MakeSnapshot(a.session, label)
	apply()
	if !before.SameState(MakeSnapshot(a.session, "")) {
		a.history.Push(before)
	}
	a.pruneUploadImages()
	a.refreshHistoryButtons()
}

// pruneUploadImages drops decoded uploads that neither the session nor the
// history can bring back.
func (a *App) pruneUploadImages() {
	live := a.history.Uploads()
	live[a.session.Artwork.Upload] = true
	if a.pending != nil {
		live[a.pending.Artwork.Upload] = true
	}
	for u := range a.uploadImages {
		if !live[u] {
			delete(a.uploadImages, u)
		}
	}
}

func (a *App) undo() {
	a.commitChange()
	snap, ok := a.history.Undo(MakeSnapshot(a.session, "Deshacer"))
	if !ok {
		return
	}
	a.drag.Cancel()
	snap.Apply(a.session)
	a.log.Debug("undo", "label", snap.Label)
	a.refreshArtwork()
}

func (a *App) redo() {
	a.commitChange()
	snap, ok := a.history.Redo(MakeSnapshot(a.session, "Rehacer"))
	if !ok {
		return
	}
	a.drag.Cancel()
	snap.Apply(a.session)
	a.log.Debug("redo", "label", snap.Label)
	a.refreshArtwork()
}

func (a *App) refreshHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	setEnabled(a.undoBtn, a.history.CanUndo())
	setEnabled(a.redoBtn, a.history.CanRedo())
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

// newQuote starts over with the configured defaults.
func (a *App) newQuote() {
	a.drag.Cancel()
	a.pending = nil
	a.history.Clear()
	a.uploadImages = make(map[*model.Upload]image.Image)
	a.session = a.newSession()
	a.log.Info("new session", "session", a.session.ID)
	a.refreshAll()
}

// ─── Preview Panel ─────────────────────────────────────────

func (a *App) buildPreviewPanel() fyne.CanvasObject {
	a.summary.width = boldLabel()
	a.summary.height = boldLabel()
	a.summary.area = boldLabel()
	a.summary.price = boldLabel()
	a.summary.total = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.summary.quantityNote = caption("")

	cards := container.NewGridWithColumns(2,
		statCard("Ancho", a.summary.width),
		statCard("Alto", a.summary.height),
		statCard("Área", a.summary.area),
		statCard("Precio", a.summary.price),
	)

	buy := widget.NewButton("Continuar compra", a.notAvailable)
	checkout := widget.NewCard("", "", container.NewVBox(
		caption(readyToOrder),
		a.summary.total,
		a.summary.quantityNote,
		container.NewCenter(buy),
	))

	specs := container.NewVBox(widget.NewLabelWithStyle("Especificaciones", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, s := range Specifications {
		specs.Add(caption("• " + s))
	}

	door := container.NewVBox(a.door, caption(aspectNote))
	side := container.NewVBox(cards, checkout, widget.NewCard("", "", specs))
	return panel("Preview en tu puerta", container.NewGridWithColumns(2, door, side))
}

func (a *App) buildCheckoutBar() fyne.CanvasObject {
	a.summary.estimate = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	cart := widget.NewButton("Agregar al carrito", a.notAvailable)
	cart.Importance = widget.HighImportance
	install := widget.NewButton("Solicitar instalación", a.notAvailable)

	return widget.NewCard("", "", container.NewHBox(
		container.NewVBox(widget.NewLabel("Total estimado"), a.summary.estimate),
		layout.NewSpacer(),
		container.NewVBox(layout.NewSpacer(), container.NewHBox(cart, install), layout.NewSpacer()),
	))
}

// notAvailable backs the storefront buttons, which have no checkout behind them.
func (a *App) notAvailable() {
	dialog.ShowInformation("DecoraPuertas",
		"Exporta tu cotización desde el menú Archivo y envíala a la tienda para completar tu pedido.", a.window)
}

func (a *App) buildFAQ() fyne.CanvasObject {
	items := make([]*widget.AccordionItem, 0, len(FAQ))
	for _, e := range FAQ {
		answer := widget.NewLabel(e.Answer)
		answer.Wrapping = fyne.TextWrapWord
		items = append(items, widget.NewAccordionItem(e.Question, answer))
	}
	return widget.NewAccordion(items...)
}

// ─── Refresh ───────────────────────────────────────────────

// refreshAll copies the whole session into the widgets.
func (a *App) refreshAll() {
	a.syncing = true
	a.unitSelect.SetSelected(a.session.Unit.Label())
	a.widthEntry.SetText(formatRaw(a.session.Width))
	a.heightEntry.SetText(formatRaw(a.session.Height))
	a.qtyEntry.SetText(fmt.Sprintf("%d", a.session.Quantity))
	a.syncing = false

	a.refreshSummary()
	a.refreshArtwork()
}

// refreshArtwork updates the catalog highlight, then the preview.
func (a *App) refreshArtwork() {
	var thumb image.Image
	if a.session.Artwork.HasUpload() {
		thumb = importer.Thumbnail(a.artworkImage(), thumbSize, thumbSize)
		a.uploadNote.Show()
	} else {
		a.uploadNote.Hide()
	}
	a.gallery.SetSelection(a.session.Artwork, thumb)
	a.refreshPlacement()
}

func (a *App) refreshSummary() {
	sum := BuildSummary(a.session, a.money)
	a.summary.width.SetText(sum.Width)
	a.summary.height.SetText(sum.Height)
	a.summary.area.SetText(sum.Area)
	a.summary.price.SetText(sum.Price)
	a.summary.total.SetText(sum.Total)
	a.summary.quantityNote.SetText(sum.QuantityNote)
	a.summary.formArea.SetText(sum.Area)
	a.summary.formTotal.SetText(a.money.Format(a.session.Quote().Total))
	a.summary.estimate.SetText(a.money.Format(a.session.Quote().Total))
	a.summary.rateNote.SetText(sum.RateNote)
}

// refreshPlacement redraws the door and syncs the sliders.
func (a *App) refreshPlacement() {
	pv := engine.ComposeSession(a.session, a.drag.Dragging())
	a.door.SetPreview(pv, a.artworkImage())

	a.syncing = true
	for _, ps := range a.sliders {
		v := ps.get(a.session.Placement)
		ps.slider.SetValue(v)
		ps.label.SetText(sliderLabel(ps.name, v))
	}
	a.syncing = false

	if w := ResolutionWarning(a.session, a.artworkPixelWidth()); w != "" && a.session.Artwork.HasUpload() {
		a.dpiNote.SetText(w)
		a.dpiNote.Show()
	} else {
		a.dpiNote.Hide()
	}
	a.refreshHistoryButtons()
}
