package widgets

import (
	"image"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DecoraPuertas/internal/engine"
)

// Door frame geometry in canvas units.
const (
	frameInset    = 8
	panelBorder   = 4
	handleWidth   = 8
	handleHeight  = 48
	handleMargin  = 16
	minDoorWidth  = 240
	maxDoorHeight = 560

	// TransitionDuration eases placement changes made outside a drag.
	TransitionDuration = 100 * time.Millisecond
)

var (
	frameColor  = color.NRGBA{R: 212, G: 212, B: 212, A: 255}
	borderColor = color.NRGBA{R: 163, G: 163, B: 163, A: 255}
	handleColor = color.NRGBA{R: 163, G: 163, B: 163, A: 255}
)

// DoorPreview draws a door with its frame and handle and the decal surface
// inside. Mouse input on the surface is reported as engine pointer events in
// surface-relative coordinates.
type DoorPreview struct {
	widget.BaseWidget

	shown    engine.Preview // Currently drawn, eased toward target
	target   engine.Preview
	artwork  image.Image
	maxWidth float32
	anim     *fyne.Animation

	surfacePos  fyne.Position
	surfaceSize fyne.Size
	lastPos     fyne.Position
	pressed     bool // Primary button went down on the surface

	// OnPointer receives every pointer event on the decal surface.
	OnPointer func(ev engine.PointerEvent)
}

// NewDoorPreview creates a preview no wider than maxWidth.
func NewDoorPreview(maxWidth float32) *DoorPreview {
	d := &DoorPreview{maxWidth: maxWidth}
	d.ExtendBaseWidget(d)
	return d
}

// SetPreview updates what is drawn. Placement changes are eased when
// p.Transitions is set and the artwork is unchanged.
func (d *DoorPreview) SetPreview(p engine.Preview, artwork image.Image) {
	if d.anim != nil {
		d.anim.Stop()
		d.anim = nil
	}
	from := d.shown
	sameArt := d.artwork == artwork && from.Background == p.Background
	d.target = p
	d.artwork = artwork

	if !p.Transitions || !sameArt || from == (engine.Preview{}) {
		d.shown = p
		d.Refresh()
		return
	}

	d.anim = fyne.NewAnimation(TransitionDuration, func(f float32) {
		d.shown = tween(from, p, float64(f))
		d.Refresh()
	})
	d.anim.Curve = fyne.AnimationEaseOut
	d.anim.Start()
}

// Preview returns the preview the widget is moving toward.
func (d *DoorPreview) Preview() engine.Preview {
	return d.target
}

// SurfaceSize reports the current decal surface size, sampled by the drag
// controller at pointer-down.
func (d *DoorPreview) SurfaceSize() (float64, float64) {
	return float64(d.surfaceSize.Width), float64(d.surfaceSize.Height)
}

// tween interpolates the placement fields; aspect ratio and artwork snap.
func tween(from, to engine.Preview, t float64) engine.Preview {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	out := to
	out.FitSizePct = lerp(from.FitSizePct, to.FitSizePct)
	out.AnchorXPct = lerp(from.AnchorXPct, to.AnchorXPct)
	out.AnchorYPct = lerp(from.AnchorYPct, to.AnchorYPct)
	out.Opacity = lerp(from.Opacity, to.Opacity)
	return out
}

func (d *DoorPreview) inSurface(pos fyne.Position) bool {
	return pos.X >= d.surfacePos.X && pos.Y >= d.surfacePos.Y &&
		pos.X <= d.surfacePos.X+d.surfaceSize.Width &&
		pos.Y <= d.surfacePos.Y+d.surfaceSize.Height
}

func (d *DoorPreview) emit(kind engine.PointerKind, pos fyne.Position) {
	d.lastPos = pos
	if d.OnPointer == nil {
		return
	}
	d.OnPointer(engine.PointerEvent{
		Kind: kind,
		X:    float64(pos.X - d.surfacePos.X),
		Y:    float64(pos.Y - d.surfacePos.Y),
	})
}

// MouseDown starts a drag when the primary button goes down on the surface.
func (d *DoorPreview) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !d.inSurface(ev.Position) {
		return
	}
	d.pressed = true
	d.emit(engine.PointerDown, ev.Position)
}

func (d *DoorPreview) MouseUp(ev *desktop.MouseEvent) {
	d.pressed = false
	d.emit(engine.PointerUp, ev.Position)
}

func (d *DoorPreview) MouseIn(*desktop.MouseEvent) {}

func (d *DoorPreview) MouseMoved(ev *desktop.MouseEvent) {
	d.move(ev.Position)
}

func (d *DoorPreview) MouseOut() {
	d.pressed = false
	d.emit(engine.PointerLeave, d.lastPos)
}

// Dragged forwards motion while the button is held.
func (d *DoorPreview) Dragged(ev *fyne.DragEvent) {
	d.move(ev.Position)
}

func (d *DoorPreview) DragEnd() {
	d.pressed = false
	d.emit(engine.PointerUp, d.lastPos)
}

// move reports motion, or a leave once a press wanders off the surface onto
// the frame or the margins around the door.
func (d *DoorPreview) move(pos fyne.Position) {
	if d.pressed && !d.inSurface(pos) {
		d.pressed = false
		d.emit(engine.PointerLeave, pos)
		return
	}
	d.emit(engine.PointerMove, pos)
}

func (d *DoorPreview) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (d *DoorPreview) CreateRenderer() fyne.WidgetRenderer {
	r := &doorPreviewRenderer{
		dp:     d,
		frame:  canvas.NewRectangle(frameColor),
		panel:  canvas.NewRectangle(color.Transparent),
		handle: canvas.NewRectangle(handleColor),
	}
	r.panel.StrokeColor = borderColor
	r.panel.StrokeWidth = panelBorder
	r.panel.CornerRadius = 4
	r.frame.CornerRadius = 8
	r.handle.CornerRadius = handleWidth / 2
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return d.shown.Render(d.artwork, w, h)
	})
	r.objects = []fyne.CanvasObject{r.frame, r.raster, r.panel, r.handle}
	return r
}

type doorPreviewRenderer struct {
	dp      *DoorPreview
	frame   *canvas.Rectangle
	panel   *canvas.Rectangle
	handle  *canvas.Rectangle
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

// Layout fits the door to the preview's aspect ratio inside size, capped at
// the widget's max width, and centers it horizontally.
func (r *doorPreviewRenderer) Layout(size fyne.Size) {
	maxW := float64(size.Width)
	if r.dp.maxWidth > 0 {
		maxW = math.Min(maxW, float64(r.dp.maxWidth))
	}
	w, h := r.dp.shown.SurfaceSize(maxW, float64(size.Height))
	doorW, doorH := float32(w), float32(h)
	origin := fyne.NewPos((size.Width-doorW)/2, 0)

	r.frame.Move(origin)
	r.frame.Resize(fyne.NewSize(doorW, doorH))

	panelPos := origin.AddXY(frameInset, frameInset)
	panelSize := fyne.NewSize(max(doorW-2*frameInset, 0), max(doorH-2*frameInset, 0))
	r.panel.Move(panelPos)
	r.panel.Resize(panelSize)

	surfacePos := panelPos.AddXY(panelBorder, panelBorder)
	surfaceSize := fyne.NewSize(max(panelSize.Width-2*panelBorder, 0), max(panelSize.Height-2*panelBorder, 0))
	r.raster.Move(surfacePos)
	r.raster.Resize(surfaceSize)
	r.dp.surfacePos = surfacePos
	r.dp.surfaceSize = surfaceSize

	r.handle.Resize(fyne.NewSize(handleWidth, handleHeight))
	r.handle.Move(fyne.NewPos(
		panelPos.X+panelSize.Width-handleMargin-handleWidth,
		panelPos.Y+(panelSize.Height-handleHeight)/2,
	))
}

func (r *doorPreviewRenderer) MinSize() fyne.Size {
	ar := r.dp.shown.AspectRatio
	if ar <= 0 {
		ar = 1
	}
	w := float32(minDoorWidth)
	h := min(max(w/float32(ar), 120), maxDoorHeight)
	return fyne.NewSize(w, h)
}

func (r *doorPreviewRenderer) Refresh() {
	r.Layout(r.dp.Size())
	r.frame.Refresh()
	r.panel.Refresh()
	r.handle.Refresh()
	r.raster.Refresh()
}

func (r *doorPreviewRenderer) Destroy() {
	if r.dp.anim != nil {
		r.dp.anim.Stop()
	}
}

func (r *doorPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
