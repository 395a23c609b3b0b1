// Package engine implements the design placement engine: the pointer drag
// state machine that moves artwork over the door and the preview composer
// that turns a session into something a renderer can draw.
package engine

import "github.com/piwi3910/DecoraPuertas/internal/model"

// PointerKind identifies a pointer event delivered by the rendering surface.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "leave"
	}
}

// PointerEvent is a pointer event in device pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Surface reports the current pixel size of the interactive rendering surface.
type Surface interface {
	SurfaceSize() (width, height float64)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() (width, height float64)

func (f SurfaceFunc) SurfaceSize() (float64, float64) { return f() }

// FixedSurface is a Surface of constant size.
type FixedSurface struct {
	Width, Height float64
}

func (s FixedSurface) SurfaceSize() (float64, float64) { return s.Width, s.Height }

// DragSession is the snapshot taken at pointer-down.
type DragSession struct {
	AnchorX, AnchorY         float64 // Pointer position at pointer-down
	BaseOffsetX, BaseOffsetY float64 // Placement offsets at pointer-down
	SurfaceWidth             float64 // Surface size at pointer-down, not re-sampled
	SurfaceHeight            float64
}

// DragState is either Idle or Dragging.
type DragState interface {
	isDragState()
}

// Idle means no pointer is held on the surface.
type Idle struct{}

// Dragging carries the session opened by the last pointer-down.
type Dragging struct {
	Session DragSession
}

func (Idle) isDragState()     {}
func (Dragging) isDragState() {}

// IsDragging reports whether state is a Dragging state.
func IsDragging(state DragState) bool {
	_, ok := state.(Dragging)
	return ok
}

// SelectionSuppressed reports whether text selection and eased transitions
// must be disabled in the surrounding UI. It holds exactly while dragging.
func SelectionSuppressed(state DragState) bool {
	return IsDragging(state)
}

// pctDelta converts a pixel delta to a percentage of span. A degenerate span
// yields no movement.
func pctDelta(d, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return d * (100 / span)
}

// Reduce applies one pointer event to the drag state and placement and returns
// the new values. It is pure: surface is only consulted on pointer-down.
func Reduce(state DragState, p model.PlacementState, ev PointerEvent, surface Surface) (DragState, model.PlacementState) {
	switch ev.Kind {
	case PointerDown:
		var w, h float64
		if surface != nil {
			w, h = surface.SurfaceSize()
		}
		return Dragging{Session: DragSession{
			AnchorX:       ev.X,
			AnchorY:       ev.Y,
			BaseOffsetX:   p.OffsetXPct,
			BaseOffsetY:   p.OffsetYPct,
			SurfaceWidth:  w,
			SurfaceHeight: h,
		}}, p

	case PointerMove:
		d, ok := state.(Dragging)
		if !ok {
			return state, p
		}
		s := d.Session
		x := s.BaseOffsetX + pctDelta(ev.X-s.AnchorX, s.SurfaceWidth)
		y := s.BaseOffsetY + pctDelta(ev.Y-s.AnchorY, s.SurfaceHeight)
		return state, p.SetOffset(x, y)

	case PointerUp, PointerLeave:
		return Idle{}, p
	}
	return state, p
}

// Controller holds the drag state for a single rendering surface.
type Controller struct {
	state   DragState
	surface Surface

	// OnStateChange, if set, is called whenever the controller enters or
	// leaves the Dragging state.
	OnStateChange func(dragging bool)
}

// NewController returns an idle controller reading sizes from surface.
func NewController(surface Surface) *Controller {
	return &Controller{state: Idle{}, surface: surface}
}

// State returns the current drag state.
func (c *Controller) State() DragState {
	return c.state
}

// Dragging reports whether a drag session is open.
func (c *Controller) Dragging() bool {
	return IsDragging(c.state)
}

// Handle applies ev to p and returns the updated placement.
func (c *Controller) Handle(p model.PlacementState, ev PointerEvent) model.PlacementState {
	was := c.Dragging()
	c.state, p = Reduce(c.state, p, ev, c.surface)
	if now := c.Dragging(); now != was && c.OnStateChange != nil {
		c.OnStateChange(now)
	}
	return p
}

// Cancel drops any open drag session without touching the placement.
func (c *Controller) Cancel() {
	if c.Dragging() {
		c.state = Idle{}
		if c.OnStateChange != nil {
			c.OnStateChange(false)
		}
	}
}
