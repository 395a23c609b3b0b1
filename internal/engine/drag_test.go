package engine

import (
	"testing"

	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func down(x, y float64) PointerEvent  { return PointerEvent{Kind: PointerDown, X: x, Y: y} }
func move(x, y float64) PointerEvent  { return PointerEvent{Kind: PointerMove, X: x, Y: y} }
func up(x, y float64) PointerEvent    { return PointerEvent{Kind: PointerUp, X: x, Y: y} }
func leave(x, y float64) PointerEvent { return PointerEvent{Kind: PointerLeave, X: x, Y: y} }

func TestReduce_DownCapturesSession(t *testing.T) {
	p := model.DefaultPlacement().SetOffset(20, 70)
	state, got := Reduce(Idle{}, p, down(15, 25), FixedSurface{Width: 300, Height: 600})

	require.True(t, IsDragging(state))
	assert.Equal(t, p, got)
	assert.Equal(t, DragSession{
		AnchorX: 15, AnchorY: 25,
		BaseOffsetX: 20, BaseOffsetY: 70,
		SurfaceWidth: 300, SurfaceHeight: 600,
	}, state.(Dragging).Session)
}

func TestReduce_FullWidthDragIsResolutionIndependent(t *testing.T) {
	for _, w := range []float64{37, 200, 420, 1920} {
		p := model.DefaultPlacement().SetOffsetX(0)
		state, p := Reduce(Idle{}, p, down(10, 10), FixedSurface{Width: w, Height: w * 2})
		_, p = Reduce(state, p, move(10+w, 10), nil)
		assert.InDelta(t, 100.0, p.OffsetXPct, 1e-9, "surface width %v", w)
		assert.Equal(t, 50.0, p.OffsetYPct)
	}
}

func TestReduce_HalfDragMovesFiftyPoints(t *testing.T) {
	state, p := Reduce(Idle{}, model.DefaultPlacement().SetOffset(25, 75), down(0, 0), FixedSurface{Width: 400, Height: 800})
	_, p = Reduce(state, p, move(200, -400), nil)
	assert.InDelta(t, 75.0, p.OffsetXPct, 1e-9)
	assert.InDelta(t, 25.0, p.OffsetYPct, 1e-9)
}

func TestReduce_MovesAreRelativeToBaseline(t *testing.T) {
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(100, 100), FixedSurface{Width: 200, Height: 200})
	state, p = Reduce(state, p, move(120, 100), nil)
	assert.InDelta(t, 60.0, p.OffsetXPct, 1e-9)
	// Second move is measured from the anchor, not from the previous move
	_, p = Reduce(state, p, move(110, 100), nil)
	assert.InDelta(t, 55.0, p.OffsetXPct, 1e-9)
}

func TestReduce_ClampsOffsets(t *testing.T) {
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), FixedSurface{Width: 100, Height: 100})
	_, p = Reduce(state, p, move(-1000, 1000), nil)
	assert.Equal(t, 0.0, p.OffsetXPct)
	assert.Equal(t, 100.0, p.OffsetYPct)
}

func TestReduce_IdleMoveIsNoop(t *testing.T) {
	p := model.DefaultPlacement()
	state, got := Reduce(Idle{}, p, move(500, 500), FixedSurface{Width: 10, Height: 10})
	assert.Equal(t, Idle{}, state)
	assert.Equal(t, p, got)
}

func TestReduce_LeaveCancelsDrag(t *testing.T) {
	surface := FixedSurface{Width: 100, Height: 100}
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), surface)
	state, p = Reduce(state, p, move(10, 0), nil)
	require.InDelta(t, 60.0, p.OffsetXPct, 1e-9)

	state, p = Reduce(state, p, leave(10, 0), nil)
	assert.False(t, IsDragging(state))

	before := p
	state, p = Reduce(state, p, move(90, 90), nil)
	assert.Equal(t, before, p)
	assert.False(t, IsDragging(state))
}

func TestReduce_UpEndsDrag(t *testing.T) {
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), FixedSurface{Width: 100, Height: 100})
	state, p = Reduce(state, p, up(0, 0), nil)
	assert.Equal(t, Idle{}, state)

	_, after := Reduce(state, p, move(50, 50), nil)
	assert.Equal(t, p, after)
}

func TestReduce_DownWhileDraggingRestarts(t *testing.T) {
	surface := FixedSurface{Width: 100, Height: 100}
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), surface)
	state, p = Reduce(state, p, move(20, 0), nil)
	state, p = Reduce(state, p, down(50, 50), surface)

	s := state.(Dragging).Session
	assert.Equal(t, 70.0, s.BaseOffsetX)
	assert.Equal(t, 50.0, s.AnchorX)
}

func TestReduce_DegenerateSurface(t *testing.T) {
	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), FixedSurface{Width: 0, Height: -5})
	_, p = Reduce(state, p, move(30, 30), nil)
	assert.Equal(t, 50.0, p.OffsetXPct)
	assert.Equal(t, 50.0, p.OffsetYPct)
}

func TestReduce_SurfaceSampledOnceAtDown(t *testing.T) {
	width := 100.0
	surface := SurfaceFunc(func() (float64, float64) { return width, 100 })

	state, p := Reduce(Idle{}, model.DefaultPlacement(), down(0, 0), surface)
	width = 1000
	_, p = Reduce(state, p, move(10, 0), surface)
	assert.InDelta(t, 60.0, p.OffsetXPct, 1e-9)
}

func TestSelectionSuppressed(t *testing.T) {
	assert.False(t, SelectionSuppressed(Idle{}))
	assert.True(t, SelectionSuppressed(Dragging{}))
}

func TestController_ReportsStateChanges(t *testing.T) {
	var changes []bool
	c := NewController(FixedSurface{Width: 200, Height: 400})
	c.OnStateChange = func(dragging bool) { changes = append(changes, dragging) }

	p := model.DefaultPlacement()
	p = c.Handle(p, move(5, 5))
	assert.False(t, c.Dragging())

	p = c.Handle(p, down(0, 0))
	assert.True(t, c.Dragging())
	p = c.Handle(p, move(-100, 0))
	assert.InDelta(t, 0.0, p.OffsetXPct, 1e-9)
	p = c.Handle(p, down(0, 0))
	p = c.Handle(p, up(0, 0))
	assert.False(t, c.Dragging())

	assert.Equal(t, []bool{true, false}, changes)
}

func TestController_Cancel(t *testing.T) {
	calls := 0
	c := NewController(FixedSurface{Width: 10, Height: 10})
	c.OnStateChange = func(bool) { calls++ }

	c.Cancel()
	assert.Equal(t, 0, calls)

	c.Handle(model.DefaultPlacement(), down(1, 1))
	c.Cancel()
	assert.False(t, c.Dragging())
	assert.Equal(t, 2, calls)
}

func TestPointerKindString(t *testing.T) {
	assert.Equal(t, "down", PointerDown.String())
	assert.Equal(t, "move", PointerMove.String())
	assert.Equal(t, "up", PointerUp.String())
	assert.Equal(t, "leave", PointerLeave.String())
}
