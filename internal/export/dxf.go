package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerDoor  = "DOOR"
	LayerDecal = "DECAL"
)

// ExportDXF writes the door outline and the decal cut rectangle, in inches,
// for the plotter. DXF's Y axis points up, so the door's top-left corner is
// at (0, height).
func ExportDXF(path string, q QuoteSheet) error {
	doorW, doorH := q.DoorInches()
	if doorW <= 0 || doorH <= 0 {
		return fmt.Errorf("door has no area")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerDoor, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerDoor, err)
	}
	if _, err := d.AddLayer(LayerDecal, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerDecal, err)
	}

	if err := d.ChangeLayer(LayerDoor); err != nil {
		return fmt.Errorf("failed to select layer %s: %w", LayerDoor, err)
	}
	if err := drawRect(d, 0, 0, doorW, doorH); err != nil {
		return err
	}

	decal := q.DecalRect()
	if !decal.Empty() {
		if err := d.ChangeLayer(LayerDecal); err != nil {
			return fmt.Errorf("failed to select layer %s: %w", LayerDecal, err)
		}
		// Flip from top-left screen coordinates to DXF's bottom-left origin
		y := doorH - decal.Y - decal.Height
		if err := drawRect(d, decal.X, y, decal.Width, decal.Height); err != nil {
			return err
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i, c := range corners {
		n := corners[(i+1)%len(corners)]
		if _, err := d.Line(c[0], c[1], 0, n[0], n[1], 0); err != nil {
			return fmt.Errorf("failed to draw line: %w", err)
		}
	}
	return nil
}
