package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corte.dxf")
	require.NoError(t, ExportDXF(path, buildTestQuote(t)))

	d, err := dxf.Open(path)
	require.NoError(t, err)

	var lines []*entity.Line
	for _, e := range d.Entities() {
		if l, ok := e.(*entity.Line); ok {
			lines = append(lines, l)
		}
	}
	// Door and decal rectangles
	require.Len(t, lines, 8)

	// The decal is flush top-left and 18 in wide, so its top edge runs
	// from (0, 74) to (18, 74)
	found := false
	for _, l := range lines {
		if near(l.Start[1], 74) && near(l.End[1], 74) && near(l.Start[0], 0) && near(l.End[0], 18) {
			found = true
		}
	}
	assert.True(t, found, "decal top edge not found")
}

func TestExportDXFNoArea(t *testing.T) {
	q := buildTestQuote(t)
	q.Dimensions.WidthFt = 0
	assert.Error(t, ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), q))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}
