package widgets

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/DecoraPuertas/internal/model"
)

func TestCatalogGridHighlight(t *testing.T) {
	test.NewTempApp(t)
	c := NewCatalogGrid(model.DefaultCatalog("").Samples, nil, nil, nil)
	test.WidgetRenderer(c)

	sel := model.ArtworkSelection{}.SelectSample("sample-2")
	c.SetSelection(sel, nil)
	assert.Equal(t, "sample-2", c.ActiveSample())
	assert.False(t, c.UploadActive())

	up := &model.Upload{Name: "mine.png", DataURI: "data:image/png;base64,AA=="}
	c.SetSelection(sel.SetUpload(up), image.NewRGBA(image.Rect(0, 0, 4, 4)))
	assert.Equal(t, "", c.ActiveSample())
	assert.True(t, c.UploadActive())
	assert.NotNil(t, c.upload.img)

	c.SetSelection(sel.SetUpload(up).SelectSample("sample-5"), nil)
	assert.Equal(t, "sample-5", c.ActiveSample())
	assert.Nil(t, c.upload.img)
}

func TestCatalogGridTaps(t *testing.T) {
	test.NewTempApp(t)
	var picked string
	uploads := 0
	c := NewCatalogGrid(model.DefaultCatalog("").Samples, nil,
		func(id string) { picked = id },
		func() { uploads++ })

	test.Tap(c.samples[2])
	assert.Equal(t, "sample-3", picked)

	test.Tap(c.upload)
	assert.Equal(t, 1, uploads)
}
