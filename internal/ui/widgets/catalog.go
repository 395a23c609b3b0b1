package widgets

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DecoraPuertas/internal/model"
)

const (
	tileSize      = 96
	tileLabelSize = 11
	catalogCols   = 3
)

// ArtworkTile is a tappable thumbnail with a caption and a highlight ring.
type ArtworkTile struct {
	widget.BaseWidget

	label  string
	img    image.Image
	active bool

	OnTapped func()
}

// NewArtworkTile creates a tile. img may be nil.
func NewArtworkTile(label string, img image.Image, tapped func()) *ArtworkTile {
	t := &ArtworkTile{label: label, img: img, OnTapped: tapped}
	t.ExtendBaseWidget(t)
	return t
}

// SetImage replaces the thumbnail.
func (t *ArtworkTile) SetImage(img image.Image) {
	t.img = img
	t.Refresh()
}

// SetActive toggles the highlight ring.
func (t *ArtworkTile) SetActive(active bool) {
	if t.active == active {
		return
	}
	t.active = active
	t.Refresh()
}

// Active reports whether the tile is highlighted.
func (t *ArtworkTile) Active() bool {
	return t.active
}

func (t *ArtworkTile) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

func (t *ArtworkTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *ArtworkTile) CreateRenderer() fyne.WidgetRenderer {
	r := &artworkTileRenderer{
		tile:  t,
		bg:    canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		ring:  canvas.NewRectangle(color.Transparent),
		image: canvas.NewImageFromImage(t.img),
		text:  canvas.NewText(t.label, theme.Color(theme.ColorNameForeground)),
	}
	r.bg.CornerRadius = 8
	r.ring.CornerRadius = 8
	r.image.FillMode = canvas.ImageFillContain
	r.text.TextSize = tileLabelSize
	r.text.Alignment = fyne.TextAlignCenter
	r.objects = []fyne.CanvasObject{r.bg, r.image, r.text, r.ring}
	r.Refresh()
	return r
}

type artworkTileRenderer struct {
	tile    *ArtworkTile
	bg      *canvas.Rectangle
	ring    *canvas.Rectangle
	image   *canvas.Image
	text    *canvas.Text
	objects []fyne.CanvasObject
}

func (r *artworkTileRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.ring.Resize(size)

	textH := r.text.MinSize().Height
	pad := float32(4)
	r.image.Move(fyne.NewPos(pad, pad))
	r.image.Resize(fyne.NewSize(max(size.Width-2*pad, 0), max(size.Height-textH-2*pad, 0)))
	r.text.Move(fyne.NewPos(0, size.Height-textH-pad/2))
	r.text.Resize(fyne.NewSize(size.Width, textH))
}

func (r *artworkTileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(tileSize, tileSize+r.text.MinSize().Height)
}

func (r *artworkTileRenderer) Refresh() {
	t := r.tile
	r.image.Image = t.img
	r.text.Text = t.label
	if t.active {
		r.ring.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.ring.StrokeWidth = 2
	} else {
		r.ring.StrokeColor = theme.Color(theme.ColorNameSeparator)
		r.ring.StrokeWidth = 1
	}
	r.Layout(t.Size())
	r.bg.Refresh()
	r.ring.Refresh()
	r.image.Refresh()
	r.text.Refresh()
}

func (r *artworkTileRenderer) Destroy()                     {}
func (r *artworkTileRenderer) Objects() []fyne.CanvasObject { return r.objects }

// CatalogGrid shows the sample catalog followed by the upload tile. A sample
// is highlighted only while no upload is active.
type CatalogGrid struct {
	widget.BaseWidget

	ids     []string
	samples []*ArtworkTile
	upload  *ArtworkTile
	grid    *fyne.Container
}

// NewCatalogGrid builds tiles for samples. thumbs maps sample IDs to
// thumbnails; missing entries show the caption only.
func NewCatalogGrid(samples []model.Sample, thumbs map[string]image.Image, onSample func(id string), onUpload func()) *CatalogGrid {
	c := &CatalogGrid{}
	objs := make([]fyne.CanvasObject, 0, len(samples)+1)
	for _, s := range samples {
		id := s.ID
		tile := NewArtworkTile(s.Label, thumbs[id], func() {
			if onSample != nil {
				onSample(id)
			}
		})
		c.ids = append(c.ids, id)
		c.samples = append(c.samples, tile)
		objs = append(objs, tile)
	}
	c.upload = NewArtworkTile("Subir tu diseño", nil, onUpload)
	objs = append(objs, c.upload)
	c.grid = container.NewGridWithColumns(catalogCols, objs...)
	c.ExtendBaseWidget(c)
	return c
}

// SetSelection highlights the active artwork and shows the upload thumbnail.
func (c *CatalogGrid) SetSelection(sel model.ArtworkSelection, uploadThumb image.Image) {
	for i, tile := range c.samples {
		tile.SetActive(sel.IsSampleActive(c.ids[i]))
	}
	c.upload.SetActive(sel.HasUpload())
	if sel.HasUpload() {
		c.upload.SetImage(uploadThumb)
	} else {
		c.upload.SetImage(nil)
	}
}

// ActiveSample returns the highlighted sample ID, or "" when none is.
func (c *CatalogGrid) ActiveSample() string {
	for i, tile := range c.samples {
		if tile.Active() {
			return c.ids[i]
		}
	}
	return ""
}

// UploadActive reports whether the upload tile is highlighted.
func (c *CatalogGrid) UploadActive() bool {
	return c.upload.Active()
}

func (c *CatalogGrid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.grid)
}
