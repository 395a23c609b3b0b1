package importer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestReadArtworkPNG(t *testing.T) {
	data := pngBytes(t, 40, 20)

	res, err := ReadArtwork(bytes.NewReader(data), "/tmp/mi puerta.png")
	require.NoError(t, err)
	require.NotNil(t, res.Upload)
	require.NotNil(t, res.Image)

	assert.Equal(t, "mi puerta.png", res.Upload.Name)
	assert.Equal(t, "image/png", res.Upload.MediaType)
	assert.Equal(t, 40, res.Upload.Width)
	assert.Equal(t, 20, res.Upload.Height)
	assert.Equal(t, 2.0, res.Upload.Aspect())
	assert.True(t, strings.HasPrefix(res.Upload.DataURI, "data:image/png;base64,"))
	assert.Empty(t, res.Warnings)
}

func TestReadArtworkRejectsNonImage(t *testing.T) {
	_, err := ReadArtwork(strings.NewReader("%PDF-1.4\n%âãÏÓ\n"), "quote.pdf")
	assert.True(t, errors.Is(err, ErrNotImage), "got %v", err)

	_, err = ReadArtwork(strings.NewReader("Label,Width\nShelf,600\n"), "parts.csv")
	assert.True(t, errors.Is(err, ErrNotImage), "got %v", err)
}

func TestReadArtworkEmpty(t *testing.T) {
	_, err := ReadArtwork(bytes.NewReader(nil), "empty.png")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadArtworkSVGAcceptedWithoutPreview(t *testing.T) {
	svg := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"></svg>`

	res, err := ReadArtwork(strings.NewReader(svg), "logo.svg")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", res.Upload.MediaType)
	assert.Nil(t, res.Image)
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, 1.0, res.Upload.Aspect())
}

func TestReadArtworkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "door.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 8, 8), 0644))

	res, err := ReadArtworkFile(path)
	require.NoError(t, err)
	assert.Equal(t, "door.png", res.Upload.Name)

	_, err = ReadArtworkFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDataURIRoundTrip(t *testing.T) {
	data := pngBytes(t, 3, 5)
	uri := EncodeDataURI("image/png", data)

	mt, got, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mt)
	assert.Equal(t, data, got)
}

func TestDecodeDataURIErrors(t *testing.T) {
	for _, uri := range []string{
		"",
		"http://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,abc",
		"data:image/png;base64,***",
	} {
		_, _, err := DecodeDataURI(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}

func TestDecodeUpload(t *testing.T) {
	res, err := ReadArtwork(bytes.NewReader(pngBytes(t, 6, 4)), "a.png")
	require.NoError(t, err)

	img, err := DecodeUpload(res.Upload)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())

	_, err = DecodeUpload(nil)
	assert.Error(t, err)
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "1.png")
	bad := filepath.Join(dir, "2.png")
	require.NoError(t, os.WriteFile(good, pngBytes(t, 12, 9), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))

	img, err := LoadImage(good)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())

	_, err = LoadImage(bad)
	assert.Error(t, err)
}

func TestThumbnail(t *testing.T) {
	img, _ := png.Decode(bytes.NewReader(pngBytes(t, 400, 200)))

	thumb := Thumbnail(img, 100, 100)
	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 50, thumb.Bounds().Dy())

	small, _ := png.Decode(bytes.NewReader(pngBytes(t, 10, 10)))
	assert.Equal(t, 10, Thumbnail(small, 100, 100).Bounds().Dx())
	assert.Nil(t, Thumbnail(nil, 10, 10))
}
