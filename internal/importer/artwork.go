// Package importer reads artwork files into in-memory uploads. PNG, JPEG,
// GIF, WebP and BMP are decoded; other image/* types are accepted as uploads
// but cannot be rendered in the preview.
package importer

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/piwi3910/DecoraPuertas/internal/model"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxUploadBytes caps the size of an artwork file held in memory.
const MaxUploadBytes = 25 << 20

var (
	// ErrNotImage is returned when the file's content is not an image/* type.
	ErrNotImage = errors.New("file is not an image")
	// ErrEmpty is returned for zero-byte files.
	ErrEmpty = errors.New("file is empty")
	// ErrTooLarge is returned when a file exceeds MaxUploadBytes.
	ErrTooLarge = errors.New("file is too large")
)

// ArtworkResult holds a read upload and its decoded pixels.
type ArtworkResult struct {
	Upload   *model.Upload
	Image    image.Image // nil when the format cannot be decoded
	Warnings []string
}

// ReadArtwork reads r fully and returns it as an upload encoded as a data URI.
// name is only used for display and as a media type hint.
func ReadArtwork(r io.Reader, name string) (ArtworkResult, error) {
	result := ArtworkResult{}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return result, fmt.Errorf("failed to read artwork: %w", err)
	}
	if len(data) == 0 {
		return result, ErrEmpty
	}
	if len(data) > MaxUploadBytes {
		return result, ErrTooLarge
	}

	mediaType := DetectMediaType(data, name)
	if !model.IsImageMediaType(mediaType) {
		return result, fmt.Errorf("%w: %s", ErrNotImage, mediaType)
	}

	upload := &model.Upload{
		Name:      filepath.Base(name),
		MediaType: mediaType,
		DataURI:   EncodeDataURI(mediaType, data),
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Cannot preview %s: %v", upload.Name, err))
	} else {
		b := img.Bounds()
		upload.Width, upload.Height = b.Dx(), b.Dy()
	}

	result.Upload = upload
	result.Image = img
	return result, nil
}

// ReadArtworkFile opens path and reads it with ReadArtwork.
func ReadArtworkFile(path string) (ArtworkResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArtworkResult{}, fmt.Errorf("failed to open artwork: %w", err)
	}
	defer f.Close()
	return ReadArtwork(f, path)
}

// DetectMediaType sniffs data, falling back to the file extension when the
// content alone is inconclusive.
func DetectMediaType(data []byte, name string) string {
	sniffed := http.DetectContentType(data)
	if model.IsImageMediaType(sniffed) {
		return sniffed
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil && model.IsImageMediaType(mt) {
			// Text-based formats like SVG sniff as text/xml or text/plain
			if strings.HasPrefix(sniffed, "text/") {
				return mt
			}
		}
	}
	return sniffed
}

// EncodeDataURI returns data as a base64 data URI.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a base64 data URI into its media type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return mediaType, data, nil
}

// DecodeUpload decodes the pixels of an upload's data URI.
func DecodeUpload(u *model.Upload) (image.Image, error) {
	if u == nil {
		return nil, fmt.Errorf("no upload")
	}
	_, data, err := DecodeDataURI(u.DataURI)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode upload: %w", err)
	}
	return img, nil
}

// LoadImage decodes an image file from disk, used for catalog samples.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Thumbnail scales img to fit within maxW x maxH, keeping its aspect ratio.
// Images already smaller are returned unchanged.
func Thumbnail(img image.Image, maxW, maxH uint) image.Image {
	if img == nil {
		return nil
	}
	return resize.Thumbnail(maxW, maxH, img, resize.Bilinear)
}
