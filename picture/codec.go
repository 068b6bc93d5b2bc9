package picture

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Format names an encoder. Decoding accepts every format registered with
// the image package, which includes webp.
type Format string

const (
	GIF  Format = "gif"
	JPEG Format = "jpeg"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the formats Encode can write.
var Formats = []Format{GIF, JPEG, PNG, BMP, TIFF}

// FormatFromPath derives a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "gif", "png", "bmp":
		return Format(ext), nil
	}
	return "", fmt.Errorf("%w: no encoder for extension %q", ErrUnsupportedFormat, ext)
}

// Decode reads an image in any registered format. It returns the name of
// the format alongside the picture.
func Decode(r io.Reader) (*Picture, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}

	p, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}
	return p, format, nil
}

// Load decodes the image file at path.
func Load(path string) (*Picture, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			Logger().Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	p, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%q: %w", path, err)
	}

	Logger().Debug("loaded picture", "file", path, "format", format, "width", p.width, "height", p.height)
	return p, format, nil
}

// Encode writes p to w in the given format.
func (p *Picture) Encode(w io.Writer, format Format) error {
	img := p.ToImage()

	var err error
	switch format {
	case GIF:
		err = gif.Encode(w, img, nil)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case PNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("could not encode %s: %w", strings.ToUpper(string(format)), err)
	}
	return nil
}

// Save encodes p into a temporary file next to path and renames it into
// place once the encoding succeeded, so a failed save never leaves a
// truncated file behind.
func (p *Picture) Save(path string, format Format) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, name)
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", outFile.Name(), defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", outFile.Name(), defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = p.Encode(outFile, format); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}

	canRename = true
	Logger().Debug("saved picture", "file", path, "format", format)
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
