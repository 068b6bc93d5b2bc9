package picture

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ScaleToHeight resamples the picture to the given height, keeping the
// aspect ratio. The width is truncated and never drops below one pixel.
func (p *Picture) ScaleToHeight(height int) (*Picture, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: scale height must be positive, got %d", ErrInvalidArgument, height)
	}
	if height == p.height {
		return p.Copy(), nil
	}

	factor := float64(height) / float64(p.height)
	width := max(int(math.Floor(float64(p.width)*factor)), 1)

	Logger().Debug("scaling picture", "width", width, "height", height)
	dest := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dest, dest.Bounds(), p.ToImage(), p.Bounds(), draw.Src, nil)

	return FromImage(dest)
}
