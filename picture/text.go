package picture

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextSize is the point size used by DrawText.
const TextSize = 16

var boldFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// DrawText writes message in white bold text onto a copy of the picture.
// (x, y) is the left end of the baseline. Text running past the edges is
// clipped.
func (p *Picture) DrawText(message string, x, y int) (*Picture, error) {
	f, err := boldFont()
	if err != nil {
		return nil, fmt.Errorf("could not parse text font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    TextSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create text face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	out := p.Copy()
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(White),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(message)
	return out, nil
}
