package picture

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Quantize maps every pixel to the nearest color of pal, optionally with
// Floyd-Steinberg error diffusion. Alpha is taken from the source.
func (p *Picture) Quantize(pal color.Palette, dither bool) (*Picture, error) {
	if len(pal) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidArgument)
	}

	Logger().Debug("applying palette", "colors", len(pal), "dither", dither)
	r := p.Bounds()
	src := p.ToImage()
	// Colors are matched on red, green and blue only.
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xFF
	}
	dest := image.NewPaletted(r, pal)
	if dither {
		draw.FloydSteinberg.Draw(dest, r, src, r.Min)
	} else {
		draw.Draw(dest, r, src, r.Min, draw.Src)
	}

	out, err := FromImage(dest)
	if err != nil {
		return nil, err
	}
	for i, v := range p.pix {
		out.pix[i] = out.pix[i]&rgbMask | v&alphaMask
	}
	return out, nil
}
