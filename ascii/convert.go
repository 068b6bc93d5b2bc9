package ascii

import "picedit/picture"

// Convert renders p with the default palette.
func Convert(p *picture.Picture) *picture.Picture {
	return ConvertWith(p, DefaultPalette())
}

// ConvertWith renders p with pal. The result has p's exact size; chunks on
// the right and bottom edges are clipped, and so are the glyphs stamped
// into them.
func ConvertWith(p *picture.Picture, pal *Palette) *picture.Picture {
	gray := p.Grayscale()
	out, _ := picture.New(p.Width(), p.Height())

	var chunks int
	for y0 := 0; y0 < p.Height(); y0 += GlyphHeight {
		for x0 := 0; x0 < p.Width(); x0 += GlyphWidth {
			x1 := min(x0+GlyphWidth, p.Width())
			y1 := min(y0+GlyphHeight, p.Height())
			stamp(out, pal.Glyph(Bucket(chunkAverage(gray, x0, y0, x1, y1))), x0, y0, x1, y1)
			chunks++
		}
	}

	picture.Logger().Debug("converted picture to ascii", "chunks", chunks)
	return out
}

func chunkAverage(p *picture.Picture, x0, y0, x1, y1 int) int {
	var sum int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sum += p.Pixel(x, y).Average()
		}
	}
	return sum / ((x1 - x0) * (y1 - y0))
}

func stamp(dst, glyph *picture.Picture, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.Pixel(x, y).SetColorAlpha(glyph.Pixel(x-x0, y-y0).Color())
		}
	}
}
