package picture

// Blur replaces every channel, alpha included, with its mean over the
// (2*radius+1) square window centered on the pixel. Window cells that fall
// outside the picture are skipped and do not count towards the divisor.
// A radius of zero or less returns an unchanged copy.
func (p *Picture) Blur(radius int) *Picture {
	if radius <= 0 {
		return p.Copy()
	}
	// Any larger window already covers the whole picture.
	radius = min(radius, max(p.width, p.height))

	sums := p.integral()
	out := blank(p.width, p.height)
	for y := range p.height {
		y0, y1 := max(y-radius, 0), min(y+radius+1, p.height)
		for x := range p.width {
			x0, x1 := max(x-radius, 0), min(x+radius+1, p.width)
			n := (x1 - x0) * (y1 - y0)

			var v uint32
			for c := range 4 {
				total := sums.rect(c, x0, y0, x1, y1)
				v |= uint32(total/n) << (8 * c)
			}
			out.pix[y*out.width+x] = v
		}
	}

	Logger().Debug("blurred picture", "radius", radius, "width", p.width, "height", p.height)
	return out
}

// integral holds one summed-area table per byte lane of the packed pixel.
// Entry (x, y) of lane c is the sum of lane c over [0, x) x [0, y).
type integral struct {
	stride int
	lanes  [4][]int
}

func (p *Picture) integral() *integral {
	stride := p.width + 1
	t := &integral{stride: stride}
	for c := range t.lanes {
		t.lanes[c] = make([]int, stride*(p.height+1))
	}

	for y := range p.height {
		for x := range p.width {
			v := p.pix[y*p.width+x]
			i := (y+1)*stride + x + 1
			for c := range t.lanes {
				lane := t.lanes[c]
				lane[i] = int(uint8(v>>(8*c))) + lane[i-1] + lane[i-stride] - lane[i-stride-1]
			}
		}
	}
	return t
}

func (t *integral) rect(c, x0, y0, x1, y1 int) int {
	lane := t.lanes[c]
	return lane[y1*t.stride+x1] - lane[y0*t.stride+x1] - lane[y1*t.stride+x0] + lane[y0*t.stride+x0]
}

// ShowEdges marks a pixel black when its truncated color distance to the
// pixel above or to the pixel on its left exceeds threshold, and white
// otherwise. Only neighbors inside the picture are compared, so (0, 0) is
// always white. Every output pixel is opaque.
func (p *Picture) ShowEdges(threshold int) *Picture {
	out := blank(p.width, p.height)
	for y := range p.height {
		for x := range p.width {
			here := unpack(p.pix[y*p.width+x])

			edge := false
			if y > 0 {
				edge = int(Distance(here, unpack(p.pix[(y-1)*p.width+x]))) > threshold
			}
			if !edge && x > 0 {
				edge = int(Distance(here, unpack(p.pix[y*p.width+x-1]))) > threshold
			}

			if edge {
				out.pix[y*out.width+x] = pack(Black)
			} else {
				out.pix[y*out.width+x] = pack(White)
			}
		}
	}
	return out
}
