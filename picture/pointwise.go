package picture

// remap builds a picture of the same size where each pixel is fn applied to
// the matching source pixel. Alpha is carried over unless fn changes it.
func (p *Picture) remap(fn func(src Pixel, dst Pixel)) *Picture {
	out := p.Copy()
	for y := range p.height {
		for x := range p.width {
			fn(Pixel{pic: p, x: x, y: y}, Pixel{pic: out, x: x, y: y})
		}
	}
	return out
}

// Grayscale replaces red, green and blue with their average.
func (p *Picture) Grayscale() *Picture {
	return p.remap(func(src, dst Pixel) {
		avg := src.Average()
		dst.SetColor(RGB(avg, avg, avg))
	})
}

// Negate inverts red, green and blue.
func (p *Picture) Negate() *Picture {
	return p.remap(func(src, dst Pixel) {
		dst.SetColor(RGB(0xFF-src.Red(), 0xFF-src.Green(), 0xFF-src.Blue()))
	})
}

// Lighten adds amount to red, green and blue, saturating at 255.
func (p *Picture) Lighten(amount int) *Picture {
	return p.shift(amount, amount, amount)
}

// Darken subtracts amount from red, green and blue, saturating at 0.
func (p *Picture) Darken(amount int) *Picture {
	amount = -saturate(amount)
	return p.shift(amount, amount, amount)
}

// AddRed adds amount to the red channel, saturating at 0 and 255.
func (p *Picture) AddRed(amount int) *Picture {
	return p.shift(amount, 0, 0)
}

// AddGreen adds amount to the green channel, saturating at 0 and 255.
func (p *Picture) AddGreen(amount int) *Picture {
	return p.shift(0, amount, 0)
}

// AddBlue adds amount to the blue channel, saturating at 0 and 255.
func (p *Picture) AddBlue(amount int) *Picture {
	return p.shift(0, 0, amount)
}

func (p *Picture) shift(dr, dg, db int) *Picture {
	dr, dg, db = saturate(dr), saturate(dg), saturate(db)
	return p.remap(func(src, dst Pixel) {
		dst.SetColor(RGB(src.Red()+dr, src.Green()+dg, src.Blue()+db))
	})
}

// saturate bounds a channel delta so that adding it to any channel value
// cannot overflow. Deltas beyond 0x1FF clamp to the same result.
func saturate(delta int) int {
	return min(max(delta, -0x1FF), 0x1FF)
}
