package picture

import "fmt"

func (p *Picture) checkPoint(what string, x, y int) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return fmt.Errorf("%w: %s (%d, %d) outside %dx%d picture", ErrInvalidArgument, what, x, y, p.width, p.height)
	}
	return nil
}

// ChromaKey takes the color at (xRef, yRef) as the key and replaces the red,
// green and blue of every pixel within threshold of it by the matching pixel
// of background. The pictures are aligned at their top-left corners; pixels
// outside the area they share are left as they are.
func (p *Picture) ChromaKey(xRef, yRef int, background *Picture, threshold int) (*Picture, error) {
	if background == nil {
		return nil, fmt.Errorf("%w: missing chroma key background", ErrInvalidArgument)
	}
	if err := p.checkPoint("chroma key reference", xRef, yRef); err != nil {
		return nil, err
	}

	key := unpack(p.pix[yRef*p.width+xRef])
	width := min(p.width, background.width)
	height := min(p.height, background.height)

	out := p.Copy()
	var replaced int
	for y := range height {
		for x := range width {
			i := y*p.width + x
			if Distance(unpack(p.pix[i]), key) <= float64(threshold) {
				out.pix[i] = p.pix[i]&alphaMask | background.pix[y*background.width+x]&rgbMask
				replaced++
			}
		}
	}

	Logger().Debug("applied chroma key", "key", key, "threshold", threshold, "replaced", replaced)
	return out, nil
}

// PaintBucket recolors the 8-connected region around (x, y) whose pixels
// lie within threshold of the color (x, y) had before filling. Alpha is
// kept.
func (p *Picture) PaintBucket(x, y, threshold int, c Color) (*Picture, error) {
	if err := p.checkPoint("paint bucket seed", x, y); err != nil {
		return nil, err
	}

	seed := unpack(p.pix[y*p.width+x])
	rgb := pack(c) & rgbMask
	limit := float64(threshold)

	out := p.Copy()
	visited := make([]bool, len(p.pix))
	stack := []int{y*p.width + x}
	var filled int
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true

		if Distance(unpack(p.pix[i]), seed) > limit {
			continue
		}
		out.pix[i] = p.pix[i]&alphaMask | rgb
		filled++

		px, py := i%p.width, i/p.width
		down, right := py < p.height-1, px < p.width-1
		left, up := px > 0, py > 0
		push := func(ok bool, nx, ny int) {
			if j := ny*p.width + nx; ok && !visited[j] {
				stack = append(stack, j)
			}
		}
		push(down, px, py+1)
		push(right, px+1, py)
		push(left, px-1, py)
		push(up, px, py-1)
		push(down && right, px+1, py+1)
		push(down && left, px-1, py+1)
		push(up && right, px+1, py-1)
		push(up && left, px-1, py-1)
	}

	Logger().Debug("flood filled region", "seed", seed, "threshold", threshold, "filled", filled)
	return out, nil
}
