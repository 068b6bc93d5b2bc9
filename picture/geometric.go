package picture

import (
	"fmt"
	"strings"
)

// Axis selects the mirror line used by Flip.
type Axis int

const (
	// Horizontal mirrors top and bottom.
	Horizontal Axis = iota + 1
	// Vertical mirrors left and right.
	Vertical
	// ForwardDiagonal mirrors across the line from the top-right to the
	// bottom-left corner.
	ForwardDiagonal
	// BackwardDiagonal mirrors across the line from the top-left to the
	// bottom-right corner, a plain transpose.
	BackwardDiagonal
)

var axisNames = map[Axis]string{
	Horizontal:       "horizontal",
	Vertical:         "vertical",
	ForwardDiagonal:  "forward-diagonal",
	BackwardDiagonal: "backward-diagonal",
}

func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts the names returned by Axis.String, case-insensitively.
// "forward" and "backward" are accepted as shorthands for the diagonals.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "forward":
		return ForwardDiagonal, nil
	case "backward":
		return BackwardDiagonal, nil
	}
	for a, n := range axisNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown flip axis %q", ErrInvalidArgument, s)
}

// Rotate turns the picture clockwise by steps quarter turns. Negative steps
// turn counterclockwise. Width and height are swapped for odd step counts.
func (p *Picture) Rotate(steps int) *Picture {
	steps = (steps%4 + 4) % 4

	out := p
	for range steps {
		out = out.rotateOnce()
	}
	if out == p {
		return p.Copy()
	}
	return out
}

func (p *Picture) rotateOnce() *Picture {
	out := blank(p.height, p.width)
	for h := range p.height {
		for w := range p.width {
			out.pix[w*out.width+(p.height-1-h)] = p.pix[h*p.width+w]
		}
	}
	return out
}

// Flip mirrors the picture about axis. Diagonal flips swap width and height.
func (p *Picture) Flip(axis Axis) (*Picture, error) {
	var out *Picture
	var dest func(w, h int) (int, int)

	switch axis {
	case Horizontal:
		out = blank(p.width, p.height)
		dest = func(w, h int) (int, int) { return w, p.height - 1 - h }
	case Vertical:
		out = blank(p.width, p.height)
		dest = func(w, h int) (int, int) { return p.width - 1 - w, h }
	case ForwardDiagonal:
		out = blank(p.height, p.width)
		dest = func(w, h int) (int, int) { return p.height - 1 - h, p.width - 1 - w }
	case BackwardDiagonal:
		out = blank(p.height, p.width)
		dest = func(w, h int) (int, int) { return h, w }
	default:
		return nil, fmt.Errorf("%w: unknown flip axis %d", ErrInvalidArgument, int(axis))
	}

	for h := range p.height {
		for w := range p.width {
			x, y := dest(w, h)
			out.pix[y*out.width+x] = p.pix[h*p.width+w]
		}
	}

	Logger().Debug("flipped picture", "axis", axis, "width", out.width, "height", out.height)
	return out, nil
}
