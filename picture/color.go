package picture

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a non-premultiplied 8-bit RGBA color. It implements color.Color.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{0, 0, 0, 0xFF}
	White = Color{0xFF, 0xFF, 0xFF, 0xFF}
)

// RGB returns an opaque color, clamping every channel into [0, 255].
func RGB(r, g, b int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b), A: 0xFF}
}

// RGBA returns a color with explicit alpha, clamping every channel into [0, 255].
func RGBA(r, g, b, a int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b), A: clamp(a)}
}

func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorModel converts any color.Color into a Color.
var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
}

// Distance is the Euclidean distance between the red, green and blue
// channels of a and b. Alpha is ignored.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ParseHex reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	var c Color
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("%w: could not read color %q: %v", ErrInvalidArgument, s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("%w: insufficient color fields in %q: %d", ErrInvalidArgument, s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xFF
	case 5:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return Color{}, fmt.Errorf("%w: could not read color %q: %v", ErrInvalidArgument, s, err)
		} else if n < 4 {
			return Color{}, fmt.Errorf("%w: insufficient color fields in %q: %d", ErrInvalidArgument, s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("%w: could not read color %q: %v", ErrInvalidArgument, s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("%w: insufficient color fields in %q: %d", ErrInvalidArgument, s, n)
		}

		c.A = 0xFF
	case 9:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return Color{}, fmt.Errorf("%w: could not read color %q: %v", ErrInvalidArgument, s, err)
		} else if n < 4 {
			return Color{}, fmt.Errorf("%w: insufficient color fields in %q: %d", ErrInvalidArgument, s, n)
		}
	default:
		return Color{}, fmt.Errorf("%w: invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA",
			ErrInvalidArgument, s)
	}

	return c, nil
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xFF:
		return 0xFF
	}
	return uint8(v)
}
