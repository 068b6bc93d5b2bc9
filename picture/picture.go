// Package picture implements a mutable ARGB pixel buffer and a set of
// constructive image operations on it. Every operation returns a new
// Picture and leaves its receiver untouched.
package picture

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// DefaultWidth and DefaultHeight are the dimensions used by Default.
	DefaultWidth  = 200
	DefaultHeight = 100
)

// Picture is a width x height grid of packed 0xAARRGGBB values, stored
// row-major.
//
// A Picture is not safe for concurrent mutation; independent pictures can
// be processed in parallel.
type Picture struct {
	width  int
	height int
	pix    []uint32
}

var _ image.Image = (*Picture)(nil)

// New creates an opaque white picture.
func New(width, height int) (*Picture, error) {
	return NewFilled(width, height, White)
}

// NewFilled creates a picture where every pixel is c, alpha included.
func NewFilled(width, height int, c Color) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: picture dimensions must be positive, got %dx%d",
			ErrInvalidArgument, width, height)
	}

	p := blank(width, height)
	p.fill(pack(c))
	return p, nil
}

// Default creates the 200x100 opaque white picture.
func Default() *Picture {
	p := blank(DefaultWidth, DefaultHeight)
	p.fill(pack(White))
	return p
}

func blank(width, height int) *Picture {
	return &Picture{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Copy returns a deep copy of p.
func (p *Picture) Copy() *Picture {
	c := blank(p.width, p.height)
	copy(c.pix, p.pix)
	return c
}

// Width returns the number of columns.
func (p *Picture) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p *Picture) Height() int {
	return p.height
}

// Pixel returns an accessor for the pixel at (x, y). It panics if (x, y) is
// outside the picture.
func (p *Picture) Pixel(x, y int) Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("picture: pixel (%d, %d) out of bounds %dx%d", x, y, p.width, p.height))
	}
	return Pixel{pic: p, x: x, y: y}
}

// Fill returns a copy of p where every pixel's red, green and blue are set
// to c. Alpha is kept.
func (p *Picture) Fill(c Color) *Picture {
	out := p.Copy()
	rgb := pack(c) & rgbMask
	for i, v := range out.pix {
		out.pix[i] = v&alphaMask | rgb
	}
	return out
}

func (p *Picture) fill(v uint32) {
	for i := range p.pix {
		p.pix[i] = v
	}
}

// Equal reports whether p and o have the same dimensions and identical
// channels everywhere, alpha included.
func (p *Picture) Equal(o *Picture) bool {
	if o == nil || p.width != o.width || p.height != o.height {
		return false
	}
	for i, v := range p.pix {
		if o.pix[i] != v {
			return false
		}
	}
	return true
}

func (p *Picture) String() string {
	return fmt.Sprintf("Picture, height = %d, width = %d", p.height, p.width)
}

// Bounds implements image.Image. The origin is always (0, 0).
func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Picture) ColorModel() color.Model {
	return ColorModel
}

// At implements image.Image. Coordinates outside the picture yield a
// transparent color.
func (p *Picture) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}
	}
	return unpack(p.pix[y*p.width+x])
}

// Set implements draw.Image, writing all four channels. Coordinates outside
// the picture are ignored.
func (p *Picture) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = pack(ColorModel.Convert(c).(Color))
}

// FromImage copies any image into a new picture anchored at (0, 0).
func FromImage(img image.Image) (*Picture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image bounds %v", ErrInvalidArgument, b)
	}

	p := blank(b.Dx(), b.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range p.height {
			row := nrgba.Pix[(y+b.Min.Y-nrgba.Rect.Min.Y)*nrgba.Stride+(b.Min.X-nrgba.Rect.Min.X)*4:]
			for x := range p.width {
				s := row[x*4 : x*4+4 : x*4+4]
				p.pix[y*p.width+x] = pack(Color{R: s[0], G: s[1], B: s[2], A: s[3]})
			}
		}
		return p, nil
	}

	for y := range p.height {
		for x := range p.width {
			p.pix[y*p.width+x] = pack(ColorModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(Color))
		}
	}
	return p, nil
}

// ToImage converts p into an *image.NRGBA sharing no memory with p.
func (p *Picture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	for i, v := range p.pix {
		c := unpack(v)
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}

const (
	alphaMask uint32 = 0xFF000000
	rgbMask   uint32 = 0x00FFFFFF
)

func pack(c Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func unpack(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}
