package picture

import "fmt"

// Channel names one of the four 8-bit components of a pixel.
type Channel int

const (
	Alpha Channel = iota
	Red
	Green
	Blue
)

func (c Channel) shift() uint {
	switch c {
	case Alpha:
		return 24
	case Red:
		return 16
	case Green:
		return 8
	case Blue:
		return 0
	}
	panic(fmt.Sprintf("picture: unknown channel %d", int(c)))
}

func (c Channel) String() string {
	switch c {
	case Alpha:
		return "alpha"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Pixel is a handle on a single coordinate of a Picture. It borrows the
// picture and is meant to be used within the call that obtained it.
type Pixel struct {
	pic  *Picture
	x, y int
}

// X and Y return the coordinates the pixel is bound to.
func (px Pixel) X() int { return px.x }
func (px Pixel) Y() int { return px.y }

func (px Pixel) value() uint32 {
	return px.pic.pix[px.y*px.pic.width+px.x]
}

func (px Pixel) store(v uint32) {
	px.pic.pix[px.y*px.pic.width+px.x] = v
}

// Channel returns one channel value in [0, 255].
func (px Pixel) Channel(c Channel) int {
	return int(uint8(px.value() >> c.shift()))
}

// SetChannel stores value into channel c, saturating at 0 and 255.
func (px Pixel) SetChannel(c Channel, value int) {
	s := c.shift()
	px.store(px.value()&^(0xFF<<s) | uint32(clamp(value))<<s)
}

func (px Pixel) Alpha() int { return px.Channel(Alpha) }
func (px Pixel) Red() int   { return px.Channel(Red) }
func (px Pixel) Green() int { return px.Channel(Green) }
func (px Pixel) Blue() int  { return px.Channel(Blue) }

func (px Pixel) SetAlpha(v int) { px.SetChannel(Alpha, v) }
func (px Pixel) SetRed(v int)   { px.SetChannel(Red, v) }
func (px Pixel) SetGreen(v int) { px.SetChannel(Green, v) }
func (px Pixel) SetBlue(v int)  { px.SetChannel(Blue, v) }

// Color returns all four channels.
func (px Pixel) Color() Color {
	return unpack(px.value())
}

// SetColor writes red, green and blue from c and keeps the current alpha.
func (px Pixel) SetColor(c Color) {
	px.store(px.value()&alphaMask | pack(c)&rgbMask)
}

// SetColorAlpha writes all four channels from c.
func (px Pixel) SetColorAlpha(c Color) {
	px.store(pack(c))
}

// Average is floor((r + g + b) / 3).
func (px Pixel) Average() int {
	v := px.value()
	return (int(uint8(v>>16)) + int(uint8(v>>8)) + int(uint8(v))) / 3
}

// DistanceTo is the color distance between this pixel and c.
func (px Pixel) DistanceTo(c Color) float64 {
	return Distance(px.Color(), c)
}

func (px Pixel) String() string {
	return fmt.Sprintf("Pixel at (%d, %d) has color components red=%d green=%d blue=%d",
		px.x, px.y, px.Red(), px.Green(), px.Blue())
}
