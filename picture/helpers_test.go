package picture

import "testing"

// gradient returns a picture where every pixel has a distinct color and a
// varying alpha.
func gradient(t *testing.T, width, height int) *Picture {
	t.Helper()
	p, err := New(width, height)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	for y := range height {
		for x := range width {
			p.Pixel(x, y).SetColorAlpha(RGBA(x*13+y, y*17+x, (x*7+y*11)%256, 255-x-y))
		}
	}
	return p
}

func solid(t *testing.T, width, height int, c Color) *Picture {
	t.Helper()
	p, err := NewFilled(width, height, c)
	if err != nil {
		t.Fatalf("NewFilled(%d, %d, %v): %v", width, height, c, err)
	}
	return p
}

// unchanged fails the test if p differs from the snapshot taken before an
// operation ran.
func unchanged(t *testing.T, op string, p, before *Picture) {
	t.Helper()
	if !p.Equal(before) {
		t.Errorf("%s modified its input", op)
	}
}
