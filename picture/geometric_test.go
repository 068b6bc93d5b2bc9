package picture

import (
	"errors"
	"math"
	"testing"
)

func TestRotateMapping(t *testing.T) {
	p := gradient(t, 3, 2)
	r := p.Rotate(1)
	if r.Width() != 2 || r.Height() != 3 {
		t.Fatalf("Rotate(1) of 3x2 is %dx%d, want 2x3", r.Width(), r.Height())
	}
	for h := range 2 {
		for w := range 3 {
			if got, want := r.Pixel(2-1-h, w).Color(), p.Pixel(w, h).Color(); got != want {
				t.Errorf("source (%d, %d) landed as %v, want %v", w, h, got, want)
			}
		}
	}
}

func TestRotateNormalization(t *testing.T) {
	p := gradient(t, 5, 3)
	tests := []struct {
		steps, same int
	}{
		{-3, 1},
		{-1, 3},
		{-4, 0},
		{4, 0},
		{6, 2},
		{7, 3},
		{-6, 2},
		{math.MinInt, 0},
		{math.MinInt + 1, 1},
		{math.MaxInt, 3},
	}
	for _, tt := range tests {
		if !p.Rotate(tt.steps).Equal(p.Rotate(tt.same)) {
			t.Errorf("Rotate(%d) != Rotate(%d)", tt.steps, tt.same)
		}
	}
}

func TestRotateZeroCopies(t *testing.T) {
	p := gradient(t, 4, 2)
	r := p.Rotate(0)
	if r == p {
		t.Fatalf("Rotate(0) returned its input")
	}
	if !r.Equal(p) {
		t.Errorf("Rotate(0) changed the content")
	}
}

func TestFourRotationsRestore(t *testing.T) {
	p := gradient(t, 7, 3)
	before := p.Copy()
	r := p.Rotate(1).Rotate(1).Rotate(1).Rotate(1)
	unchanged(t, "Rotate", p, before)
	if !r.Equal(p) {
		t.Errorf("four quarter turns did not restore the picture")
	}
	if !p.Rotate(2).Rotate(2).Equal(p) {
		t.Errorf("two half turns did not restore the picture")
	}
}

func TestFlipMapping(t *testing.T) {
	p := gradient(t, 4, 3)
	tests := []struct {
		axis          Axis
		width, height int
		dest          func(w, h int) (int, int)
	}{
		{Horizontal, 4, 3, func(w, h int) (int, int) { return w, 2 - h }},
		{Vertical, 4, 3, func(w, h int) (int, int) { return 3 - w, h }},
		{ForwardDiagonal, 3, 4, func(w, h int) (int, int) { return 2 - h, 3 - w }},
		{BackwardDiagonal, 3, 4, func(w, h int) (int, int) { return h, w }},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			before := p.Copy()
			f, err := p.Flip(tt.axis)
			if err != nil {
				t.Fatal(err)
			}
			unchanged(t, "Flip", p, before)

			if f.Width() != tt.width || f.Height() != tt.height {
				t.Fatalf("size = %dx%d, want %dx%d", f.Width(), f.Height(), tt.width, tt.height)
			}
			for h := range 3 {
				for w := range 4 {
					x, y := tt.dest(w, h)
					if got, want := f.Pixel(x, y).Color(), p.Pixel(w, h).Color(); got != want {
						t.Errorf("source (%d, %d) at (%d, %d) = %v, want %v", w, h, x, y, got, want)
					}
				}
			}

			twice, err := f.Flip(tt.axis)
			if err != nil {
				t.Fatal(err)
			}
			if !twice.Equal(p) {
				t.Errorf("flipping twice did not restore the picture")
			}
		})
	}
}

func TestFlipInvalidAxis(t *testing.T) {
	p := gradient(t, 2, 2)
	for _, axis := range []Axis{0, 5, -1} {
		f, err := p.Flip(axis)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Flip(%d) error = %v, want ErrInvalidArgument", axis, err)
		}
		if f != nil {
			t.Errorf("Flip(%d) returned a picture on error", axis)
		}
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
	}{
		{"horizontal", Horizontal},
		{"Vertical", Vertical},
		{"forward-diagonal", ForwardDiagonal},
		{"forward", ForwardDiagonal},
		{" backward ", BackwardDiagonal},
		{"backward-diagonal", BackwardDiagonal},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseAxis("diagonal"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseAxis(diagonal) error = %v, want ErrInvalidArgument", err)
	}
}
