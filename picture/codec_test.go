package picture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadPNG(t *testing.T) {
	p := gradient(t, 12, 9)
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := p.Save(path, PNG); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if !back.Equal(p) {
		t.Errorf("PNG round trip changed the picture")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Save left %d files behind, want 1", len(entries))
	}
}

func TestEncodeDecodeOpaque(t *testing.T) {
	p := gradient(t, 8, 5).Fill(RGB(0, 0, 0))
	for y := range 5 {
		for x := range 8 {
			p.Pixel(x, y).SetColorAlpha(RGB(x*30, y*50, 77))
		}
	}

	for _, format := range []Format{BMP, TIFF, PNG} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := p.Encode(&buf, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, name, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if name != string(format) {
				t.Errorf("decoded format = %q, want %q", name, format)
			}
			if !back.Equal(p) {
				t.Errorf("%s round trip changed the picture", format)
			}
		})
	}
}

func TestEncodeLossy(t *testing.T) {
	p := solid(t, 16, 16, RGB(200, 30, 30))
	for _, format := range []Format{JPEG, GIF} {
		var buf bytes.Buffer
		if err := p.Encode(&buf, format); err != nil {
			t.Fatalf("Encode(%s): %v", format, err)
		}
		back, _, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode(%s): %v", format, err)
		}
		if back.Width() != 16 || back.Height() != 16 {
			t.Errorf("%s size = %dx%d, want 16x16", format, back.Width(), back.Height())
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	p := solid(t, 1, 1, White)
	var buf bytes.Buffer
	if err := p.Encode(&buf, Format("webp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}

	path := filepath.Join(t.TempDir(), "out.webp")
	if err := p.Save(path, Format("webp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(webp) error = %v, want ErrUnsupportedFormat", err)
	}
	if entries, _ := os.ReadDir(filepath.Dir(path)); len(entries) != 0 {
		t.Errorf("failed Save left %d files behind", len(entries))
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Errorf("Decode accepted garbage")
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", PNG},
		{"dir/b.JPG", JPEG},
		{"c.jpeg", JPEG},
		{"d.tif", TIFF},
		{"e.bmp", BMP},
		{"f.gif", GIF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("x.webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}
