package edit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"picedit/parallel"
	"picedit/picture"
)

func gray(t *testing.T, width, height, level int) *picture.Picture {
	t.Helper()
	p, err := picture.NewFilled(width, height, picture.RGB(level, level, level))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"grayscale", false},
		{"  NEGATE ", false},
		{"lighten:20", false},
		{"darken:-3", false},
		{"rotate:-1", false},
		{"flip:forward-diagonal", false},
		{"bucket:0,0,10,#ff0000", false},
		{"text:1,2,hello, world", false},
		{"quantize:bw", false},
		{"quantize:gray16,dither", false},
		{"fill:#00ff00", false},
		{"ascii", false},
		{"scale:10", false},

		{"", true},
		{"sharpen", true},
		{"grayscale:1", true},
		{"lighten", true},
		{"lighten:", true},
		{"lighten:lots", true},
		{"flip:sideways", true},
		{"bucket:0,0,10", true},
		{"bucket:0,0,10,red", true},
		{"text:1,2", true},
		{"quantize:bw,fast", true},
		{"quantize:no-such-palette", true},
		{"chromakey:0,0,10,no-such-background.png", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			step, err := ParseStep(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStep(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err == nil && step.Spec != tt.spec {
				t.Errorf("Spec = %q, want %q", step.Spec, tt.spec)
			}
		})
	}
}

func TestParseStepArgumentErrors(t *testing.T) {
	for _, spec := range []string{"sharpen", "lighten", "lighten:lots", "negate:1", "flip:up"} {
		if _, err := ParseStep(spec); !errors.Is(err, picture.ErrInvalidArgument) {
			t.Errorf("ParseStep(%q) error = %v, want ErrInvalidArgument", spec, err)
		}
	}
}

func apply(t *testing.T, spec string, p *picture.Picture) *picture.Picture {
	t.Helper()
	step, err := ParseStep(spec)
	if err != nil {
		t.Fatalf("ParseStep(%q): %v", spec, err)
	}
	out, err := step.Apply(p)
	if err != nil {
		t.Fatalf("%s: %v", spec, err)
	}
	return out
}

func TestStepApply(t *testing.T) {
	src := gray(t, 4, 2, 100)

	if got, want := apply(t, "darken:30", src).Pixel(0, 0).Color(), picture.RGB(70, 70, 70); got != want {
		t.Errorf("darken:30 = %v, want %v", got, want)
	}
	if got, want := apply(t, "red:200", src).Pixel(3, 1).Color(), picture.RGB(255, 100, 100); got != want {
		t.Errorf("red:200 = %v, want %v", got, want)
	}
	if got, want := apply(t, "bucket:0,0,0,#ff0000", src).Pixel(3, 1).Color(), picture.RGB(255, 0, 0); got != want {
		t.Errorf("bucket = %v, want %v", got, want)
	}
	if got, want := apply(t, "fill:#0000ff", src).Pixel(2, 0).Color(), picture.RGB(0, 0, 255); got != want {
		t.Errorf("fill = %v, want %v", got, want)
	}

	rotated := apply(t, "rotate:1", src)
	if rotated.Width() != 2 || rotated.Height() != 4 {
		t.Errorf("rotate:1 gave %dx%d, want 2x4", rotated.Width(), rotated.Height())
	}

	scaled := apply(t, "scale:4", src)
	if scaled.Width() != 8 || scaled.Height() != 4 {
		t.Errorf("scale:4 gave %dx%d, want 8x4", scaled.Width(), scaled.Height())
	}

	if got := apply(t, "quantize:bw", src).Pixel(1, 1).Color(); got != picture.Black {
		t.Errorf("quantize:bw = %v, want black", got)
	}

	if got := apply(t, "grayscale", src); !got.Equal(src) {
		t.Errorf("grayscale changed a gray picture")
	}
	if !src.Equal(gray(t, 4, 2, 100)) {
		t.Errorf("steps modified their input")
	}
}

func TestStepText(t *testing.T) {
	// The message keeps its commas.
	out := apply(t, "text:2,30,a, b, c", gray(t, 120, 40, 0))
	var lit int
	for y := range out.Height() {
		for x := range out.Width() {
			if out.Pixel(x, y).Average() > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Errorf("text step drew nothing")
	}
}

func TestStepApplyError(t *testing.T) {
	step, err := ParseStep("bucket:9,9,10,#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	_, err = step.Apply(gray(t, 3, 3, 0))
	if !errors.Is(err, picture.ErrInvalidArgument) {
		t.Errorf("Apply error = %v, want ErrInvalidArgument", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "bucket:9,9,10,#ff0000: ") {
		t.Errorf("Apply error %q does not name the step", err)
	}
}

func TestUsage(t *testing.T) {
	usage := Usage()
	if got := strings.Count(usage, "\n"); got != len(ops) {
		t.Errorf("Usage has %d lines, want %d", got, len(ops))
	}
	for _, want := range []string{"grayscale", "flip:AXIS", "chromakey:X,Y,T,BACKGROUND", "quantize:PALETTE,dither"} {
		if !strings.Contains(usage, want) {
			t.Errorf("Usage does not mention %q", want)
		}
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		imgType, outType string
		want             picture.Format
		wantErr          bool
	}{
		{"png", "same", picture.PNG, false},
		{"jpeg", "same", picture.JPEG, false},
		{"webp", "same", "", true},
		{"jpeg", "unsup:png", picture.JPEG, false},
		{"webp", "unsup:png", picture.PNG, false},
		{"webp", "unsup:tiff", picture.TIFF, false},
		{"gif", "bmp", picture.BMP, false},
		{"webp", "jpeg", picture.JPEG, false},
	}
	for _, tt := range tests {
		t.Run(tt.imgType+"->"+tt.outType, func(t *testing.T) {
			got, err := outputFormat(tt.imgType, tt.outType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("outputFormat error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, picture.ErrUnsupportedFormat) {
				t.Errorf("outputFormat error = %v, want ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("outputFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func writePicture(t *testing.T, path string, p *picture.Picture, format picture.Format) {
	t.Helper()
	if err := p.Save(path, format); err != nil {
		t.Fatal(err)
	}
}

func runEdit(t *testing.T, c *CLICmd) error {
	t.Helper()
	if err := c.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	pool := parallel.Start(2)
	defer pool.Wait(true)
	return c.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writePicture(t, filepath.Join(dir, "a.png"), gray(t, 6, 3, 10), picture.PNG)
	writePicture(t, filepath.Join(dir, "b.bmp"), gray(t, 4, 8, 250), picture.BMP)

	c := &CLICmd{
		Scan:   dir,
		Dest:   "out",
		Op:     []string{"negate", "rotate:1"},
		Format: "unsup:png",
	}
	if err := runEdit(t, c); err != nil {
		t.Fatalf("Run: %v", err)
	}

	tests := []struct {
		name          string
		width, height int
		level         int
	}{
		{"a.png", 3, 6, 245},
		{"b.bmp", 8, 4, 5},
	}
	for _, tt := range tests {
		p, _, err := picture.Load(filepath.Join(dir, "out", tt.name))
		if err != nil {
			t.Errorf("Load(%s): %v", tt.name, err)
			continue
		}
		if p.Width() != tt.width || p.Height() != tt.height {
			t.Errorf("%s is %dx%d, want %dx%d", tt.name, p.Width(), p.Height(), tt.width, tt.height)
		}
		if got, want := p.Pixel(0, 0).Color(), picture.RGB(tt.level, tt.level, tt.level); got != want {
			t.Errorf("%s pixel = %v, want %v", tt.name, got, want)
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writePicture(t, filepath.Join(dir, "good.png"), gray(t, 2, 2, 0), picture.PNG)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a picture"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &CLICmd{
		Scan:   dir,
		Dest:   filepath.Join(dir, "edited"),
		Op:     []string{"negate"},
		Format: "tiff",
	}
	if err := runEdit(t, c); err == nil {
		t.Errorf("Run succeeded with an undecodable file")
	}
	if _, err := os.Stat(filepath.Join(dir, "edited", "good.tiff")); err != nil {
		t.Errorf("good picture was not edited: %v", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := map[string]CLICmd{
		"missing scan": {Scan: filepath.Join(dir, "missing"), Op: []string{"negate"}},
		"scan file":    {Scan: file, Op: []string{"negate"}},
		"no ops":       {Scan: dir},
		"bad op":       {Scan: dir, Op: []string{"sharpen"}},
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			if err := c.Validate(nil); err == nil {
				t.Errorf("Validate accepted %+v", c)
			}
		})
	}

	c := CLICmd{Scan: dir, Dest: "edited", Op: []string{"negate", "blur:1"}}
	if err := c.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if want := filepath.Join(dir, "edited"); c.Dest != want {
		t.Errorf("Dest = %q, want %q", c.Dest, want)
	}
	if len(c.Steps) != 2 {
		t.Errorf("parsed %d steps, want 2", len(c.Steps))
	}
}
