// Package ascii renders pictures as ASCII art: the picture is cut into
// fixed-size chunks and each chunk is replaced by the glyph whose ink
// density matches the chunk's brightness.
package ascii

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sync"

	"picedit/picture"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// GlyphWidth and GlyphHeight are the size of a chunk and of every glyph.
	GlyphWidth  = 10
	GlyphHeight = 20
	// Buckets is the number of brightness levels, one glyph each.
	Buckets = 13

	bucketSpan = 19
)

// GlyphNames lists the glyphs from darkest to lightest. LoadPalette looks
// for one file per name.
var GlyphNames = [Buckets]string{
	"hash", "at", "ampersand", "dollar", "percent", "bar", "exclamation",
	"semicolon", "colon", "apostrophe", "grave", "dot", "space",
}

var glyphRunes = [Buckets]rune{'#', '@', '&', '$', '%', '|', '!', ';', ':', '\'', '`', '.', ' '}

// Palette maps brightness buckets to glyph pictures. A Palette is immutable
// and safe for concurrent use.
type Palette struct {
	glyphs [Buckets]*picture.Picture
}

// NewPalette copies glyphs, ordered darkest first, into a palette. Every
// glyph must be GlyphWidth x GlyphHeight.
func NewPalette(glyphs [Buckets]*picture.Picture) (*Palette, error) {
	pal := &Palette{}
	for i, g := range glyphs {
		if g == nil {
			return nil, fmt.Errorf("%w: missing %s glyph", picture.ErrInvalidArgument, GlyphNames[i])
		}
		if g.Width() != GlyphWidth || g.Height() != GlyphHeight {
			return nil, fmt.Errorf("%w: %s glyph is %dx%d, want %dx%d", picture.ErrInvalidArgument,
				GlyphNames[i], g.Width(), g.Height(), GlyphWidth, GlyphHeight)
		}
		pal.glyphs[i] = g.Copy()
	}
	return pal, nil
}

// Bucket maps an average brightness in [0, 255] to a glyph index.
func Bucket(avg int) int {
	return min(max(avg/bucketSpan, 0), Buckets-1)
}

// Glyph returns the glyph for a bucket. The picture is shared; callers
// must not modify it and should Copy it if they need to.
func (pal *Palette) Glyph(bucket int) *picture.Picture {
	return pal.glyphs[min(max(bucket, 0), Buckets-1)]
}

var defaultPalette = sync.OnceValue(func() *Palette {
	pal := renderPalette()
	picture.Logger().Debug("rendered default glyph palette", "glyphs", Buckets)
	return pal
})

// DefaultPalette returns the process-wide palette. It is built on first use
// by rasterizing each glyph in black on a white tile and never changes
// afterwards.
func DefaultPalette() *Palette {
	return defaultPalette()
}

func renderPalette() *Palette {
	face := basicfont.Face7x13
	m := face.Metrics()
	lineHeight := (m.Ascent + m.Descent).Ceil()
	baseline := (GlyphHeight-lineHeight)/2 + m.Ascent.Ceil()

	pal := &Palette{}
	for i, r := range glyphRunes {
		tile, _ := picture.New(GlyphWidth, GlyphHeight)
		_, advance, _ := face.GlyphBounds(r)
		d := &font.Drawer{
			Dst:  tile,
			Src:  image.NewUniform(picture.Black),
			Face: face,
			Dot:  fixed.P((GlyphWidth-advance.Round())/2, baseline),
		}
		d.DrawString(string(r))
		pal.glyphs[i] = tile
	}
	return pal
}

// LoadPalette reads one image per entry of GlyphNames from fsys, trying a
// .bmp file first and a .png file second.
func LoadPalette(fsys fs.FS) (*Palette, error) {
	var glyphs [Buckets]*picture.Picture
	for i, name := range GlyphNames {
		g, err := loadGlyph(fsys, name)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
	}
	return NewPalette(glyphs)
}

func loadGlyph(fsys fs.FS, name string) (*picture.Picture, error) {
	for _, ext := range []string{".bmp", ".png"} {
		f, err := fsys.Open(name + ext)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("could not open glyph %q: %w", name+ext, err)
		}

		g, _, err := picture.Decode(f)
		if closeErr := f.Close(); closeErr != nil {
			picture.Logger().Error("could not close glyph", "file", name+ext, "error", closeErr)
		}
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", name+ext, err)
		}
		return g, nil
	}
	return nil, fmt.Errorf("could not find glyph %q: %w", name, fs.ErrNotExist)
}
