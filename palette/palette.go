// Package palette provides the color palettes used to quantize pictures:
// a handful of built-in ones and PAL files in RIFF format.
package palette

import (
	"fmt"
	"image/color"
	stdpalette "image/color/palette"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var builtins = map[string]func() color.Palette{
	"bw": func() color.Palette {
		return color.Palette{color.Black, color.White}
	},
	"gray16": func() color.Palette {
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.Gray{Y: uint8(i * 0x11)}
		}
		return pal
	},
	"vga16": func() color.Palette {
		return color.Palette{
			color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0xAA, 0xFF},
			color.RGBA{0x00, 0xAA, 0x00, 0xFF}, color.RGBA{0x00, 0xAA, 0xAA, 0xFF},
			color.RGBA{0xAA, 0x00, 0x00, 0xFF}, color.RGBA{0xAA, 0x00, 0xAA, 0xFF},
			color.RGBA{0xAA, 0x55, 0x00, 0xFF}, color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
			color.RGBA{0x55, 0x55, 0x55, 0xFF}, color.RGBA{0x55, 0x55, 0xFF, 0xFF},
			color.RGBA{0x55, 0xFF, 0x55, 0xFF}, color.RGBA{0x55, 0xFF, 0xFF, 0xFF},
			color.RGBA{0xFF, 0x55, 0x55, 0xFF}, color.RGBA{0xFF, 0x55, 0xFF, 0xFF},
			color.RGBA{0xFF, 0xFF, 0x55, 0xFF}, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		}
	},
	"web216": func() color.Palette {
		return slices.Clone(stdpalette.WebSafe)
	},
}

// Names returns the built-in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load returns a built-in palette by name, or reads name as a PAL file and
// merges every palette it holds.
func Load(name string) (color.Palette, error) {
	if mk, ok := builtins[strings.ToLower(name)]; ok {
		return mk(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q (built-in: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "file", name, "error", closeErr)
		}
	}()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette file %q holds no colors", name)
	}
	return res, nil
}
