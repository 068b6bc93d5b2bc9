// Package orient implements the orient command, which sorts pictures into
// portrait and landscape folders and can rotate them into one orientation.
package orient

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"picedit/picture"

	"github.com/alecthomas/kong"
)

type OpParams struct {
	Scan      string `help:"Source folder to scan" default:"."`
	Portrait  string `help:"Destination folder for portrait images" default:"portrait"`
	Landscape string `help:"Destination folder for landscape images" default:"landscape"`
	Align     string `help:"Rotate pictures that do not match this orientation and store everything in its folder" enum:",portrait,landscape" default:""`
	Turns     int    `help:"Clockwise quarter turns applied when aligning, negative for counterclockwise" default:"1"`
}

type CLICmd struct {
	Cp cpCmd `cmd:"" help:"Copy images to their respective folders"`
	Mv mvCmd `cmd:"" help:"Move images to their respective folders"`
}

type cpCmd struct {
	OpParams
}

type mvCmd struct {
	OpParams
}

func (c *cpCmd) Run() error {
	return c.run(copyFile, false)
}

func (c *mvCmd) Run() error {
	return c.run(moveFile, true)
}

func (o *OpParams) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(o.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", o.Scan, err)
	}
	o.Scan = scanDir

	if !filepath.IsAbs(o.Portrait) {
		o.Portrait = filepath.Join(scanDir, o.Portrait)
	}

	if !filepath.IsAbs(o.Landscape) {
		o.Landscape = filepath.Join(scanDir, o.Landscape)
	}

	if o.Align != "" && o.Turns%2 == 0 {
		return fmt.Errorf("%w: %d quarter turns cannot change the orientation", picture.ErrInvalidArgument, o.Turns)
	}

	return nil
}

func (o *OpParams) run(fileOp func(string, string) error, removeSource bool) error {
	if err := os.MkdirAll(o.Portrait, 0o755); err != nil {
		return fmt.Errorf("unable to create portrait destination folder %q: %w", o.Portrait, err)
	}

	if err := os.MkdirAll(o.Landscape, 0o755); err != nil {
		return fmt.Errorf("unable to create landscape destination folder %q: %w", o.Landscape, err)
	}

	files, err := os.ReadDir(o.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", o.Scan, err)
	}

	var portraitCount, landscapeCount, rotatedCount, errCount int
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := filepath.Join(o.Scan, file.Name())
		isPortrait, err := portrait(name)
		if err != nil {
			slog.Error("could not read image", "file", name, "error", err)
			continue
		}

		wantPortrait := isPortrait
		switch o.Align {
		case "portrait":
			wantPortrait = true
		case "landscape":
			wantPortrait = false
		}

		dest := filepath.Join(o.Landscape, file.Name())
		if wantPortrait {
			dest = filepath.Join(o.Portrait, file.Name())
		}

		if isPortrait != wantPortrait {
			if err = rotateFile(name, dest, o.Turns, removeSource); err != nil {
				errCount++
				slog.Error("could not rotate image", "from", name, "to", dest, "error", err)
				continue
			}
			rotatedCount++
		} else if err = fileOp(name, dest); err != nil {
			errCount++
			slog.Error("could not operate image", "from", name, "to", dest, "error", err)
			continue
		}

		if wantPortrait {
			portraitCount++
		} else {
			landscapeCount++
		}
	}

	slog.Info("stats", "portraits", portraitCount, "landscapes", landscapeCount, "rotated", rotatedCount,
		"errors", errCount, "total", portraitCount+landscapeCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

// portrait reports whether the image at name is taller than it is wide,
// reading only its header.
func portrait(name string) (bool, error) {
	img, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer func() {
		if closeErr := img.Close(); closeErr != nil {
			slog.Error("could not close image", "file", name, "error", closeErr)
		}
	}()

	imgConf, _, err := image.DecodeConfig(img)
	if err != nil {
		return false, err
	}
	return imgConf.Height > imgConf.Width, nil
}
