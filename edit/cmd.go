// Package edit implements the edit command: it applies a chain of picture
// operations to every image of a folder.
package edit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"picedit/parallel"
	"picedit/picture"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan   string   `help:"Source folder to scan" default:"."`
	Dest   string   `help:"Destination folder for edited pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"edited"`
	Op     []string `help:"Operation to apply, repeatable, applied in order. Use 'picedit ops' to list them." name:"op" short:"o" sep:"none"`
	Format string   `help:"Output format of edited pictures. If prefixed with 'unsup:' will convert only formats without an encoder" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	Steps  []Step   `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if len(c.Op) == 0 {
		return fmt.Errorf("no operations given")
	}

	c.Steps = c.Steps[:0]
	for _, spec := range c.Op {
		step, err := ParseStep(spec)
		if err != nil {
			return err
		}
		c.Steps = append(c.Steps, step)
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
				if err := c.process(logger, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not edit picture", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string) error {
	pic, imgType, err := picture.Load(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	for _, step := range c.Steps {
		logger.Debug("applying", "op", step.Spec, "width", pic.Width(), "height", pic.Height())
		if pic, err = step.Apply(pic); err != nil {
			return err
		}
	}

	format, err := outputFormat(imgType, c.Format)
	if err != nil {
		return err
	}

	oldExt := filepath.Ext(fileName)
	destName := filepath.Join(c.Dest, fmt.Sprintf("%s.%s", fileName[:len(fileName)-len(oldExt)], format))
	if err := pic.Save(destName, format); err != nil {
		return err
	}

	logger.Info("edited", "to", destName, "ops", len(c.Steps))
	return nil
}

// outputFormat resolves the --format flag against the decoded format.
func outputFormat(imgType, outType string) (picture.Format, error) {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if outType == "same" || (unsupOnly && canEncode(imgType)) {
		outType = imgType
	}

	if !canEncode(outType) {
		return "", fmt.Errorf("%w: %s", picture.ErrUnsupportedFormat, outType)
	}
	return picture.Format(outType), nil
}

func canEncode(format string) bool {
	for _, f := range picture.Formats {
		if string(f) == format {
			return true
		}
	}
	return false
}
