package orient

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"picedit/picture"
)

func copyFile(src, dest string) error {
	slog.Info("copying", "from", src, "to", dest)

	if err := checkFile(src, dest); err != nil {
		return err
	}
	return copyContents(src, dest)
}

func copyContents(src, dest string) (err error) {
	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	outFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("could not close destination file %q: %w", dest, closeErr))
		}
	}()

	if _, err = io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("could not copy from %q to %q: %w", src, dest, err)
	}

	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}

// moveFile renames src to dest, copying and removing the source when the
// two live on different devices.
func moveFile(src, dest string) error {
	slog.Info("moving", "from", src, "to", dest)

	if err := checkFile(src, dest); err != nil {
		return err
	}

	err := os.Rename(src, dest)
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	slog.Debug("rename failed, copying instead", "from", src, "to", dest, "error", err)
	if err := copyContents(src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("could not remove source file %q: %w", src, err)
	}
	return nil
}

func checkFile(src, dest string) error {
	srcFileInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot copy non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}
	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
	} else {
		return fmt.Errorf("destination file already exists: %q", destFileInfo.Name())
	}

	return nil
}

// rotateFile writes src turned by turns quarter turns to dest, keeping the
// source format when it can be encoded and falling back to PNG otherwise.
func rotateFile(src, dest string, turns int, removeSource bool) error {
	slog.Info("rotating", "from", src, "to", dest, "turns", turns)

	pic, imgType, err := picture.Load(src)
	if err != nil {
		return err
	}

	format := picture.Format(imgType)
	if !slices.Contains(picture.Formats, format) {
		format = picture.PNG
		dest = dest[:len(dest)-len(filepath.Ext(dest))] + "." + string(format)
	}

	if err := checkFile(src, dest); err != nil {
		return err
	}

	if err := pic.Rotate(turns).Save(dest, format); err != nil {
		return err
	}

	if removeSource {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("could not remove source file %q: %w", src, err)
		}
	}
	return nil
}
