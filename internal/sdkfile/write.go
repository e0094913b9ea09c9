package sdkfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sdk-formatter/internal/format"
)

// Mode names how a write treats the namespace footer.
type Mode int

const (
	// ModeAppend adds blocks to the end of an existing file and never writes
	// the closing footer. A new file gets only the header.
	ModeAppend Mode = iota
	// ModeWhole replaces the file with a complete, wrapped document.
	ModeWhole
)

func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeWhole:
		return "whole"
	default:
		return "unknown"
	}
}

const (
	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
)

// WriteWhole replaces the file at path with text in one atomic step.
func WriteWhole(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return fmt.Errorf("create sdk directory: %w", err)
	}
	return writeAtomic(path, text)
}

// Remove rewrites the file at path without the declaration of struct name.
// The file is read once and replaced atomically; lines outside the
// declaration keep their exact bytes, line endings included. A missing file
// or absent declaration leaves everything untouched.
func Remove(name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open sdk file: %w", err)
	}

	var kept strings.Builder
	loc, found, err := scanDeclaration(file, format.DeclarationPattern(name), func(raw string) {
		kept.WriteString(raw)
	})
	file.Close()
	if err != nil {
		return fmt.Errorf("scan sdk file: %w", err)
	}

	if !found {
		return nil
	}
	if !loc.Closed {
		return fmt.Errorf("remove %s at line %d: %w", name, loc.Start, ErrUnclosedBlock)
	}
	return writeAtomic(path, kept.String())
}

// appendText adds text to the end of an existing file, starting a new line
// first when the file does not already end in one.
func appendText(path, text string) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open sdk file for append: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat sdk file: %w", err)
	}
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := file.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("read sdk file: %w", err)
		}
		if last[0] != '\n' {
			text = "\n" + text
		}
	}

	if _, err := file.WriteString(text); err != nil {
		return fmt.Errorf("append sdk file: %w", err)
	}
	return file.Close()
}

// createText creates a new file holding text. It fails if the file exists.
func createText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return fmt.Errorf("create sdk directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaultFilePerm)
	if err != nil {
		return fmt.Errorf("create sdk file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(text); err != nil {
		return fmt.Errorf("write sdk file: %w", err)
	}
	return file.Close()
}

// writeAtomic writes text to a temp file beside path and renames it over path.
// The existing file's permissions are kept.
func writeAtomic(path, text string) error {
	perm := os.FileMode(defaultFilePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sdk-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriter(tmp)
	if _, err := bw.WriteString(text); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := bw.Flush(); err != nil {
		return cleanup(fmt.Errorf("flush temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	_ = os.Chmod(tmpPath, perm)

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace sdk file: %w", err)
	}
	return nil
}
