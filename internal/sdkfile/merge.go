package sdkfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"sdk-formatter/internal/format"
)

// Confirmer decides whether an existing declaration may be replaced.
type Confirmer interface {
	ConfirmReplace(className string, startLine, endLine int) (bool, error)
}

// MergeResult describes what Merge did to the SDK file.
type MergeResult struct {
	Path string
	Mode Mode
	// Created is true when the file did not exist and was started with the header.
	Created bool
	// Replaced is true when an older declaration was removed first.
	Replaced bool
	// Previous is the range of the declaration that was found, if any.
	Previous *Location
}

// Merge appends block to the SDK file at path, replacing an existing
// declaration of className when confirm agrees.
//
// A new file receives the namespace header and the block but no footer. An
// existing file must pass IsStructurallyValid before anything is changed.
// Declining the replacement returns ErrReplaceDeclined and leaves the file
// untouched.
func Merge(ctx context.Context, className, block, path string, confirm Confirmer) (MergeResult, error) {
	res := MergeResult{Path: path, Mode: ModeAppend}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	exists, err := fileExists(path)
	if err != nil {
		return res, err
	}
	if exists {
		valid, err := IsStructurallyValid(path)
		if err != nil {
			return res, err
		}
		if !valid {
			return res, fmt.Errorf("%s: %w", path, ErrStructural)
		}
	}

	loc, found, err := Locate(className, path)
	if err != nil {
		return res, err
	}
	if found {
		res.Previous = &loc
		if !loc.Closed {
			return res, fmt.Errorf("%s at line %d: %w", className, loc.Start, ErrUnclosedBlock)
		}

		ok, err := confirm.ConfirmReplace(className, loc.Start, loc.End)
		if err != nil {
			return res, fmt.Errorf("confirm replace: %w", err)
		}
		if !ok {
			return res, ErrReplaceDeclined
		}

		if err := Remove(className, path); err != nil {
			return res, err
		}
		res.Replaced = true
		log.Debug().
			Str("class", className).
			Int("start", loc.Start).
			Int("end", loc.End).
			Msg("Removed existing declaration")
	}

	if !exists {
		if err := createText(path, format.Header+block); err != nil {
			return res, err
		}
		res.Created = true
		return res, nil
	}

	if err := appendText(path, block); err != nil {
		return res, err
	}
	return res, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat sdk file: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("sdk path %s is a directory", path)
	}
	return true, nil
}
