package sdkfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"sdk-formatter/internal/format"
)

// Location is the 1-based, inclusive line range of a struct declaration.
type Location struct {
	Start int
	End   int
	// Closed is false when the declaration was found but its braces never
	// balanced before end of file. End is zero in that case.
	Closed bool
}

// Locate finds the first declaration of struct name in the file at path.
// A missing file is reported as not found, not as an error.
func Locate(name, path string) (Location, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Location{}, false, nil
		}
		return Location{}, false, fmt.Errorf("open sdk file: %w", err)
	}
	defer file.Close()

	loc, found, err := scanDeclaration(file, format.DeclarationPattern(name), nil)
	if err != nil {
		return Location{}, false, fmt.Errorf("scan sdk file: %w", err)
	}
	return loc, found, nil
}

// scanDeclaration walks r line by line looking for the first line matching
// decl, then counts braces until the balance drops to zero or below. The
// balance is seeded from the declaration line starting at the match, and the
// end only counts once an opening brace has been seen. Lines outside the
// block are passed to keep with their original terminators when keep is
// non-nil; with a nil keep the scan stops at the block end.
func scanDeclaration(r io.Reader, decl *regexp.Regexp, keep func(raw string)) (Location, bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	scanner.Split(scanRawLines)

	var (
		loc     Location
		found   bool
		inBlock bool
		opened  bool
		balance int
		lineNum int
	)

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := trimEOL(raw)

		switch {
		case !found && decl.MatchString(line):
			found, inBlock = true, true
			loc.Start = lineNum
			balance = 0
			opened = false
			// Text before the declaration on the same line belongs to
			// whatever precedes it: its braces are not counted and it is kept.
			at := decl.FindStringIndex(line)[0]
			if head := line[:at]; keep != nil && strings.TrimSpace(head) != "" {
				keep(strings.TrimRightFunc(head, isSpace) + raw[len(line):])
			}
			line = line[at:]
		case inBlock:
		default:
			if keep != nil {
				keep(raw)
			}
			continue
		}

		balance += strings.Count(line, "{") - strings.Count(line, "}")
		if strings.Contains(line, "{") {
			opened = true
		}
		if opened && balance <= 0 {
			loc.End = lineNum
			loc.Closed = true
			inBlock = false
			if keep == nil {
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Location{}, false, err
	}
	return loc, found, nil
}

// scanRawLines is bufio.ScanLines without stripping the line terminator, so
// tokens can be written back byte for byte.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func trimEOL(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}

// IsStructurallyValid reports whether the file at path can take appended
// blocks: it is missing, empty, or its content ends with '}' once trailing
// whitespace is ignored.
func IsStructurallyValid(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("read sdk file: %w", err)
	}

	content := strings.TrimRightFunc(string(data), isSpace)
	return content == "" || strings.HasSuffix(content, "}"), nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
