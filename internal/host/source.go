package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileSource reads notes from a file on disk. From and To select a 1-based,
// inclusive line range for SelectedText; zero leaves that end open. With both
// zero the selection is the whole file.
type FileSource struct {
	Path string
	From int
	To   int
}

var _ TextSource = (*FileSource)(nil)

func (s *FileSource) DocumentText() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read notes file: %w", err)
	}
	return string(data), nil
}

func (s *FileSource) SelectedText() (string, error) {
	text, err := s.DocumentText()
	if err != nil {
		return "", err
	}
	if s.From <= 0 && s.To <= 0 {
		return text, nil
	}

	lines := strings.SplitAfter(text, "\n")
	from := max(s.From, 1)
	to := len(lines)
	if s.To > 0 && s.To < to {
		to = s.To
	}
	if from > to {
		return "", nil
	}
	return strings.Join(lines[from-1:to], ""), nil
}

func (s *FileSource) Dir() string {
	return filepath.Dir(s.Path)
}

// ParseRange reads a "from:to" line range such as "3:10", "5:" or ":20".
func ParseRange(rng string) (from, to int, err error) {
	if rng == "" {
		return 0, 0, nil
	}
	left, right, ok := strings.Cut(rng, ":")
	if !ok {
		return 0, 0, fmt.Errorf("line range %q: want from:to", rng)
	}
	if from, err = parseBound(left); err != nil {
		return 0, 0, fmt.Errorf("line range %q: %w", rng, err)
	}
	if to, err = parseBound(right); err != nil {
		return 0, 0, fmt.Errorf("line range %q: %w", rng, err)
	}
	if to > 0 && from > to {
		return 0, 0, fmt.Errorf("line range %q: start after end", rng)
	}
	return from, to, nil
}

func parseBound(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad line number %q", s)
	}
	return n, nil
}
