package host

import "path/filepath"

// FixedSave saves to Path when set, otherwise to the suggested name inside Dir.
type FixedSave struct {
	Dir  string
	Path string
}

var _ SaveTarget = (*FixedSave)(nil)

func (s *FixedSave) SavePath(suggestedName string) (string, bool, error) {
	if s.Path != "" {
		return s.Path, true, nil
	}
	if suggestedName == "" {
		return "", false, nil
	}
	return filepath.Join(s.Dir, suggestedName), true, nil
}
