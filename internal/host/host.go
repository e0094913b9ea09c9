// Package host provides the editor-side capabilities an export session
// talks to. The CLI wires file- and terminal-backed versions of each.
package host

// TextSource yields the text an export works on.
type TextSource interface {
	// SelectedText returns the current selection, or "" when nothing is selected.
	SelectedText() (string, error)
	// DocumentText returns the whole current document.
	DocumentText() (string, error)
	// Dir is the directory of the current document, used as the default output location.
	Dir() string
}

// DocumentSink displays a written file.
type DocumentSink interface {
	Open(path string) error
	SetLanguageHint(path, tag string) error
}

// DecisionDelegate answers yes/no questions on behalf of the user.
type DecisionDelegate interface {
	ConfirmReplace(className string, startLine, endLine int) (bool, error)
}

// SaveTarget picks where an individual export is written. ok is false when
// the user cancelled.
type SaveTarget interface {
	SavePath(suggestedName string) (path string, ok bool, err error)
}
