package parser

// Kind identifies what a single notes line declares.
type Kind int

const (
	KindIgnored Kind = iota
	KindClassStart
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindIgnored:
		return "ignored"
	case KindClassStart:
		return "class"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// ClassMarker is a parsed "[Class] Name : Base" line.
type ClassMarker struct {
	// Line is the raw input line, unmodified.
	Line string
	// Declaration is the text from the [Class] marker to end of line, trimmed.
	Declaration string
	// OriginalName is the name token as written in the notes.
	OriginalName string
	// BaseName is the optional token after ':' (empty if absent).
	BaseName string
	// Name is OriginalName run through Sanitize. Empty means the block cannot be emitted.
	Name string
}

// FieldEntry is a parsed "[offset][T] name : type" line.
type FieldEntry struct {
	// Offset is the hex digits as written, without any 0x prefix.
	Offset string
	Name   string
	Type   string
}

// Line is the classification result for one input line.
type Line struct {
	Kind  Kind
	Class *ClassMarker
	Field *FieldEntry
}
