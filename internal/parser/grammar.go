package parser

import (
	"regexp"
	"strings"
)

// ClassToken marks the start of a class block in the notes format.
const ClassToken = "[Class]"

// fieldPattern matches "[offset]" with optional 0x prefix, an optional
// single-letter tag such as [S] or [C], then whitespace and "name : type".
var fieldPattern = regexp.MustCompile(`^\s*\[(?:0[xX])?([0-9A-Fa-f]+)\](?:\[[A-Za-z]\])?\s+(\w+)\s*:\s*(.*?)\s*$`)

// Classify reports whether line starts a class, declares a field, or is noise.
// It never fails: anything it cannot read is KindIgnored.
func Classify(line string) Line {
	if m, ok := parseClass(line); ok {
		return Line{Kind: KindClassStart, Class: m}
	}
	if f, ok := parseField(line); ok {
		return Line{Kind: KindField, Field: f}
	}
	return Line{Kind: KindIgnored}
}

func parseClass(line string) (*ClassMarker, bool) {
	pos := strings.Index(line, ClassToken)
	if pos < 0 {
		return nil, false
	}

	rest := line[pos+len(ClassToken):]
	name, base := rest, ""
	if colon := strings.Index(rest, ":"); colon >= 0 {
		name = rest[:colon]
		base = rest[colon+1:]
		if brace := strings.Index(base, "{"); brace >= 0 {
			base = base[:brace]
		}
	}
	name = strings.TrimSpace(name)

	return &ClassMarker{
		Line:         line,
		Declaration:  strings.TrimSpace(line[pos:]),
		OriginalName: name,
		BaseName:     strings.TrimSpace(base),
		Name:         Sanitize(name),
	}, true
}

func parseField(line string) (*FieldEntry, bool) {
	m := fieldPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	offset, name, typ := m[1], strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
	if offset == "" || name == "" || typ == "" {
		return nil, false
	}

	return &FieldEntry{Offset: offset, Name: name, Type: typ}, true
}

// SplitLines breaks text into lines the way a line reader would: a trailing
// newline does not produce an extra empty line, and a "\r" before each "\n"
// is dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
