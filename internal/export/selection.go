package export

import (
	"strings"

	"sdk-formatter/internal/format"
	"sdk-formatter/internal/parser"
)

// SelectionResult is the output of a selection export.
type SelectionResult struct {
	// Text is the rendered blocks without the namespace wrapper.
	Text string
	// ClassName is the sanitized name of the last block, used to name files.
	ClassName string
	// Blocks counts emitted struct blocks, duplicates included.
	Blocks int
	// Fields counts emitted offset constants across all blocks.
	Fields int
}

// Selection converts a selected range of notes into struct blocks.
//
// Unlike Document it does not deduplicate: each class line opens a fresh
// block. Blocks without fields are still rendered, but a selection with no
// fields at all yields ErrNothingProduced.
func Selection(text string) (SelectionResult, error) {
	if text == "" {
		return SelectionResult{}, ErrEmptySelection
	}

	var (
		out     strings.Builder
		result  SelectionResult
		current *format.Block
	)

	flush := func() {
		if current == nil {
			return
		}
		format.WriteBlock(&out, *current)
		out.WriteString("\n")
		result.Blocks++
		current = nil
	}

	for _, line := range parser.SplitLines(text) {
		cl := parser.Classify(line)

		switch cl.Kind {
		case parser.KindClassStart:
			flush()
			if cl.Class.Name == "" {
				continue
			}
			current = &format.Block{Name: cl.Class.Name, Comment: cl.Class.Line}
			result.ClassName = cl.Class.Name

		case parser.KindField:
			if current == nil {
				continue
			}
			current.Fields = append(current.Fields, *cl.Field)
			result.Fields++
		}
	}
	flush()

	if result.Fields == 0 {
		return SelectionResult{ClassName: result.ClassName}, ErrNothingProduced
	}

	result.Text = out.String()
	return result, nil
}
