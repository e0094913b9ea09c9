package export

import (
	"strings"

	"github.com/rs/zerolog/log"

	"sdk-formatter/internal/format"
	"sdk-formatter/internal/parser"
)

// DocumentResult is the output of a whole-document export.
type DocumentResult struct {
	// Text is the complete SDK file, namespace wrapper included.
	Text string
	// Classes lists emitted struct names in encounter order.
	Classes []string
	// Fields counts emitted offset constants.
	Fields int
}

// Count is the number of distinct classes emitted.
func (r DocumentResult) Count() int { return len(r.Classes) }

// Document converts a full notes document into an SDK file.
//
// Class names are deduplicated after sanitizing: a repeated class closes the
// open block and its own fields are dropped rather than merged into the first
// occurrence. A document with no classes still yields the empty wrapper.
func Document(text string) (DocumentResult, error) {
	if text == "" {
		return DocumentResult{}, ErrEmptyInput
	}

	var (
		body    strings.Builder
		result  DocumentResult
		seen    = make(map[string]struct{})
		current *format.Block
	)

	for _, line := range parser.SplitLines(text) {
		cl := parser.Classify(line)

		switch cl.Kind {
		case parser.KindClassStart:
			if current != nil {
				format.WriteBlock(&body, *current)
				body.WriteString("\n")
				current = nil
			}

			name := cl.Class.Name
			if name == "" {
				log.Debug().Str("line", line).Msg("Skipping class with unusable name")
				continue
			}
			if _, dup := seen[name]; dup {
				log.Debug().Str("class", name).Msg("Skipping duplicate class")
				continue
			}

			seen[name] = struct{}{}
			result.Classes = append(result.Classes, name)
			current = &format.Block{Name: name, Comment: cl.Class.Declaration}

		case parser.KindField:
			if current == nil {
				continue
			}
			current.Fields = append(current.Fields, *cl.Field)
			result.Fields++
		}
	}

	if current != nil {
		format.WriteBlock(&body, *current)
	}

	result.Text = format.Wrap(body.String())
	return result, nil
}
