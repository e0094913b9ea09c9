// Package format renders parsed class notes as C# offset structs.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"sdk-formatter/internal/parser"
)

const (
	// Namespace wraps every generated SDK file.
	Namespace = "SDK"
	// Header opens the namespace wrapper.
	Header = "namespace " + Namespace + "\n{\n"
	// Footer closes the namespace wrapper.
	Footer = "}\n"

	// FieldKeyword is the declared type of every emitted offset. The notes'
	// own type only survives as a trailing comment.
	FieldKeyword = "uint"

	blockIndent = "    "
	fieldIndent = "        "
)

// Block is one class declaration ready to render.
type Block struct {
	// Name is the sanitized struct identifier.
	Name string
	// Comment is the original class line, echoed above the struct.
	Comment string
	Fields  []parser.FieldEntry
}

// Field renders a single offset constant without indentation.
func Field(f parser.FieldEntry) string {
	return fmt.Sprintf("public const %s %s = 0x%s; // %s", FieldKeyword, f.Name, f.Offset, f.Type)
}

// WriteBlock writes b through its closing "    }\n". Callers decide what
// separates consecutive blocks.
func WriteBlock(sb *strings.Builder, b Block) {
	sb.WriteString(blockIndent + "// " + b.Comment + "\n")
	sb.WriteString(blockIndent + "public readonly partial struct " + b.Name + "\n")
	sb.WriteString(blockIndent + "{\n")
	for _, f := range b.Fields {
		sb.WriteString(fieldIndent + Field(f) + "\n")
	}
	sb.WriteString(blockIndent + "}\n")
}

// Wrap places body inside the SDK namespace.
func Wrap(body string) string {
	return Header + body + Footer
}

// DeclarationPattern matches the struct declaration line for name. The name
// must match as a whole identifier, so "Player" does not find "PlayerState".
func DeclarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`public\s+readonly\s+partial\s+struct\s+` + regexp.QuoteMeta(name) + `\b`)
}
