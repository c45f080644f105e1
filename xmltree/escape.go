package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// EscapeSet selects which reserved characters Escape substitutes with their
// named character references.
type EscapeSet uint8

const (
	EscapeLT EscapeSet = 1 << iota
	EscapeAmp
	EscapeGT
	EscapeQuot
	EscapeApos
)

// DefaultEscapes is the base escape set of Render: <, & and >.
const DefaultEscapes = EscapeLT | EscapeAmp | EscapeGT

// Escape substitutes reserved characters in a single left-to-right scan.
// Characters whose flag is not set, and all other characters, pass through
// unchanged.
func Escape(s string, set EscapeSet) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '<' && set&EscapeLT != 0:
			sb.WriteString("&lt;")
		case c == '&' && set&EscapeAmp != 0:
			sb.WriteString("&amp;")
		case c == '>' && set&EscapeGT != 0:
			sb.WriteString("&gt;")
		case c == '"' && set&EscapeQuot != 0:
			sb.WriteString("&quot;")
		case c == '\'' && set&EscapeApos != 0:
			sb.WriteString("&apos;")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
