package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultDeclaration is the XML declaration Render emits unless told
// otherwise.
const DefaultDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

type renderOptions struct {
	declaration  string
	quote        byte
	compactClose bool
	escapes      EscapeSet
	scriptCDATA  bool
	attrOrder    func([]string)
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

// WithDeclaration replaces the XML declaration emitted for the document
// root. The empty string omits the declaration.
func WithDeclaration(decl string) RenderOption {
	return func(o *renderOptions) { o.declaration = decl }
}

// WithQuote selects the attribute-value delimiter, '"' or '\''. Other bytes
// are ignored.
func WithQuote(q byte) RenderOption {
	return func(o *renderOptions) {
		if q == '"' || q == '\'' {
			o.quote = q
		}
	}
}

// WithCompactCloseTags renders childless elements as <name/>.
func WithCompactCloseTags(on bool) RenderOption {
	return func(o *renderOptions) { o.compactClose = on }
}

// WithEscapes replaces the base entity-escape set. The character matching
// the active quote delimiter is always escaped in addition, whatever the
// base set says.
func WithEscapes(set EscapeSet) RenderOption {
	return func(o *renderOptions) { o.escapes = set }
}

// WithScriptCDATA wraps CDATA payloads of <script> elements in the
// HTML-polyglot comment form //<![CDATA[ ... //]]> instead of a plain
// CDATA section.
func WithScriptCDATA(on bool) RenderOption {
	return func(o *renderOptions) { o.scriptCDATA = on }
}

// WithAttributeOrder replaces the lexicographic attribute ordering with a
// caller-supplied in-place sort of attribute names.
func WithAttributeOrder(order func(names []string)) RenderOption {
	return func(o *renderOptions) {
		if order != nil {
			o.attrOrder = order
		}
	}
}

// Render serializes a tree to markup. Rendering is a pure function of the
// tree and the options; it cannot fail. A CDATA payload which is not valid
// UTF-8 degrades to empty text.
func Render(n *Node, opts ...RenderOption) string {
	o := renderOptions{
		declaration: DefaultDeclaration,
		quote:       '"',
		escapes:     DefaultEscapes,
		attrOrder:   sort.Strings,
	}
	for _, opt := range opts {
		opt(&o)
	}
	// the quote delimiter itself must never survive unescaped inside
	// attribute values
	if o.quote == '\'' {
		o.escapes |= EscapeApos
	} else {
		o.escapes |= EscapeQuot
	}
	var sb strings.Builder
	renderNode(&sb, n, &o)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node, o *renderOptions) {
	if n.IsDocument() {
		sb.WriteString(o.declaration)
		renderChildren(sb, n, o)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.ElementName)
	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	o.attrOrder(names)
	for _, name := range names {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteByte(o.quote)
		sb.WriteString(Escape(n.Attributes[name], o.escapes))
		sb.WriteByte(o.quote)
	}
	if o.compactClose && len(n.Children) == 0 {
		sb.WriteByte('/')
		sb.WriteByte('>')
		return
	}
	sb.WriteByte('>')
	renderChildren(sb, n, o)
	sb.WriteString("</")
	sb.WriteString(n.ElementName)
	sb.WriteByte('>')
}

func renderChildren(sb *strings.Builder, n *Node, o *renderOptions) {
	for _, ch := range n.Children {
		switch c := ch.(type) {
		case Element:
			renderNode(sb, c.Node, o)
		case Content:
			sb.WriteString(Escape(string(c), o.escapes))
		case Comment:
			// verbatim; embedding "--" or "-->" is the caller's problem
			sb.WriteString("<!--")
			sb.WriteString(string(c))
			sb.WriteString("-->")
		case CData:
			renderCData(sb, n, c, o)
		case Whitespace:
			sb.WriteString(string(c))
		case ProcInst:
			sb.WriteString("<?")
			sb.WriteString(c.Target)
			if c.Data != "" {
				sb.WriteByte(' ')
				sb.WriteString(c.Data)
			}
			sb.WriteString("?>")
		}
	}
}

func renderCData(sb *strings.Builder, parent *Node, c CData, o *renderOptions) {
	var payload string
	if utf8.Valid(c) {
		payload = string(c)
	}
	// a literal "]]>" would terminate the section early
	payload = strings.ReplaceAll(payload, "]]>", "]] >")
	if o.scriptCDATA && parent.ElementName == "script" {
		sb.WriteString("//<![CDATA[")
		sb.WriteString(payload)
		sb.WriteString("//]]>")
		return
	}
	sb.WriteString("<![CDATA[")
	sb.WriteString(payload)
	sb.WriteString("]]>")
}
