package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"
)

// Resolver supplies replacement bytes for an external entity reference.
// Returning ok=false means "do not resolve": the reference expands to
// nothing.
type Resolver func(name, systemID string) ([]byte, bool)

type parseOptions struct {
	processNamespaces       bool
	reportNamespacePrefixes bool
	resolveExternalEntities bool
	resolver                Resolver
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// WithNamespaces enables namespace processing: parsed nodes get their local
// name as ElementName and carry NamespaceURI and QualifiedName.
func WithNamespaces(on bool) ParseOption {
	return func(o *parseOptions) { o.processNamespaces = on }
}

// WithNamespacePrefixes keeps xmlns declarations as ordinary attributes
// when namespace processing is enabled; without it they are consumed by the
// adapter.
func WithNamespacePrefixes(on bool) ParseOption {
	return func(o *parseOptions) { o.reportNamespacePrefixes = on }
}

// WithExternalEntities enables resolution of non-predefined entity
// references through the resolver callback.
func WithExternalEntities(on bool) ParseOption {
	return func(o *parseOptions) { o.resolveExternalEntities = on }
}

// WithEntityResolver installs the resolver consulted for external entity
// references. Without a resolver, enabled entity resolution expands every
// reference to nothing.
func WithEntityResolver(r Resolver) ParseOption {
	return func(o *parseOptions) { o.resolver = r }
}

// --- Parser adapter --------------------------------------------------------

type parserState int

const (
	stateAwaitingDocument parserState = iota
	stateParsing
	stateDone
	stateFailed
)

func (s parserState) String() string {
	return [...]string{"awaiting-document-start", "parsing", "done", "error"}[s]
}

// parser folds the token stream of an encoding/xml decoder into a Node tree
// via a stack of open elements. A parser instance is scoped to a single
// Parse call and must not be shared across concurrent parses.
type parser struct {
	opts   parseOptions
	state  parserState
	stack  []*Node             // open elements, synthetic document root at the bottom
	scopes []map[string]string // in-scope namespace bindings, prefix → URI, innermost last

	parseErrors      []error
	validationErrors []error
}

// Parse reads an XML document from a byte buffer and returns its tree, or a
// single discriminated *ParseError—never a partial tree.
func Parse(data []byte, opts ...ParseOption) (*Node, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{opts: o}
	return p.run(data)
}

func (p *parser) run(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	if p.opts.resolveExternalEntities {
		dec.Entity = p.resolveEntities(data)
	}
	p.startDocument()
	var hostErr error
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			hostErr = err
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.startElement(t)
		case xml.EndElement:
			p.endElement()
		case xml.CharData:
			p.characters(string(t))
		case xml.Comment:
			p.comment(string(t))
		case xml.ProcInst:
			p.processingInstruction(t.Target, string(t.Inst))
		case xml.Directive:
			// DOCTYPE and friends are not modeled
		}
	}
	return p.endDocument(hostErr)
}

func (p *parser) startDocument() {
	tracer().Debugf("xml parser: %s -> %s", p.state, stateParsing)
	p.state = stateParsing
	p.stack = []*Node{NewDocument()}
	p.scopes = []map[string]string{{"xml": "xml"}}
}

func (p *parser) current() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) startElement(t xml.StartElement) {
	p.pushScope(t.Attr)
	if top := p.current(); top != nil && top.IsDocument() && len(p.stack) == 1 {
		if len(top.ElementChildren()) > 0 {
			p.parseErrors = append(p.parseErrors,
				errors.New("unexpected second element at document root"))
		}
	}
	node := New(p.prefixedName(t.Name))
	if p.opts.processNamespaces {
		node.QualifiedName = node.ElementName
		node.ElementName = t.Name.Local
		node.NamespaceURI = t.Name.Space
	}
	for _, a := range t.Attr {
		if p.opts.processNamespaces && !p.opts.reportNamespacePrefixes && isNamespaceDecl(a.Name) {
			continue
		}
		node.SetAttr(p.prefixedName(a.Name), a.Value)
	}
	p.stack = append(p.stack, node)
}

// endElement pops the finished element and appends it to its parent. A pop
// which would leave no parent is a defensive no-op.
func (p *parser) endElement() {
	p.popScope()
	if len(p.stack) < 2 {
		return
	}
	node := p.current()
	p.stack = p.stack[:len(p.stack)-1]
	p.current().Append(Element{Node: node})
}

func (p *parser) characters(s string) {
	top := p.current()
	if top == nil {
		return
	}
	if strings.TrimSpace(s) == "" {
		top.Append(Whitespace(s))
		return
	}
	if top.IsDocument() {
		p.parseErrors = append(p.parseErrors,
			errors.New("character data outside of root element"))
		return
	}
	top.Append(Content(s))
}

func (p *parser) comment(s string) {
	if top := p.current(); top != nil {
		top.Append(Comment(s))
	}
}

func (p *parser) processingInstruction(target, data string) {
	if top := p.current(); top != nil {
		top.Append(ProcInst{Target: target, Data: data})
	}
}

var errUnbalancedDocument = errors.New("unbalanced document structure")
var errNoRootElement = errors.New("document contains no root element")

// endDocument surfaces failures in priority order: the host parser's own
// error first, then the first accumulated parse error, then the first
// accumulated validation error, then structural checks.
func (p *parser) endDocument(hostErr error) (*Node, error) {
	if hostErr != nil {
		p.state = stateFailed
		perr := &ParseError{Kind: KindMalformed, Err: hostErr}
		var syn *xml.SyntaxError
		if errors.As(hostErr, &syn) {
			perr.Line = syn.Line
		}
		return nil, perr
	}
	if len(p.parseErrors) > 0 {
		p.state = stateFailed
		return nil, &ParseError{Kind: KindMalformed, Err: p.parseErrors[0]}
	}
	if len(p.validationErrors) > 0 {
		p.state = stateFailed
		return nil, &ParseError{Kind: KindValidation, Err: p.validationErrors[0]}
	}
	if len(p.stack) != 1 {
		p.state = stateFailed
		return nil, &ParseError{Kind: KindStructural, Err: errUnbalancedDocument}
	}
	root := p.stack[0]
	if len(root.ElementChildren()) == 0 {
		p.state = stateFailed
		return nil, &ParseError{Kind: KindGeneric, Err: errNoRootElement}
	}
	tracer().Debugf("xml parser: %s -> %s", p.state, stateDone)
	p.state = stateDone
	return root, nil
}

// --- Namespace bookkeeping -------------------------------------------------

func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}

func (p *parser) topScope() map[string]string {
	return p.scopes[len(p.scopes)-1]
}

// pushScope extends the innermost binding scope with the xmlns declarations
// of an element start tag.
func (p *parser) pushScope(attrs []xml.Attr) {
	scope := p.topScope()
	extended := false
	for _, a := range attrs {
		if !isNamespaceDecl(a.Name) {
			continue
		}
		if !extended {
			next := make(map[string]string, len(scope)+1)
			for k, v := range scope {
				next[k] = v
			}
			scope = next
			extended = true
		}
		if a.Name.Space == "xmlns" {
			scope[a.Name.Local] = a.Value
		} else {
			scope[""] = a.Value // default namespace
		}
	}
	p.scopes = append(p.scopes, scope)
}

func (p *parser) popScope() {
	if len(p.scopes) > 1 {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

// prefixedName reconstructs the qualified name of the source text. The
// decoder reports namespace URIs, not prefixes, so the prefix is recovered
// from the in-scope bindings; an unbound space is taken to be a literal
// prefix.
func (p *parser) prefixedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	for prefix, uri := range p.topScope() {
		if uri == name.Space {
			if prefix == "" {
				return name.Local
			}
			return prefix + ":" + name.Local
		}
	}
	return name.Space + ":" + name.Local
}

// --- External entities -----------------------------------------------------

var entityRefPattern = regexp.MustCompile(`&([A-Za-z_][A-Za-z0-9._-]*);`)

var predefinedEntities = map[string]bool{
	"lt": true, "gt": true, "amp": true, "apos": true, "quot": true,
}

// resolveEntities seeds the decoder's entity table. The decoder consults a
// static map instead of calling out per reference, so the input is scanned
// for entity names up front and the resolver is asked once per distinct
// name. Unresolved names expand to nothing.
func (p *parser) resolveEntities(data []byte) map[string]string {
	entities := make(map[string]string)
	for _, m := range entityRefPattern.FindAllSubmatch(data, -1) {
		name := string(m[1])
		if predefinedEntities[name] {
			continue
		}
		if _, seen := entities[name]; seen {
			continue
		}
		entities[name] = ""
		if p.opts.resolver != nil {
			if b, ok := p.opts.resolver(name, ""); ok {
				entities[name] = string(b)
			}
		}
		tracer().Debugf("xml parser: entity &%s; -> %q", name, entities[name])
	}
	return entities
}
