package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Node is an XML element, or—if ElementName is empty—the synthetic document
// root, which is never rendered as a tag itself.
//
// A Node owns its subtree exclusively: element children are not shared
// between parents and the tree contains no cycles. Node values carry no
// concurrency contract of their own; they are safe to share for reading
// and require exclusive access for mutation.
type Node struct {
	ElementName string
	Attributes  map[string]string
	Children    []Child

	// populated only when namespace processing is enabled during parsing
	NamespaceURI  string
	QualifiedName string
}

// Child is one ordered child of a Node. The concrete types are Element,
// Content, Comment, CData, Whitespace and ProcInst; the ordering of a
// node's children is exactly the document order of the source.
type Child interface {
	isChild()
}

// Element is a nested element child.
type Element struct {
	Node *Node
}

// Content is parsed character data.
type Content string

// Comment is the body of an XML comment, without the <!-- --> delimiters.
type Comment string

// CData holds the raw bytes of a CDATA section, interpreted as UTF-8 text
// at render time.
type CData []byte

// Whitespace is ignorable whitespace, reported separately from Content.
type Whitespace string

// ProcInst is a processing instruction <?target data?>. Data may be empty.
type ProcInst struct {
	Target string
	Data   string
}

func (Element) isChild()    {}
func (Content) isChild()    {}
func (Comment) isChild()    {}
func (CData) isChild()      {}
func (Whitespace) isChild() {}
func (ProcInst) isChild()   {}

// New creates an element node.
func New(name string) *Node {
	return &Node{ElementName: name}
}

// NewDocument creates a synthetic document root.
func NewDocument() *Node {
	return &Node{}
}

// IsDocument is true for the synthetic document root.
func (n *Node) IsDocument() bool {
	return n.ElementName == ""
}

// Append appends a child, preserving document order. It returns n to allow
// for chaining.
func (n *Node) Append(ch Child) *Node {
	n.Children = append(n.Children, ch)
	return n
}

// AddElement appends a new element child and returns it. A non-empty
// content string becomes the child's text: plain character data by default,
// or a CDATA section if cdata is set.
func (n *Node) AddElement(name, content string, cdata bool) *Node {
	el := New(name)
	if content != "" {
		if cdata {
			el.Append(CData(content))
		} else {
			el.Append(Content(content))
		}
	}
	n.Append(Element{Node: el})
	return el
}

// Attr looks up an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attributes[name]
	return v, ok
}

// SetAttr sets an attribute value, creating the attribute map on first use.
// It returns n to allow for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
	return n
}

// String renders the tree without an XML declaration.
func (n *Node) String() string {
	return Render(n, WithDeclaration(""))
}
