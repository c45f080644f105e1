package xmltree

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSimpleDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "misckit.xml")
	defer teardown()
	//
	doc, err := Parse([]byte(`<foo attr="false"><bar>1</bar></foo>`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !doc.IsDocument() {
		t.Fatal("expected the result to be the synthetic document root")
	}
	roots := doc.ElementChildren()
	if len(roots) != 1 || roots[0].ElementName != "foo" {
		t.Fatalf("expected a single root element 'foo', got %v", names(roots))
	}
	foo := roots[0]
	if v, ok := foo.Attr("attr"); !ok || v != "false" {
		t.Errorf("expected attr='false', got %q (ok=%v)", v, ok)
	}
	dict := foo.ElementDictionary(true, true)
	if dict["attr"] != "false" || dict["bar"] != "1" {
		t.Errorf("expected {attr:false bar:1}, got %v", dict)
	}
}

func TestParseMalformedDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "misckit.xml")
	defer teardown()
	//
	doc, err := Parse([]byte("<a><b></a>"))
	if doc != nil {
		t.Error("expected no partial tree on failure")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	if perr.Kind != KindMalformed {
		t.Errorf("expected a malformed-XML error, got %v", perr.Kind)
	}
	if perr.Line == 0 {
		t.Error("expected positional detail from the host parser")
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse(nil)
	if doc != nil || err == nil {
		t.Fatalf("expected empty input to fail, got %v / %v", doc, err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != KindGeneric {
		t.Errorf("expected a generic parse failure, got %v", err)
	}
}

func TestParseTextOutsideRoot(t *testing.T) {
	_, err := Parse([]byte("garbage<a>x</a>"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != KindMalformed {
		t.Errorf("expected character data outside the root to be malformed, got %v", err)
	}
}

func TestParseSecondRootElement(t *testing.T) {
	_, err := Parse([]byte("<a>x</a><b>y</b>"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != KindMalformed {
		t.Errorf("expected a second root element to be malformed, got %v", err)
	}
}

func TestParseUnbalancedStackIsStructural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "misckit.xml")
	defer teardown()
	//
	// Drive the adapter directly: a start without a matching end leaves
	// two nodes on the stack, which must never be tolerated.
	p := &parser{}
	p.startDocument()
	p.stack = append(p.stack, New("orphan"))
	doc, err := p.endDocument(nil)
	if doc != nil {
		t.Error("expected no tree from an unbalanced parse")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != KindStructural {
		t.Errorf("expected a structural error, got %v", err)
	}
}

func TestParseDanglingEndElementIsNoop(t *testing.T) {
	p := &parser{}
	p.startDocument()
	p.endElement() // must not fault and must not pop the document root
	p.endElement()
	if len(p.stack) != 1 {
		t.Errorf("expected the synthetic root to survive, stack depth %d", len(p.stack))
	}
}

func TestParseWhitespaceChildren(t *testing.T) {
	doc, err := Parse([]byte("<a>\n  <b>x</b>\n</a>"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	a := doc.ElementChildren()[0]
	if len(a.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(a.Children))
	}
	if _, ok := a.Children[0].(Whitespace); !ok {
		t.Errorf("expected leading whitespace child, got %T", a.Children[0])
	}
	if _, ok := a.Children[1].(Element); !ok {
		t.Errorf("expected element child, got %T", a.Children[1])
	}
	if _, ok := a.Children[2].(Whitespace); !ok {
		t.Errorf("expected trailing whitespace child, got %T", a.Children[2])
	}
}

func TestParseCommentAndProcInst(t *testing.T) {
	doc, err := Parse([]byte("<a><!--note--><?php echo 1;?></a>"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	a := doc.ElementChildren()[0]
	if c, ok := a.Children[0].(Comment); !ok || string(c) != "note" {
		t.Errorf("expected comment 'note', got %v", a.Children[0])
	}
	pi, ok := a.Children[1].(ProcInst)
	if !ok || pi.Target != "php" || pi.Data != "echo 1;" {
		t.Errorf("expected processing instruction, got %v", a.Children[1])
	}
}

func TestParseNamespaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "misckit.xml")
	defer teardown()
	//
	input := []byte(`<x:a xmlns:x="urn:u" x:b="v">1</x:a>`)
	doc, err := Parse(input, WithNamespaces(true))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	a := doc.ElementChildren()[0]
	if a.ElementName != "a" {
		t.Errorf("expected local name 'a', got %q", a.ElementName)
	}
	if a.NamespaceURI != "urn:u" {
		t.Errorf("expected namespace URI 'urn:u', got %q", a.NamespaceURI)
	}
	if a.QualifiedName != "x:a" {
		t.Errorf("expected qualified name 'x:a', got %q", a.QualifiedName)
	}
	if v, ok := a.Attr("x:b"); !ok || v != "v" {
		t.Errorf("expected attribute x:b='v', got %q (ok=%v)", v, ok)
	}
	if _, ok := a.Attr("xmlns:x"); ok {
		t.Error("expected xmlns declaration to be consumed without prefix reporting")
	}
	//
	doc, err = Parse(input, WithNamespaces(true), WithNamespacePrefixes(true))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	a = doc.ElementChildren()[0]
	if v, ok := a.Attr("xmlns:x"); !ok || v != "urn:u" {
		t.Error("expected xmlns declaration to be reported as an attribute")
	}
}

func TestParsePrefixReconstructionWithoutNamespaceProcessing(t *testing.T) {
	doc, err := Parse([]byte(`<x:a xmlns:x="urn:u"><x:b>1</x:b></x:a>`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	a := doc.ElementChildren()[0]
	if a.ElementName != "x:a" {
		t.Errorf("expected prefixed name 'x:a', got %q", a.ElementName)
	}
	if a.NamespaceURI != "" || a.QualifiedName != "" {
		t.Error("expected namespace fields to stay empty without namespace processing")
	}
	if b := a.ElementChildren()[0]; b.ElementName != "x:b" {
		t.Errorf("expected prefixed name 'x:b', got %q", b.ElementName)
	}
}

func TestParseEntityResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "misckit.xml")
	defer teardown()
	//
	resolver := func(name, systemID string) ([]byte, bool) {
		if name == "greeting" {
			return []byte("hello"), true
		}
		return nil, false
	}
	doc, err := Parse([]byte("<a>&greeting;</a>"),
		WithExternalEntities(true), WithEntityResolver(resolver))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := doc.ElementChildren()[0].ChildContent(); got != "hello" {
		t.Errorf("expected resolved entity content 'hello', got %q", got)
	}
}

func TestParseUnresolvedEntityExpandsToNothing(t *testing.T) {
	doc, err := Parse([]byte("<a>x&unknown;y</a>"), WithExternalEntities(true))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := doc.ElementChildren()[0].ChildContent(); got != "xy" {
		t.Errorf("expected the reference to expand to nothing, got %q", got)
	}
}

func TestParseConcurrentDocuments(t *testing.T) {
	// one adapter instance per parse invocation; parses of different
	// inputs must not interfere
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := Parse([]byte(`<foo attr="false"><bar>1</bar></foo>`))
			if err != nil {
				t.Errorf("unexpected parse error: %v", err)
				return
			}
			if got := doc.ElementChildren()[0].ElementDictionary(true, true); got["bar"] != "1" {
				t.Errorf("expected bar=1, got %v", got)
			}
		}()
	}
	wg.Wait()
}
