package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
)

// ErrUnableToParse is the fallback when parsing fails without any
// structured detail from the host parser.
var ErrUnableToParse = errors.New("unable to parse XML document")

// ErrorKind discriminates the failure modes of Parse.
type ErrorKind int

const (
	// KindMalformed is a well-formedness violation reported by the host
	// parser or by the adapter's own structural checks on the token stream.
	KindMalformed ErrorKind = iota + 1
	// KindValidation is a validation failure; surfaced with lower priority
	// than malformedness.
	KindValidation
	// KindStructural means the host parser succeeded but left the open
	// element stack with a count other than one, indicating an unbalanced
	// or missing root. Never silently tolerated.
	KindStructural
	// KindGeneric is the fallback for an otherwise unexplained failure.
	KindGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindValidation:
		return "validation"
	case KindStructural:
		return "structural"
	default:
		return "generic"
	}
}

// ParseError is the single discriminated error value Parse returns; callers
// never receive partial trees. Line and Column are positional detail from
// the host parser, 0 when unavailable.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("xml %s error at line %d: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("xml %s error: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
