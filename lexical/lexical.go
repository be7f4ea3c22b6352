// Package lexical implements the primitive lexical grammars of the XSD
// built-in datatypes: one parser and one formatter per datatype
// representation. The generated dispatch delegates here; nothing in
// this package knows about the datatype tree.
//
// The grammars are the pragmatic subset needed to round-trip values.
// Parsing then formatting canonicalizes a lexical form; the result is
// not necessarily byte-identical to the input (numeric normalization in
// particular).
package lexical

import "fmt"

// ParseError reports that a lexical form does not belong to the
// datatype it was parsed against. It is deliberately opaque: callers
// cannot tell which grammar rejected the text.
type ParseError struct {
	Datatype string
	Text     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s lexical form: %q", e.Datatype, e.Text)
}

func parseError(datatype, text string) error {
	return &ParseError{Datatype: datatype, Text: text}
}
