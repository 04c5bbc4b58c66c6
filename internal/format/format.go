package format

import (
	"regexp"
	"strings"
)

// ElementKind discriminates the two variants of Element.
type ElementKind int

const (
	// KindLiteral marks an element that emits its text verbatim.
	KindLiteral ElementKind = iota

	// KindField marks an element resolved against the metadata record
	// at render time.
	KindField
)

// Element is one compiled unit of a template: either a literal span or
// a field reference. Exactly one of Literal and Field is meaningful,
// selected by Kind.
type Element struct {
	Kind    ElementKind
	Literal string
	Field   Field
}

// Format is a compiled template: an ordered sequence of elements whose
// left-to-right order matches the source template and defines the
// output order. A Format is immutable once compiled and safe for
// concurrent use.
type Format struct {
	elements []Element
}

// tokenPattern splits a template into its tokens. Alternatives are
// tried in order at each position, so a '%' followed by lowercase
// letters is always a field reference, any other '%' falls through to
// the single-character alternative, and everything else forms maximal
// percent-free runs. Together the three alternatives match at every
// position, so the scan partitions the whole input.
var tokenPattern = regexp.MustCompile(`%[a-z]+|[^%]+|%`)

// Compile parses a template string into a Format.
//
// The scan is a single left-to-right pass. Each "%key" token is matched
// against the closed field set; any unrecognized key fails the whole
// compile with an UnknownFieldError and no Format is produced. A '%'
// not followed by a lowercase letter is literal text. Adjacent literal
// tokens are merged, so the element sequence never contains two
// neighboring literals and never contains an empty one.
//
// Example:
//
//	f, err := format.Compile("%track %artist - %title")
//	// elements: FieldTrack, " ", FieldArtist, " - ", FieldTitle
func Compile(template string) (*Format, error) {
	var elements []Element
	for _, tok := range tokenPattern.FindAllString(template, -1) {
		if len(tok) > 1 && tok[0] == '%' {
			field, ok := fieldFromKey(tok[1:])
			if !ok {
				return nil, &UnknownFieldError{Key: tok[1:]}
			}
			elements = append(elements, Element{Kind: KindField, Field: field})
			continue
		}
		if n := len(elements); n > 0 && elements[n-1].Kind == KindLiteral {
			elements[n-1].Literal += tok
		} else {
			elements = append(elements, Element{Kind: KindLiteral, Literal: tok})
		}
	}
	return &Format{elements: elements}, nil
}

// Render evaluates the compiled template against rec, concatenating
// literal spans and resolved field values in element order.
//
// Resolution is fail-fast: the first field reference the record has no
// value for aborts the render with a MissingFieldError and no partial
// output. Render performs no I/O and does not mutate the Format.
func (f *Format) Render(rec Record) (string, error) {
	var b strings.Builder
	for _, el := range f.elements {
		switch el.Kind {
		case KindField:
			v, err := el.Field.resolve(rec)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		default:
			b.WriteString(el.Literal)
		}
	}
	return b.String(), nil
}

// Elements returns a copy of the compiled element sequence in template
// order. The copy keeps the Format immutable. An empty template has no
// elements and yields nil.
func (f *Format) Elements() []Element {
	if len(f.elements) == 0 {
		return nil
	}
	out := make([]Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Fields returns the distinct fields the template references, in first
// appearance order. The TUI uses this to show which tags a template
// requires before any file is scanned.
func (f *Format) Fields() []Field {
	seen := make(map[Field]bool)
	var fields []Field
	for _, el := range f.elements {
		if el.Kind == KindField && !seen[el.Field] {
			seen[el.Field] = true
			fields = append(fields, el.Field)
		}
	}
	return fields
}
