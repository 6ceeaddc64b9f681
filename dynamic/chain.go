package dynamic

import (
	"slices"
	"strconv"
	"strings"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/option"
)

// Chain is a fluent optic over untyped documents. Every method returns a new
// Chain; a Chain is never modified after it is built. The zero Chain is the
// identity chain.
type Chain struct {
	optic optics.Optic[any, any]
	path  []string
	built bool
}

// New returns the identity chain.
func New() Chain {
	return Chain{optic: optics.Identity[any](), built: true}
}

func (c Chain) then(o optics.Optic[any, any], segment string) Chain {
	return Chain{
		optic: optics.Compose(c.Optic(), o),
		path:  append(slices.Clip(c.path), segment),
		built: true,
	}
}

// Prop focuses on field name of the current record.
func (c Chain) Prop(name string) Chain {
	return c.then(Field(name), propSegment(name))
}

// At focuses on slot i of the current sequence.
func (c Chain) At(i int) Chain {
	return c.then(Index(i), "["+strconv.Itoa(i)+"]")
}

// Opt skips the rest of the chain when the focus is nil.
func (c Chain) Opt() Chain {
	return c.then(optics.Nullable[any](), "?")
}

// Filter focuses on the elements of the current sequence for which pred
// holds.
func (c Chain) Filter(pred func(v any, i int) bool) Chain {
	return c.then(Elements(pred), "[?]")
}

// Collect focuses on every element of the current sequence.
func (c Chain) Collect() Chain {
	return c.then(Elements(nil), "[*]")
}

// Where focuses on the elements of the current sequence whose field name
// renders as value.
func (c Chain) Where(name, value string) Chain {
	return c.then(Elements(Matching(name, value)), "["+bracketName(name)+"="+bracketValue(value)+"]")
}

// Guard keeps the focus only when test holds.
func (c Chain) Guard(test func(any) bool) Chain {
	return c.then(optics.Filtered(test), "{guard}")
}

// Compose appends an externally built optic.
func (c Chain) Compose(o optics.Optic[any, any]) Chain {
	return c.then(o, "{optic}")
}

// Kind returns the kind of the composed optic.
func (c Chain) Kind() optics.Kind {
	return c.Optic().Kind()
}

// Optic returns the composed optic for use with the optics package.
func (c Chain) Optic() optics.Optic[any, any] {
	if !c.built {
		return optics.Identity[any]()
	}
	return c.optic
}

// String renders the chain as a path expression. Filter, Guard and Compose
// steps render as placeholders that Compile does not accept.
func (c Chain) String() string {
	return strings.Join(c.path, "")
}

// Get returns the single focus of a KindOne chain.
func (c Chain) Get(doc any) (any, error) {
	return optics.Get(c.Optic(), doc)
}

// Preview returns the focus of a KindOne or KindOptional chain.
func (c Chain) Preview(doc any) (option.Option[any], error) {
	return optics.Preview(c.Optic(), doc)
}

// Traverse returns every focus in document order.
func (c Chain) Traverse(doc any) []any {
	return optics.Traverse(c.Optic(), doc)
}

// Update returns a function applying fn to every focus of a document.
func (c Chain) Update(fn func(any) any) func(any) any {
	return c.Optic().Update(fn)
}

// Modify applies fn to every focus of doc.
func (c Chain) Modify(doc any, fn func(any) any) any {
	return c.Update(fn)(doc)
}

// Set replaces every focus of doc with v.
func (c Chain) Set(doc, v any) any {
	return optics.Set(c.Optic(), doc, v)
}

func propSegment(name string) string {
	if isPlain(name) {
		return "." + name
	}
	return "[" + strconv.Quote(name) + "]"
}

func bracketName(name string) string {
	if isPlain(name) {
		return name
	}
	return strconv.Quote(name)
}

func bracketValue(value string) string {
	if isPlain(value) {
		return value
	}
	return strconv.Quote(value)
}

func isPlain(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}
