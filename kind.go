package optics

import "fmt"

// Kind classifies how many foci an optic has.
type Kind uint8

const (
	// KindOne optics always have exactly one focus.
	KindOne Kind = iota
	// KindOptional optics have zero or one focus.
	KindOptional
	// KindTraversal optics have zero or more foci.
	KindTraversal
)

var composeTable = [3][3]Kind{
	KindOne:       {KindOne, KindOptional, KindTraversal},
	KindOptional:  {KindOptional, KindOptional, KindTraversal},
	KindTraversal: {KindTraversal, KindTraversal, KindTraversal},
}

// Combine returns the kind of an optic made by composing an outer optic of
// kind outer with an inner optic of kind inner. KindOne is the identity and
// KindTraversal absorbs everything.
func Combine(outer, inner Kind) Kind {
	if !outer.Valid() || !inner.Valid() {
		panic(fmt.Sprintf("optics: cannot combine kinds %v and %v", outer, inner))
	}
	return composeTable[outer][inner]
}

// Valid reports whether k is one of the three kinds.
func (k Kind) Valid() bool {
	return k <= KindTraversal
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOne:
		return "One"
	case KindOptional:
		return "Optional"
	case KindTraversal:
		return "Traversal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
