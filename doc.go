// Package optics provides composable accessors for reading and immutably
// updating values nested inside structs, maps, pointers and slices.
//
// An Optic[S, A] focuses on values of type A inside a source S and carries a
// Kind: KindOne (exactly one focus), KindOptional (zero or one) or
// KindTraversal (zero or more). Composing two optics yields the weaker of the
// two kinds, see Combine.
//
// Optics are built once, usually at package scope, by chaining steps onto an
// identity optic:
//
//	var street = optics.Prop[string](
//		optics.Prop[*Address](optics.Of[Person](), "Addr").Opt(),
//		"Street",
//	)
//
//	s, _ := optics.Preview(street, p)                   // Some("Elm")
//	p2 := street.Modify(p, func(s string) string { return s + "!" })
//
// Updates never mutate the source. Only the records and slices on the path
// to a changed focus are copied; everything else is shared. When no focus
// changes, the source itself is returned.
//
// Optics hold no mutable state and are safe for concurrent use.
package optics
