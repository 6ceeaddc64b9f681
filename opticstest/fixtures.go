// Package opticstest provides fixtures, rapid generators and assertions for
// testing code built on optics.
package opticstest

// Address is a leaf record.
type Address struct {
	Street string
	Zip    int
}

// Person has a required scalar, an optional record and a slice.
type Person struct {
	Name string
	Age  int
	Addr *Address
	Tags []string
}

// Item is an element of Board.Items.
type Item struct {
	ID    int
	Label string
	Done  bool
}

// Board nests people, slices and maps.
type Board struct {
	Title string
	Owner *Person
	Items []Item
	Meta  map[string]string
}

// Node is a record whose child may be absent, used for absence scenarios.
type Node struct {
	Value string
	Next  *Node
}

// John is the canonical single-person fixture.
func John() Person {
	return Person{
		Name: "John",
		Age:  40,
		Addr: &Address{Street: "Elm", Zip: 1000},
		Tags: []string{"admin", "ops"},
	}
}
