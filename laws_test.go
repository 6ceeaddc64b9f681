package optics_test

import (
	"testing"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/opticstest"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var personName = optics.Prop[string](optics.Of[opticstest.Person](), "Name")

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

func TestFieldGetSetLaw(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("Get(Set(s, v)) == v", prop.ForAll(
		func(name string, age int, newName string) bool {
			p := opticstest.Person{Name: name, Age: age}
			return optics.MustGet(personName, optics.Set(personName, p, newName)) == newName
		},
		gen.AnyString(),
		gen.Int(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestFieldSetGetLaw(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("Set(s, Get(s)) is s itself", prop.ForAll(
		func(name string, age int) bool {
			p := opticstest.Person{Name: name, Age: age, Tags: []string{name}}
			out := optics.Set(personName, p, optics.MustGet(personName, p))
			return out.Name == p.Name && out.Age == p.Age && &out.Tags[0] == &p.Tags[0]
		},
		gen.AnyString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestFieldSetSetLaw(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("Set(Set(s, a), b) == Set(s, b)", prop.ForAll(
		func(name, a, b string) bool {
			p := opticstest.Person{Name: name}
			return optics.Set(personName, optics.Set(personName, p, a), b).Name == optics.Set(personName, p, b).Name
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestNoOpUpdateReturnsSource verifies identity updates hand back the source
// for every kind of optic.
func TestNoOpUpdateReturnsSource(t *testing.T) {
	ownerStreet := optics.Prop[string](
		optics.Prop[*opticstest.Address](optics.Deref(optics.Prop[*opticstest.Person](optics.Of[opticstest.Board](), "Owner")), "Addr").Opt(),
		"Street",
	)
	thirdDone := optics.Prop[bool](optics.At(boardItems, 2), "Done")
	meta := optics.MapKey(optics.Prop[map[string]string](optics.Of[opticstest.Board](), "Meta"), "a")

	rapid.Check(t, func(t *rapid.T) {
		board := opticstest.BoardGen().Draw(t, "board")

		opticstest.AssertSame(t, board, boardLabels.Modify(board, func(s string) string { return s }))
		opticstest.AssertSame(t, board, ownerStreet.Modify(board, func(s string) string { return s }))
		opticstest.AssertSame(t, board, thirdDone.Modify(board, func(b bool) bool { return b }))
		opticstest.AssertSame(t, board, meta.Modify(board, func(s string) string { return s }))
		opticstest.AssertSame(t, board, boardItems.Modify(board, func(it []opticstest.Item) []opticstest.Item { return it }))
	})
}

// TestFilterMatchesMappedSelection verifies a filtered update equals mapping
// the transform over the selected elements only.
func TestFilterMatchesMappedSelection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(opticstest.ItemGen(), 0, 10).Draw(t, "items")
		threshold := rapid.IntRange(0, 1000).Draw(t, "threshold")

		pred := func(it opticstest.Item, _ int) bool { return it.ID >= threshold }
		f := func(it opticstest.Item) opticstest.Item {
			it.Label += "!"
			return it
		}

		got := optics.Filter(optics.Of[[]opticstest.Item](), pred).Modify(items, f)

		want := make([]opticstest.Item, len(items))
		for i, it := range items {
			if pred(it, i) {
				it = f(it)
			}
			want[i] = it
		}
		if len(items) == 0 {
			assert.Empty(t, got)
			return
		}
		assert.Equal(t, want, got)
	})
}

// TestSingleIndexFocus verifies At touches exactly one slot.
func TestSingleIndexFocus(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(opticstest.ItemGen(), 1, 10).Draw(t, "items")
		i := rapid.IntRange(0, len(items)-1).Draw(t, "index")
		at := optics.At(optics.Of[[]opticstest.Item](), i)

		assert.Equal(t, items[i], optics.MustPreview(at, items).Unwrap())

		out := at.Modify(items, func(it opticstest.Item) opticstest.Item {
			it.ID = -1
			return it
		})
		for j := range items {
			if j == i {
				assert.Equal(t, -1, out[j].ID)
				continue
			}
			assert.Equal(t, items[j], out[j])
		}
	})
}

// TestCompositionIsAssociative verifies both groupings of three optics agree
// on kind, foci and updates.
func TestCompositionIsAssociative(t *testing.T) {
	items := optics.Prop[[]opticstest.Item](optics.Of[opticstest.Board](), "Items")
	done := optics.Elements(func(it opticstest.Item, _ int) bool { return it.Done })
	label := optics.MustField[opticstest.Item, string]("Label")

	owner := optics.Prop[*opticstest.Person](optics.Of[opticstest.Board](), "Owner")
	deref := optics.Pointer[opticstest.Person]()
	name := optics.MustField[opticstest.Person, string]("Name")

	left := optics.Compose(optics.Compose(items, done), label)
	right := optics.Compose(items, optics.Compose(done, label))
	leftName := optics.Compose(optics.Compose(owner, deref), name)
	rightName := optics.Compose(owner, optics.Compose(deref, name))

	assert.Equal(t, left.Kind(), right.Kind())
	assert.Equal(t, leftName.Kind(), rightName.Kind())

	rapid.Check(t, func(t *rapid.T) {
		board := opticstest.BoardGen().Draw(t, "board")
		suffix := rapid.StringMatching(`[a-z]{0,2}`).Draw(t, "suffix")
		f := func(s string) string { return s + suffix }

		assert.Equal(t, optics.Traverse(left, board), optics.Traverse(right, board))
		assert.Equal(t, left.Modify(board, f), right.Modify(board, f))
		assert.Equal(t, optics.MustPreview(leftName, board), optics.MustPreview(rightName, board))
		assert.Equal(t, leftName.Modify(board, f), rightName.Modify(board, f))
	})
}
