package dynamic_test

import (
	"strings"
	"testing"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/dynamic"
	"github.com/authcorp/libs/go/optics/opticstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func johnDoc() map[string]any {
	return map[string]any{
		"name": "John",
		"age":  40,
		"addr": map[string]any{"street": "Elm", "zip": 1000},
		"tags": []any{"admin", "ops"},
	}
}

func exclaim(v any) any { return v.(string) + "!" }

func TestStreetScenario(t *testing.T) {
	street := dynamic.New().Prop("addr").Opt().Prop("street")
	doc := johnDoc()

	assert.Equal(t, optics.KindOptional, street.Kind())
	v, err := street.Preview(doc)
	require.NoError(t, err)
	assert.Equal(t, "Elm", v.Unwrap())

	out := street.Modify(doc, exclaim).(map[string]any)
	addr := out["addr"].(map[string]any)
	assert.Equal(t, "Elm!", addr["street"])
	assert.Equal(t, 1000, addr["zip"])
	assert.Equal(t, "Elm", doc["addr"].(map[string]any)["street"])
	opticstest.AssertSame(t, doc["tags"], out["tags"])
	opticstest.AssertNotSame(t, doc["addr"], out["addr"])
}

func TestAbsenceScenario(t *testing.T) {
	doc := map[string]any{
		"value": "c",
		"b":     map[string]any{"value": "b", "a": nil},
	}
	value := dynamic.New().Prop("b").Prop("a").Opt().Prop("value")

	out := value.Modify(doc, func(v any) any { return v.(string) + "x" })
	opticstest.AssertSame(t, doc, out)

	v, err := value.Preview(doc)
	require.NoError(t, err)
	assert.True(t, v.IsNone())
}

func TestPropOnMissingAndNil(t *testing.T) {
	name := dynamic.New().Prop("name")

	got, err := name.Get(map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, map[string]any{"name": "x"}, name.Set(nil, "x"))
	assert.Equal(t, map[string]any{"a": 1, "name": "x"}, name.Set(map[string]any{"a": 1}, "x"))

	assert.PanicsWithError(t, `dynamic: cannot set field "name" on int with string`, func() {
		name.Set(3, "x")
	})
}

func TestAtAndCollect(t *testing.T) {
	doc := map[string]any{"items": []any{"a", "b", "c"}}
	second := dynamic.New().Prop("items").At(1)

	v, err := second.Preview(doc)
	require.NoError(t, err)
	assert.Equal(t, "b", v.Unwrap())

	out := second.Modify(doc, exclaim).(map[string]any)
	assert.Equal(t, []any{"a", "b!", "c"}, out["items"])
	assert.Equal(t, []any{"a", "b", "c"}, doc["items"])

	opticstest.AssertSame(t, doc, dynamic.New().Prop("items").At(7).Set(doc, "z"))
	opticstest.AssertSame(t, doc, dynamic.New().Prop("name").At(0).Set(doc, "z"))

	all := dynamic.New().Prop("items").Collect()
	assert.Equal(t, optics.KindTraversal, all.Kind())
	assert.Equal(t, []any{"a", "b", "c"}, all.Traverse(doc))
	assert.Empty(t, dynamic.New().Prop("missing").Collect().Traverse(doc))
}

func TestFilterUsesValueAndIndex(t *testing.T) {
	doc := []any{1, 2, 3, 4, 5}
	evenSlots := dynamic.New().Filter(func(_ any, i int) bool { return i%2 == 0 })

	assert.Equal(t, []any{1, 3, 5}, evenSlots.Traverse(doc))
	assert.Equal(t, []any{10, 2, 30, 4, 50}, evenSlots.Modify(doc, func(v any) any { return v.(int) * 10 }))

	big := dynamic.New().Filter(func(v any, _ int) bool { return v.(int) > 3 })
	assert.Equal(t, []any{4, 5}, big.Traverse(doc))
}

func TestWhereAndGuard(t *testing.T) {
	doc := map[string]any{"items": []any{
		map[string]any{"id": 1, "status": "open"},
		map[string]any{"id": 2, "status": "done"},
		"not a record",
	}}

	open := dynamic.New().Prop("items").Where("status", "open").Prop("id")
	assert.Equal(t, []any{1}, open.Traverse(doc))

	strs := dynamic.New().Prop("items").Collect().Guard(func(v any) bool {
		_, ok := v.(string)
		return ok
	})
	assert.Equal(t, []any{"not a record"}, strs.Traverse(doc))
	out := strs.Modify(doc, func(v any) any { return strings.ToUpper(v.(string)) }).(map[string]any)
	items := out["items"].([]any)
	assert.Equal(t, "NOT A RECORD", items[2])
	opticstest.AssertSame(t, doc["items"].([]any)[0], items[0])
}

func TestComposeTypedOptic(t *testing.T) {
	whole := optics.Custom(optics.KindOne, func(f func(any) any) func(any) any {
		return func(s any) any { return f(s) }
	})
	chain := dynamic.New().Prop("name").Compose(whole)

	assert.Equal(t, ".name{optic}", chain.String())
	assert.Equal(t, map[string]any{"name": "JOHN"}, chain.Modify(map[string]any{"name": "John"}, func(v any) any {
		return strings.ToUpper(v.(string))
	}))
}

func TestGetRejectsOptionalChains(t *testing.T) {
	_, err := dynamic.New().Prop("addr").Opt().Get(johnDoc())
	assert.ErrorIs(t, err, optics.ErrKindMismatch)

	_, err = dynamic.New().Collect().Preview([]any{1})
	assert.ErrorIs(t, err, optics.ErrKindMismatch)
}

func TestZeroChainIsIdentity(t *testing.T) {
	var c dynamic.Chain
	assert.Equal(t, optics.KindOne, c.Kind())

	got, err := c.Get(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, map[string]any{"a": 1}, c.Prop("a").Set(nil, 1))
}

func TestChainStepsAreIndependent(t *testing.T) {
	base := dynamic.New().Prop("a")
	left := base.Prop("b")
	right := base.Prop("c")

	assert.Equal(t, ".a", base.String())
	assert.Equal(t, ".a.b", left.String())
	assert.Equal(t, ".a.c", right.String())
}

// TestNoOpUpdateKeepsDocument verifies identity updates over generated
// documents hand back the input.
func TestNoOpUpdateKeepsDocument(t *testing.T) {
	chains := []dynamic.Chain{
		dynamic.New(),
		dynamic.New().Prop("a"),
		dynamic.New().Prop("a").Opt().Prop("b"),
		dynamic.New().Collect(),
		dynamic.New().Collect().Prop("a").Opt().Collect(),
		dynamic.New().At(1).Prop("b"),
	}

	rapid.Check(t, func(t *rapid.T) {
		doc := opticstest.DocGen(3).Draw(t, "doc")
		for _, c := range chains {
			opticstest.AssertSame(t, doc, c.Modify(doc, func(v any) any { return v }), c.String())
		}
	})
}
