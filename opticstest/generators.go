package opticstest

import "pgregory.net/rapid"

// AddressGen generates addresses, nil about half the time.
func AddressGen() *rapid.Generator[*Address] {
	return rapid.Custom(func(t *rapid.T) *Address {
		if !rapid.Bool().Draw(t, "present") {
			return nil
		}
		return &Address{
			Street: rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(t, "street"),
			Zip:    rapid.IntRange(1000, 99999).Draw(t, "zip"),
		}
	})
}

// PersonGen generates people.
func PersonGen() *rapid.Generator[Person] {
	return rapid.Custom(func(t *rapid.T) Person {
		return Person{
			Name: rapid.StringMatching(`[A-Z][a-z]{0,8}`).Draw(t, "name"),
			Age:  rapid.IntRange(0, 120).Draw(t, "age"),
			Addr: AddressGen().Draw(t, "addr"),
			Tags: rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,5}`), 0, 4).Draw(t, "tags"),
		}
	})
}

// ItemGen generates board items.
func ItemGen() *rapid.Generator[Item] {
	return rapid.Custom(func(t *rapid.T) Item {
		return Item{
			ID:    rapid.IntRange(0, 1000).Draw(t, "id"),
			Label: rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "label"),
			Done:  rapid.Bool().Draw(t, "done"),
		}
	})
}

// BoardGen generates boards with up to eight items.
func BoardGen() *rapid.Generator[Board] {
	return rapid.Custom(func(t *rapid.T) Board {
		var owner *Person
		if rapid.Bool().Draw(t, "hasOwner") {
			p := PersonGen().Draw(t, "owner")
			owner = &p
		}
		return Board{
			Title: rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(t, "title"),
			Owner: owner,
			Items: rapid.SliceOfN(ItemGen(), 0, 8).Draw(t, "items"),
			Meta:  rapid.MapOfN(rapid.StringMatching(`[a-z]{1,4}`), rapid.String(), 0, 3).Draw(t, "meta"),
		}
	})
}

// DocGen generates untyped documents of the shape decoders produce:
// map[string]any, []any, strings, ints, bools and nil, nested up to depth.
func DocGen(depth int) *rapid.Generator[any] {
	scalar := rapid.OneOf(
		rapid.Map(rapid.StringMatching(`[a-z]{0,6}`), func(s string) any { return s }),
		rapid.Map(rapid.IntRange(-100, 100), func(i int) any { return i }),
		rapid.Map(rapid.Bool(), func(b bool) any { return b }),
		rapid.Just[any](nil),
	)
	if depth <= 0 {
		return scalar
	}

	child := DocGen(depth - 1)
	return rapid.OneOf(
		scalar,
		rapid.Map(rapid.SliceOfN(child, 0, 4), func(s []any) any { return s }),
		rapid.Map(rapid.MapOfN(rapid.StringMatching(`[a-z]{1,3}`), child, 0, 4), func(m map[string]any) any { return m }),
	)
}
