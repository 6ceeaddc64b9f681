// Package dynamic builds optics over untyped documents: the map[string]any
// and []any trees that JSON, YAML and TOML decoders produce, as well as
// arbitrary structs, string-keyed maps, slices and arrays reached through
// reflection.
//
// Because every focus is an any, the whole chain is fluent:
//
//	street := dynamic.New().Prop("addr").Opt().Prop("street")
//	doc2 := street.Modify(doc, func(v any) any { return v.(string) + "!" })
//
// The same path can be written as an expression and compiled once:
//
//	street := dynamic.MustCompile("addr?.street")
//
// Kinds follow the optics package: Prop keeps the kind, At, Opt, Guard and
// Where make it at least Optional, Filter and Collect make it a Traversal.
package dynamic
