// Package document decodes and encodes JSON, YAML and TOML into the untyped
// trees that dynamic optics operate on: map[string]any, []any and scalars.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	// ErrUnknownFormat is wrapped for formats other than JSON, YAML and TOML.
	ErrUnknownFormat = errors.New("document: unknown format")
	// ErrNotTable is wrapped when TOML is asked to encode a non-map root.
	ErrNotTable = errors.New("document: toml root must be a table")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FormatOf picks the format from a file name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decode parses data and normalizes the result, see Normalize.
func Decode(f Format, data []byte) (any, error) {
	var doc any
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, &doc)
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		var table map[string]any
		err = toml.Unmarshal(data, &table)
		doc = table
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", f, err)
	}
	return Normalize(doc), nil
}

// Encode renders doc. JSON output is indented and, like YAML, has sorted
// keys.
func Encode(f Format, doc any) ([]byte, error) {
	var out []byte
	var err error

	switch f {
	case JSON:
		out, err = json.MarshalIndent(doc, "", "  ")
	case YAML:
		out, err = yaml.Marshal(doc)
	case TOML:
		if _, ok := doc.(map[string]any); !ok {
			return nil, fmt.Errorf("%w, got %T", ErrNotTable, doc)
		}
		out, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: encode %s: %w", f, err)
	}
	return out, nil
}

// Normalize rewrites decoder output so that every mapping is a
// map[string]any and every sequence is a []any. YAML mappings with
// non-string keys get their keys rendered with fmt.Sprint.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	}
	return v
}
