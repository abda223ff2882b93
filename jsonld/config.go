package jsonld

import (
	"encoding/json"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// Config carries the optional knobs for a single Write call. The zero value
// (or a nil *Config) selects the default behavior for every field.
type Config struct {
	// Context is an explicit "@context" value for the compact and flatten
	// forms, as a parsed JSON tree. When nil, a default context is derived
	// from the dataset and prefix map.
	Context interface{}

	// ContextSubstitution replaces the "@context" value of the compact or
	// flatten result, as a parsed JSON tree. It does not influence the
	// transformation itself; this is for emitting a context URI instead of
	// an inline object, or rewriting the context in the output. Ignored when
	// the result has no "@context" key or is not a JSON object.
	ContextSubstitution interface{}

	// Frame is the frame object for the frame form, as a parsed JSON tree.
	// Required when the writer's variant is a frame variant.
	Frame interface{}

	// ProcessorOptions overrides the JSON-LD engine options entirely. The
	// caller is responsible for coherent settings; when nil, defaults are
	// built from the base IRI (see resolveOptions).
	ProcessorOptions *ld.JsonLdOptions

	// PreferPrefixedProps makes the derived context use "ex:p" style keys
	// instead of bare local names whenever the prefix map can abbreviate the
	// predicate. Useful when a vocabulary also declares resources used as
	// property values.
	PreferPrefixedProps bool
}

// ParseJSONString parses a JSON document held in a string, for callers whose
// context, substitution or frame values live as JSON text. To substitute a
// context URI, the string must be a quoted JSON string.
func ParseJSONString(s string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("jsonld: invalid JSON value: %w", err)
	}
	return v, nil
}

// resolveOptions produces the engine options for a Write call. A caller
// supplied ProcessorOptions value is used as-is. The defaults favor idiomatic
// JSON output: namespace-style compaction, native JSON numbers and booleans,
// and single-element arrays collapsed to the bare value.
func resolveOptions(baseURI string, cfg *Config) *ld.JsonLdOptions {
	if cfg != nil && cfg.ProcessorOptions != nil {
		return cfg.ProcessorOptions
	}
	opts := ld.NewJsonLdOptions(baseURI)
	opts.UseNamespaces = true
	opts.UseNativeTypes = true
	opts.CompactArrays = true
	return opts
}
