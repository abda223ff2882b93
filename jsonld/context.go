package jsonld

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Context is a JSON-LD "@context" object. Entries keep their insertion
// order, and the first write per key wins; later writes to an existing key
// are ignored.
type Context struct {
	keys   []string
	values map[string]interface{}
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{values: map[string]interface{}{}}
}

// Set adds an entry unless the key is already present.
func (c *Context) Set(key string, value interface{}) {
	if _, ok := c.values[key]; ok {
		return
	}
	c.keys = append(c.keys, key)
	c.values[key] = value
}

// Has reports whether the key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Value returns the entry for a key, or nil when absent.
func (c *Context) Value(key string) interface{} {
	return c.values[key]
}

// Len returns the number of entries.
func (c *Context) Len() int {
	return len(c.keys)
}

// Keys returns the entry keys in insertion order.
// The returned slice is shared with the context; callers must not modify it.
func (c *Context) Keys() []string {
	return c.keys
}

// AsMap returns the context as the plain map tree the JSON-LD engine
// consumes. Nested Context values are converted too. Insertion order is not
// carried by the map; use the Context itself where order matters.
func (c *Context) AsMap() map[string]interface{} {
	out := make(map[string]interface{}, len(c.keys))
	for k, v := range c.values {
		if nested, ok := v.(*Context); ok {
			out[k] = nested.AsMap()
			continue
		}
		out[k] = v
	}
	return out
}

// MarshalJSON serializes the context with entries in insertion order.
func (c *Context) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoHTMLEscape(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := marshalNoHTMLEscape(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoHTMLEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// BuildContext derives a default "@context" from the quads of a graph and a
// prefix map. Property entries come first, one per distinct key:
//
//   - rdf:type predicates contribute nothing;
//   - objects that are IRIs or blank nodes yield {"@id": iri, "@type": "@id"};
//   - typed literals other than xsd:string and rdf:langString yield
//     {"@id": iri, "@type": datatype};
//   - plain, xsd:string and language-tagged literals yield the bare
//     predicate IRI.
//
// Keys are predicate local names, or "prefix:local" abbreviations when
// preferPrefixedProps is set and the prefix map can shorten the predicate.
// The first quad seen for a key decides its entry. Prefix pairs are appended
// after the properties, skipping the empty prefix (JSON-LD forbids an empty
// key); a prefix colliding with a property key is dropped, so the property's
// meaning wins.
func BuildContext(graph []Quad, prefixes *PrefixMap, preferPrefixedProps bool) *Context {
	ctx := NewContext()
	for _, q := range graph {
		if q.P.Value == rdfTypeIRI {
			continue
		}
		key := ""
		if preferPrefixedProps && prefixes != nil {
			if abbrev, ok := prefixes.Abbreviate(q.P.Value); ok {
				key = abbrev
			}
		}
		if key == "" {
			key = localName(q.P.Value)
		}
		if key == "" {
			// The predicate ends in its separator and has no local name;
			// keep the full IRI as the key.
			key = q.P.Value
		}
		if ctx.Has(key) {
			continue
		}
		switch o := q.O.(type) {
		case IRI, BlankNode:
			entry := NewContext()
			entry.Set("@id", q.P.Value)
			entry.Set("@type", "@id")
			ctx.Set(key, entry)
		case Literal:
			if o.Datatype.Value != "" && !o.IsLangString() && !o.IsSimpleString() {
				entry := NewContext()
				entry.Set("@id", q.P.Value)
				entry.Set("@type", o.Datatype.Value)
				ctx.Set(key, entry)
			} else {
				ctx.Set(key, q.P.Value)
			}
		}
	}
	if prefixes != nil {
		prefixes.Pairs(func(prefix, namespace string) bool {
			if prefix != "" {
				ctx.Set(prefix, namespace)
			}
			return true
		})
	}
	return ctx
}

// localName returns the fragment or last path segment of an IRI, the part a
// derived context uses as a property key. An IRI ending in its separator,
// such as a bare namespace IRI, yields the empty string.
func localName(iri string) string {
	if idx := strings.Index(iri, "#"); idx >= 0 {
		return iri[idx+1:]
	}
	if idx := strings.LastIndex(iri, "/"); idx >= 0 {
		return iri[idx+1:]
	}
	if idx := strings.LastIndex(iri, ":"); idx >= 0 {
		return iri[idx+1:]
	}
	return iri
}
