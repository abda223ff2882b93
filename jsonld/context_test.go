package jsonld

import (
	"encoding/json"
	"testing"
)

const exNS = "http://example.org/"

func quadIRI(s, p, o string) Quad {
	return Quad{S: IRI{Value: s}, P: IRI{Value: p}, O: IRI{Value: o}}
}

func quadString(s, p, lexical string) Quad {
	return Quad{S: IRI{Value: s}, P: IRI{Value: p}, O: Literal{Lexical: lexical}}
}

func quadTyped(s, p, lexical, datatype string) Quad {
	return Quad{S: IRI{Value: s}, P: IRI{Value: p}, O: Literal{Lexical: lexical, Datatype: IRI{Value: datatype}}}
}

func TestBuildContextPlainStringProperty(t *testing.T) {
	prefixes := NewPrefixMap()
	prefixes.Set("ex", exNS)
	graph := []Quad{quadString(exNS+"Alice", exNS+"name", "Alice")}

	ctx := BuildContext(graph, prefixes, false)

	if ctx.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", ctx.Len())
	}
	if got := ctx.Value("name"); got != exNS+"name" {
		t.Fatalf("unexpected name entry: %v", got)
	}
	if got := ctx.Value("ex"); got != exNS {
		t.Fatalf("unexpected ex entry: %v", got)
	}
	keys := ctx.Keys()
	if keys[0] != "name" || keys[1] != "ex" {
		t.Fatalf("expected property before prefix, got %v", keys)
	}
}

func TestBuildContextTypedLiteralProperty(t *testing.T) {
	graph := []Quad{quadTyped(exNS+"Alice", exNS+"age", "42", "http://www.w3.org/2001/XMLSchema#integer")}

	ctx := BuildContext(graph, NewPrefixMap(), false)

	entry, ok := ctx.Value("age").(*Context)
	if !ok {
		t.Fatalf("expected nested entry, got %T", ctx.Value("age"))
	}
	if entry.Value("@id") != exNS+"age" {
		t.Fatalf("unexpected @id: %v", entry.Value("@id"))
	}
	if entry.Value("@type") != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Fatalf("unexpected @type: %v", entry.Value("@type"))
	}
}

func TestBuildContextIRIObjectProperty(t *testing.T) {
	graph := []Quad{quadIRI(exNS+"Alice", exNS+"knows", exNS+"Bob")}

	ctx := BuildContext(graph, nil, false)

	entry, ok := ctx.Value("knows").(*Context)
	if !ok {
		t.Fatalf("expected nested entry, got %T", ctx.Value("knows"))
	}
	if entry.Value("@type") != "@id" {
		t.Fatalf("unexpected @type: %v", entry.Value("@type"))
	}
}

func TestBuildContextBlankNodeObject(t *testing.T) {
	graph := []Quad{{S: IRI{Value: exNS + "Alice"}, P: IRI{Value: exNS + "knows"}, O: BlankNode{ID: "b0"}}}

	ctx := BuildContext(graph, nil, false)

	entry, ok := ctx.Value("knows").(*Context)
	if !ok {
		t.Fatalf("expected nested entry, got %T", ctx.Value("knows"))
	}
	if entry.Value("@type") != "@id" {
		t.Fatalf("unexpected @type: %v", entry.Value("@type"))
	}
}

func TestBuildContextSkipsRDFType(t *testing.T) {
	graph := []Quad{quadIRI(exNS+"Alice", rdfTypeIRI, exNS+"Person")}

	ctx := BuildContext(graph, nil, false)

	if ctx.Len() != 0 {
		t.Fatalf("expected empty context, got keys %v", ctx.Keys())
	}
}

func TestBuildContextLangStringIsPlainEntry(t *testing.T) {
	graph := []Quad{
		{S: IRI{Value: exNS + "Alice"}, P: IRI{Value: exNS + "label"}, O: Literal{Lexical: "Alice", Lang: "en", Datatype: IRI{Value: rdfLangStringIRI}}},
		quadTyped(exNS+"Alice", exNS+"comment", "hi", xsdStringIRI),
	}

	ctx := BuildContext(graph, nil, false)

	if got := ctx.Value("label"); got != exNS+"label" {
		t.Fatalf("language-tagged literal should map to plain IRI entry, got %v", got)
	}
	if got := ctx.Value("comment"); got != exNS+"comment" {
		t.Fatalf("xsd:string literal should map to plain IRI entry, got %v", got)
	}
}

func TestBuildContextFirstSeenWins(t *testing.T) {
	graph := []Quad{
		quadIRI(exNS+"Alice", exNS+"knows", exNS+"Bob"),
		quadString(exNS+"Alice", exNS+"knows", "Bob"),
	}

	ctx := BuildContext(graph, nil, false)

	if _, ok := ctx.Value("knows").(*Context); !ok {
		t.Fatalf("first occurrence (IRI object) should win, got %v", ctx.Value("knows"))
	}
}

func TestBuildContextOneEntryPerPredicate(t *testing.T) {
	graph := []Quad{
		quadString(exNS+"Alice", exNS+"name", "Alice"),
		quadString(exNS+"Bob", exNS+"name", "Bob"),
		quadIRI(exNS+"Alice", exNS+"knows", exNS+"Bob"),
	}

	ctx := BuildContext(graph, nil, false)

	if ctx.Len() != 2 {
		t.Fatalf("expected one entry per distinct predicate, got keys %v", ctx.Keys())
	}
}

func TestBuildContextEmptyPrefixExcluded(t *testing.T) {
	prefixes := NewPrefixMap()
	prefixes.Set("", exNS)
	prefixes.Set("ex", exNS)
	graph := []Quad{quadString(exNS+"Alice", exNS+"name", "Alice")}

	ctx := BuildContext(graph, prefixes, false)

	if ctx.Has("") {
		t.Fatal("derived context must not contain an empty key")
	}
	if !ctx.Has("ex") {
		t.Fatal("expected ex prefix entry")
	}
}

func TestBuildContextPreferPrefixedProps(t *testing.T) {
	prefixes := NewPrefixMap()
	prefixes.Set("ex", exNS)
	graph := []Quad{quadString(exNS+"Alice", exNS+"name", "Alice")}

	ctx := BuildContext(graph, prefixes, true)

	if !ctx.Has("ex:name") {
		t.Fatalf("expected prefixed key, got %v", ctx.Keys())
	}
	if ctx.Has("name") {
		t.Fatal("local-name key should not appear when abbreviation succeeded")
	}
}

func TestBuildContextPreferPrefixedFallsBackToLocalName(t *testing.T) {
	prefixes := NewPrefixMap()
	prefixes.Set("ex", exNS)
	graph := []Quad{quadString(exNS+"Alice", "http://other.org/vocab#title", "x")}

	ctx := BuildContext(graph, prefixes, true)

	if !ctx.Has("title") {
		t.Fatalf("expected local-name fallback, got %v", ctx.Keys())
	}
}

func TestBuildContextPrefixCollisionKeepsProperty(t *testing.T) {
	prefixes := NewPrefixMap()
	prefixes.Set("name", "http://collide.example/")
	graph := []Quad{quadString(exNS+"Alice", exNS+"name", "Alice")}

	ctx := BuildContext(graph, prefixes, false)

	if got := ctx.Value("name"); got != exNS+"name" {
		t.Fatalf("property entry should win over colliding prefix, got %v", got)
	}
}

func TestContextMarshalJSONPreservesOrder(t *testing.T) {
	ctx := NewContext()
	ctx.Set("zebra", "z")
	entry := NewContext()
	entry.Set("@id", exNS+"age")
	entry.Set("@type", "http://www.w3.org/2001/XMLSchema#integer")
	ctx.Set("age", entry)
	ctx.Set("alpha", "a")

	data, err := json.Marshal(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"zebra":"z","age":{"@id":"http://example.org/age","@type":"http://www.w3.org/2001/XMLSchema#integer"},"alpha":"a"}`
	if string(data) != want {
		t.Fatalf("unexpected serialization:\n got %s\nwant %s", data, want)
	}
}

func TestContextSetFirstWriteWins(t *testing.T) {
	ctx := NewContext()
	ctx.Set("k", "first")
	ctx.Set("k", "second")
	if ctx.Value("k") != "first" {
		t.Fatalf("expected first write to win, got %v", ctx.Value("k"))
	}
	if ctx.Len() != 1 {
		t.Fatalf("expected single entry, got %d", ctx.Len())
	}
}

func TestContextAsMapConvertsNestedEntries(t *testing.T) {
	entry := NewContext()
	entry.Set("@id", exNS+"knows")
	entry.Set("@type", "@id")
	ctx := NewContext()
	ctx.Set("knows", entry)

	m := ctx.AsMap()
	nested, ok := m["knows"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested map, got %T", m["knows"])
	}
	if nested["@type"] != "@id" {
		t.Fatalf("unexpected nested value: %v", nested)
	}
}

func TestBuildContextSeparatorTerminatedPredicate(t *testing.T) {
	graph := []Quad{
		quadString(exNS+"alice", exNS, "Alice"),
	}
	ctx := BuildContext(graph, nil, false)
	if ctx.Len() != 1 {
		t.Fatalf("expected one entry, got %d", ctx.Len())
	}
	if !ctx.Has(exNS) {
		t.Fatalf("expected full-IRI key for namespace predicate, got keys %v", ctx.Keys())
	}
	if ctx.Has("") {
		t.Fatal("context must not contain an empty key")
	}
}

func TestLocalName(t *testing.T) {
	cases := []struct {
		iri  string
		want string
	}{
		{"http://example.org/vocab#name", "name"},
		{"http://example.org/name", "name"},
		{"urn:example:name", "name"},
		{"name", "name"},
		{"http://example.org/", ""},
		{"http://example.org/vocab#", ""},
		{"urn:example:", ""},
	}
	for _, c := range cases {
		if got := localName(c.iri); got != c.want {
			t.Fatalf("localName(%q) = %q, want %q", c.iri, got, c.want)
		}
	}
}
