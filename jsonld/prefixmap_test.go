package jsonld

import "testing"

func TestPrefixMapAbbreviate(t *testing.T) {
	pm := NewPrefixMap()
	pm.Set("ex", "http://example.org/")
	pm.Set("voc", "http://example.org/vocab#")

	cases := []struct {
		iri    string
		want   string
		expect bool
	}{
		{"http://example.org/name", "ex:name", true},
		{"http://example.org/vocab#title", "voc:title", true},
		{"http://other.org/name", "", false},
		{"http://example.org/", "", false},
		{"http://example.org/a/b", "", false},
	}
	for _, c := range cases {
		got, ok := pm.Abbreviate(c.iri)
		if ok != c.expect {
			t.Fatalf("Abbreviate(%q) ok=%v want %v", c.iri, ok, c.expect)
		}
		if got != c.want {
			t.Fatalf("Abbreviate(%q) = %q, want %q", c.iri, got, c.want)
		}
	}
}

func TestPrefixMapAbbreviateLongestMatch(t *testing.T) {
	pm := NewPrefixMap()
	pm.Set("ex", "http://example.org/")
	pm.Set("people", "http://example.org/people/")

	got, ok := pm.Abbreviate("http://example.org/people/alice")
	if !ok || got != "people:alice" {
		t.Fatalf("expected people:alice, got %q (ok=%v)", got, ok)
	}
}

func TestPrefixMapAbbreviateSkipsEmptyPrefix(t *testing.T) {
	pm := NewPrefixMap()
	pm.Set("", "http://example.org/")

	if got, ok := pm.Abbreviate("http://example.org/name"); ok {
		t.Fatalf("empty prefix must not abbreviate, got %q", got)
	}
}

func TestPrefixMapPairsOrder(t *testing.T) {
	pm := NewPrefixMap()
	pm.Set("b", "http://b.example/")
	pm.Set("a", "http://a.example/")
	pm.Set("b", "http://b2.example/")

	var prefixes []string
	var namespaces []string
	pm.Pairs(func(prefix, namespace string) bool {
		prefixes = append(prefixes, prefix)
		namespaces = append(namespaces, namespace)
		return true
	})

	if len(prefixes) != 2 || prefixes[0] != "b" || prefixes[1] != "a" {
		t.Fatalf("unexpected order: %v", prefixes)
	}
	if namespaces[0] != "http://b2.example/" {
		t.Fatalf("re-set prefix should keep position with new namespace, got %v", namespaces)
	}
}

func TestIsQNameLocal(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"name", true},
		{"name-1.x", true},
		{"_private", true},
		{"", false},
		{"1name", false},
		{"a/b", false},
	}
	for _, c := range cases {
		if got := isQNameLocal(c.value); got != c.want {
			t.Fatalf("isQNameLocal(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}
