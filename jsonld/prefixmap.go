package jsonld

import "strings"

// PrefixMap associates prefixes with namespace IRIs. Pairs are kept in
// insertion order so that prefix entries appear in a stable order when
// appended to a derived context.
type PrefixMap struct {
	prefixes   []string
	namespaces map[string]string
}

// NewPrefixMap creates an empty prefix map.
func NewPrefixMap() *PrefixMap {
	return &PrefixMap{namespaces: map[string]string{}}
}

// Set maps a prefix to a namespace IRI. Re-setting an existing prefix
// replaces its namespace but keeps its original position.
func (pm *PrefixMap) Set(prefix, namespace string) {
	if _, ok := pm.namespaces[prefix]; !ok {
		pm.prefixes = append(pm.prefixes, prefix)
	}
	pm.namespaces[prefix] = namespace
}

// Get returns the namespace IRI for a prefix.
func (pm *PrefixMap) Get(prefix string) (string, bool) {
	ns, ok := pm.namespaces[prefix]
	return ns, ok
}

// Len returns the number of prefixes.
func (pm *PrefixMap) Len() int {
	return len(pm.prefixes)
}

// Pairs calls fn for each (prefix, namespace) pair in insertion order.
// Iteration stops early if fn returns false.
func (pm *PrefixMap) Pairs(fn func(prefix, namespace string) bool) {
	for _, p := range pm.prefixes {
		if !fn(p, pm.namespaces[p]) {
			return
		}
	}
}

// Abbreviate shortens an IRI to "prefix:local" form using the longest
// matching namespace. It reports false when no prefix matches or the
// remainder is not a valid local name. The empty prefix is never used:
// JSON-LD contexts cannot declare it, so a ":local" name would not resolve.
func (pm *PrefixMap) Abbreviate(iri string) (string, bool) {
	best := ""
	bestNS := ""
	for _, p := range pm.prefixes {
		if p == "" {
			continue
		}
		ns := pm.namespaces[p]
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if len(ns) > len(bestNS) {
			best = p
			bestNS = ns
		}
	}
	if bestNS == "" {
		return "", false
	}
	local := iri[len(bestNS):]
	if !isQNameLocal(local) {
		return "", false
	}
	return best + ":" + local, true
}

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
