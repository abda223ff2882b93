// Package jsonld writes RDF datasets as JSON-LD text.
//
// The package wraps the json-gold JSON-LD engine and adds the pieces an RDF
// writer needs around it: deriving a default "@context" from the dataset's
// predicates and prefix declarations, selecting one of the JSON-LD output
// forms (compact, expand, flatten, frame), and serializing the result as
// pretty-printed or flat JSON.
//
// A Writer is fixed to one output variant at construction:
//
//	w, err := jsonld.NewWriter(jsonld.CompactPretty)
//	if err != nil {
//	    // handle error
//	}
//	err = w.Write(os.Stdout, dataset, prefixes, "", nil)
//
// For the compact and flatten forms, a "@context" is required. When the
// caller does not supply one through Config.Context, the writer derives a
// default context so that output uses property local names (or prefixed
// names) as keys instead of full IRIs. BuildContext exposes the derivation
// for callers assembling their own contexts.
//
// The frame form requires a frame object in Config.Frame; the expand form
// needs no context at all.
package jsonld
