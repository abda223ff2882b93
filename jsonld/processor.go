package jsonld

import (
	"fmt"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// Processor exposes the JSON-LD algorithms the writer depends on. The
// algorithms themselves are not implemented here; the default Processor
// delegates to the json-gold engine.
type Processor interface {
	// FromRDF converts quads to the expanded JSON-LD representation.
	FromRDF(quads []Quad, opts *ld.JsonLdOptions) (interface{}, error)
	// Compact applies the compaction algorithm with the given context.
	Compact(input interface{}, context interface{}, opts *ld.JsonLdOptions) (interface{}, error)
	// Flatten applies the flattening algorithm with the given context.
	Flatten(input interface{}, context interface{}, opts *ld.JsonLdOptions) (interface{}, error)
	// Frame applies the framing algorithm with the given frame object.
	Frame(input interface{}, frame interface{}, opts *ld.JsonLdOptions) (interface{}, error)
}

type goldProcessor struct{}

// NewProcessor returns the default json-gold backed processor.
func NewProcessor() Processor {
	return &goldProcessor{}
}

func (p *goldProcessor) FromRDF(quads []Quad, opts *ld.JsonLdOptions) (interface{}, error) {
	nquads, err := quadsToNQuads(quads)
	if err != nil {
		return nil, err
	}
	goldOpts := *opts
	goldOpts.Format = "application/n-quads"
	proc := ld.NewJsonLdProcessor()
	return proc.FromRDF(nquads, &goldOpts)
}

func (p *goldProcessor) Compact(input interface{}, context interface{}, opts *ld.JsonLdOptions) (interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	return proc.Compact(input, context, opts)
}

func (p *goldProcessor) Flatten(input interface{}, context interface{}, opts *ld.JsonLdOptions) (interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	return proc.Flatten(input, context, opts)
}

func (p *goldProcessor) Frame(input interface{}, frame interface{}, opts *ld.JsonLdOptions) (interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	return proc.Frame(input, frame, opts)
}

// quadsToNQuads renders quads as N-Quads text, the interchange form the
// engine ingests.
func quadsToNQuads(quads []Quad) (string, error) {
	var b strings.Builder
	for _, q := range quads {
		s, err := renderTerm(q.S)
		if err != nil {
			return "", err
		}
		o, err := renderTerm(q.O)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		b.WriteByte(' ')
		b.WriteString(renderIRIRef(q.P.Value))
		b.WriteByte(' ')
		b.WriteString(o)
		if q.G != nil {
			g, err := renderTerm(q.G)
			if err != nil {
				return "", err
			}
			b.WriteByte(' ')
			b.WriteString(g)
		}
		b.WriteString(" .\n")
	}
	return b.String(), nil
}

func renderTerm(term Term) (string, error) {
	switch value := term.(type) {
	case IRI:
		return renderIRIRef(value.Value), nil
	case BlankNode:
		return value.String(), nil
	case Literal:
		lex := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return lex + "@" + value.Lang, nil
		}
		if value.Datatype.Value != "" && value.Datatype.Value != xsdStringIRI {
			return lex + "^^" + renderIRIRef(value.Datatype.Value), nil
		}
		return lex, nil
	case nil:
		return "", fmt.Errorf("jsonld: nil term in quad")
	default:
		return "", fmt.Errorf("jsonld: cannot render term %q", term.String())
	}
}

func renderIRIRef(iri string) string {
	return "<" + iri + ">"
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(lexical string) string {
	return literalEscaper.Replace(lexical)
}
