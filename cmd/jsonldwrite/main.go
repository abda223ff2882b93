// Package main provides the jsonldwrite binary entry point.
// jsonldwrite reads an N-Quads dataset and writes it as JSON-LD in one of
// the compact, expand, flatten or frame output variants.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/jsonld-go/jsonld"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		variantName      string
		baseURI          string
		contextPath      string
		substitutionPath string
		framePath        string
		preferPrefixed   bool
		prefixDefs       []string
		outputPath       string
	)

	cmd := &cobra.Command{
		Use:   "jsonldwrite [input.nq]",
		Short: "Write an N-Quads dataset as JSON-LD",
		Long: `jsonldwrite converts RDF data in N-Quads form to JSON-LD.

The output variant selects the JSON-LD shape (compact, expand, flatten,
frame) and layout (pretty or flat). Compact and flatten output use a
context derived from the data and the declared prefixes unless an explicit
context document is given. The frame variant requires a frame document.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, ok := jsonld.ParseVariant(variantName)
			if !ok {
				return fmt.Errorf("unknown variant %q", variantName)
			}

			inputPath := ""
			if len(args) == 1 {
				inputPath = args[0]
			}
			dataset, err := readDataset(inputPath)
			if err != nil {
				return err
			}

			prefixes, err := parsePrefixes(prefixDefs)
			if err != nil {
				return err
			}

			cfg := &jsonld.Config{PreferPrefixedProps: preferPrefixed}
			if cfg.Context, err = loadJSONFile(contextPath); err != nil {
				return err
			}
			if cfg.ContextSubstitution, err = loadJSONFile(substitutionPath); err != nil {
				return err
			}
			if cfg.Frame, err = loadJSONFile(framePath); err != nil {
				return err
			}

			out := io.Writer(os.Stdout)
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			w, err := jsonld.NewWriter(variant)
			if err != nil {
				return err
			}
			return w.Write(out, dataset, prefixes, baseURI, cfg)
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", "compact-pretty",
		"output variant: compact, expand, flatten or frame, optionally with -pretty or -flat")
	cmd.Flags().StringVar(&baseURI, "base", "", "base IRI for the JSON-LD engine")
	cmd.Flags().StringVar(&contextPath, "context", "", "path to an explicit @context document (compact/flatten)")
	cmd.Flags().StringVar(&substitutionPath, "context-substitution", "",
		"path to a JSON value replacing @context in the output (compact/flatten)")
	cmd.Flags().StringVar(&framePath, "frame", "", "path to the frame document (frame variants)")
	cmd.Flags().BoolVar(&preferPrefixed, "prefer-prefixed", false,
		"use prefix:local keys instead of local names in the derived context")
	cmd.Flags().StringArrayVar(&prefixDefs, "prefix", nil,
		"prefix declaration as prefix=namespace (repeatable)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	return cmd
}

// parsePrefixes builds a prefix map from repeated prefix=namespace flag
// values.
func parsePrefixes(defs []string) (*jsonld.PrefixMap, error) {
	prefixes := jsonld.NewPrefixMap()
	for _, def := range defs {
		prefix, namespace, found := strings.Cut(def, "=")
		if !found {
			return nil, fmt.Errorf("invalid prefix definition %q (want prefix=namespace)", def)
		}
		prefixes.Set(prefix, namespace)
	}
	return prefixes, nil
}

// readDataset parses N-Quads from a file, or stdin when path is empty or "-".
// Parsing is delegated to the JSON-LD engine's N-Quads serializer.
func readDataset(path string) (*jsonld.Dataset, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	serializer := &ld.NQuadRDFSerializer{}
	parsed, err := serializer.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse n-quads: %w", err)
	}
	return fromGoldDataset(parsed)
}

// fromGoldDataset converts the engine's dataset representation into quads.
// Graphs are visited in sorted name order, default graph first, so the
// resulting dataset (and any context derived from it) is deterministic.
func fromGoldDataset(parsed *ld.RDFDataset) (*jsonld.Dataset, error) {
	names := make([]string, 0, len(parsed.Graphs))
	for graphName := range parsed.Graphs {
		names = append(names, graphName)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "@default" {
			return names[j] != "@default"
		}
		if names[j] == "@default" {
			return false
		}
		return names[i] < names[j]
	})

	dataset := jsonld.NewDataset()
	for _, graphName := range names {
		quads := parsed.Graphs[graphName]
		graphTerm, err := graphNameTerm(graphName)
		if err != nil {
			return nil, err
		}
		for _, quad := range quads {
			if quad == nil {
				continue
			}
			s, err := fromGoldNode(quad.Subject)
			if err != nil {
				return nil, err
			}
			pred, ok := quad.Predicate.(ld.IRI)
			if !ok {
				return nil, fmt.Errorf("non-IRI predicate %q", quad.Predicate.GetValue())
			}
			o, err := fromGoldNode(quad.Object)
			if err != nil {
				return nil, err
			}
			dataset.Add(jsonld.Quad{S: s, P: jsonld.IRI{Value: pred.Value}, O: o, G: graphTerm})
		}
	}
	return dataset, nil
}

func graphNameTerm(name string) (jsonld.Term, error) {
	switch {
	case name == "" || name == "@default":
		return nil, nil
	case strings.HasPrefix(name, "_:"):
		return jsonld.BlankNode{ID: strings.TrimPrefix(name, "_:")}, nil
	default:
		return jsonld.IRI{Value: name}, nil
	}
}

func fromGoldNode(node ld.Node) (jsonld.Term, error) {
	switch value := node.(type) {
	case ld.IRI:
		return jsonld.IRI{Value: value.Value}, nil
	case ld.BlankNode:
		return jsonld.BlankNode{ID: strings.TrimPrefix(value.Attribute, "_:")}, nil
	case ld.Literal:
		lit := jsonld.Literal{Lexical: value.Value, Lang: value.Language}
		if value.Datatype != "" {
			lit.Datatype = jsonld.IRI{Value: value.Datatype}
		}
		return lit, nil
	case nil:
		return nil, fmt.Errorf("missing node in parsed quad")
	default:
		return nil, fmt.Errorf("unsupported node type %T", node)
	}
}

// loadJSONFile reads and parses a JSON document; an empty path yields nil.
func loadJSONFile(path string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jsonld.ParseJSONString(string(data))
}
