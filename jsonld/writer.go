package jsonld

import (
	"bytes"
	"encoding/json"
	"io"
)

// Writer serializes RDF datasets as JSON-LD in one fixed output variant.
// A Writer holds no mutable state after construction and is safe for
// concurrent use as long as its Processor is.
type Writer struct {
	variant Variant
	form    outputForm
	pretty  bool
	proc    Processor
}

// NewWriter creates a writer for the given output variant, backed by the
// default json-gold processor.
func NewWriter(variant Variant) (*Writer, error) {
	return NewWriterWithProcessor(variant, NewProcessor())
}

// NewWriterWithProcessor creates a writer with a caller-supplied processor.
func NewWriterWithProcessor(variant Variant, proc Processor) (*Writer, error) {
	form, err := variant.form()
	if err != nil {
		return nil, err
	}
	return &Writer{variant: variant, form: form, pretty: variant.pretty(), proc: proc}, nil
}

// Variant returns the writer's output variant.
func (w *Writer) Variant() Variant {
	return w.variant
}

// Write converts the dataset to JSON-LD and writes the text to out, followed
// by a single newline. The prefix map and baseURI feed context derivation and
// the engine options; cfg may be nil. On any failure nothing useful has been
// written: transformation and marshaling errors abort before the sink is
// touched, and output errors leave whatever bytes the sink already accepted.
func (w *Writer) Write(out io.Writer, dataset *Dataset, prefixes *PrefixMap, baseURI string, cfg *Config) error {
	if cfg == nil {
		cfg = &Config{}
	}
	// Configuration failures surface before the engine is invoked.
	if w.form == formFrame && cfg.Frame == nil {
		return ErrNoFrame
	}

	opts := resolveOptions(baseURI, cfg)

	obj, err := w.proc.FromRDF(dataset.Quads(), opts)
	if err != nil {
		return &TransformError{Stage: "fromRDF", Err: err}
	}

	switch w.form {
	case formExpand:
		// FromRDF already yields the expanded form.

	case formFrame:
		obj, err = w.proc.Frame(obj, cfg.Frame, opts)
		if err != nil {
			return &TransformError{Stage: "frame", Err: err}
		}

	case formCompact, formFlatten:
		var derived *Context
		ctxValue := cfg.Context
		if ctxValue == nil {
			derived = BuildContext(dataset.DefaultGraph(), prefixes, cfg.PreferPrefixedProps)
			ctxValue = derived.AsMap()
		}
		if w.form == formCompact {
			obj, err = w.proc.Compact(obj, ctxValue, opts)
			if err != nil {
				return &TransformError{Stage: "compact", Err: err}
			}
		} else {
			obj, err = w.proc.Flatten(obj, ctxValue, opts)
			if err != nil {
				return &TransformError{Stage: "flatten", Err: err}
			}
		}
		if derived != nil {
			// Reinstate the insertion-ordered context; the engine consumed
			// it as an unordered map.
			replaceContextKey(obj, derived)
		}
		if cfg.ContextSubstitution != nil {
			replaceContextKey(obj, cfg.ContextSubstitution)
		}

	default:
		return ErrUnknownVariant
	}

	return w.serialize(out, obj)
}

// replaceContextKey swaps the "@context" value of a JSON object result.
// A no-op when the result is not an object or carries no "@context" key.
func replaceContextKey(obj interface{}, replacement interface{}) {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return
	}
	if _, ok := m["@context"]; !ok {
		return
	}
	m["@context"] = replacement
}

// serialize marshals into a buffer before touching the sink, so that a
// marshal failure is reported as a transformation fault while an error from
// out stays a plain sink error.
func (w *Writer) serialize(out io.Writer, obj interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	// Encode terminates the document with a newline.
	if err := enc.Encode(obj); err != nil {
		return &TransformError{Stage: "serialize", Err: err}
	}
	_, err := out.Write(buf.Bytes())
	return err
}
