package jsonld

import "strings"

// Variant selects the JSON-LD output form and layout of a Writer. The form
// axis (compact, expand, flatten, frame) decides which transformation runs;
// the pretty/flat axis only affects JSON layout.
type Variant string

const (
	CompactPretty Variant = "compact-pretty"
	CompactFlat   Variant = "compact-flat"
	ExpandPretty  Variant = "expand-pretty"
	ExpandFlat    Variant = "expand-flat"
	FlattenPretty Variant = "flatten-pretty"
	FlattenFlat   Variant = "flatten-flat"
	FramePretty   Variant = "frame-pretty"
	FrameFlat     Variant = "frame-flat"
)

// outputForm is the transformation axis of a variant.
type outputForm int

const (
	formCompact outputForm = iota
	formExpand
	formFlatten
	formFrame
)

// form returns the variant's output form, or ErrUnknownVariant for a value
// outside the defined set.
func (v Variant) form() (outputForm, error) {
	switch v {
	case CompactPretty, CompactFlat:
		return formCompact, nil
	case ExpandPretty, ExpandFlat:
		return formExpand, nil
	case FlattenPretty, FlattenFlat:
		return formFlatten, nil
	case FramePretty, FrameFlat:
		return formFrame, nil
	default:
		return 0, ErrUnknownVariant
	}
}

// pretty reports whether the variant uses indented output.
func (v Variant) pretty() bool {
	switch v {
	case CompactPretty, ExpandPretty, FlattenPretty, FramePretty:
		return true
	default:
		return false
	}
}

// ParseVariant normalizes a variant name. Bare form names select the pretty
// layout, matching the default JSON-LD presentation.
func ParseVariant(value string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "compact", "compact-pretty":
		return CompactPretty, true
	case "compact-flat":
		return CompactFlat, true
	case "expand", "expand-pretty":
		return ExpandPretty, true
	case "expand-flat":
		return ExpandFlat, true
	case "flatten", "flatten-pretty":
		return FlattenPretty, true
	case "flatten-flat":
		return FlattenFlat, true
	case "frame", "frame-pretty":
		return FramePretty, true
	case "frame-flat":
		return FrameFlat, true
	default:
		return "", false
	}
}
