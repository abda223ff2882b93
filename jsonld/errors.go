package jsonld

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates an invalid Write configuration, raised
	// before any transformation is attempted.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeTransform indicates a failure while transforming the dataset
	// or marshaling the result.
	ErrCodeTransform ErrorCode = "TRANSFORM"
	// ErrCodeIO indicates that the output sink could not accept bytes.
	ErrCodeIO ErrorCode = "IO"
)

var (
	// ErrNoFrame indicates a frame variant was used without a frame object.
	ErrNoFrame = errors.New("jsonld: frame output requested without a frame object")
	// ErrUnknownVariant indicates a variant value outside the defined set.
	ErrUnknownVariant = errors.New("jsonld: unexpected output variant")
)

// TransformError wraps a failure turning the dataset into JSON-LD text.
// Stage names the operation that failed ("fromRDF", "compact", "flatten",
// "frame", "serialize").
type TransformError struct {
	Stage string
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("jsonld: %s: %v", e.Stage, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Code classifies an error returned by Writer.Write. Configuration failures
// and transformation failures carry their own types; the only errors that
// reach the caller unwrapped come from the output sink.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoFrame) || errors.Is(err, ErrUnknownVariant) {
		return ErrCodeConfiguration
	}
	var transformErr *TransformError
	if errors.As(err, &transformErr) {
		return ErrCodeTransform
	}
	return ErrCodeIO
}
