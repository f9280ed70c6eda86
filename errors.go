package smartmask

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownMaskName indicates a declared mask name is not a known rule.
	ErrUnknownMaskName = errors.New("unknown mask name")

	// ErrMalformedElement indicates an element exposes neither an editable
	// value nor text content.
	ErrMalformedElement = errors.New("malformed element")

	// ErrUnknownElement indicates a manifest refers to an element id the
	// host could not find.
	ErrUnknownElement = errors.New("unknown element")

	// ErrMissingMasker indicates a tagged field has no registered masker.
	ErrMissingMasker = errors.New("missing masker")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// BindError reports why a single element could not be bound.
// It wraps ErrUnknownMaskName or ErrMalformedElement.
type BindError struct {
	Err     error  // Underlying sentinel error
	Element string // Element description (id or %T of the handle)
	Mask    string // Mask name as declared
}

func (e *BindError) Error() string {
	if e.Mask != "" {
		return fmt.Sprintf("bind %s (mask %q): %s", e.Element, e.Mask, e.Err.Error())
	}
	return fmt.Sprintf("bind %s: %s", e.Element, e.Err.Error())
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and mask.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrMissingMasker, ErrInvalidTag)
	Field string // Field name that triggered the error
	Mask  string // Mask name that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Mask != "" {
		return fmt.Sprintf("%s for mask %q (field %s)", e.Err.Error(), e.Mask, e.Field)
	}
	if e.Mask != "" {
		return fmt.Sprintf("%s for mask %q", e.Err.Error(), e.Mask)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newBindError creates a BindError for a rejected element.
func newBindError(sentinel error, element, mask string) error {
	return &BindError{
		Err:     sentinel,
		Element: element,
		Mask:    mask,
	}
}

// newConfigError creates a ConfigError for invalid or missing mask scenarios.
func newConfigError(sentinel error, mask, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Mask:  mask,
		Field: field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
