// Package errors provides error handling for xcsettings.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// On top of that it defines the extraction error taxonomy. Every fatal
// failure in the pipeline wraps one of the Err* sentinels below, so callers
// can classify it with KindOf and decide whether to abort or skip.
//
// Usage:
//
//	// Wrap with context while keeping the kind
//	return errors.Wrapf(errors.ErrUnsupportedFormat, "cannot ingest %s", path)
//
//	// Classify
//	if errors.KindOf(err) == errors.KindMalformedSource {
//	    // skip the record
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
	Mark               = crdb.Mark
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Kind classifies a failure of the extraction pipeline.
type Kind int

const (
	// KindUnknown is any error that does not wrap one of the sentinels below.
	KindUnknown Kind = iota
	// KindInputNotFound: a source path does not exist or cannot be read.
	KindInputNotFound
	// KindUnsupportedFormat: the source extension is not accepted by any reader.
	KindUnsupportedFormat
	// KindMalformedSource: the container parsed but lacks the expected structure.
	KindMalformedSource
	// KindConversionFailed: the external plist converter failed or wrote nothing.
	KindConversionFailed
	// KindMissingVersion: the version manifest has no version string.
	KindMissingVersion
)

// Sentinel errors for the extraction taxonomy.
// Wrap these with errors.Wrap() to add context while preserving the kind.
var (
	ErrInputNotFound     = New("input not found")
	ErrUnsupportedFormat = New("unsupported format")
	ErrMalformedSource   = New("malformed source")
	ErrConversionFailed  = New("conversion failed")
	ErrMissingVersion    = New("missing version")
)

var kindSentinels = []struct {
	kind Kind
	err  error
}{
	{KindInputNotFound, ErrInputNotFound},
	{KindUnsupportedFormat, ErrUnsupportedFormat},
	{KindMalformedSource, ErrMalformedSource},
	{KindConversionFailed, ErrConversionFailed},
	{KindMissingVersion, ErrMissingVersion},
}

// String returns the kind name used in log fields.
func (k Kind) String() string {
	switch k {
	case KindInputNotFound:
		return "input-not-found"
	case KindUnsupportedFormat:
		return "unsupported-format"
	case KindMalformedSource:
		return "malformed-source"
	case KindConversionFailed:
		return "conversion-failure"
	case KindMissingVersion:
		return "missing-version"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind abort the whole run.
// Malformed sources are absorbed by the reader; everything else is fatal.
func (k Kind) Fatal() bool {
	return k != KindMalformedSource
}

// KindOf returns the taxonomy kind of err, or KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, ks := range kindSentinels {
		if Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindUnknown
}

// IsInputNotFound checks if an error is or wraps ErrInputNotFound
func IsInputNotFound(err error) bool {
	return err != nil && Is(err, ErrInputNotFound)
}

// IsUnsupportedFormat checks if an error is or wraps ErrUnsupportedFormat
func IsUnsupportedFormat(err error) bool {
	return err != nil && Is(err, ErrUnsupportedFormat)
}

// IsConversionFailed checks if an error is or wraps ErrConversionFailed
func IsConversionFailed(err error) bool {
	return err != nil && Is(err, ErrConversionFailed)
}

// IsMissingVersion checks if an error is or wraps ErrMissingVersion
func IsMissingVersion(err error) bool {
	return err != nil && Is(err, ErrMissingVersion)
}

// NewInputNotFound creates an input-not-found error with a formatted message
func NewInputNotFound(format string, args ...interface{}) error {
	return Wrapf(ErrInputNotFound, format, args...)
}

// NewUnsupportedFormat creates an unsupported-format error with a formatted message
func NewUnsupportedFormat(format string, args ...interface{}) error {
	return Wrapf(ErrUnsupportedFormat, format, args...)
}

// NewMalformedSource creates a malformed-source error with a formatted message
func NewMalformedSource(format string, args ...interface{}) error {
	return Wrapf(ErrMalformedSource, format, args...)
}

// WrapConversion marks a converter failure as ErrConversionFailed and adds context.
func WrapConversion(err error, format string, args ...interface{}) error {
	return Wrapf(Mark(err, ErrConversionFailed), format, args...)
}
