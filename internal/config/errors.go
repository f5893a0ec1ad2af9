package config

import (
	"errors"
	"fmt"
)

// ErrorKind tags a LoadError with the failure class, letting callers apply
// per-layer policy ("not found is fine only for the workspace file")
// without string matching.
type ErrorKind uint8

const (
	// KindIO means a required file could not be read.
	KindIO ErrorKind = iota
	// KindParse means a document's syntax is invalid or it contains an
	// unknown field.
	KindParse
	// KindSchema means the editor settings tree failed schema validation.
	KindSchema
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// LoadError is the single failure type of the configuration loader.
type LoadError struct {
	// Kind is the failure class.
	Kind ErrorKind
	// Path is the file involved, or a pseudo-path for embedded assets.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("config %s error in %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Kind == kind
}

func ioError(path string, err error) *LoadError {
	return &LoadError{Kind: KindIO, Path: path, Err: err}
}

func parseError(path string, err error) *LoadError {
	return &LoadError{Kind: KindParse, Path: path, Err: err}
}

func schemaError(path string, err error) *LoadError {
	return &LoadError{Kind: KindSchema, Path: path, Err: err}
}
