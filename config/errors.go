package config

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	// KindConfig marks missing or invalid process configuration, such as an
	// unset environment variable.
	KindConfig Kind = "config"
	// KindIO marks filesystem failures: missing files, missing directories,
	// failed writes.
	KindIO Kind = "io"
	// KindParse marks input that is not syntactically valid YAML.
	KindParse Kind = "parse"
	// KindMissingKey marks a required key absent from the document.
	KindMissingKey Kind = "missing-key"
	// KindType marks a value of the wrong shape, e.g. a list where a scalar
	// is expected.
	KindType Kind = "type"
)

// Error is the structured error returned by the loading and emitting
// pipeline.
type Error struct {
	Kind Kind
	Op   string
	// Key is the document key or environment variable involved, if any.
	Key string
	Err error
}

// Errorf builds an *Error whose cause is formatted like fmt.Errorf.
func Errorf(kind Kind, op, key, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Key: key, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := string(e.Kind) + " error"
	if e.Op != "" {
		msg += " during " + e.Op
	}

	if e.Key != "" {
		msg += fmt.Sprintf(" (%s)", e.Key)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err as kind unless it already carries an *Error, in which
// case the existing classification is kept. Wrap returns nil for a nil err.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	return ""
}
