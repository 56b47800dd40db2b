package protoerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	MalformedSection     Kind = "malformed section"
	MissingSeparator     Kind = "line without equals sign"
	DuplicateField       Kind = "duplicate field in record"
	IncompleteRecord     Kind = "incomplete record"
	DecodeMismatch       Kind = "decode mismatch"
	InvalidManifestEntry Kind = "invalid file in list"
	IdentifierCollision  Kind = "identifier collision"
	IO                   Kind = "io failure"
)

// Error is a classified pipeline failure.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// File names the source file, if known.
	File string
	// Line is the 1-based line number, zero when unknown.
	Line int
	// ID is the prototype identifier involved, zero when not applicable.
	ID uint16
	// Detail is a human readable description.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// At sets the location and returns the receiver.
func (e *Error) At(file string, line int) *Error {
	e.File = file
	e.Line = line
	return e
}

// WithID sets the identifier and returns the receiver.
func (e *Error) WithID(id uint16) *Error {
	e.ID = id
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		if e.Line > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Line))
		}
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var pe *Error
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}

// InFile fills in the file name on a classified error that has none yet.
// Unclassified errors are returned unchanged.
func InFile(err error, file string) error {
	var pe *Error
	if errors.As(err, &pe) && pe.File == "" {
		pe.File = file
	}
	return err
}
