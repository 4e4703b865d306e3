package argp

import (
	"fmt"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Code is the closed set of results that Register and Parse report.
// Registration codes and parse codes share one numbering space.
type Code int

const (
	Success                 Code = iota
	NullParser                   // operation on a nil or released Registry
	NoArgumentsRegistered        // Parse with nothing registered
	InvalidKey                   // no key, or a key that does not match its pattern
	DuplicateArgument            // key already registered, or a reserved help key
	MemoryAllocationFailure      // registry could not grow
	ArgumentMissing              // a required option was never bound
	InvalidValue                 // token could not be coerced to the declared type
	FileOpen                     // opening a file-typed argument failed
	UnknownType                  // type tag and binding target are inconsistent
)

var codeNames = [...]string{
	Success:                 "Success",
	NullParser:              "NullParser",
	NoArgumentsRegistered:   "NoArgumentsRegistered",
	InvalidKey:              "InvalidKey",
	DuplicateArgument:       "DuplicateArgument",
	MemoryAllocationFailure: "MemoryAllocationFailure",
	ArgumentMissing:         "ArgumentMissing",
	InvalidValue:            "InvalidValue",
	FileOpen:                "FileOpen",
	UnknownType:             "UnknownType",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeNames[c]
}

// Error lets a Code be used as the target of errors.Is:
//
//	if errors.Is(err, argp.ArgumentMissing) {
//		...
//	}
func (c Code) Error() string { return c.String() }

// Error is the concrete error returned by Register and Parse.
type Error struct {
	Code    Code
	Key     string   // key or token involved, if any
	Missing []string // only for ArgumentMissing, in registration order
	cause   error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }
func (e *Error) Cause() error  { return e.cause }

func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	}
	return false
}

// newError classifies the cause the same way for every code: bad input
// from the command line is a usage error, bad registrations are the
// programmer's, and inconsistencies inside the engine are ours.
func newError(code Code, key string, cause error) *Error {
	if cause == nil {
		cause = errors.New(code.String())
	}
	switch code {
	case NoArgumentsRegistered, ArgumentMissing, InvalidValue, FileOpen:
		cause = commonerrors.UsageError(cause)
	case NullParser, InvalidKey, DuplicateArgument:
		cause = commonerrors.ProgrammerError(cause)
	default:
		cause = commonerrors.LibraryError(cause)
	}
	return &Error{
		Code:  code,
		Key:   key,
		cause: cause,
	}
}

// CodeOf maps an error returned by this package back onto its Code.
// A nil error is Success. Errors that did not come from this package
// report UnknownType.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return UnknownType
}

// IsUsageError reports errors caused by what was on the command line
// rather than by how the options were declared. When you have a usage
// error, you should display the program usage help text.
func IsUsageError(err error) bool {
	switch CodeOf(err) {
	case NoArgumentsRegistered, ArgumentMissing, InvalidValue, FileOpen:
		return true
	}
	return false
}
