package guid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength indicates that the input does not hold exactly 32 hex
	// digits, or a binary GUID is not 16 bytes long
	ErrInvalidLength = errors.New("guid: invalid GUID length")

	// ErrInvalidHexDigit indicates that the input has the right length but
	// contains a character that is not a hexadecimal digit
	ErrInvalidHexDigit = errors.New("guid: invalid hex digit in GUID")

	// ErrInternal indicates a broken internal invariant. It is never expected
	// to surface.
	ErrInternal = errors.New("guid: internal invariant violated")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidLength ErrorKind = iota + 1
	InvalidHexDigit
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidHexDigit:
		return "invalid hex digit"
	case InternalInvariant:
		return "internal invariant"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidLength:
		return ErrInvalidLength
	case InvalidHexDigit:
		return ErrInvalidHexDigit
	default:
		return ErrInternal
	}
}

// ParseError is returned by Parse for the first violation found in its input.
type ParseError struct {
	Kind  ErrorKind
	Input string // the input as given to Parse
	Err   error  // low-level cause, may be nil
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("guid: parse %q: %s", e.Input, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the low-level cause, such as a hex.InvalidByteError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
