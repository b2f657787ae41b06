package sdes

import (
	"fmt"

	"golang.org/x/xerrors"
)

const (
	// InvalidKeyLength tells us that a key was not exactly KeySize bits long
	InvalidKeyLength = iota + 1
	// InvalidBlockLength tells us that a block was not exactly BlockSize bits long
	InvalidBlockLength
	// InvalidBitCharacter tells us that a textual bit string held something other than '0' or '1'
	InvalidBitCharacter
	// SearchTimedOut tells us that a key search stopped before every candidate was checked
	SearchTimedOut
)

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    int
	frame   xerrors.Frame
}

// NewComplexError returns a ComplexError with the given code, recording the caller's frame
func NewComplexError(code int, format string, args ...interface{}) error {
	return ComplexError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Print(ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// HasErrorCode tells us whether err, or anything it wraps, is a ComplexError with the given code
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}

func errKeyLength(got int) error {
	return NewComplexError(InvalidKeyLength, "key must be %d bits, got %d", KeySize, got)
}

func errBlockLength(got int) error {
	return NewComplexError(InvalidBlockLength, "block must be %d bits, got %d", BlockSize, got)
}
