package hcsr

import (
	"errors"

	"github.com/ezrec/rvh/translate"
)

var f = translate.From

var (
	ErrXlenInvalid     = errors.New(f("xlen must be 32 or 64"))
	ErrRegisterUnknown = errors.New(f("register unknown"))
)

// ErrRegister names the register a lookup failed for.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("%v: %v", string(err), ErrRegisterUnknown)
}

func (err ErrRegister) Unwrap() error {
	return ErrRegisterUnknown
}
