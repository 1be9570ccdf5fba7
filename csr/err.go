package csr

import (
	"errors"

	"github.com/ezrec/rvh/translate"
)

var f = translate.From

var (
	// Layout errors
	ErrAddressRange  = errors.New(f("csr address out of range"))
	ErrWidthInvalid  = errors.New(f("register width invalid"))
	ErrFieldEmpty    = errors.New(f("field has no bits"))
	ErrFieldRange    = errors.New(f("field exceeds register width"))
	ErrFieldOverlap  = errors.New(f("field overlaps another field"))
	ErrFieldKind     = errors.New(f("field kind invalid for width"))
	ErrFieldDupName  = errors.New(f("field name duplicated"))
	ErrSymbolRange   = errors.New(f("symbol pattern exceeds field width"))
	ErrSymbolDup     = errors.New(f("symbol duplicated"))
	ErrSymbolMissing = errors.New(f("enumerated field has no symbols"))

	// Access errors
	ErrFieldUnknown  = errors.New(f("field unknown"))
	ErrSymbolUnknown = errors.New(f("symbol unknown"))
	ErrDefMismatch   = errors.New(f("value belongs to another register"))
	ErrValueUnbound  = errors.New(f("value has no register"))

	// Privilege errors
	ErrPrivilegeUnset = errors.New(f("privilege not asserted"))
	ErrPrivilegeMode  = errors.New(f("privilege mode cannot access register"))
)

// ErrField locates an error within a register's field.
type ErrField struct {
	Register string
	Field    string
	Err      error
}

func (err *ErrField) Error() string {
	if len(err.Field) == 0 {
		return f("%v: %v", err.Register, err.Err)
	}
	return f("%v.%v: %v", err.Register, err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}
