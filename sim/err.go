package sim

import (
	"errors"

	"github.com/ezrec/rvh/translate"
)

var f = translate.From

var (
	ErrIllegalInstruction = errors.New(f("illegal instruction"))
)

// ErrTrap is the panic value of a CSR access the simulated hart refuses.
type ErrTrap struct {
	Address uint16
	Write   bool
	Err     error
}

func (err *ErrTrap) Error() string {
	op := "csrr"
	if err.Write {
		op = "csrw"
	}
	return f("%v %#03x: %v", op, err.Address, err.Err)
}

func (err *ErrTrap) Unwrap() error {
	return err.Err
}
