// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"log"
	"sync"

	"github.com/ezrec/rvh/csr"
)

// Hart is an in-memory hart: a CSR file keyed by address. It implements
// csr.Primitive and csr.SetClearer.
//
// Poke changes a CSR the way the hardware does on its own (an interrupt
// becoming pending, say), and may be called from another goroutine.
type Hart struct {
	Verbose bool // If set, logs every CSR access.

	// OnRead, if set, is called after every ReadCSR, outside the lock.
	OnRead func(addr uint16)

	width uint
	mutex sync.Mutex
	csr   map[uint16]uint64
	trap  map[uint16]bool
}

// NewHart creates a hart whose CSRs are width bits wide.
func NewHart(width uint) (hart *Hart) {
	hart = &Hart{
		width: width,
		csr:   map[uint16]uint64{},
		trap:  map[uint16]bool{},
	}
	return
}

// Width returns the width of the hart's CSRs.
func (hart *Hart) Width() uint {
	return hart.width
}

// Absent makes every access to addr trap, as for a CSR the hart does not
// implement.
func (hart *Hart) Absent(addr uint16) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	hart.trap[addr] = true
}

// Poke sets a CSR behind the back of any accessor, read-only CSRs included.
func (hart *Hart) Poke(addr uint16, word uint64) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	if hart.Verbose {
		log.Printf("sim: poke %#03x <- %#x", addr, word)
	}
	hart.csr[addr] = word & csr.Mask(hart.width)
}

// Peek returns a CSR without going through ReadCSR.
func (hart *Hart) Peek(addr uint16) uint64 {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	return hart.csr[addr]
}

func (hart *Hart) access(addr uint16, write bool) {
	if hart.trap[addr] {
		panic(&ErrTrap{Address: addr, Write: write, Err: ErrIllegalInstruction})
	}
	if write && (addr&csr.ADDRESS_RO_MASK) == csr.ADDRESS_RO {
		panic(&ErrTrap{Address: addr, Write: write, Err: ErrIllegalInstruction})
	}
}

// ReadCSR implements csrr.
func (hart *Hart) ReadCSR(addr uint16) (word uint64) {
	word = hart.read(addr)
	if hart.OnRead != nil {
		hart.OnRead(addr)
	}
	return
}

func (hart *Hart) read(addr uint16) (word uint64) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	hart.access(addr, false)
	word = hart.csr[addr]
	if hart.Verbose {
		log.Printf("sim: csrr %#03x -> %#x", addr, word)
	}
	return
}

// WriteCSR implements csrw.
func (hart *Hart) WriteCSR(addr uint16, word uint64) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	hart.access(addr, true)
	if hart.Verbose {
		log.Printf("sim: csrw %#03x <- %#x", addr, word)
	}
	hart.csr[addr] = word & csr.Mask(hart.width)
}

// SetCSR implements csrs.
func (hart *Hart) SetCSR(addr uint16, mask uint64) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	hart.access(addr, true)
	if hart.Verbose {
		log.Printf("sim: csrs %#03x, %#x", addr, mask)
	}
	hart.csr[addr] |= mask & csr.Mask(hart.width)
}

// ClearCSR implements csrc.
func (hart *Hart) ClearCSR(addr uint16, mask uint64) {
	hart.mutex.Lock()
	defer hart.mutex.Unlock()

	hart.access(addr, true)
	if hart.Verbose {
		log.Printf("sim: csrc %#03x, %#x", addr, mask)
	}
	hart.csr[addr] &^= mask & csr.Mask(hart.width)
}
