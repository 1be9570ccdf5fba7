// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hcsr

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/rvh/csr"
)

// Catalog is the set of hypervisor CSRs of one hart, each bound to the
// hart's CSR primitive.
type Catalog struct {
	Xlen Xlen

	Vsstatus  Vsstatus
	Vsie      Vsie
	Vstvec    Vstvec
	Vsscratch Word
	Vsepc     Word
	Vscause   Vscause
	Vstval    Word
	Vsip      Vsip
	Vsatp     Vsatp

	Hstatus     Hstatus
	Hedeleg     Hedeleg
	Hideleg     Hideleg
	Hie         Hie
	Htimedelta  Word
	Hcounteren  Hcounteren
	Hgeie       GuestExternal
	Htimedeltah Word // RV32 only; accessing it on RV64 traps.
	Htval       Word
	Hip         Hip
	Hvip        Hvip
	Htinst      Word
	Hgatp       Hgatp
	Hgeip       GuestExternal

	accessors []csr.Accessor
}

// New binds the hypervisor CSRs of an xlen hart to hw.
func New(hw csr.Primitive, xlen Xlen) (cat *Catalog) {
	cat = &Catalog{Xlen: xlen}

	byName := map[string]csr.Accessor{}
	for _, def := range Layout(xlen) {
		acc := csr.Bind(def, hw)
		cat.accessors = append(cat.accessors, acc)
		byName[def.Name] = acc
	}

	cat.Vsstatus = newVsstatus(byName["vsstatus"])
	cat.Vsie = newVsie(byName["vsie"])
	cat.Vstvec = newVstvec(byName["vstvec"])
	cat.Vsscratch = newWord(byName["vsscratch"])
	cat.Vsepc = newWord(byName["vsepc"])
	cat.Vscause = newVscause(byName["vscause"])
	cat.Vstval = newWord(byName["vstval"])
	cat.Vsip = newVsip(byName["vsip"])
	cat.Vsatp = newVsatp(byName["vsatp"])

	cat.Hstatus = newHstatus(byName["hstatus"])
	cat.Hedeleg = newHedeleg(byName["hedeleg"])
	cat.Hideleg = newHideleg(byName["hideleg"])
	cat.Hie = newHie(byName["hie"])
	cat.Htimedelta = newWord(byName["htimedelta"])
	cat.Hcounteren = newHcounteren(byName["hcounteren"])
	cat.Hgeie = newGuestExternal(byName["hgeie"])
	cat.Htimedeltah = newWord(byName["htimedeltah"])
	cat.Htval = newWord(byName["htval"])
	cat.Hip = newHip(byName["hip"])
	cat.Hvip = newHvip(byName["hvip"])
	cat.Htinst = newWord(byName["htinst"])
	cat.Hgatp = newHgatp(byName["hgatp"])
	cat.Hgeip = newGuestExternal(byName["hgeip"])

	return
}

// Registers iterates over the catalog's registers in address order.
func (cat *Catalog) Registers() iter.Seq[csr.Accessor] {
	return slices.Values(cat.accessors)
}

// Lookup returns the register with the given name.
func (cat *Catalog) Lookup(name string) (acc csr.Accessor, err error) {
	for _, acc = range cat.accessors {
		if acc.Def.Name == name {
			return
		}
	}
	err = ErrRegister(name)
	acc = csr.Accessor{}
	return
}

// LookupAddress returns the register at a CSR address.
func (cat *Catalog) LookupAddress(address uint16) (acc csr.Accessor, err error) {
	for _, acc = range cat.accessors {
		if acc.Address() == address {
			return
		}
	}
	err = ErrRegister(fmt.Sprintf("%#x", address))
	acc = csr.Accessor{}
	return
}

// TimeDelta returns the full 64-bit htimedelta. On RV32 the high half is
// read before and after the low half, and the read is retried until both
// agree, so a carry between the halves is never observed.
func (cat *Catalog) TimeDelta() uint64 {
	if cat.Xlen == XLEN_64 {
		return cat.Htimedelta.Read().Bits()
	}

	for {
		hi := cat.Htimedeltah.Read().Bits()
		lo := cat.Htimedelta.Read().Bits()
		if cat.Htimedeltah.Read().Bits() == hi {
			return hi<<32 | lo
		}
	}
}

// SetTimeDelta writes the full 64-bit htimedelta. On RV32 the two halves
// are written separately, low half first.
func (cat *Catalog) SetTimeDelta(p csr.Privilege, delta uint64) {
	if cat.Xlen == XLEN_64 {
		cat.Htimedelta.Write(p, csr.FromBits(cat.Htimedelta.Def, delta))
		return
	}

	cat.Htimedelta.Write(p, csr.FromBits(cat.Htimedelta.Def, delta))
	cat.Htimedeltah.Write(p, csr.FromBits(cat.Htimedeltah.Def, delta>>32))
}
