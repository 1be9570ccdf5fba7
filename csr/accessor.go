package csr

// Primitive issues the CSR instructions of the current hart. ReadCSR is
// csrr and WriteCSR is csrw; both run at the current privilege level, and
// an access the hart does not permit raises an illegal-instruction or
// virtual-instruction trap in the surrounding system instead of returning.
type Primitive interface {
	ReadCSR(addr uint16) uint64
	WriteCSR(addr uint16, word uint64)
}

// SetClearer is implemented by a Primitive that also provides the atomic
// csrs and csrc bit updates.
type SetClearer interface {
	SetCSR(addr uint16, mask uint64)
	ClearCSR(addr uint16, mask uint64)
}

// Privilege is proof, supplied by the caller, that the hart runs at a mode
// allowed to update the register being written. The zero Privilege is
// unset and every update made with it panics.
type Privilege struct {
	mode  Mode
	valid bool
}

// Assume returns the Privilege token for mode.
//
// The hart's actual mode is not verified: calling Assume asserts that the
// caller has already established, by construction of the surrounding code,
// that the hart runs in mode. Updates check only that mode reaches the
// register's domain. Obtain it once where that holds (a trap handler entered in
// HS-mode, for example) and pass it down to the code that writes CSRs.
func Assume(mode Mode) Privilege {
	return Privilege{mode: mode, valid: true}
}

// Mode returns the privilege mode asserted by the token.
func (p Privilege) Mode() Mode {
	return p.mode
}

// Valid reports whether the token was obtained from Assume.
func (p Privilege) Valid() bool {
	return p.valid
}

// Accessor binds a register layout to the hart's CSR instructions. It holds
// no register state: every Read and Write goes to the hardware.
type Accessor struct {
	Def *RegisterDef
	hw  Primitive
}

// Bind creates the Accessor of def over hw.
func Bind(def *RegisterDef, hw Primitive) Accessor {
	return Accessor{Def: def, hw: hw}
}

// Address returns the CSR address.
func (a Accessor) Address() uint16 {
	return a.Def.Address
}

// Read captures the register's current value. A later change of the
// hardware, such as an interrupt becoming pending, shows only in a later
// Read.
func (a Accessor) Read() Value {
	return FromBits(a.Def, a.hw.ReadCSR(a.Def.Address))
}

// Write commits v to the register.
//
// This changes live hart state (delegation, translation, trap vectors).
// The write traps in the hardware if the hart is not, in fact, running at
// a mode that may access the register; p documents that the caller has
// checked. v must be a value of this register.
func (a Accessor) Write(p Privilege, v Value) {
	a.checkPrivilege(p)
	if v.def != a.Def {
		panic(&ErrField{Register: a.Def.Name, Err: ErrDefMismatch})
	}
	a.hw.WriteCSR(a.Def.Address, v.raw)
}

// Set sets the bits of mask in the register. Without a SetClearer
// primitive the update is a read-modify-write, which is not atomic with
// respect to interrupt handlers or hardware updates of the register.
func (a Accessor) Set(p Privilege, mask uint64) {
	a.checkPrivilege(p)
	mask &= Mask(a.Def.Width)
	if sc, ok := a.hw.(SetClearer); ok {
		sc.SetCSR(a.Def.Address, mask)
		return
	}
	a.hw.WriteCSR(a.Def.Address, a.hw.ReadCSR(a.Def.Address)|mask)
}

// Clear clears the bits of mask in the register, with the same atomicity
// caveat as Set.
func (a Accessor) Clear(p Privilege, mask uint64) {
	a.checkPrivilege(p)
	mask &= Mask(a.Def.Width)
	if sc, ok := a.hw.(SetClearer); ok {
		sc.ClearCSR(a.Def.Address, mask)
		return
	}
	a.hw.WriteCSR(a.Def.Address, a.hw.ReadCSR(a.Def.Address)&^mask)
}

// Enable sets a single flag of the register in place.
func (a Accessor) Enable(p Privilege, fl Flag) {
	a.checkFlag(fl)
	a.Set(p, fl.Mask())
}

// Disable clears a single flag of the register in place.
func (a Accessor) Disable(p Privilege, fl Flag) {
	a.checkFlag(fl)
	a.Clear(p, fl.Mask())
}

// Modify reads the register, applies fn and writes the result back.
func (a Accessor) Modify(p Privilege, fn func(v *Value)) {
	a.checkPrivilege(p)
	v := a.Read()
	fn(&v)
	a.Write(p, v)
}

// checkPrivilege panics for an unset token, or one whose mode cannot
// reach the register's domain.
func (a Accessor) checkPrivilege(p Privilege) {
	if !p.valid {
		panic(&ErrField{Register: a.Def.Name, Err: ErrPrivilegeUnset})
	}
	if !p.mode.Reaches(a.Def.Domain) {
		panic(&ErrField{Register: a.Def.Name, Err: ErrPrivilegeMode})
	}
}

func (a Accessor) checkFlag(fl Flag) {
	if fl.def != nil && fl.def != a.Def {
		panic(&ErrField{Register: a.Def.Name, Field: fl.spec.Name, Err: ErrDefMismatch})
	}
}
