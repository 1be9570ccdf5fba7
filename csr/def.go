package csr

import (
	"slices"
)

const (
	ADDRESS_MAX     = 0xfff         // Largest 12-bit CSR address.
	ADDRESS_RO_MASK = uint16(0xc00) // Address bits [11:10].
	ADDRESS_RO      = uint16(0xc00) // [11:10] == 0b11 marks a read-only CSR.
)

// Symbol names one bit pattern of an enumerated field.
type Symbol struct {
	Name    string
	Pattern uint64
	Doc     string
}

// FieldSpec places a field within a register.
type FieldSpec struct {
	Name    string
	Offset  uint // LSB position.
	Width   uint // Number of bits, at least 1.
	Kind    Kind
	Symbols []Symbol // KIND_ENUM only; unmapped patterns are reserved.
	Doc     string
}

// Mask returns the field's bits in place within the register word.
func (fs *FieldSpec) Mask() uint64 {
	return Mask(fs.Width) << fs.Offset
}

// Symbol returns the symbol mapped to a pattern.
func (fs *FieldSpec) Symbol(pattern uint64) (sym Symbol, ok bool) {
	for _, sym = range fs.Symbols {
		if sym.Pattern == pattern {
			ok = true
			return
		}
	}
	sym = Symbol{}
	return
}

// SymbolNamed returns the symbol with the given name.
func (fs *FieldSpec) SymbolNamed(name string) (sym Symbol, ok bool) {
	for _, sym = range fs.Symbols {
		if sym.Name == name {
			ok = true
			return
		}
	}
	sym = Symbol{}
	return
}

// RegisterDef is the immutable description of one CSR. It is shared by
// pointer between every Value and Accessor of that register.
type RegisterDef struct {
	Name    string
	Address uint16
	Width   uint // 32 or 64.
	Domain  Mode // Mode the register belongs to; see Mode.Reaches.
	Fields  []FieldSpec
	Doc     string
}

// Field returns the named field.
func (def *RegisterDef) Field(name string) (fs *FieldSpec, ok bool) {
	for n := range def.Fields {
		if def.Fields[n].Name == name {
			return &def.Fields[n], true
		}
	}
	return
}

// ReadOnly reports whether the CSR address encodes a read-only register.
func (def *RegisterDef) ReadOnly() bool {
	return (def.Address & ADDRESS_RO_MASK) == ADDRESS_RO
}

// Mask returns the bits covered by any field.
func (def *RegisterDef) Mask() (mask uint64) {
	for n := range def.Fields {
		mask |= def.Fields[n].Mask()
	}
	return
}

// Validate checks the layout rules: a 12-bit address, a 32 or 64 bit
// width, fields inside the word and disjoint from each other, single-bit
// boolean fields, and enumerated symbols that fit and are unique.
func (def *RegisterDef) Validate() (err error) {
	fail := func(field string, err error) error {
		return &ErrField{Register: def.Name, Field: field, Err: err}
	}

	if def.Address > ADDRESS_MAX {
		return fail("", ErrAddressRange)
	}

	if def.Width != 32 && def.Width != 64 {
		return fail("", ErrWidthInvalid)
	}

	var used uint64
	var names []string
	for n := range def.Fields {
		fs := &def.Fields[n]
		if fs.Width == 0 {
			return fail(fs.Name, ErrFieldEmpty)
		}
		if fs.Offset+fs.Width > def.Width {
			return fail(fs.Name, ErrFieldRange)
		}
		if slices.Contains(names, fs.Name) {
			return fail(fs.Name, ErrFieldDupName)
		}
		names = append(names, fs.Name)

		mask := fs.Mask()
		if used&mask != 0 {
			return fail(fs.Name, ErrFieldOverlap)
		}
		used |= mask

		switch fs.Kind {
		case KIND_BOOL:
			if fs.Width != 1 || len(fs.Symbols) != 0 {
				return fail(fs.Name, ErrFieldKind)
			}
		case KIND_UINT:
			if len(fs.Symbols) != 0 {
				return fail(fs.Name, ErrFieldKind)
			}
		case KIND_ENUM:
			if len(fs.Symbols) == 0 {
				return fail(fs.Name, ErrSymbolMissing)
			}
			err = fs.validateSymbols()
			if err != nil {
				return fail(fs.Name, err)
			}
		default:
			return fail(fs.Name, ErrFieldKind)
		}
	}

	return
}

func (fs *FieldSpec) validateSymbols() (err error) {
	for n, sym := range fs.Symbols {
		if sym.Pattern > Mask(fs.Width) {
			return ErrSymbolRange
		}
		for _, other := range fs.Symbols[:n] {
			if other.Name == sym.Name || other.Pattern == sym.Pattern {
				return ErrSymbolDup
			}
		}
	}
	return
}
