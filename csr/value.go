package csr

import (
	"fmt"
	"iter"
	"strings"
)

// Value is a snapshot of one register: a raw word and the layout that
// interprets it. Updating a Value never touches the hardware.
//
// Values come from FromBits, Zero or Accessor.Read. The zero Value has no
// register: its by-name accessors return ErrValueUnbound.
type Value struct {
	raw uint64
	def *RegisterDef
}

// FromBits wraps a literal word. Bits above the register width are dropped.
func FromBits(def *RegisterDef, raw uint64) Value {
	return Value{raw: raw & Mask(def.Width), def: def}
}

// Zero returns the all-zero value of a register.
func Zero(def *RegisterDef) Value {
	return Value{def: def}
}

// Bits returns the raw word.
func (v Value) Bits() uint64 {
	return v.raw
}

// Def returns the register layout.
func (v Value) Def() *RegisterDef {
	return v.def
}

// Field returns the raw contents of the named field.
func (v Value) Field(name string) (value uint64, err error) {
	if v.def == nil {
		err = &ErrField{Field: name, Err: ErrValueUnbound}
		return
	}

	fs, ok := v.def.Field(name)
	if !ok {
		err = &ErrField{Register: v.def.Name, Field: name, Err: ErrFieldUnknown}
		return
	}

	value = Extract(v.raw, fs.Offset, fs.Width)
	return
}

// SetField replaces the named field. A boolean field is set by any nonzero
// value; other fields keep the low bits of value.
func (v *Value) SetField(name string, value uint64) (err error) {
	if v.def == nil {
		err = &ErrField{Field: name, Err: ErrValueUnbound}
		return
	}

	fs, ok := v.def.Field(name)
	if !ok {
		err = &ErrField{Register: v.def.Name, Field: name, Err: ErrFieldUnknown}
		return
	}

	if fs.Kind == KIND_BOOL {
		v.raw = InsertBool(v.raw, fs.Offset, value != 0)
	} else {
		v.raw = Insert(v.raw, fs.Offset, fs.Width, value)
	}
	return
}

// SetSymbol sets an enumerated field by symbol name.
func (v *Value) SetSymbol(name string, symbol string) (err error) {
	if v.def == nil {
		err = &ErrField{Field: name, Err: ErrValueUnbound}
		return
	}

	fs, ok := v.def.Field(name)
	if !ok {
		err = &ErrField{Register: v.def.Name, Field: name, Err: ErrFieldUnknown}
		return
	}

	sym, ok := fs.SymbolNamed(symbol)
	if !ok {
		err = &ErrField{Register: v.def.Name, Field: name, Err: ErrSymbolUnknown}
		return
	}

	v.raw = Insert(v.raw, fs.Offset, fs.Width, sym.Pattern)
	return
}

// Fields iterates over the register's fields and their raw contents, in
// layout order.
func (v Value) Fields() iter.Seq2[*FieldSpec, uint64] {
	return func(yield func(fs *FieldSpec, value uint64) bool) {
		if v.def == nil {
			return
		}
		for n := range v.def.Fields {
			fs := &v.def.Fields[n]
			if !yield(fs, Extract(v.raw, fs.Offset, fs.Width)) {
				return
			}
		}
	}
}

// FormatField renders one field's contents: booleans as 0/1, enumerated
// fields by symbol name (or reserved(0x..) when unmapped), others in hex.
func FormatField(fs *FieldSpec, value uint64) string {
	switch fs.Kind {
	case KIND_BOOL:
		return fmt.Sprintf("%d", value)
	case KIND_ENUM:
		sym, ok := fs.Symbol(value)
		if !ok {
			return fmt.Sprintf("reserved(%#x)", value)
		}
		return sym.Name
	default:
		return fmt.Sprintf("%#x", value)
	}
}

// String returns the register name, the raw word and each decoded field.
func (v Value) String() string {
	if v.def == nil {
		return fmt.Sprintf("%#x", v.raw)
	}

	var text strings.Builder

	digits := int(v.def.Width / 4)
	fmt.Fprintf(&text, "%v=0x%0*x", v.def.Name, digits, v.raw)
	for fs, value := range v.Fields() {
		fmt.Fprintf(&text, " %v=%v", fs.Name, FormatField(fs, value))
	}

	return text.String()
}
