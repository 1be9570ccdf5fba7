package csr

import (
	"fmt"
)

// handle binds a field to the register that declares it. The zero handle
// stands for a field the register does not have.
type handle struct {
	def  *RegisterDef
	spec *FieldSpec
}

func bind(def *RegisterDef, name string, kind Kind) (h handle) {
	if def == nil {
		return
	}
	fs, ok := def.Field(name)
	if !ok {
		return
	}
	if fs.Kind != kind {
		panic(&ErrField{Register: def.Name, Field: name, Err: ErrFieldKind})
	}
	h = handle{def: def, spec: fs}
	return
}

func (h handle) check(v Value) {
	if v.def != h.def {
		panic(&ErrField{Register: h.def.Name, Field: h.spec.Name, Err: ErrDefMismatch})
	}
}

// Valid reports whether the field exists in its register.
func (h handle) Valid() bool {
	return h.spec != nil
}

// Spec returns the field layout, or nil for an absent field.
func (h handle) Spec() *FieldSpec {
	return h.spec
}

// Mask returns the field's bits in place, or 0 for an absent field.
func (h handle) Mask() uint64 {
	if h.spec == nil {
		return 0
	}
	return h.spec.Mask()
}

// Flag is a single-bit boolean field.
type Flag struct{ handle }

// FlagOf binds the named boolean field of def. A missing field gives the
// zero Flag; a field of another kind panics.
func FlagOf(def *RegisterDef, name string) Flag {
	return Flag{bind(def, name, KIND_BOOL)}
}

// Get returns the flag's state in v.
func (fl Flag) Get(v Value) bool {
	if fl.spec == nil {
		return false
	}
	fl.check(v)
	return Extract(v.raw, fl.spec.Offset, 1) != 0
}

// Set updates the flag in v.
func (fl Flag) Set(v *Value, on bool) {
	if fl.spec == nil {
		return
	}
	fl.check(*v)
	v.raw = InsertBool(v.raw, fl.spec.Offset, on)
}

// Uint is an unsigned integer field.
type Uint struct{ handle }

// UintOf binds the named unsigned field of def.
func UintOf(def *RegisterDef, name string) Uint {
	return Uint{bind(def, name, KIND_UINT)}
}

// Get returns the field's contents in v.
func (u Uint) Get(v Value) uint64 {
	if u.spec == nil {
		return 0
	}
	u.check(v)
	return Extract(v.raw, u.spec.Offset, u.spec.Width)
}

// Set replaces the field in v with the low Width bits of value.
func (u Uint) Set(v *Value, value uint64) {
	if u.spec == nil {
		return
	}
	u.check(*v)
	v.raw = Insert(v.raw, u.spec.Offset, u.spec.Width, value)
}

// Max returns the largest value the field holds.
func (u Uint) Max() uint64 {
	if u.spec == nil {
		return 0
	}
	return Mask(u.spec.Width)
}

// Decoded is the result of decoding an enumerated field. Known is false
// when the pattern has no symbol: it is reserved, not invalid, and Raw
// still carries it.
type Decoded[E ~uint64] struct {
	Symbol E
	Raw    uint64
	Known  bool
}

// Is reports whether the decoded pattern is the symbol sym.
func (d Decoded[E]) Is(sym E) bool {
	return d.Known && d.Symbol == sym
}

func (d Decoded[E]) String() string {
	if !d.Known {
		return fmt.Sprintf("reserved(%#x)", d.Raw)
	}
	return fmt.Sprint(d.Symbol)
}

// Enum is a multi-bit field whose patterns name the symbolic values of E.
// Each constant of E equals its own bit pattern.
type Enum[E ~uint64] struct{ handle }

// EnumOf binds the named enumerated field of def.
func EnumOf[E ~uint64](def *RegisterDef, name string) Enum[E] {
	return Enum[E]{bind(def, name, KIND_ENUM)}
}

// Decode maps a raw pattern to its symbol. It never fails.
func (en Enum[E]) Decode(pattern uint64) (d Decoded[E]) {
	if en.spec == nil {
		return
	}
	pattern &= Mask(en.spec.Width)
	d.Raw = pattern
	if _, ok := en.spec.Symbol(pattern); ok {
		d.Symbol = E(pattern)
		d.Known = true
	}
	return
}

// Encode returns the canonical pattern of sym.
func (en Enum[E]) Encode(sym E) uint64 {
	if en.spec == nil {
		return 0
	}
	return uint64(sym) & Mask(en.spec.Width)
}

// Get decodes the field in v.
func (en Enum[E]) Get(v Value) Decoded[E] {
	if en.spec == nil {
		return Decoded[E]{}
	}
	en.check(v)
	return en.Decode(Extract(v.raw, en.spec.Offset, en.spec.Width))
}

// Set stores the pattern of sym in v.
func (en Enum[E]) Set(v *Value, sym E) {
	if en.spec == nil {
		return
	}
	en.check(*v)
	v.raw = Insert(v.raw, en.spec.Offset, en.spec.Width, en.Encode(sym))
}
