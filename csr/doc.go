// Package csr implements typed, bit-exact access to control and status registers.
//
// A RegisterDef describes a register once: its CSR address, its width and the
// non-overlapping fields packed into it. A Value pairs one raw word with its
// RegisterDef, and the Flag, Uint and Enum handles read and modify a single
// field of a Value without touching any other bit. An Accessor binds a
// RegisterDef to a Primitive, the platform's csrr/csrw instruction pair, to
// read a live Value or commit one back.
//
// Field updates are total: values wider than a field are truncated to the
// field's low bits, exactly as the hardware field itself would hold them.
//
// Nothing in this package locks. CSR state is per-hart global state, and
// ordering against interrupt handlers or other harts is the caller's job.
package csr
