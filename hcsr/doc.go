// Package hcsr catalogs the control and status registers of the RISC-V
// hypervisor extension.
//
// Layout returns the register definitions for RV32 or RV64 as plain data,
// transcribed from the ratified hypervisor extension (H 1.0). New binds
// every definition to a csr.Primitive and exposes one typed handle per field:
//
//	cat := hcsr.New(hart, hcsr.XLEN_64)
//	v := cat.Hgatp.Read()
//	cat.Hgatp.Mode.Set(&v, hcsr.GATP_SV39X4)
//	cat.Hgatp.VMID.Set(&v, vmid)
//	cat.Hgatp.PPN.Set(&v, root>>12)
//	cat.Hgatp.Write(csr.Assume(csr.MODE_HS), v)
//
// Every register here is accessible from HS-mode and M-mode only; from VS
// or VU mode the access traps.
package hcsr
