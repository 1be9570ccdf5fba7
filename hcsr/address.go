package hcsr

// CSR addresses of the hypervisor extension.
const (
	CSR_VSSTATUS  = uint16(0x200)
	CSR_VSIE      = uint16(0x204)
	CSR_VSTVEC    = uint16(0x205)
	CSR_VSSCRATCH = uint16(0x240)
	CSR_VSEPC     = uint16(0x241)
	CSR_VSCAUSE   = uint16(0x242)
	CSR_VSTVAL    = uint16(0x243)
	CSR_VSIP      = uint16(0x244)
	CSR_VSATP     = uint16(0x280)

	CSR_HSTATUS     = uint16(0x600)
	CSR_HEDELEG     = uint16(0x602)
	CSR_HIDELEG     = uint16(0x603)
	CSR_HIE         = uint16(0x604)
	CSR_HTIMEDELTA  = uint16(0x605)
	CSR_HCOUNTEREN  = uint16(0x606)
	CSR_HGEIE       = uint16(0x607)
	CSR_HTIMEDELTAH = uint16(0x615) // RV32 only.
	CSR_HTVAL       = uint16(0x643)
	CSR_HIP         = uint16(0x644)
	CSR_HVIP        = uint16(0x645)
	CSR_HTINST      = uint16(0x64a)
	CSR_HGEIP       = uint16(0xe12) // Read-only.
	CSR_HGATP       = uint16(0x680)
)
