package hcsr

import (
	"github.com/ezrec/rvh/csr"
)

// Word is a register that holds a single unstructured word.
type Word struct {
	csr.Accessor
	Value csr.Uint
}

func newWord(acc csr.Accessor) Word {
	return Word{
		Accessor: acc,
		Value:    csr.UintOf(acc.Def, "value"),
	}
}

// Vsstatus is the VS-mode view of sstatus.
type Vsstatus struct {
	csr.Accessor
	SIE  csr.Flag
	SPIE csr.Flag
	UBE  csr.Flag
	SPP  csr.Flag
	VS   csr.Enum[ExtState]
	FS   csr.Enum[ExtState]
	XS   csr.Enum[ExtState]
	SUM  csr.Flag
	MXR  csr.Flag
	UXL  csr.Enum[XlenCode] // RV64 only.
	SD   csr.Flag
}

func newVsstatus(acc csr.Accessor) Vsstatus {
	def := acc.Def
	return Vsstatus{
		Accessor: acc,
		SIE:      csr.FlagOf(def, "sie"),
		SPIE:     csr.FlagOf(def, "spie"),
		UBE:      csr.FlagOf(def, "ube"),
		SPP:      csr.FlagOf(def, "spp"),
		VS:       csr.EnumOf[ExtState](def, "vs"),
		FS:       csr.EnumOf[ExtState](def, "fs"),
		XS:       csr.EnumOf[ExtState](def, "xs"),
		SUM:      csr.FlagOf(def, "sum"),
		MXR:      csr.FlagOf(def, "mxr"),
		UXL:      csr.EnumOf[XlenCode](def, "uxl"),
		SD:       csr.FlagOf(def, "sd"),
	}
}

// Vsie is the VS-mode view of sie.
type Vsie struct {
	csr.Accessor
	SSIE csr.Flag
	STIE csr.Flag
	SEIE csr.Flag
}

func newVsie(acc csr.Accessor) Vsie {
	def := acc.Def
	return Vsie{
		Accessor: acc,
		SSIE:     csr.FlagOf(def, "ssie"),
		STIE:     csr.FlagOf(def, "stie"),
		SEIE:     csr.FlagOf(def, "seie"),
	}
}

// Vsip is the VS-mode view of sip.
type Vsip struct {
	csr.Accessor
	SSIP csr.Flag
	STIP csr.Flag
	SEIP csr.Flag
}

func newVsip(acc csr.Accessor) Vsip {
	def := acc.Def
	return Vsip{
		Accessor: acc,
		SSIP:     csr.FlagOf(def, "ssip"),
		STIP:     csr.FlagOf(def, "stip"),
		SEIP:     csr.FlagOf(def, "seip"),
	}
}

// Vstvec is the VS-mode trap vector.
type Vstvec struct {
	csr.Accessor
	Mode csr.Enum[TrapMode]
	Base csr.Uint // Address bits [XLEN-1:2].
}

func newVstvec(acc csr.Accessor) Vstvec {
	def := acc.Def
	return Vstvec{
		Accessor: acc,
		Mode:     csr.EnumOf[TrapMode](def, "mode"),
		Base:     csr.UintOf(def, "base"),
	}
}

// Vscause is the VS-mode trap cause.
type Vscause struct {
	csr.Accessor
	Code      csr.Uint
	Interrupt csr.Flag
}

func newVscause(acc csr.Accessor) Vscause {
	def := acc.Def
	return Vscause{
		Accessor:  acc,
		Code:      csr.UintOf(def, "code"),
		Interrupt: csr.FlagOf(def, "interrupt"),
	}
}

// Vsatp is the VS-stage address translation register.
type Vsatp struct {
	csr.Accessor
	PPN  csr.Uint
	ASID csr.Uint
	Mode csr.Enum[AtpMode]
}

func newVsatp(acc csr.Accessor) Vsatp {
	def := acc.Def
	return Vsatp{
		Accessor: acc,
		PPN:      csr.UintOf(def, "ppn"),
		ASID:     csr.UintOf(def, "asid"),
		Mode:     csr.EnumOf[AtpMode](def, "mode"),
	}
}

// Hstatus is the hypervisor status register.
type Hstatus struct {
	csr.Accessor
	VSBE  csr.Flag
	GVA   csr.Flag
	SPV   csr.Flag
	SPVP  csr.Flag
	HU    csr.Flag
	VGEIN csr.Uint
	VTVM  csr.Flag
	VTW   csr.Flag
	VTSR  csr.Flag
	VSXL  csr.Enum[XlenCode] // RV64 only.
}

func newHstatus(acc csr.Accessor) Hstatus {
	def := acc.Def
	return Hstatus{
		Accessor: acc,
		VSBE:     csr.FlagOf(def, "vsbe"),
		GVA:      csr.FlagOf(def, "gva"),
		SPV:      csr.FlagOf(def, "spv"),
		SPVP:     csr.FlagOf(def, "spvp"),
		HU:       csr.FlagOf(def, "hu"),
		VGEIN:    csr.UintOf(def, "vgein"),
		VTVM:     csr.FlagOf(def, "vtvm"),
		VTW:      csr.FlagOf(def, "vtw"),
		VTSR:     csr.FlagOf(def, "vtsr"),
		VSXL:     csr.EnumOf[XlenCode](def, "vsxl"),
	}
}

// Hedeleg selects the exceptions delegated to VS-mode.
type Hedeleg struct {
	csr.Accessor
	InstMisaligned  csr.Flag
	InstFault       csr.Flag
	IllegalInst     csr.Flag
	Breakpoint      csr.Flag
	LoadMisaligned  csr.Flag
	LoadFault       csr.Flag
	StoreMisaligned csr.Flag
	StoreFault      csr.Flag
	EcallU          csr.Flag
	InstPageFault   csr.Flag
	LoadPageFault   csr.Flag
	StorePageFault  csr.Flag
}

func newHedeleg(acc csr.Accessor) Hedeleg {
	def := acc.Def
	return Hedeleg{
		Accessor:        acc,
		InstMisaligned:  csr.FlagOf(def, "inst_misaligned"),
		InstFault:       csr.FlagOf(def, "inst_fault"),
		IllegalInst:     csr.FlagOf(def, "illegal_inst"),
		Breakpoint:      csr.FlagOf(def, "breakpoint"),
		LoadMisaligned:  csr.FlagOf(def, "load_misaligned"),
		LoadFault:       csr.FlagOf(def, "load_fault"),
		StoreMisaligned: csr.FlagOf(def, "store_misaligned"),
		StoreFault:      csr.FlagOf(def, "store_fault"),
		EcallU:          csr.FlagOf(def, "ecall_u"),
		InstPageFault:   csr.FlagOf(def, "inst_page_fault"),
		LoadPageFault:   csr.FlagOf(def, "load_page_fault"),
		StorePageFault:  csr.FlagOf(def, "store_page_fault"),
	}
}

// Hideleg selects the VS-level interrupts delegated to VS-mode.
type Hideleg struct {
	csr.Accessor
	VSSI csr.Flag
	VSTI csr.Flag
	VSEI csr.Flag
}

func newHideleg(acc csr.Accessor) Hideleg {
	def := acc.Def
	return Hideleg{
		Accessor: acc,
		VSSI:     csr.FlagOf(def, "vssi"),
		VSTI:     csr.FlagOf(def, "vsti"),
		VSEI:     csr.FlagOf(def, "vsei"),
	}
}

// Hie enables the hypervisor-level interrupts.
type Hie struct {
	csr.Accessor
	VSSIE csr.Flag
	VSTIE csr.Flag
	VSEIE csr.Flag
	SGEIE csr.Flag
}

func newHie(acc csr.Accessor) Hie {
	def := acc.Def
	return Hie{
		Accessor: acc,
		VSSIE:    csr.FlagOf(def, "vssie"),
		VSTIE:    csr.FlagOf(def, "vstie"),
		VSEIE:    csr.FlagOf(def, "vseie"),
		SGEIE:    csr.FlagOf(def, "sgeie"),
	}
}

// Hip reports the pending hypervisor-level interrupts.
type Hip struct {
	csr.Accessor
	VSSIP csr.Flag
	VSTIP csr.Flag
	VSEIP csr.Flag
	SGEIP csr.Flag
}

func newHip(acc csr.Accessor) Hip {
	def := acc.Def
	return Hip{
		Accessor: acc,
		VSSIP:    csr.FlagOf(def, "vssip"),
		VSTIP:    csr.FlagOf(def, "vstip"),
		VSEIP:    csr.FlagOf(def, "vseip"),
		SGEIP:    csr.FlagOf(def, "sgeip"),
	}
}

// Hvip injects virtual interrupts into VS-mode.
type Hvip struct {
	csr.Accessor
	VSSIP csr.Flag
	VSTIP csr.Flag
	VSEIP csr.Flag
}

func newHvip(acc csr.Accessor) Hvip {
	def := acc.Def
	return Hvip{
		Accessor: acc,
		VSSIP:    csr.FlagOf(def, "vssip"),
		VSTIP:    csr.FlagOf(def, "vstip"),
		VSEIP:    csr.FlagOf(def, "vseip"),
	}
}

// Hcounteren exposes counters to VS-mode. It is 32 bits at any XLEN.
type Hcounteren struct {
	csr.Accessor
	CY  csr.Flag
	TM  csr.Flag
	IR  csr.Flag
	HPM csr.Uint // Bit n-3 enables hpmcounter<n>.
}

func newHcounteren(acc csr.Accessor) Hcounteren {
	def := acc.Def
	return Hcounteren{
		Accessor: acc,
		CY:       csr.FlagOf(def, "cy"),
		TM:       csr.FlagOf(def, "tm"),
		IR:       csr.FlagOf(def, "ir"),
		HPM:      csr.UintOf(def, "hpm"),
	}
}

// GuestExternal is hgeie or hgeip: one bit per guest external interrupt.
// Bit 0 is reserved, so GEI bit n-1 is guest external interrupt n.
type GuestExternal struct {
	csr.Accessor
	GEI csr.Uint
}

func newGuestExternal(acc csr.Accessor) GuestExternal {
	return GuestExternal{
		Accessor: acc,
		GEI:      csr.UintOf(acc.Def, "gei"),
	}
}

// Hgatp is the G-stage address translation register.
type Hgatp struct {
	csr.Accessor
	PPN  csr.Uint
	VMID csr.Uint
	Mode csr.Enum[GatpMode]
}

func newHgatp(acc csr.Accessor) Hgatp {
	def := acc.Def
	return Hgatp{
		Accessor: acc,
		PPN:      csr.UintOf(def, "ppn"),
		VMID:     csr.UintOf(def, "vmid"),
		Mode:     csr.EnumOf[GatpMode](def, "mode"),
	}
}
