package hcsr

import (
	"fmt"

	"github.com/ezrec/rvh/csr"
)

type symbolic interface {
	~uint64
	fmt.Stringer
}

func flag(name string, bit uint, doc string) csr.FieldSpec {
	return csr.FieldSpec{Name: name, Offset: bit, Width: 1, Kind: csr.KIND_BOOL, Doc: doc}
}

func bits(name string, msb, lsb uint, doc string) csr.FieldSpec {
	return csr.FieldSpec{Name: name, Offset: lsb, Width: msb - lsb + 1, Kind: csr.KIND_UINT, Doc: doc}
}

func enum[E symbolic](name string, msb, lsb uint, doc string, syms ...E) csr.FieldSpec {
	fs := csr.FieldSpec{Name: name, Offset: lsb, Width: msb - lsb + 1, Kind: csr.KIND_ENUM, Doc: doc}
	for _, sym := range syms {
		fs.Symbols = append(fs.Symbols, csr.Symbol{Name: sym.String(), Pattern: uint64(sym)})
	}
	return fs
}

func word(name string, top uint, doc string) csr.FieldSpec {
	return bits(name, top, 0, doc)
}

// Layout returns the definitions of the hypervisor CSRs for xlen, in
// address order. Each call returns fresh definitions. An xlen other than
// XLEN_32 or XLEN_64 panics.
func Layout(xlen Xlen) (defs []*csr.RegisterDef) {
	var rv32 bool
	switch xlen {
	case XLEN_32:
		rv32 = true
	case XLEN_64:
	default:
		panic(ErrXlenInvalid)
	}

	width := uint(xlen)
	top := width - 1

	reg := func(name string, address uint16, doc string, fields ...csr.FieldSpec) {
		def := &csr.RegisterDef{
			Name:    name,
			Address: address,
			Width:   width,
			Domain:  csr.MODE_HS,
			Fields:  fields,
			Doc:     doc,
		}
		defs = append(defs, def)
	}

	// vsstatus
	vsstatus := []csr.FieldSpec{
		flag("sie", 1, "Supervisor interrupt enable"),
		flag("spie", 5, "Previous SIE"),
		flag("ube", 6, "User big-endian"),
		flag("spp", 8, "Previous privilege was VS"),
		enum("vs", 10, 9, "Vector state", EXT_OFF, EXT_INITIAL, EXT_CLEAN, EXT_DIRTY),
		enum("fs", 14, 13, "Floating-point state", EXT_OFF, EXT_INITIAL, EXT_CLEAN, EXT_DIRTY),
		enum("xs", 16, 15, "User extension state", EXT_OFF, EXT_INITIAL, EXT_CLEAN, EXT_DIRTY),
		flag("sum", 18, "Permit supervisor user memory access"),
		flag("mxr", 19, "Make executable readable"),
	}
	if !rv32 {
		vsstatus = append(vsstatus, enum("uxl", 33, 32, "VU-mode XLEN", XL_32, XL_64, XL_128))
	}
	vsstatus = append(vsstatus, flag("sd", top, "Some state dirty"))
	reg("vsstatus", CSR_VSSTATUS, "Virtual supervisor status", vsstatus...)

	reg("vsie", CSR_VSIE, "Virtual supervisor interrupt enable",
		flag("ssie", 1, "Software interrupt enable"),
		flag("stie", 5, "Timer interrupt enable"),
		flag("seie", 9, "External interrupt enable"),
	)

	reg("vstvec", CSR_VSTVEC, "Virtual supervisor trap vector",
		enum("mode", 1, 0, "Vectoring mode", TVEC_DIRECT, TVEC_VECTORED),
		bits("base", top, 2, "Vector base address, bits [XLEN-1:2]"),
	)

	reg("vsscratch", CSR_VSSCRATCH, "Virtual supervisor scratch",
		word("value", top, "Scratch word"),
	)

	reg("vsepc", CSR_VSEPC, "Virtual supervisor exception PC",
		word("value", top, "Exception program counter"),
	)

	reg("vscause", CSR_VSCAUSE, "Virtual supervisor trap cause",
		bits("code", top-1, 0, "Exception code"),
		flag("interrupt", top, "Trap was an interrupt"),
	)

	reg("vstval", CSR_VSTVAL, "Virtual supervisor trap value",
		word("value", top, "Trap value"),
	)

	reg("vsip", CSR_VSIP, "Virtual supervisor interrupt pending",
		flag("ssip", 1, "Software interrupt pending"),
		flag("stip", 5, "Timer interrupt pending"),
		flag("seip", 9, "External interrupt pending"),
	)

	if rv32 {
		reg("vsatp", CSR_VSATP, "Virtual supervisor address translation",
			bits("ppn", 21, 0, "Root page table PPN"),
			bits("asid", 30, 22, "Address space identifier"),
			enum("mode", 31, 31, "Translation scheme", ATP_BARE, ATP_SV32),
		)
	} else {
		reg("vsatp", CSR_VSATP, "Virtual supervisor address translation",
			bits("ppn", 43, 0, "Root page table PPN"),
			bits("asid", 59, 44, "Address space identifier"),
			enum("mode", 63, 60, "Translation scheme", ATP_BARE, ATP_SV39, ATP_SV48, ATP_SV57, ATP_SV64),
		)
	}

	// hstatus
	hstatus := []csr.FieldSpec{
		flag("vsbe", 5, "VS-mode big-endian"),
		flag("gva", 6, "Guest virtual address in htval"),
		flag("spv", 7, "Trap taken from a virtual mode"),
		flag("spvp", 8, "Previous virtual privilege"),
		flag("hu", 9, "Hypervisor instructions in U-mode"),
		bits("vgein", 17, 12, "Guest external interrupt number"),
		flag("vtvm", 20, "Trap VS-mode SFENCE.VMA and satp"),
		flag("vtw", 21, "Trap VS-mode WFI"),
		flag("vtsr", 22, "Trap VS-mode SRET"),
	}
	if !rv32 {
		hstatus = append(hstatus, enum("vsxl", 33, 32, "VS-mode XLEN", XL_32, XL_64, XL_128))
	}
	reg("hstatus", CSR_HSTATUS, "Hypervisor status", hstatus...)

	reg("hedeleg", CSR_HEDELEG, "Hypervisor exception delegation",
		flag("inst_misaligned", 0, "Instruction address misaligned"),
		flag("inst_fault", 1, "Instruction access fault"),
		flag("illegal_inst", 2, "Illegal instruction"),
		flag("breakpoint", 3, "Breakpoint"),
		flag("load_misaligned", 4, "Load address misaligned"),
		flag("load_fault", 5, "Load access fault"),
		flag("store_misaligned", 6, "Store/AMO address misaligned"),
		flag("store_fault", 7, "Store/AMO access fault"),
		flag("ecall_u", 8, "Environment call from U-mode or VU-mode"),
		flag("inst_page_fault", 12, "Instruction page fault"),
		flag("load_page_fault", 13, "Load page fault"),
		flag("store_page_fault", 15, "Store/AMO page fault"),
	)

	reg("hideleg", CSR_HIDELEG, "Hypervisor interrupt delegation",
		flag("vssi", 2, "VS-level software interrupt"),
		flag("vsti", 6, "VS-level timer interrupt"),
		flag("vsei", 10, "VS-level external interrupt"),
	)

	reg("hie", CSR_HIE, "Hypervisor interrupt enable",
		flag("vssie", 2, "VS-level software interrupt enable"),
		flag("vstie", 6, "VS-level timer interrupt enable"),
		flag("vseie", 10, "VS-level external interrupt enable"),
		flag("sgeie", 12, "Supervisor guest external interrupt enable"),
	)

	reg("htimedelta", CSR_HTIMEDELTA, "Hypervisor time delta",
		word("value", top, "Guest time offset, low half on RV32"),
	)

	reg("hcounteren", CSR_HCOUNTEREN, "Hypervisor counter enable",
		flag("cy", 0, "cycle"),
		flag("tm", 1, "time"),
		flag("ir", 2, "instret"),
		bits("hpm", 31, 3, "hpmcounter3 to hpmcounter31"),
	)
	defs[len(defs)-1].Width = 32

	reg("hgeie", CSR_HGEIE, "Hypervisor guest external interrupt enable",
		bits("gei", top, 1, "Guest external interrupts 1 to GEILEN"),
	)

	reg("htimedeltah", CSR_HTIMEDELTAH, "Hypervisor time delta, high half (RV32 only)",
		word("value", top, "Guest time offset, high half"),
	)

	reg("htval", CSR_HTVAL, "Hypervisor trap value",
		word("value", top, "Guest physical address, shifted right by 2"),
	)

	reg("hip", CSR_HIP, "Hypervisor interrupt pending",
		flag("vssip", 2, "VS-level software interrupt pending"),
		flag("vstip", 6, "VS-level timer interrupt pending"),
		flag("vseip", 10, "VS-level external interrupt pending"),
		flag("sgeip", 12, "Supervisor guest external interrupt pending"),
	)

	reg("hvip", CSR_HVIP, "Hypervisor virtual interrupt pending",
		flag("vssip", 2, "Inject VS-level software interrupt"),
		flag("vstip", 6, "Inject VS-level timer interrupt"),
		flag("vseip", 10, "Inject VS-level external interrupt"),
	)

	reg("htinst", CSR_HTINST, "Hypervisor trap instruction",
		word("value", top, "Transformed trapping instruction"),
	)

	if rv32 {
		reg("hgatp", CSR_HGATP, "Hypervisor guest address translation",
			bits("ppn", 21, 0, "Root page table PPN"),
			bits("vmid", 28, 22, "Virtual machine identifier"),
			enum("mode", 31, 31, "Translation scheme", GATP_BARE, GATP_SV32X4),
		)
	} else {
		reg("hgatp", CSR_HGATP, "Hypervisor guest address translation",
			bits("ppn", 43, 0, "Root page table PPN"),
			bits("vmid", 57, 44, "Virtual machine identifier"),
			enum("mode", 63, 60, "Translation scheme", GATP_BARE, GATP_SV39X4, GATP_SV48X4, GATP_SV57X4),
		)
	}

	reg("hgeip", CSR_HGEIP, "Hypervisor guest external interrupt pending",
		bits("gei", top, 1, "Guest external interrupts 1 to GEILEN"),
	)

	for _, def := range defs {
		err := def.Validate()
		if err != nil {
			panic(err)
		}
	}

	return
}
