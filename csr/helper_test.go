package csr

type atpMode uint64

const (
	atpBare = atpMode(0)
	atpSv39 = atpMode(8)
	atpSv48 = atpMode(9)
)

type fakeHart struct {
	csr    map[uint16]uint64
	reads  int
	writes int
	onRead func(addr uint16)
}

func (h *fakeHart) ReadCSR(addr uint16) uint64 {
	h.reads++
	if h.onRead != nil {
		h.onRead(addr)
	}
	return h.csr[addr]
}

func (h *fakeHart) WriteCSR(addr uint16, word uint64) {
	h.writes++
	if h.csr == nil {
		h.csr = map[uint16]uint64{}
	}
	h.csr[addr] = word
}

type fakeSetClearHart struct {
	fakeHart
	sets   []uint64
	clears []uint64
}

func (h *fakeSetClearHart) SetCSR(addr uint16, mask uint64) {
	h.sets = append(h.sets, mask)
	h.fakeHart.csr[addr] |= mask
}

func (h *fakeSetClearHart) ClearCSR(addr uint16, mask uint64) {
	h.clears = append(h.clears, mask)
	h.fakeHart.csr[addr] &^= mask
}

func testAtpDef() *RegisterDef {
	return &RegisterDef{
		Name:    "atp",
		Address: 0x680,
		Width:   64,
		Domain:  MODE_HS,
		Fields: []FieldSpec{
			{Name: "mode", Offset: 60, Width: 4, Kind: KIND_ENUM, Symbols: []Symbol{
				{Name: "Bare", Pattern: 0},
				{Name: "Sv39", Pattern: 8},
				{Name: "Sv48", Pattern: 9},
			}},
			{Name: "id", Offset: 44, Width: 14, Kind: KIND_UINT},
			{Name: "ppn", Offset: 0, Width: 44, Kind: KIND_UINT},
		},
	}
}

func testStatusDef() *RegisterDef {
	return &RegisterDef{
		Name:    "status",
		Address: 0x600,
		Width:   64,
		Domain:  MODE_HS,
		Fields: []FieldSpec{
			{Name: "vtsr", Offset: 22, Width: 1, Kind: KIND_BOOL},
			{Name: "vgein", Offset: 12, Width: 6, Kind: KIND_UINT},
			{Name: "hu", Offset: 9, Width: 1, Kind: KIND_BOOL},
			{Name: "spv", Offset: 7, Width: 1, Kind: KIND_BOOL},
		},
	}
}
