package hcsr

import (
	"testing"

	"github.com/ezrec/rvh/csr"
	"github.com/stretchr/testify/assert"
)

func TestLayout_Address(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		address uint16
	}{
		{"vsstatus", 0x200},
		{"vsie", 0x204},
		{"vstvec", 0x205},
		{"vsscratch", 0x240},
		{"vsepc", 0x241},
		{"vscause", 0x242},
		{"vstval", 0x243},
		{"vsip", 0x244},
		{"vsatp", 0x280},
		{"hstatus", 0x600},
		{"hedeleg", 0x602},
		{"hideleg", 0x603},
		{"hie", 0x604},
		{"htimedelta", 0x605},
		{"hcounteren", 0x606},
		{"hgeie", 0x607},
		{"htimedeltah", 0x615},
		{"htval", 0x643},
		{"hip", 0x644},
		{"hvip", 0x645},
		{"htinst", 0x64a},
		{"hgatp", 0x680},
		{"hgeip", 0xe12},
	}

	for _, xlen := range []Xlen{XLEN_32, XLEN_64} {
		defs := Layout(xlen)
		if !assert.Len(defs, len(table)) {
			continue
		}
		for n, entry := range table {
			def := defs[n]
			assert.Equal(entry.name, def.Name)
			assert.Equal(entry.address, def.Address, entry.name)
			assert.Equal(csr.MODE_HS, def.Domain, entry.name)
			assert.NoError(def.Validate(), entry.name)
			assert.Equal(entry.name == "hgeip", def.ReadOnly(), entry.name)
			if entry.name == "hcounteren" {
				assert.Equal(uint(32), def.Width)
			} else {
				assert.Equal(uint(xlen), def.Width, entry.name)
			}
		}
	}
}

func TestLayout_Fresh(t *testing.T) {
	assert := assert.New(t)

	a := Layout(XLEN_64)
	b := Layout(XLEN_64)
	assert.NotSame(a[0], b[0])
	assert.Equal(a[0], b[0])
}

func TestLayout_Xlen(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithError(ErrXlenInvalid.Error(), func() { Layout(Xlen(128)) })
}

type fieldAt struct {
	name   string
	offset uint
	width  uint
	kind   csr.Kind
}

func checkFields(t *testing.T, def *csr.RegisterDef, fields []fieldAt) {
	assert := assert.New(t)

	assert.Len(def.Fields, len(fields), def.Name)
	for _, want := range fields {
		fs, ok := def.Field(want.name)
		if !assert.True(ok, "%v.%v", def.Name, want.name) {
			continue
		}
		assert.Equal(want.offset, fs.Offset, "%v.%v", def.Name, want.name)
		assert.Equal(want.width, fs.Width, "%v.%v", def.Name, want.name)
		assert.Equal(want.kind, fs.Kind, "%v.%v", def.Name, want.name)
	}
}

func find(defs []*csr.RegisterDef, name string) *csr.RegisterDef {
	for _, def := range defs {
		if def.Name == name {
			return def
		}
	}
	return nil
}

func TestLayout_RV64(t *testing.T) {
	defs := Layout(XLEN_64)

	checkFields(t, find(defs, "hstatus"), []fieldAt{
		{"vsbe", 5, 1, csr.KIND_BOOL},
		{"gva", 6, 1, csr.KIND_BOOL},
		{"spv", 7, 1, csr.KIND_BOOL},
		{"spvp", 8, 1, csr.KIND_BOOL},
		{"hu", 9, 1, csr.KIND_BOOL},
		{"vgein", 12, 6, csr.KIND_UINT},
		{"vtvm", 20, 1, csr.KIND_BOOL},
		{"vtw", 21, 1, csr.KIND_BOOL},
		{"vtsr", 22, 1, csr.KIND_BOOL},
		{"vsxl", 32, 2, csr.KIND_ENUM},
	})

	checkFields(t, find(defs, "hgatp"), []fieldAt{
		{"ppn", 0, 44, csr.KIND_UINT},
		{"vmid", 44, 14, csr.KIND_UINT},
		{"mode", 60, 4, csr.KIND_ENUM},
	})

	checkFields(t, find(defs, "vsatp"), []fieldAt{
		{"ppn", 0, 44, csr.KIND_UINT},
		{"asid", 44, 16, csr.KIND_UINT},
		{"mode", 60, 4, csr.KIND_ENUM},
	})

	checkFields(t, find(defs, "vsstatus"), []fieldAt{
		{"sie", 1, 1, csr.KIND_BOOL},
		{"spie", 5, 1, csr.KIND_BOOL},
		{"ube", 6, 1, csr.KIND_BOOL},
		{"spp", 8, 1, csr.KIND_BOOL},
		{"vs", 9, 2, csr.KIND_ENUM},
		{"fs", 13, 2, csr.KIND_ENUM},
		{"xs", 15, 2, csr.KIND_ENUM},
		{"sum", 18, 1, csr.KIND_BOOL},
		{"mxr", 19, 1, csr.KIND_BOOL},
		{"uxl", 32, 2, csr.KIND_ENUM},
		{"sd", 63, 1, csr.KIND_BOOL},
	})

	checkFields(t, find(defs, "vscause"), []fieldAt{
		{"code", 0, 63, csr.KIND_UINT},
		{"interrupt", 63, 1, csr.KIND_BOOL},
	})

	checkFields(t, find(defs, "vstvec"), []fieldAt{
		{"mode", 0, 2, csr.KIND_ENUM},
		{"base", 2, 62, csr.KIND_UINT},
	})

	checkFields(t, find(defs, "hgeip"), []fieldAt{
		{"gei", 1, 63, csr.KIND_UINT},
	})

	checkFields(t, find(defs, "hcounteren"), []fieldAt{
		{"cy", 0, 1, csr.KIND_BOOL},
		{"tm", 1, 1, csr.KIND_BOOL},
		{"ir", 2, 1, csr.KIND_BOOL},
		{"hpm", 3, 29, csr.KIND_UINT},
	})

	checkFields(t, find(defs, "hip"), []fieldAt{
		{"vssip", 2, 1, csr.KIND_BOOL},
		{"vstip", 6, 1, csr.KIND_BOOL},
		{"vseip", 10, 1, csr.KIND_BOOL},
		{"sgeip", 12, 1, csr.KIND_BOOL},
	})

	checkFields(t, find(defs, "htimedelta"), []fieldAt{
		{"value", 0, 64, csr.KIND_UINT},
	})
}

func TestLayout_RV32(t *testing.T) {
	defs := Layout(XLEN_32)

	hstatus := find(defs, "hstatus")
	_, ok := hstatus.Field("vsxl")
	assert.False(t, ok)

	checkFields(t, find(defs, "hgatp"), []fieldAt{
		{"ppn", 0, 22, csr.KIND_UINT},
		{"vmid", 22, 7, csr.KIND_UINT},
		{"mode", 31, 1, csr.KIND_ENUM},
	})

	checkFields(t, find(defs, "vsatp"), []fieldAt{
		{"ppn", 0, 22, csr.KIND_UINT},
		{"asid", 22, 9, csr.KIND_UINT},
		{"mode", 31, 1, csr.KIND_ENUM},
	})

	checkFields(t, find(defs, "vscause"), []fieldAt{
		{"code", 0, 31, csr.KIND_UINT},
		{"interrupt", 31, 1, csr.KIND_BOOL},
	})

	vsstatus := find(defs, "vsstatus")
	sd, ok := vsstatus.Field("sd")
	if assert.True(t, ok) {
		assert.Equal(t, uint(31), sd.Offset)
	}
	_, ok = vsstatus.Field("uxl")
	assert.False(t, ok)

	checkFields(t, find(defs, "hgeie"), []fieldAt{
		{"gei", 1, 31, csr.KIND_UINT},
	})
}

func TestLayout_Symbols(t *testing.T) {
	assert := assert.New(t)

	hgatp := find(Layout(XLEN_64), "hgatp")
	mode, _ := hgatp.Field("mode")

	sym, ok := mode.Symbol(8)
	assert.True(ok)
	assert.Equal("Sv39x4", sym.Name)

	_, ok = mode.Symbol(1)
	assert.False(ok)

	hgatp = find(Layout(XLEN_32), "hgatp")
	mode, _ = hgatp.Field("mode")
	sym, ok = mode.Symbol(1)
	assert.True(ok)
	assert.Equal("Sv32x4", sym.Name)
}
