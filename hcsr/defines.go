package hcsr

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/rvh/csr"
	"github.com/ezrec/rvh/internal"
)

// registerDefines returns the symbolic constants of one register.
func registerDefines(def *csr.RegisterDef) map[string]string {
	name := strings.ToUpper(def.Name)
	defines := map[string]string{
		name: fmt.Sprintf("%#x", def.Address),
	}

	for _, fs := range def.Fields {
		field := name + "_" + strings.ToUpper(fs.Name)
		defines[field] = fmt.Sprintf("%#x", fs.Mask())
		defines[field+"_SHIFT"] = fmt.Sprintf("%d", fs.Offset)
		for _, sym := range fs.Symbols {
			defines[field+"_"+strings.ToUpper(sym.Name)] = fmt.Sprintf("%#x", sym.Pattern<<fs.Offset)
		}
	}

	return defines
}

// Defines returns the symbolic constants of the catalog, for use in
// expressions: the address of each register (HGATP), the in-place mask and
// shift of each field (HGATP_VMID, HGATP_VMID_SHIFT), and the in-place
// pattern of each symbol (HGATP_MODE_SV39X4). Registers come in address
// order, and each register's constants in name order.
func (cat *Catalog) Defines() iter.Seq2[string, string] {
	var seqs []iter.Seq2[string, string]
	for acc := range cat.Registers() {
		seqs = append(seqs, internal.IterSeq2Sorted(maps.All(registerDefines(acc.Def))))
	}

	return internal.IterSeq2Concat(seqs...)
}
