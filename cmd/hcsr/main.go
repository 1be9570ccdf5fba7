// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/rvh/csr"
	"github.com/ezrec/rvh/expr"
	"github.com/ezrec/rvh/hcsr"
	"github.com/ezrec/rvh/sim"
)

// fieldList collects repeated -s field=expr arguments.
type fieldList []string

func (fl *fieldList) String() string {
	return strings.Join(*fl, ",")
}

func (fl *fieldList) Set(value string) error {
	*fl = append(*fl, value)
	return nil
}

func lookup(cat *hcsr.Catalog, register string) (acc csr.Accessor, err error) {
	acc, err = cat.Lookup(strings.ToLower(register))
	if err == nil {
		return
	}

	address, _err := strconv.ParseUint(register, 0, 12)
	if _err != nil {
		return
	}

	return cat.LookupAddress(uint16(address))
}

func setField(cat *hcsr.Catalog, v *csr.Value, assign string) (err error) {
	name, value, ok := strings.Cut(assign, "=")
	if !ok {
		err = fmt.Errorf("%v: expected field=expr", assign)
		return
	}

	fs, ok := v.Def().Field(name)
	if ok && fs.Kind == csr.KIND_ENUM {
		if _, ok := fs.SymbolNamed(value); ok {
			return v.SetSymbol(name, value)
		}
	}

	word, err := expr.Eval(value, cat.Defines())
	if err != nil {
		return
	}

	return v.SetField(name, word)
}

func main() {
	var xlen uint
	var register string
	var initial string
	var fields fieldList
	var write bool
	var list bool
	var verbose bool

	flag.UintVar(&xlen, "xlen", 64, "Hart XLEN (32 or 64)")
	flag.StringVar(&register, "r", "", "Register name or address")
	flag.StringVar(&initial, "x", "", "Initial register value (expression)")
	flag.Var(&fields, "s", "Set field=expr (repeatable)")
	flag.BoolVar(&write, "w", false, "Write to a simulated hart and read back")
	flag.BoolVar(&list, "l", false, "List defines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if xlen != 32 && xlen != 64 {
		log.Fatalf("%v: %v", xlen, hcsr.ErrXlenInvalid)
	}

	hart := sim.NewHart(xlen)
	hart.Verbose = verbose
	if xlen == 64 {
		hart.Absent(hcsr.CSR_HTIMEDELTAH)
	}
	cat := hcsr.New(hart, hcsr.Xlen(xlen))

	if list {
		for key, value := range cat.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
	}

	if len(register) == 0 {
		if !list {
			for acc := range cat.Registers() {
				fmt.Printf("%#03x %v\n", acc.Address(), acc.Def.Name)
			}
		}
		return
	}

	acc, err := lookup(cat, register)
	if err != nil {
		log.Fatalf("%v: %v", register, err)
	}

	v := acc.Read()
	if len(initial) != 0 {
		word, err := expr.Eval(initial, cat.Defines())
		if err != nil {
			log.Fatalf("%v: %v", initial, err)
		}
		v = csr.FromBits(acc.Def, word)
	}

	for _, assign := range fields {
		err = setField(cat, &v, assign)
		if err != nil {
			log.Fatalf("%v: %v", assign, err)
		}
	}

	fmt.Println(v)

	if write {
		if acc.Def.ReadOnly() {
			log.Fatalf("%v: read-only", acc.Def.Name)
		}
		acc.Write(csr.Assume(csr.MODE_HS), v)
		fmt.Println(acc.Read())
	}
}
