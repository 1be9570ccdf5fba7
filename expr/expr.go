// Package expr evaluates integer expressions for composing register values,
// such as "HGATP_MODE_SV39X4 | (5 << HGATP_VMID_SHIFT)".
//
// Expressions use Starlark syntax. Every define whose value parses as an
// integer literal is visible as a global; other defines are ignored.
package expr

import (
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates expression and returns its value as a 64-bit word.
// Negative results are returned in two's complement, so ~MASK works as
// expected.
func Eval(expression string, defines iter.Seq2[string, string]) (value uint64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		u64, _err := strconv.ParseUint(str, 0, 64)
		if _err != nil {
			continue
		}
		pred[key] = starlark.MakeUint64(u64)
	}

	prog := "rc=" + expression + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expression)
		return
	}

	value, ok = st_int.Uint64()
	if ok {
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expression)
		return
	}

	value = uint64(st_int64)
	return
}
