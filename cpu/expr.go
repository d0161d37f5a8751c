package cpu

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined expression constants.
var sysEquate = map[string]int64{
	"MEMORY_SIZE":    MEMORY_SIZE,
	"REGISTER_COUNT": REGISTER_COUNT,
	"STACK_LIMIT":    STACK_LIMIT,
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string, equate map[string]int64) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range equate {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok || value < math.MinInt32 || value > math.MaxUint32 {
		err = ErrParseExpression(expr)
		return
	}

	return
}
