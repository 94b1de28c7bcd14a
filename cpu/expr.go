package cpu

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	EXPR_PREFIX = "$("
	EXPR_SUFFIX = ")"
)

// isExpression returns true if the operand is a $(...) expression.
func isExpression(word string) bool {
	return len(word) > len(EXPR_PREFIX)+len(EXPR_SUFFIX) &&
		strings.HasPrefix(word, EXPR_PREFIX) &&
		strings.HasSuffix(word, EXPR_SUFFIX)
}

// evalExpression does compile-time $(...) evaluations. Labels defined so
// far are visible as integer globals.
func evalExpression(word string, labels Labels) (value int64, err error) {
	expr := word[len(EXPR_PREFIX) : len(word)-len(EXPR_SUFFIX)]

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, address := range labels {
		pred[name] = starlark.MakeInt(int(address))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
