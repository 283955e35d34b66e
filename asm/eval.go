package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprPattern = regexp.MustCompile(`\$\([^)]*\)`)

// evalExpr does a compile-time $(...) evaluation.
func evalExpr(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrBadExpression(expr)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrBadExpression(expr)
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrBadExpression(expr)
		return
	}
	rc64, ok := rcInt.Int64()
	if !ok {
		err = ErrBadExpression(expr)
		return
	}

	value = int(rc64)
	return
}

// expandExprs substitutes every $(...) expression in a statement with its
// decimal value. Both passes apply the identical substitution, so sizing
// and encoding always see the same text.
func expandExprs(statement string) (out string, err error) {
	out = exprPattern.ReplaceAllStringFunc(statement, func(str string) string {
		value, eerr := evalExpr(str[2 : len(str)-1])
		if eerr != nil {
			err = eerr
			return str
		}
		return strconv.Itoa(value)
	})

	return
}
