package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Skip bool
	Find bool
}

var d *debug

func init() {
	d = &debug{}
	d.Skip = boolEnv("SEXP_DEBUG_SKIP")
	d.Find = boolEnv("SEXP_DEBUG_FIND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Skip() bool {
	return d.Skip
}
func Find() bool {
	return d.Find
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
