package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Rebuild bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SYNTREE_DEBUG_PARSE")
	d.Rebuild = boolEnv("SYNTREE_DEBUG_REBUILD")
	d.LSP = boolEnv("SYNTREE_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Rebuild() bool {
	return d.Rebuild
}
func LSP() bool {
	return d.LSP
}
