// Package debug holds env-var driven trace flags for the conversion
// layer. Set YFLAT_DEBUG_FLATTEN, YFLAT_DEBUG_UNFLATTEN or
// YFLAT_DEBUG_DIFF to a truthy value to get trace output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Flatten   bool
	Unflatten bool
	Diff      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flatten = boolEnv("YFLAT_DEBUG_FLATTEN")
	d.Unflatten = boolEnv("YFLAT_DEBUG_UNFLATTEN")
	d.Diff = boolEnv("YFLAT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flatten() bool {
	return d.Flatten
}
func Unflatten() bool {
	return d.Unflatten
}
func Diff() bool {
	return d.Diff
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
