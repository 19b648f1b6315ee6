// Package debug provides env-var gated logging to stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Ops   bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("DIRMERGE_DEBUG_WALK")
	d.Ops = boolEnv("DIRMERGE_DEBUG_OPS")
	d.Merge = boolEnv("DIRMERGE_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Ops() bool {
	return d.Ops
}
func Merge() bool {
	return d.Merge
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
