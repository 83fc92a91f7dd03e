// Package debug provides environment-gated debug logging. Each
// subsystem has its own RUNNEL_DEBUG_* switch; RUNNEL_DEBUG turns
// them all on at once.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Stream bool
	Path   bool
	Stage  bool
	Decode bool
	RPC    bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("RUNNEL_DEBUG")
	d.Stream = all || boolEnv("RUNNEL_DEBUG_STREAM")
	d.Path = all || boolEnv("RUNNEL_DEBUG_PATH")
	d.Stage = all || boolEnv("RUNNEL_DEBUG_STAGE")
	d.Decode = all || boolEnv("RUNNEL_DEBUG_DECODE")
	d.RPC = all || boolEnv("RUNNEL_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Stream() bool {
	return d.Stream
}
func Path() bool {
	return d.Path
}
func Stage() bool {
	return d.Stage
}
func Decode() bool {
	return d.Decode
}
func RPC() bool {
	return d.RPC
}
