package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Reflect bool
	Filter  bool
	Check   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Reflect = boolEnv("SERIAL_DEBUG_REFLECT")
	d.Filter = boolEnv("SERIAL_DEBUG_FILTER")
	d.Check = boolEnv("SERIAL_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Reflect() bool {
	return d.Reflect
}
func Filter() bool {
	return d.Filter
}
func Check() bool {
	return d.Check
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
