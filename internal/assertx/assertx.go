//go:build CONFIG_FLOW_ASSERTIONS

// Package assertx guards invariants that are programming errors, not input
// errors: violating them means a caller inside this module passed a value
// outside a closed domain (an out-of-range privilege level, for instance),
// never something an external JSON document can trigger.
package assertx

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
}

// Assertf panics with a formatted message and stack trace if condition is false.
func Assertf(condition bool, format string, args ...interface{}) {
	if !condition {
		msg := fmt.Sprintf(format, args...)
		log.Printf("INVARIANT VIOLATION: %s\n%s", msg, debug.Stack())
		panic("invariant violation: " + msg)
	}
}
