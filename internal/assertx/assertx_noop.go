//go:build !CONFIG_FLOW_ASSERTIONS

package assertx

// Assertf is a no-op unless built with -tags CONFIG_FLOW_ASSERTIONS.
func Assertf(condition bool, format string, args ...interface{}) {
	_ = condition
	_ = format
	_ = args
}
