package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// with text colored appropriately for the level.

// Info logs informational messages in green, the color used for normal
// progress and success lines.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta, signaling caution without
// being alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init enables or disables debug logging. When disabled, Debug is a no-op
// so debug call sites cost nothing at runtime.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
