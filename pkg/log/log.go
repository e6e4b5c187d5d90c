// Package log provides coloured status messages on stderr.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var green = color.New(color.FgGreen).FprintfFunc()
var faint = color.New(color.Faint).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// SuccessMsg prints a success message to stderr in green color.
func SuccessMsg(format string, a ...interface{}) {
	green(os.Stderr, "[*] "+format, a...)
}

// Logger prints debug messages when verbose output is enabled.
type Logger struct {
	verbose bool
}

// NewLogger returns a Logger. A nil *Logger is valid and prints nothing.
func NewLogger(verbose bool) *Logger {
	return &Logger{verbose: verbose}
}

// Verbose prints a faint debug message to stderr if verbose output is on.
func (l *Logger) Verbose(format string, a ...interface{}) {
	if l == nil || !l.verbose {
		return
	}
	faint(os.Stderr, "[.] "+format, a...)
}
