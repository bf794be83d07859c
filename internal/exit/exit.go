// Package exit describes how the command line tool terminates.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	CodeOK    = 0
	CodeError = 1
	CodeUsage = 2
)

// Result holds the message to print, where to print it and the exit code.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to its output.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success reports message on stdout with exit code 0.
func Success(message string) *Result {
	return &Result{Output: os.Stdout, ExitCode: CodeOK, Message: message}
}

// Error reports message on stderr with exit code 1.
func Error(message string) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeError, Message: message}
}

// Errorf is Error with a formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// FromError reports err on stderr with exit code 1, the message prefixed
// with the program name and ended by a newline. A nil err is a success with
// an empty message.
func FromError(program string, err error) *Result {
	if err == nil {
		return Success("")
	}
	return Errorf("%s: %v\n", program, err)
}

// Usage reports a command line mistake on stderr with exit code 2.
func Usage(format string, a ...any) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeUsage, Message: fmt.Sprintf(format, a...)}
}
