// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	// Startup
	OpConfigLoad  Op = "load configuration"
	OpDatasetLoad Op = "load dataset"
	OpIndexBuild  Op = "build year index"

	// Session
	OpPromptRead Op = "read date"
	OpLookup     Op = "look up date"
	OpReport     Op = "print result"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
