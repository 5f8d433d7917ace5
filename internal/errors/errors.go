package errors

import (
	"fmt"
	"os"

	"github.com/ib-ingenieria/horas-cli/internal/logger"
)

// Format renders an error as the single "Error: ..." line shown to the user.
// Server-side detail is already folded into err by the api package.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal prints the formatted error and exits with code 1. A nil error is a
// no-op, so call sites can pass errors through unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
