package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitctl/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1. The only
// expected caller is main, for terminal setup failures in the TUI.
func Fatal(err error) {
	if err != nil {
		logger.Error("fatal error", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
