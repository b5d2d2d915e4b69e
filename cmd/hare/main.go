package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Every dataset loaded and every command succeeded
	ExitInvalid = 1 // One or more datasets are invalid
	ExitError   = 2 // Configuration or runtime error
)

// ValidationFailedError indicates that the command ran, but one or more
// dataset files did not describe a valid dataset.
type ValidationFailedError struct {
	Message string
}

func (e *ValidationFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var validationErr *ValidationFailedError
		if errors.As(err, &validationErr) {
			os.Exit(ExitInvalid)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
