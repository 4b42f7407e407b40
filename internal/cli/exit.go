package cli

import "errors"

// Process exit codes.
const (
	ExitCodeOK           = 0
	ExitCodeError        = 1
	ExitCodeInvalidInput = 2
)

// ExitError carries a process exit code through cobra to main.
type ExitError struct {
	Code   int
	Reason string
	Err    error
}

func (e *ExitError) Error() string {
	return e.Reason
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// invalidInput marks err as a user input problem (exit code 2).
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCodeInvalidInput, Reason: err.Error(), Err: err}
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeError
}
