package cli

import "fmt"

// ExitCoder is implemented by errors that choose the process exit code. Run prints help along with the error when the code is 2.
type ExitCoder interface {
	error
	ExitCode() int
}

// UsageError reports that the command line itself was wrong (bad flag, wrong arg count, conflicting args). Its exit code is always 2.
type UsageError struct {
	Message string
}

// Usagef builds a UsageError. Handlers return it for mistakes that flag parsing and ArgsFunc can't see.
func Usagef(format string, args ...any) error {
	return usageErrorf(format, args...)
}

func usageErrorf(format string, args ...any) UsageError {
	return UsageError{Message: fmt.Sprintf(format, args...)}
}

func (u UsageError) Error() string { return u.Message }

// ExitCode implements ExitCoder.
func (UsageError) ExitCode() int { return 2 }

// ExitError makes Run exit with Code after printing Err. A nil Err prints only "exit status N".
type ExitError struct {
	Code int
	Err  error
}

func (x ExitError) Error() string {
	if x.Err != nil {
		return x.Err.Error()
	}
	return fmt.Sprintf("exit status %d", x.Code)
}

// ExitCode implements ExitCoder.
func (x ExitError) ExitCode() int { return x.Code }

func (x ExitError) Unwrap() error { return x.Err }
