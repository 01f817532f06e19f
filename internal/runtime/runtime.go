package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/0xa1bed0/dli/internal/logs"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitViolated = 2
	ExitNotFound = 3
)

type Runtime struct {
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func NewRuntime() *Runtime {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return &Runtime{ctx: ctx, cancelFunc: cancel}
}

func (rt *Runtime) Ctx() context.Context {
	return rt.ctx
}

// ExitError attaches a process exit code to an error. Quiet errors are not
// printed; the diagnostics already on screen explain them.
type ExitError struct {
	Code  int
	Quiet bool
	Err   error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func WithExitCode(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

func WithQuietExitCode(code int, err error) error {
	return &ExitError{Code: code, Quiet: true, Err: err}
}

// ExitCode maps err to the process exit code: 0 for nil, the attached code
// for an ExitError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

func shouldPrint(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return !exitErr.Quiet
	}
	return true
}

// Finalize handles both panic and normal exit.
// Call it in a defer at the top of main.
func (rt *Runtime) Finalize(appName, helpHint string, execErr *error) {
	rt.cancelFunc()

	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "%s panic: %v\n", appName, r)
		fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
		os.Exit(ExitFailure)
	}

	var err error
	if execErr != nil {
		err = *execErr
	}

	if shouldPrint(err) {
		logs.Errorf("%s: %v", appName, err)
		if helpHint != "" && ExitCode(err) == ExitFailure {
			fmt.Fprintln(os.Stderr, helpHint)
		}
	}

	os.Exit(ExitCode(err))
}
