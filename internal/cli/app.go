package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ytget/tubedl/internal/bootstrap"
	"github.com/ytget/tubedl/internal/model"
	"github.com/ytget/tubedl/internal/platform"
)

// errReported wraps failures that were already shown to the user
type errReported struct {
	err error
}

func (e *errReported) Error() string { return e.err.Error() }
func (e *errReported) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &errReported{err: err}
}

func isReported(err error) bool {
	var r *errReported
	return errors.As(err, &r)
}

// runFunc runs one download synchronously
type runFunc func(ctx context.Context, req model.DownloadRequest) error

// app carries the state shared by all commands
type app struct {
	configPath string
	debug      bool
	env        *bootstrap.Env
	in         io.Reader
	out        io.Writer
}

func (a *app) load() error {
	env, err := bootstrap.Load(a.configPath, a.debug)
	if err != nil {
		return err
	}
	a.env = env
	return nil
}

// runner returns a download runner bound to a terminal display, and a
// function releasing its resources
func (a *app) runner() (runFunc, func()) {
	svc, closeFn := a.env.NewService(newTerminalDisplay(a.out))
	return ensureDestination(svc.Run, a.out), closeFn
}

// ensureDestination creates the destination folder before each run
func ensureDestination(run runFunc, out io.Writer) runFunc {
	return func(ctx context.Context, req model.DownloadRequest) error {
		if req.Destination != "" {
			if err := platform.CreateDirectoryIfNotExists(req.Destination); err != nil {
				err = fmt.Errorf("failed to create destination %s: %w", req.Destination, err)
				PrintError(out, err.Error())
				return err
			}
		}
		return run(ctx, req)
	}
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
