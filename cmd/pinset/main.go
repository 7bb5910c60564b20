// Package main is the entry point for the pinset CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinset/cmd/pinset/commands"
	"go.trai.ch/pinset/internal/app"
	"go.trai.ch/pinset/internal/core/domain"
	_ "go.trai.ch/pinset/internal/wiring"
)

// outputSetter is implemented by loggers whose destination can be redirected.
type outputSetter interface {
	SetOutput(w io.Writer)
}

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if l, ok := components.Logger.(outputSetter); ok {
		l.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Unsatisfied constraints and incomplete plans were already reported per package.
		if errors.Is(err, domain.ErrUnsatisfiedConstraints) || errors.Is(err, domain.ErrPlanIncomplete) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
