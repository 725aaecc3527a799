// Package main is the entry point for the qtdeploy packaging tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/qtdeploy/cmd/qtdeploy/commands"
	"go.trai.ch/qtdeploy/internal/adapters/telemetry"
	"go.trai.ch/qtdeploy/internal/app"
	_ "go.trai.ch/qtdeploy/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The worker subcommand speaks the machine-readable progress protocol
	// on stdout, so the tracer has to be chosen before the components are
	// wired up.
	if len(args) > 0 && args[0] == "worker" {
		_ = os.Setenv(telemetry.ProgressModeEnv, telemetry.ProgressModeWorker)
	}

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
