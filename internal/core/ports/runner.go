// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner executes external tools and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes a tool and returns its combined standard output.
	//
	// Implementations honor ctx cancellation and attach the exit code and
	// stderr to the returned error when the tool fails.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath resolves a tool name against PATH. It returns the absolute
	// path of the tool or an error when the tool is not installed.
	LookPath(name string) (string, error)
}
