package ports

import "context"

// Runner executes an external command with a fully specified environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run blocks until the command exits and returns its exit code. A
	// command that terminates without an exit code (signal death) or
	// cannot be spawned returns a non-nil error.
	Run(ctx context.Context, name string, args []string, env []string) (int, error)
}
