package codegen

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Generator produces a client from resolved options.
type Generator interface {
	Generate(ctx context.Context, c Config) error
}

// ExecGenerator runs the external generator executable named by
// Config.Generator with Config.Args.
type ExecGenerator struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Generate runs the generator and waits for it. Cancelling ctx kills it.
func (g ExecGenerator) Generate(ctx context.Context, c Config) error {
	bin, err := exec.LookPath(c.Generator)
	if err != nil {
		return fmt.Errorf("generator %q: %w", c.Generator, err)
	}
	cmd := exec.CommandContext(ctx, bin, c.Args()...)
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", c.Generator, err)
	}
	return nil
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, c Config) error

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, c Config) error {
	return f(ctx, c)
}
