package codegen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// NewCommand builds the CLI command from the option table. Options are
// resolved as defaults, then the config file, then environment and flags;
// the result is checked, the document loaded, and gen invoked. --verbose
// lowers level to debug; level may be nil.
func NewCommand(gen Generator, logger *slog.Logger, level *slog.LevelVar) *cli.Command {
	return &cli.Command{
		Name:  "oagen",
		Usage: "Generate an API client from an OpenAPI document",
		Description: `Resolves generator options from flags, OAGEN_* environment variables and
an optional YAML config file (` + DefaultConfigFile + `), checks them, validates the
OpenAPI document and runs the external client generator.

Example:
  oagen --input api.yaml --output ./src/api --client axios --modular`,
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := ResolveConfig(cmd)
			if err != nil {
				return err
			}
			if c.Verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
			return Run(ctx, c, gen, logger)
		},
	}
}

// Flags returns one flag per option.
func Flags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(Options))
	for _, o := range Options {
		var aliases []string
		if o.Short != "" {
			aliases = []string{o.Short}
		}
		sources := cli.EnvVars(o.EnvVar())

		switch d := o.Default.(type) {
		case bool:
			flags = append(flags, &cli.BoolFlag{Name: o.Name, Aliases: aliases, Usage: o.Usage, Value: d, Sources: sources})
		case int:
			flags = append(flags, &cli.IntFlag{Name: o.Name, Aliases: aliases, Usage: o.Usage, Value: d, Sources: sources})
		case string:
			flags = append(flags, &cli.StringFlag{Name: o.Name, Aliases: aliases, Usage: o.Usage, Value: d, Sources: sources})
		}
	}
	return flags
}

// ResolveConfig loads the config file named by --config and overlays every
// flag that was set on the command line or through the environment.
func ResolveConfig(cmd *cli.Command) (Config, error) {
	c, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return c, err
	}
	for _, o := range Options {
		if !cmd.IsSet(o.Name) {
			continue
		}
		var val any
		switch o.Default.(type) {
		case bool:
			val = cmd.Bool(o.Name)
		case int:
			val = cmd.Int(o.Name)
		case string:
			val = cmd.String(o.Name)
		}
		if err := c.Set(o.Name, val); err != nil {
			return c, err
		}
	}
	c.Normalize()
	return c, nil
}

// Run checks c, validates the document and runs gen.
func Run(ctx context.Context, c Config, gen Generator, logger *slog.Logger) error {
	logger.Debug("resolved options", "config", c.Config, "args", c.Args())

	if err := c.Check(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	doc, err := LoadDocument(ctx, c.Input)
	if err != nil {
		return err
	}
	s := Summarize(doc)
	logger.Info("generating client",
		"title", s.Title,
		"version", s.Version,
		"operations", s.Operations,
		"schemas", s.Schemas,
		"output", c.Output,
	)

	if err := gen.Generate(ctx, c); err != nil {
		return err
	}
	logger.Info("client generated", "output", c.Output)
	return nil
}
