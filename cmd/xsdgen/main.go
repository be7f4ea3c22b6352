package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/timothee-haudebourg/xsd-types/codegen"
	"github.com/timothee-haudebourg/xsd-types/hierarchy"
)

// logger writes bare key=value diagnostics to stderr, keeping stdout
// for generated code and diffs.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		switch {
		case a.Key == slog.TimeKey:
			return slog.Attr{}
		case a.Key == slog.LevelKey && a.Value.String() == "INFO":
			return slog.Attr{}
		}
		return a
	},
}))

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("xsdgen").
		WithSynopsis("xsdgen [opts]").
		WithDescription("Generate Go datatype hierarchies (tags, values, conversions, parsers) from a YAML schema, or from the builtin XSD hierarchy.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	SchemaFile string `cli:"name=schema desc='YAML hierarchy schema (default: the builtin XSD hierarchy)'"`
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: stdout)'"`
	Package    string `cli:"name=pkg desc='package name of the generated file (default: schema name)'"`
	Lexical    string `cli:"name=lexical desc='selector of the package providing the Parse/Format/Clone functions'"`
	Check      bool   `cli:"name=check desc='diff generated code against the output file instead of writing it'"`
	Color      bool   `cli:"name=color desc='force colored diff output'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: xsdgen takes no arguments", cli.ErrUsage)
	}
	schema, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	code, err := codegen.Generate(schema, codegen.Config{
		Package:      cfg.Package,
		Collaborator: cfg.Lexical,
	})
	if err != nil {
		return fmt.Errorf("generating %q: %w", schema.Name, err)
	}

	if cfg.Check {
		return check(cfg, code)
	}
	if cfg.OutputFile == "" {
		_, err := cc.Out.Write(code)
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, code, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", cfg.OutputFile, err)
	}
	logger.Info("wrote generated code", "file", cfg.OutputFile, "bytes", len(code), "schema", schema.Name)
	return nil
}

func loadSchema(cfg *Config) (*hierarchy.Schema, error) {
	if cfg.SchemaFile == "" {
		return hierarchy.XSD(), nil
	}
	f, err := os.Open(cfg.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("opening schema: %w", err)
	}
	defer f.Close()
	schema, err := hierarchy.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading schema %q: %w", cfg.SchemaFile, err)
	}
	return schema, nil
}

// check compares freshly generated code against the committed file and
// renders a line diff on drift.
func check(cfg *Config, code []byte) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("%w: -check requires -o", cli.ErrUsage)
	}
	have, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("reading %q: %w", cfg.OutputFile, err)
	}
	if string(have) == string(code) {
		logger.Info("up to date", "file", cfg.OutputFile)
		return nil
	}
	printDiff(os.Stdout, string(have), string(code), cfg.Color)
	return fmt.Errorf("%q is out of date", cfg.OutputFile)
}
