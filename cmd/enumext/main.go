package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cubicle-jockey/enum-ext/enumgen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate enum operation methods from scanned const groups."`
	Check   CheckCmd   `cmd:"" help:"Validate enum declarations without generating files."`

	Config  string `help:"Path to a project config file." default:"enumext.yaml" short:"c"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(*CLI) error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out      string   `help:"Output directory for generated files." short:"o"`
	Packages []string `arg:"" optional:"" help:"Go package patterns to scan (e.g. ./...)."`
	Types    []string `help:"Restrict generation to the named types." short:"t"`
	Random   bool     `help:"Emit the uniform random selection helper."`
}

func (c *GenCmd) Run(cli *CLI) error {
	cfg, err := buildConfig(cli, c.Packages, c.Types, c.Out, c.Random)
	if err != nil {
		return err
	}
	return enumgen.Generate(context.Background(), cfg)
}

type CheckCmd struct {
	Packages []string `arg:"" optional:"" help:"Go package patterns to scan (e.g. ./...)."`
	Types    []string `help:"Restrict checking to the named types." short:"t"`
}

func (c *CheckCmd) Run(cli *CLI) error {
	cfg, err := buildConfig(cli, c.Packages, c.Types, "", false)
	if err != nil {
		return err
	}
	return enumgen.Check(context.Background(), cfg)
}

// buildConfig merges flag values over the project config file. Flags win
// wherever both are set.
func buildConfig(cli *CLI, packages, types []string, out string, random bool) (*enumgen.Config, error) {
	file, err := loadFileConfig(cli.Config)
	if err != nil {
		return nil, err
	}

	cfg := &enumgen.Config{
		OutDir:       file.Out,
		Packages:     file.Packages,
		Types:        file.Types,
		EnableRandom: file.Random,
		Logger:       newLogger(cli.Verbose),
	}
	if out != "" {
		cfg.OutDir = out
	}
	if len(packages) > 0 {
		cfg.Packages = packages
	}
	if len(types) > 0 {
		cfg.Types = types
	}
	if random {
		cfg.EnableRandom = true
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("enumext"),
		kong.Description("Enum operation generator for Go const groups."),
		kong.UsageOnError(),
	)
	err := ctx.Run(cli)
	ctx.FatalIfErrorf(err)
}
