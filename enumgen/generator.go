// Package enumgen drives build-time generation: it scans Go packages for
// enum declarations and emits the derived operation set as Go source next to
// a capability-object singleton.
package enumgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	enumext "github.com/cubicle-jockey/enum-ext"
	"github.com/cubicle-jockey/enum-ext/enumgen/golang"
	"github.com/cubicle-jockey/enum-ext/enumgen/provider"
	"github.com/cubicle-jockey/enum-ext/enumgen/sink"
)

// Config holds the generation configuration.
type Config struct {
	// OutDir is the directory generated files are written to.
	OutDir string

	// Packages are the Go package patterns to scan.
	Packages []string `validate:"required,min=1,dive,required"`

	// Types restricts generation to the named types. Empty generates for
	// every enum declaration found.
	Types []string

	// EnableRandom emits the uniform random selection helper per type.
	EnableRandom bool

	// FileSuffix is appended to the snake_cased type name to form each
	// output filename. Default "_enumext.go".
	FileSuffix string `validate:"omitempty,endswith=.go"`

	// Logger receives progress output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Generate scans the configured packages and writes one generated file per
// enum declaration into OutDir.
func Generate(ctx context.Context, cfg *Config) error {
	if cfg.OutDir == "" {
		return fmt.Errorf("OutDir is required")
	}
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return err
	}
	logger := cfg.Logger

	decls, err := scan(ctx, cfg)
	if err != nil {
		return err
	}

	out := sink.NewFilesystemSink(cfg.OutDir)
	em := &golang.Emitter{}
	for _, d := range decls {
		src, err := em.Emit(d, golang.Config{EnableRandom: cfg.EnableRandom})
		if err != nil {
			return fmt.Errorf("generating %s: %w", d.TypeName, err)
		}

		name := enumext.RenderName(d.TypeName, enumext.Snake) + cfg.FileSuffix
		if err := out.WriteFile(ctx, name, src); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		logger.Info("generated enum",
			slog.String("type", d.TypeName),
			slog.String("package", d.PkgPath),
			slog.String("file", name),
			slog.Int("variants", len(d.Specs)))
	}

	return nil
}

// Check validates every scanned declaration without writing anything: the
// same closed-world pass generation performs, detached from output. All
// failures are reported, not just the first.
func Check(ctx context.Context, cfg *Config) error {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return err
	}
	logger := cfg.Logger

	decls, err := scan(ctx, cfg)
	if err != nil {
		return err
	}

	var errs []error
	for _, d := range decls {
		if _, err := enumext.New(d.TypeName, d.Specs, enumext.WithIntType(d.IntType)); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", d.PkgPath, d.TypeName, err))
			continue
		}
		logger.Info("declaration ok",
			slog.String("type", d.TypeName),
			slog.Int("variants", len(d.Specs)))
	}
	return errors.Join(errs...)
}

// scan runs the source provider and insists on at least one declaration.
func scan(ctx context.Context, cfg *Config) ([]provider.EnumDecl, error) {
	p := &provider.SourceProvider{}
	decls, err := p.Scan(ctx, provider.Options{
		Packages: cfg.Packages,
		Types:    cfg.Types,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan packages: %w", err)
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("no enum declarations found in %s", strings.Join(cfg.Packages, ", "))
	}
	return decls, nil
}

// prepareConfig applies defaults to a copy of cfg and validates it.
func prepareConfig(cfg *Config) (*Config, error) {
	result := *cfg
	if result.FileSuffix == "" {
		result.FileSuffix = "_enumext.go"
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}

	if err := validator.New().Struct(&result); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			msgs := make([]string, len(valErrs))
			for i, ve := range valErrs {
				msgs[i] = formatConfigError(ve)
			}
			return nil, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &result, nil
}

// formatConfigError converts a validator.FieldError to a readable message.
func formatConfigError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return ve.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", ve.Field(), ve.Param())
	case "endswith":
		return fmt.Sprintf("%s must end with %s", ve.Field(), ve.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", ve.Field(), ve.Tag())
	}
}
