package enumgen

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPrepareConfigDefaults(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantSuffix string
	}{
		{
			name:       "empty suffix gets default",
			cfg:        Config{Packages: []string{"./..."}},
			wantSuffix: "_enumext.go",
		},
		{
			name:       "explicit suffix kept",
			cfg:        Config{Packages: []string{"./..."}, FileSuffix: "_gen.go"},
			wantSuffix: "_gen.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prepareConfig(&tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got.FileSuffix != tt.wantSuffix {
				t.Errorf("FileSuffix = %q, want %q", got.FileSuffix, tt.wantSuffix)
			}
			if got.Logger == nil {
				t.Error("Logger not defaulted")
			}
			// The caller's config must stay untouched.
			if tt.cfg.Logger != nil && tt.cfg.Logger != got.Logger {
				t.Error("caller config mutated")
			}
		})
	}
}

func TestPrepareConfigKeepsLogger(t *testing.T) {
	logger := slog.Default().With(slog.String("component", "test"))
	got, err := prepareConfig(&Config{Packages: []string{"./..."}, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if got.Logger != logger {
		t.Error("expected caller logger to be kept")
	}
}

func TestPrepareConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantMsg string
	}{
		{
			name:    "missing packages",
			cfg:     Config{},
			wantMsg: "Packages is required",
		},
		{
			name:    "blank package entry",
			cfg:     Config{Packages: []string{""}},
			wantMsg: "required",
		},
		{
			name:    "suffix without .go extension",
			cfg:     Config{Packages: []string{"./..."}, FileSuffix: "_gen.txt"},
			wantMsg: "must end with .go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prepareConfig(&tt.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q missing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestGenerateRequiresOutDir(t *testing.T) {
	err := Generate(context.Background(), &Config{Packages: []string{"./..."}})
	if err == nil || !strings.Contains(err.Error(), "OutDir") {
		t.Errorf("expected OutDir error, got %v", err)
	}
}
