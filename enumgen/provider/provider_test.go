package provider

import (
	"go/types"
	"testing"

	enumext "github.com/cubicle-jockey/enum-ext"
)

func TestKindToIntType(t *testing.T) {
	tests := []struct {
		kind types.BasicKind
		want enumext.IntType
		ok   bool
	}{
		{types.Int8, enumext.Int8, true},
		{types.Uint8, enumext.Uint8, true},
		{types.Int16, enumext.Int16, true},
		{types.Uint16, enumext.Uint16, true},
		{types.Int32, enumext.Int32, true},
		{types.Uint32, enumext.Uint32, true},
		{types.Int64, enumext.Int64, true},
		{types.Uint64, enumext.Uint64, true},
		{types.Int, enumext.Int, true},
		{types.Uint, enumext.Uint, true},
		{types.Uintptr, enumext.IntAuto, false},
		{types.String, enumext.IntAuto, false},
		{types.Float64, enumext.IntAuto, false},
	}
	for _, tc := range tests {
		got, ok := kindToIntType(tc.kind)
		if ok != tc.ok || got != tc.want {
			t.Errorf("kindToIntType(%v) = (%v, %v), want (%v, %v)", tc.kind, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterDecls(t *testing.T) {
	decls := []EnumDecl{
		{TypeName: "Status"},
		{TypeName: "Level"},
		{TypeName: "Mode"},
	}

	t.Run("empty filter keeps all", func(t *testing.T) {
		got, err := filterDecls(decls, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Errorf("expected 3 declarations, got %d", len(got))
		}
	})

	t.Run("filter reorders to request order", func(t *testing.T) {
		got, err := filterDecls(decls, []string{"Mode", "Status"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].TypeName != "Mode" || got[1].TypeName != "Status" {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		if _, err := filterDecls(decls, []string{"Missing"}); err == nil {
			t.Error("expected error for unknown type")
		}
	})
}

func TestScanRequiresPackages(t *testing.T) {
	p := &SourceProvider{}
	if _, err := p.Scan(t.Context(), Options{}); err == nil {
		t.Error("expected error for empty package list")
	}
}
