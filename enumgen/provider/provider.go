// Package provider extracts enum declarations from Go source. A declaration
// is a defined type with an integer underlying type plus the const group that
// declares its variants.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	enumext "github.com/cubicle-jockey/enum-ext"
	"golang.org/x/tools/go/packages"
)

// EnumDecl is one scanned declaration, with variants in source declaration
// order. Every Go const carries a concrete value, so scanned declarations are
// always discriminated.
type EnumDecl struct {
	TypeName string
	PkgPath  string
	PkgName  string
	Doc      string
	IntType  enumext.IntType
	Specs    []enumext.VariantSpec
}

// Options configures a scan.
type Options struct {
	// Packages are the Go package patterns to load.
	Packages []string

	// Types restricts the scan to the named types. Empty means every enum
	// candidate found. A requested type that is not found is an error.
	Types []string
}

// SourceProvider finds enum declarations by type-checking Go packages.
type SourceProvider struct{}

// Scan loads the requested packages and returns their enum declarations.
// Variant order follows the source: const specs are visited file by file in
// the order the type checker presents them, never sorted.
func (p *SourceProvider) Scan(ctx context.Context, opts Options) ([]EnumDecl, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	var decls []EnumDecl
	for _, pkg := range pkgs {
		found, err := scanPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", pkg.PkgPath, err)
		}
		decls = append(decls, found...)
	}

	return filterDecls(decls, opts.Types)
}

// scanPackage walks the package AST collecting const groups typed by a local
// defined integer type.
func scanPackage(pkg *packages.Package) ([]EnumDecl, error) {
	var order []*types.Named
	specs := make(map[*types.Named][]enumext.VariantSpec)
	docs := make(map[string]string)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			switch gd.Tok {
			case token.TYPE:
				collectTypeDocs(gd, docs)
			case token.CONST:
				for _, s := range gd.Specs {
					vs, ok := s.(*ast.ValueSpec)
					if !ok {
						continue
					}
					for _, name := range vs.Names {
						if name.Name == "_" {
							continue
						}
						named, value, ok, err := resolveEnumConst(pkg, name)
						if err != nil {
							return nil, err
						}
						if !ok {
							continue
						}
						if _, seen := specs[named]; !seen {
							order = append(order, named)
						}
						specs[named] = append(specs[named], enumext.SpecValue(name.Name, value))
					}
				}
			}
		}
	}

	decls := make([]EnumDecl, 0, len(order))
	for _, named := range order {
		basic := named.Underlying().(*types.Basic)
		intType, ok := kindToIntType(basic.Kind())
		if !ok {
			// Uintptr and friends have no discriminant representation.
			continue
		}
		decls = append(decls, EnumDecl{
			TypeName: named.Obj().Name(),
			PkgPath:  pkg.PkgPath,
			PkgName:  pkg.Name,
			Doc:      docs[named.Obj().Name()],
			IntType:  intType,
			Specs:    specs[named],
		})
	}
	return decls, nil
}

// resolveEnumConst reports whether the named const is an enum candidate:
// a constant of a defined integer type declared in the same package.
func resolveEnumConst(pkg *packages.Package, name *ast.Ident) (*types.Named, int64, bool, error) {
	obj := pkg.TypesInfo.Defs[name]
	cnst, ok := obj.(*types.Const)
	if !ok {
		return nil, 0, false, nil
	}
	named, ok := cnst.Type().(*types.Named)
	if !ok {
		return nil, 0, false, nil
	}
	if named.Obj().Pkg() != pkg.Types {
		return nil, 0, false, nil
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, 0, false, nil
	}

	val := cnst.Val()
	if val.Kind() != constant.Int {
		return nil, 0, false, nil
	}
	v, exact := constant.Int64Val(val)
	if !exact {
		return nil, 0, false, enumext.Errorf(enumext.CodeDiscriminantOutOfRange,
			"constant %s.%s (%s) exceeds the carried 64-bit range", named.Obj().Name(), name.Name, val.String())
	}
	return named, v, true, nil
}

// collectTypeDocs records the doc comment of each type spec for use as the
// generated file's header comment.
func collectTypeDocs(gd *ast.GenDecl, docs map[string]string) {
	for _, s := range gd.Specs {
		ts, ok := s.(*ast.TypeSpec)
		if !ok {
			continue
		}
		doc := ts.Doc
		if doc == nil && len(gd.Specs) == 1 {
			doc = gd.Doc
		}
		if doc != nil {
			docs[ts.Name.Name] = strings.TrimSpace(doc.Text())
		}
	}
}

// filterDecls applies the Types restriction. Every requested type must exist.
func filterDecls(decls []EnumDecl, only []string) ([]EnumDecl, error) {
	if len(only) == 0 {
		return decls, nil
	}
	byName := make(map[string]EnumDecl, len(decls))
	for _, d := range decls {
		byName[d.TypeName] = d
	}
	out := make([]EnumDecl, 0, len(only))
	for _, name := range only {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("type %s not found in any scanned package", name)
		}
		out = append(out, d)
	}
	return out, nil
}

// kindToIntType maps a Go basic kind to the discriminant integer type.
func kindToIntType(k types.BasicKind) (enumext.IntType, bool) {
	switch k {
	case types.Int8:
		return enumext.Int8, true
	case types.Uint8:
		return enumext.Uint8, true
	case types.Int16:
		return enumext.Int16, true
	case types.Uint16:
		return enumext.Uint16, true
	case types.Int32:
		return enumext.Int32, true
	case types.Uint32:
		return enumext.Uint32, true
	case types.Int64:
		return enumext.Int64, true
	case types.Uint64:
		return enumext.Uint64, true
	case types.Int:
		return enumext.Int, true
	case types.Uint:
		return enumext.Uint, true
	default:
		return enumext.IntAuto, false
	}
}
