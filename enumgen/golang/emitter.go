// Package golang emits the derived operation set as Go source: one generated
// file per scanned enum declaration, with methods on the declaring type that
// delegate to a package-level capability object.
package golang

import (
	"fmt"
	"go/format"
	"strings"
	"unicode"

	enumext "github.com/cubicle-jockey/enum-ext"
	"github.com/cubicle-jockey/enum-ext/enumgen/provider"
)

const modulePath = "github.com/cubicle-jockey/enum-ext"

// Config controls optional parts of the generated surface.
type Config struct {
	// EnableRandom emits the uniform random selection helper.
	EnableRandom bool
}

// Emitter renders one enum declaration to a gofmt'd Go source file.
type Emitter struct{}

// Emit validates the declaration by constructing its capability object, then
// renders the generated file. A declaration the engine rejects (duplicate
// discriminants from const aliases, ambiguous renderings, and so on) fails
// here, at generation time.
func (em *Emitter) Emit(decl provider.EnumDecl, cfg Config) ([]byte, error) {
	if _, err := enumext.New(decl.TypeName, decl.Specs, enumext.WithIntType(decl.IntType)); err != nil {
		return nil, fmt.Errorf("declaration %s: %w", decl.TypeName, err)
	}

	g := &fileWriter{
		decl:      decl,
		cfg:       cfg,
		enumVar:   decl.TypeName + "Enum",
		prefix:    decl.TypeName,
		valuesVar: lowerFirst(decl.TypeName) + "Values",
		helper:    lowerFirst(decl.TypeName) + "Variant",
		sliceFn:   lowerFirst(decl.TypeName) + "FromVariants",
		recv:      strings.ToLower(decl.TypeName[:1]),
	}
	g.header()
	g.capabilityObject()
	g.valuesTable()
	g.basics()
	g.caseConversions()
	g.navigation()
	g.filters()
	g.intConversions()
	if cfg.EnableRandom {
		g.random()
	}
	g.prettyPrint()

	src, err := format.Source([]byte(g.b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source for %s: %w", decl.TypeName, err)
	}
	return src, nil
}

// fileWriter accumulates the generated file. Identifier pieces are computed
// once so exported/unexported declaring types both come out consistent.
type fileWriter struct {
	b    strings.Builder
	decl provider.EnumDecl
	cfg  Config

	enumVar   string // package-level capability object, e.g. StatusEnum
	prefix    string // free-function prefix, e.g. Status
	valuesVar string // ordinal-indexed values array, e.g. statusValues
	helper    string // value -> Variant helper, e.g. statusVariant
	sliceFn   string // []Variant -> []T helper, e.g. statusFromVariants
	recv      string // receiver name, e.g. s
}

func (g *fileWriter) pf(formatStr string, args ...any) {
	fmt.Fprintf(&g.b, formatStr, args...)
}

func (g *fileWriter) header() {
	g.pf("// Code generated by enumext; DO NOT EDIT.\n\n")
	g.pf("package %s\n\n", g.decl.PkgName)
	g.pf("import (\n\tenumext %q\n)\n\n", modulePath)
}

func (g *fileWriter) capabilityObject() {
	if g.decl.Doc != "" {
		for _, line := range strings.Split(g.decl.Doc, "\n") {
			g.pf("// %s\n", line)
		}
		g.pf("//\n")
	}
	g.pf("// %s is the capability object derived from the %s const group.\n", g.enumVar, g.decl.TypeName)
	g.pf("// It is built once at package initialization; a malformed declaration\n")
	g.pf("// fails the program start rather than a later call.\n")
	g.pf("var %s = enumext.MustNew(%q,\n", g.enumVar, g.decl.TypeName)
	g.pf("\t[]enumext.VariantSpec{\n")
	for _, s := range g.decl.Specs {
		g.pf("\t\tenumext.SpecValue(%q, %d),\n", s.Name, *s.Disc)
	}
	g.pf("\t},\n")
	g.pf("\tenumext.WithIntType(enumext.%s),\n", intTypeConst(g.decl.IntType))
	g.pf(")\n\n")
}

func (g *fileWriter) valuesTable() {
	g.pf("// %s is indexed by ordinal.\n", g.valuesVar)
	g.pf("var %s = [...]%s{\n", g.valuesVar, g.decl.TypeName)
	for _, s := range g.decl.Specs {
		g.pf("\t%s,\n", s.Name)
	}
	g.pf("}\n\n")

	g.pf("func %s(%s %s) (enumext.Variant, bool) {\n", g.helper, g.recv, g.decl.TypeName)
	g.pf("\treturn %s.FromDiscriminant(int64(%s))\n", g.enumVar, g.recv)
	g.pf("}\n\n")

	g.pf("func %s(vs []enumext.Variant) []%s {\n", g.sliceFn, g.decl.TypeName)
	g.pf("\tout := make([]%s, len(vs))\n", g.decl.TypeName)
	g.pf("\tfor i, v := range vs {\n\t\tout[i] = %s[v.Ordinal]\n\t}\n", g.valuesVar)
	g.pf("\treturn out\n}\n\n")
}

func (g *fileWriter) basics() {
	t, r := g.decl.TypeName, g.recv

	g.pf("// %sList returns all %s values in declaration order.\n", g.prefix, t)
	g.pf("func %sList() []%s {\n", g.prefix, t)
	g.pf("\tout := make([]%s, len(%s))\n", t, g.valuesVar)
	g.pf("\tcopy(out, %s[:])\n\treturn out\n}\n\n", g.valuesVar)

	g.pf("// %sCount returns the number of declared %s values.\n", g.prefix, t)
	g.pf("func %sCount() int { return len(%s) }\n\n", g.prefix, g.valuesVar)

	g.pf("// Ordinal returns the zero-based declaration position of %s.\n", r)
	g.pf("func (%s %s) Ordinal() int {\n", r, t)
	g.pf("\tv, _ := %s(%s)\n\treturn v.Ordinal\n}\n\n", g.helper, r)

	g.pf("// %sValidOrdinal reports whether i is a valid ordinal for %s.\n", g.prefix, t)
	g.pf("func %sValidOrdinal(i int) bool { return %s.ValidOrdinal(i) }\n\n", g.prefix, g.enumVar)

	g.pf("// %sFromOrdinal returns the value at ordinal i.\n", g.prefix)
	g.pf("func %sFromOrdinal(i int) (%s, bool) {\n", g.prefix, t)
	g.pf("\tif !%s.ValidOrdinal(i) {\n\t\treturn 0, false\n\t}\n", g.enumVar)
	g.pf("\treturn %s[i], true\n}\n\n", g.valuesVar)

	g.pf("// VariantName returns the declared identifier of %s.\n", r)
	g.pf("func (%s %s) VariantName() string {\n", r, t)
	g.pf("\tv, _ := %s(%s)\n\treturn v.Name\n}\n\n", g.helper, r)

	g.pf("// String implements fmt.Stringer using the declared identifier.\n")
	g.pf("func (%s %s) String() string { return %s.VariantName() }\n\n", r, t, r)

	g.pf("// %sVariantNames returns all declared identifiers in ordinal order.\n", g.prefix)
	g.pf("func %sVariantNames() []string { return %s.VariantNames() }\n\n", g.prefix, g.enumVar)
}

func (g *fileWriter) caseConversions() {
	t, r := g.decl.TypeName, g.recv

	styles := []struct {
		method string
		doc    string
	}{
		{"PascalSpaced", "the name with spaces between words, original casing kept"},
		{"SnakeCase", "the name in snake_case"},
		{"KebabCase", "the name in kebab-case"},
	}
	for _, s := range styles {
		g.pf("// %s returns %s.\n", s.method, s.doc)
		g.pf("func (%s %s) %s() string {\n", r, t, s.method)
		g.pf("\tv, _ := %s(%s)\n\treturn %s.%s(v)\n}\n\n", g.helper, r, g.enumVar, s.method)
	}

	for _, s := range []string{"FromPascalSpaced", "FromSnakeCase", "FromKebabCase"} {
		g.pf("// %s%s resolves a rendered name back to its value.\n", g.prefix, s)
		g.pf("func %s%s(s string) (%s, bool) {\n", g.prefix, s, t)
		g.pf("\tv, ok := %s.%s(s)\n", g.enumVar, s)
		g.pf("\tif !ok {\n\t\treturn 0, false\n\t}\n")
		g.pf("\treturn %s[v.Ordinal], true\n}\n\n", g.valuesVar)
	}
}

func (g *fileWriter) navigation() {
	t, r := g.decl.TypeName, g.recv

	g.pf("// Next returns the following value in declaration order, wrapping\n// from the last value back to the first.\n")
	g.pf("func (%s %s) Next() %s {\n", r, t, t)
	g.pf("\tv, _ := %s(%s)\n\treturn %s[%s.Next(v).Ordinal]\n}\n\n", g.helper, r, g.valuesVar, g.enumVar)

	g.pf("// Previous returns the preceding value in declaration order, wrapping\n// from the first value back to the last.\n")
	g.pf("func (%s %s) Previous() %s {\n", r, t, t)
	g.pf("\tv, _ := %s(%s)\n\treturn %s[%s.Previous(v).Ordinal]\n}\n\n", g.helper, r, g.valuesVar, g.enumVar)

	g.pf("// NextLinear returns the following value without wrapping.\n")
	g.pf("func (%s %s) NextLinear() (%s, bool) {\n", r, t, t)
	g.pf("\tv, _ := %s(%s)\n", g.helper, r)
	g.pf("\tn, ok := %s.NextLinear(v)\n", g.enumVar)
	g.pf("\tif !ok {\n\t\treturn 0, false\n\t}\n")
	g.pf("\treturn %s[n.Ordinal], true\n}\n\n", g.valuesVar)

	g.pf("// PreviousLinear returns the preceding value without wrapping.\n")
	g.pf("func (%s %s) PreviousLinear() (%s, bool) {\n", r, t, t)
	g.pf("\tv, _ := %s(%s)\n", g.helper, r)
	g.pf("\tn, ok := %s.PreviousLinear(v)\n", g.enumVar)
	g.pf("\tif !ok {\n\t\treturn 0, false\n\t}\n")
	g.pf("\treturn %s[n.Ordinal], true\n}\n\n", g.valuesVar)

	g.pf("// IsFirst reports whether %s is the first declared value.\n", r)
	g.pf("func (%s %s) IsFirst() bool { return %s.Ordinal() == 0 }\n\n", r, t, r)

	g.pf("// IsLast reports whether %s is the last declared value.\n", r)
	g.pf("func (%s %s) IsLast() bool { return %s.Ordinal() == len(%s)-1 }\n\n", r, t, r, g.valuesVar)

	g.pf("// ComesBefore reports whether %s was declared before o.\n", r)
	g.pf("func (%s %s) ComesBefore(o %s) bool { return %s.Ordinal() < o.Ordinal() }\n\n", r, t, t, r)

	g.pf("// ComesAfter reports whether %s was declared after o.\n", r)
	g.pf("func (%s %s) ComesAfter(o %s) bool { return %s.Ordinal() > o.Ordinal() }\n\n", r, t, t, r)
}

func (g *fileWriter) filters() {
	t := g.decl.TypeName

	filters := []struct {
		fn  string
		arg string
	}{
		{"VariantsContaining", "substring"},
		{"VariantsStartingWith", "prefix"},
		{"VariantsEndingWith", "suffix"},
	}
	for _, f := range filters {
		g.pf("// %s%s returns the values whose declared name matches, in ordinal order.\n", g.prefix, f.fn)
		g.pf("func %s%s(%s string) []%s {\n", g.prefix, f.fn, f.arg, t)
		g.pf("\treturn %s(%s.%s(%s))\n}\n\n", g.sliceFn, g.enumVar, f.fn, f.arg)
	}

	g.pf("// %sSlice returns the values with ordinal in [start, end); invalid\n// bounds yield an empty slice.\n", g.prefix)
	g.pf("func %sSlice(start, end int) []%s {\n", g.prefix, t)
	g.pf("\treturn %s(%s.Slice(start, end))\n}\n\n", g.sliceFn, g.enumVar)

	g.pf("// %sFirstN returns the first n values, clamped to the declared count.\n", g.prefix)
	g.pf("func %sFirstN(n int) []%s { return %s(%s.FirstN(n)) }\n\n", g.prefix, t, g.sliceFn, g.enumVar)

	g.pf("// %sLastN returns the last n values, clamped to the declared count.\n", g.prefix)
	g.pf("func %sLastN(n int) []%s { return %s(%s.LastN(n)) }\n\n", g.prefix, t, g.sliceFn, g.enumVar)
}

func (g *fileWriter) intConversions() {
	t, r := g.decl.TypeName, g.recv
	goType := g.decl.IntType.String()
	suffix := intTypeConst(g.decl.IntType)

	g.pf("// %sFrom%s returns the value carrying discriminant x.\n", g.prefix, suffix)
	g.pf("func %sFrom%s(x %s) (%s, bool) {\n", g.prefix, suffix, goType, t)
	g.pf("\tv, ok := %s.FromDiscriminant(int64(x))\n", g.enumVar)
	g.pf("\tif !ok {\n\t\treturn 0, false\n\t}\n")
	g.pf("\treturn %s[v.Ordinal], true\n}\n\n", g.valuesVar)

	g.pf("// As%s returns %s's discriminant value.\n", suffix, r)
	g.pf("func (%s %s) As%s() %s { return %s(%s) }\n\n", r, t, suffix, goType, goType, r)
}

func (g *fileWriter) random() {
	t := g.decl.TypeName
	g.pf("// %sRandom returns a uniformly selected value.\n", g.prefix)
	g.pf("func %sRandom() %s { return %s[%s.Random().Ordinal] }\n\n", g.prefix, t, g.valuesVar, g.enumVar)
}

func (g *fileWriter) prettyPrint() {
	g.pf("// %sPrettyPrint returns a multi-line rendering of the declaration.\n", g.prefix)
	g.pf("func %sPrettyPrint() string { return %s.PrettyPrint() }\n", g.prefix, g.enumVar)
}

// intTypeConst returns the enumext constant name for the type, which doubles
// as the exported method suffix (FromInt8, AsInt8, ...).
func intTypeConst(t enumext.IntType) string {
	switch t {
	case enumext.Int8:
		return "Int8"
	case enumext.Uint8:
		return "Uint8"
	case enumext.Int16:
		return "Int16"
	case enumext.Uint16:
		return "Uint16"
	case enumext.Int32:
		return "Int32"
	case enumext.Uint32:
		return "Uint32"
	case enumext.Int64:
		return "Int64"
	case enumext.Uint64:
		return "Uint64"
	case enumext.Int:
		return "Int"
	default:
		return "Uint"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
