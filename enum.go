package enumext

import (
	"iter"
	"strconv"
	"strings"
)

// Enum is the capability object for one enumerated type: an immutable
// Definition plus the derived capability table. Every operation is a pure
// read, so an Enum may be shared freely across goroutines.
//
// Construct one per type and keep it for the life of the process; generated
// code binds it to a package-level variable via MustNew.
type Enum struct {
	def *Definition
	tab *table
}

// New validates the raw declaration and builds the capability object. It is
// equivalent to NewDefinition followed by Build.
func New(typeName string, specs []VariantSpec, opts ...Option) (*Enum, error) {
	def, err := NewDefinition(typeName, specs, opts...)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// Build constructs the capability object from an already-validated
// Definition. The only remaining failure mode is an ambiguous rendered name.
func Build(def *Definition) (*Enum, error) {
	tab, err := buildTable(def)
	if err != nil {
		return nil, err
	}
	return &Enum{def: def, tab: tab}, nil
}

// MustNew is New but panics on a validation error. It is intended for
// statically declared types bound to package-level variables, where a
// malformed declaration should fail at program start.
func MustNew(typeName string, specs []VariantSpec, opts ...Option) *Enum {
	e, err := New(typeName, specs, opts...)
	if err != nil {
		panic("enumext: " + err.Error())
	}
	return e
}

// Definition returns the validated definition backing this enum.
func (e *Enum) Definition() *Definition { return e.def }

// TypeName returns the declared type name.
func (e *Enum) TypeName() string { return e.def.typeName }

// Count returns the number of variants.
func (e *Enum) Count() int { return len(e.tab.variants) }

// List returns all variants in ordinal order. The slice is a copy; callers
// may modify it freely.
func (e *Enum) List() []Variant {
	out := make([]Variant, len(e.tab.variants))
	copy(out, e.tab.variants)
	return out
}

// Ordinal returns v's stored ordinal.
func (e *Enum) Ordinal(v Variant) int { return v.Ordinal }

// ValidOrdinal reports whether i is a valid ordinal for this enum.
func (e *Enum) ValidOrdinal(i int) bool {
	return i >= 0 && i < len(e.tab.variants)
}

// FromOrdinal returns the variant at ordinal i, or false when i is out of
// range.
func (e *Enum) FromOrdinal(i int) (Variant, bool) {
	if !e.ValidOrdinal(i) {
		return Variant{}, false
	}
	return e.tab.variants[i], true
}

// Iter returns a restartable sequence over the variants in ordinal order.
// Each range over the result is an independent cursor.
func (e *Enum) Iter() iter.Seq[Variant] {
	return func(yield func(Variant) bool) {
		for _, v := range e.tab.variants {
			if !yield(v) {
				return
			}
		}
	}
}

// VariantNames returns all raw declared names in ordinal order.
func (e *Enum) VariantNames() []string {
	out := make([]string, len(e.tab.variants))
	for i, v := range e.tab.variants {
		out[i] = v.Name
	}
	return out
}

// PascalSpaced returns v's name rendered with spaces between words, original
// casing preserved: InQA -> "In QA".
func (e *Enum) PascalSpaced(v Variant) string {
	return e.tab.rendered[PascalSpaced][v.Ordinal]
}

// SnakeCase returns v's name in snake_case: InQA -> "in_qa".
func (e *Enum) SnakeCase(v Variant) string {
	return e.tab.rendered[Snake][v.Ordinal]
}

// KebabCase returns v's name in kebab-case: InQA -> "in-qa".
func (e *Enum) KebabCase(v Variant) string {
	return e.tab.rendered[Kebab][v.Ordinal]
}

// FromPascalSpaced resolves a spaced-Pascal rendering back to its variant.
// Matching is exact and case-sensitive.
func (e *Enum) FromPascalSpaced(s string) (Variant, bool) {
	return e.tab.lookup(PascalSpaced, s)
}

// FromSnakeCase resolves a snake_case rendering back to its variant.
func (e *Enum) FromSnakeCase(s string) (Variant, bool) {
	return e.tab.lookup(Snake, s)
}

// FromKebabCase resolves a kebab-case rendering back to its variant.
func (e *Enum) FromKebabCase(s string) (Variant, bool) {
	return e.tab.lookup(Kebab, s)
}

// Discriminated reports whether the enum carries integer discriminants.
func (e *Enum) Discriminated() bool { return e.def.discriminated }

// IntType returns the integer type bounding the discriminants.
func (e *Enum) IntType() IntType { return e.def.intType }

// FromDiscriminant returns the variant carrying discriminant x. It reports
// false for unmatched values and for non-discriminated enums.
func (e *Enum) FromDiscriminant(x int64) (Variant, bool) {
	i, ok := e.tab.byDisc[x]
	if !ok {
		return Variant{}, false
	}
	return e.tab.variants[i], true
}

// Discriminant returns v's discriminant value, or false for a
// non-discriminated enum.
func (e *Enum) Discriminant(v Variant) (int64, bool) {
	return v.Discriminant()
}

// PrettyPrint returns a multi-line rendering of the declaration: the type
// name followed by each variant's ordinal, raw name, and discriminant when
// present. The exact formatting is a display concern, not a stable contract.
func (e *Enum) PrettyPrint() string {
	var b strings.Builder
	b.WriteString(e.def.typeName)
	if e.def.discriminated {
		b.WriteString(" (")
		b.WriteString(e.def.intType.String())
		b.WriteString(")")
	}
	b.WriteString(" {\n")
	for _, v := range e.tab.variants {
		b.WriteString("    #")
		b.WriteString(strconv.Itoa(v.Ordinal))
		b.WriteString(" ")
		b.WriteString(v.Name)
		if v.hasDisc {
			b.WriteString(" = ")
			b.WriteString(strconv.FormatInt(v.disc, 10))
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
