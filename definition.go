package enumext

// VariantSpec is one raw (name, optional discriminant) pair as supplied by
// the host attachment mechanism.
type VariantSpec struct {
	Name string
	// Disc is the explicit discriminant literal, or nil when the variant does
	// not declare one.
	Disc *int64
}

// Spec declares a variant without an explicit discriminant.
func Spec(name string) VariantSpec {
	return VariantSpec{Name: name}
}

// SpecValue declares a variant with an explicit discriminant.
func SpecValue(name string, disc int64) VariantSpec {
	return VariantSpec{Name: name, Disc: &disc}
}

// Variant is a validated variant descriptor. Name is the exact declared
// identifier; Ordinal is the zero-based declaration position, assigned once
// by the validator. Variants are value types and compare with ==.
type Variant struct {
	Name    string
	Ordinal int

	disc    int64
	hasDisc bool
}

// Discriminant returns the variant's resolved discriminant value. The second
// return is false for variants of a non-discriminated declaration.
func (v Variant) Discriminant() (int64, bool) {
	return v.disc, v.hasDisc
}

// Definition is a validated enum declaration: a type name, the ordered
// variant descriptors, and the bounding integer type. It is immutable after
// construction.
type Definition struct {
	typeName      string
	variants      []Variant
	intType       IntType
	discriminated bool
}

// TypeName returns the declared type name.
func (d *Definition) TypeName() string { return d.typeName }

// IntType returns the bounding integer type.
func (d *Definition) IntType() IntType { return d.intType }

// Discriminated reports whether the declaration carries integer discriminants.
func (d *Definition) Discriminated() bool { return d.discriminated }

// Len returns the number of variants.
func (d *Definition) Len() int { return len(d.variants) }

// Variants returns a copy of the ordinal-ordered variant descriptors.
func (d *Definition) Variants() []Variant {
	out := make([]Variant, len(d.variants))
	copy(out, d.variants)
	return out
}

// Option configures validation of a declaration.
type Option func(*defOptions)

type defOptions struct {
	intType  IntType
	implicit bool
}

// WithIntType sets the integer type bounding discriminant values. When not
// given, the unsigned pointer-sized type is assumed.
func WithIntType(t IntType) Option {
	return func(o *defOptions) { o.intType = t }
}

// WithImplicitDiscriminants allows a discriminated declaration to leave some
// variants without an explicit value; each unset variant takes the previous
// variant's value plus one (zero for the first variant). Without this option,
// mixing explicit and implicit discriminants is a validation error.
func WithImplicitDiscriminants() Option {
	return func(o *defOptions) { o.implicit = true }
}

// NewDefinition validates a raw declaration and returns an immutable
// Definition. Checks run in a fixed order, each with a distinct error code:
// empty variant list, blank name, duplicate name, mixed explicit/implicit
// discriminants, discriminant outside the integer type's range, duplicate
// discriminant value.
func NewDefinition(typeName string, specs []VariantSpec, opts ...Option) (*Definition, error) {
	var o defOptions
	for _, opt := range opts {
		opt(&o)
	}
	intType := o.intType
	if !intType.valid() {
		return nil, Errorf(CodeInvalidIntType, "unsupported integer type for %s", typeName)
	}
	intType = intType.normalize()

	if len(specs) == 0 {
		return nil, Errorf(CodeEmptyEnum, "enum %s declares no variants", typeName)
	}

	seen := make(map[string]struct{}, len(specs))
	discriminated := false
	for _, s := range specs {
		if s.Name == "" {
			return nil, Errorf(CodeInvalidName, "enum %s declares a variant with a blank name", typeName)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, Errorf(CodeDuplicateName, "enum %s declares variant %s more than once", typeName, s.Name).
				WithDetail("name", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Disc != nil {
			discriminated = true
		}
	}

	variants := make([]Variant, len(specs))
	if discriminated {
		byDisc := make(map[int64]string, len(specs))
		next := int64(0)
		for i, s := range specs {
			var value int64
			switch {
			case s.Disc != nil:
				value = *s.Disc
			case o.implicit:
				value = next
			default:
				return nil, Errorf(CodeInconsistentDiscriminants,
					"enum %s: variant %s has no discriminant but others do", typeName, s.Name).
					WithDetail("name", s.Name)
			}
			if !intType.contains(value) {
				return nil, Errorf(CodeDiscriminantOutOfRange,
					"enum %s: discriminant %d of variant %s does not fit %s", typeName, value, s.Name, intType).
					WithDetail("name", s.Name).
					WithDetail("value", value)
			}
			if prev, dup := byDisc[value]; dup {
				return nil, Errorf(CodeDuplicateDiscriminant,
					"enum %s: variants %s and %s share discriminant %d", typeName, prev, s.Name, value).
					WithDetail("value", value)
			}
			byDisc[value] = s.Name
			variants[i] = Variant{Name: s.Name, Ordinal: i, disc: value, hasDisc: true}
			next = value + 1
		}
	} else {
		for i, s := range specs {
			variants[i] = Variant{Name: s.Name, Ordinal: i}
		}
	}

	return &Definition{
		typeName:      typeName,
		variants:      variants,
		intType:       intType,
		discriminated: discriminated,
	}, nil
}
