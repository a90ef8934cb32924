package enumext

import "strings"

// VariantsContaining returns the variants whose raw name contains s, in
// ordinal order. An empty s matches every variant.
func (e *Enum) VariantsContaining(s string) []Variant {
	return e.filter(func(name string) bool { return strings.Contains(name, s) })
}

// VariantsStartingWith returns the variants whose raw name starts with
// prefix, in ordinal order. An empty prefix matches every variant.
func (e *Enum) VariantsStartingWith(prefix string) []Variant {
	return e.filter(func(name string) bool { return strings.HasPrefix(name, prefix) })
}

// VariantsEndingWith returns the variants whose raw name ends with suffix, in
// ordinal order. An empty suffix matches every variant.
func (e *Enum) VariantsEndingWith(suffix string) []Variant {
	return e.filter(func(name string) bool { return strings.HasSuffix(name, suffix) })
}

func (e *Enum) filter(match func(string) bool) []Variant {
	out := make([]Variant, 0, len(e.tab.variants))
	for _, v := range e.tab.variants {
		if match(v.Name) {
			out = append(out, v)
		}
	}
	return out
}

// Slice returns the variants with ordinal in [start, end). Invalid bounds
// (start past end, either bound out of range) return an empty slice rather
// than an error; out-of-range slicing is common and recoverable.
func (e *Enum) Slice(start, end int) []Variant {
	n := len(e.tab.variants)
	if start < 0 || start >= n || end > n || start >= end {
		return []Variant{}
	}
	out := make([]Variant, end-start)
	copy(out, e.tab.variants[start:end])
	return out
}

// Range is Slice over a half-open range value.
func (e *Enum) Range(r OrdinalRange) []Variant {
	return e.Slice(r.Start, r.End)
}

// OrdinalRange is a half-open ordinal interval [Start, End).
type OrdinalRange struct {
	Start int
	End   int
}

// FirstN returns the first n variants, clamping n to the variant count.
func (e *Enum) FirstN(n int) []Variant {
	if n > len(e.tab.variants) {
		n = len(e.tab.variants)
	}
	return e.Slice(0, n)
}

// LastN returns the last n variants, clamping n to the variant count.
func (e *Enum) LastN(n int) []Variant {
	total := len(e.tab.variants)
	start := 0
	if n < total {
		start = total - n
	}
	return e.Slice(start, total)
}
