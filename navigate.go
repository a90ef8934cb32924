package enumext

// Navigation operates on ordinals. All methods expect a variant that belongs
// to this enum; passing one obtained from another Enum is a caller bug.

// Next returns the variant after v in ordinal order, wrapping from the last
// variant back to the first.
func (e *Enum) Next(v Variant) Variant {
	return e.tab.variants[(v.Ordinal+1)%len(e.tab.variants)]
}

// Previous returns the variant before v in ordinal order, wrapping from the
// first variant back to the last.
func (e *Enum) Previous(v Variant) Variant {
	n := len(e.tab.variants)
	return e.tab.variants[(v.Ordinal+n-1)%n]
}

// NextLinear returns the variant after v without wrapping; it reports false
// when v is the last variant.
func (e *Enum) NextLinear(v Variant) (Variant, bool) {
	if v.Ordinal+1 >= len(e.tab.variants) {
		return Variant{}, false
	}
	return e.tab.variants[v.Ordinal+1], true
}

// PreviousLinear returns the variant before v without wrapping; it reports
// false when v is the first variant.
func (e *Enum) PreviousLinear(v Variant) (Variant, bool) {
	if v.Ordinal == 0 {
		return Variant{}, false
	}
	return e.tab.variants[v.Ordinal-1], true
}

// IsFirst reports whether v has ordinal 0.
func (e *Enum) IsFirst(v Variant) bool { return v.Ordinal == 0 }

// IsLast reports whether v is the highest-ordinal variant.
func (e *Enum) IsLast(v Variant) bool {
	return v.Ordinal == len(e.tab.variants)-1
}

// ComesBefore reports whether a's ordinal is strictly less than b's.
func (e *Enum) ComesBefore(a, b Variant) bool { return a.Ordinal < b.Ordinal }

// ComesAfter reports whether a's ordinal is strictly greater than b's.
func (e *Enum) ComesAfter(a, b Variant) bool { return a.Ordinal > b.Ordinal }
