package enumext

// table is the capability table derived from a validated Definition: the
// ordinal-indexed variant array, the discriminant lookup, and the reverse
// lookup for each rendered-name style. It is built exactly once and read-only
// thereafter.
type table struct {
	variants []Variant
	byDisc   map[int64]int

	// rendered[style][ordinal] and reverse[style][string] -> ordinal.
	rendered [3][]string
	reverse  [3]map[string]int
}

var styles = [3]Style{PascalSpaced, Snake, Kebab}

// buildTable renders every variant name through all three case styles and
// indexes the results. Construction is all-or-nothing: the first rendered-name
// collision aborts the build and no partial table escapes.
func buildTable(def *Definition) (*table, error) {
	t := &table{
		variants: def.variants,
	}

	if def.discriminated {
		// Duplicate discriminants were already rejected by the validator.
		t.byDisc = make(map[int64]int, len(def.variants))
		for i, v := range def.variants {
			t.byDisc[v.disc] = i
		}
	}

	for _, style := range styles {
		t.rendered[style] = make([]string, len(def.variants))
		t.reverse[style] = make(map[string]int, len(def.variants))
	}
	for i, v := range def.variants {
		words := Tokenize(v.Name)
		for _, style := range styles {
			s := Render(words, style)
			if prev, dup := t.reverse[style][s]; dup {
				return nil, Errorf(CodeAmbiguousRendering,
					"enum %s: variants %s and %s both render to %q in %s style",
					def.typeName, def.variants[prev].Name, v.Name, s, style).
					WithDetail("style", style.String()).
					WithDetail("rendered", s)
			}
			t.rendered[style][i] = s
			t.reverse[style][s] = i
		}
	}

	return t, nil
}

// lookup resolves a rendered name back to its variant.
func (t *table) lookup(style Style, s string) (Variant, bool) {
	i, ok := t.reverse[style][s]
	if !ok {
		return Variant{}, false
	}
	return t.variants[i], true
}
