package enumext

import (
	"strings"
	"unicode"
)

// Style selects one of the supported rendered-name forms.
type Style int

const (
	// PascalSpaced joins words with single spaces, preserving each word's
	// original casing: "InQA" renders as "In QA".
	PascalSpaced Style = iota
	// Snake joins lower-cased words with underscores: "in_qa".
	Snake
	// Kebab joins lower-cased words with hyphens: "in-qa".
	Kebab
)

// String returns the style name used in error details and config files.
func (s Style) String() string {
	switch s {
	case PascalSpaced:
		return "pascal_spaced"
	case Snake:
		return "snake"
	case Kebab:
		return "kebab"
	default:
		return "unknown"
	}
}

// charClass tracks the scanner's view of the previous rune.
type charClass int

const (
	classNone charClass = iota
	classUpper
	classLower
	classDigit
	classOther
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLower(r):
		return classLower
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// Tokenize splits a compact identifier into its linguistic words.
//
// A word boundary is inserted before an uppercase letter that follows a
// lowercase letter or digit, before a digit that follows a letter, and inside
// a run of uppercase letters before the final letter of the run when the run
// is immediately followed by a lowercase letter. That last rule keeps acronyms
// intact while peeling off the first letter of the word after them:
//
//	Tokenize("InQA")       // ["In", "QA"]
//	Tokenize("HTTPServer") // ["HTTP", "Server"]
//	Tokenize("Word9")      // ["Word", "9"]
//
// An empty input yields a nil slice; callers reject blank names at validation
// time.
func Tokenize(name string) []string {
	if name == "" {
		return nil
	}
	runes := []rune(name)
	words := make([]string, 0, 4)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev := classOf(runes[i-1])
		cur := classOf(runes[i])

		boundary := false
		switch {
		case cur == classUpper && (prev == classLower || prev == classDigit):
			boundary = true
		case cur == classDigit && (prev == classLower || prev == classUpper):
			boundary = true
		case cur == classUpper && prev == classUpper:
			// Last letter of an uppercase run starts the next word only when
			// a lowercase letter follows it.
			if i+1 < len(runes) && classOf(runes[i+1]) == classLower {
				boundary = true
			}
		}

		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// Render joins a word sequence into the given style.
func Render(words []string, style Style) string {
	if len(words) == 0 {
		return ""
	}
	switch style {
	case Snake:
		return joinLower(words, '_')
	case Kebab:
		return joinLower(words, '-')
	default:
		return strings.Join(words, " ")
	}
}

// RenderName tokenizes name and renders it in one step.
func RenderName(name string, style Style) string {
	return Render(Tokenize(name), style)
}

func joinLower(words []string, sep byte) string {
	var b strings.Builder
	b.Grow(len(words) * 8)
	for i, w := range words {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}
