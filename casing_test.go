package enumext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "Pending", []string{"Pending"}},
		{"single lower word", "pending", []string{"pending"}},
		{"two words", "MyEnum", []string{"My", "Enum"}},
		{"trailing acronym", "InQA", []string{"In", "QA"}},
		{"leading acronym", "HTTPServer", []string{"HTTP", "Server"}},
		{"acronym only", "QA", []string{"QA"}},
		{"three words", "FinalCodeReview", []string{"Final", "Code", "Review"}},
		{"digit after word", "Word9", []string{"Word", "9"}},
		{"digit run after word", "Build42", []string{"Build", "42"}},
		{"leading digits", "9Lives", []string{"9", "Lives"}},
		{"digit then upper", "A1B", []string{"A", "1", "B"}},
		{"acronym mid-name", "ParseHTTPInput", []string{"Parse", "HTTP", "Input"}},
		{"lower then acronym run", "useTLSNow", []string{"use", "TLS", "Now"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.in))
		})
	}
}

func TestRender(t *testing.T) {
	words := []string{"In", "QA"}
	assert.Equal(t, "In QA", Render(words, PascalSpaced))
	assert.Equal(t, "in_qa", Render(words, Snake))
	assert.Equal(t, "in-qa", Render(words, Kebab))

	assert.Equal(t, "", Render(nil, Snake))
	assert.Equal(t, "final_code_review", RenderName("FinalCodeReview", Snake))
	assert.Equal(t, "http-server", RenderName("HTTPServer", Kebab))
	assert.Equal(t, "HTTP Server", RenderName("HTTPServer", PascalSpaced))
}

func TestRenderPreservesWordCasing(t *testing.T) {
	// Pascal-spaced keeps each word exactly as declared; only snake and kebab
	// lower-case.
	assert.Equal(t, "In QA", RenderName("InQA", PascalSpaced))
	assert.Equal(t, "QA", RenderName("QA", PascalSpaced))
	assert.Equal(t, "qa", RenderName("QA", Snake))
}
