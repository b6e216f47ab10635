package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwestlund/promptdeck/internal/models"
)

func TestTokenizePlainText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"simple", "hello world"},
		{"multiline", "line one\nline two\n"},
		{"closing brace only", "a } b"},
		{"unicode", "héllo wörld — 模板"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.body)
			require.Len(t, tokens, 1)
			assert.Equal(t, models.TokenText, tokens[0].Kind)
			assert.Equal(t, tt.body, tokens[0].Text)
		})
	}
}

func TestTokenizeEmptyBody(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenizeVar(t *testing.T) {
	tokens := Tokenize("Dear {name},")
	require.Len(t, tokens, 3)

	assert.Equal(t, models.TokenText, tokens[0].Kind)
	assert.Equal(t, "Dear ", tokens[0].Text)

	assert.Equal(t, models.TokenVar, tokens[1].Kind)
	assert.Equal(t, "name", tokens[1].Name)
	assert.Empty(t, tokens[1].Description)
	assert.Equal(t, "{name}", tokens[1].Raw)

	assert.Equal(t, models.TokenText, tokens[2].Kind)
	assert.Equal(t, ",", tokens[2].Text)
}

func TestTokenizeVarWithDescription(t *testing.T) {
	tokens := Tokenize("{name| full name }")
	require.Len(t, tokens, 1)
	assert.Equal(t, models.TokenVar, tokens[0].Kind)
	assert.Equal(t, "name", tokens[0].Name)
	assert.Equal(t, "full name", tokens[0].Description)
	assert.Equal(t, "{name| full name }", tokens[0].Raw)
}

func TestTokenizeWhitespaceAroundName(t *testing.T) {
	tokens := Tokenize("{ name }")
	require.Len(t, tokens, 1)
	assert.Equal(t, models.TokenVar, tokens[0].Kind)
	assert.Equal(t, "name", tokens[0].Name)
	assert.Equal(t, "{ name }", tokens[0].Raw)
}

func TestTokenizeMalformedPlaceholders(t *testing.T) {
	// All of these degrade to a single text token equal to the raw span.
	tests := []string{"{}", "{|desc}", "{random|}", "{   }", `{random|  }`}
	for _, body := range tests {
		t.Run(body, func(t *testing.T) {
			tokens := Tokenize(body)
			require.Len(t, tokens, 1)
			assert.Equal(t, models.TokenText, tokens[0].Kind)
			assert.Equal(t, body, tokens[0].Text)
		})
	}
}

func TestTokenizeUnterminatedBrace(t *testing.T) {
	tokens := Tokenize("before {name and no close")
	require.Len(t, tokens, 2)
	assert.Equal(t, "before ", tokens[0].Text)
	assert.Equal(t, models.TokenText, tokens[1].Kind)
	assert.Equal(t, "{name and no close", tokens[1].Text)
}

func TestTokenizeNoNesting(t *testing.T) {
	// The first `}` closes the span regardless of content, so the inner
	// `{` simply becomes part of the variable name.
	tokens := Tokenize("{a{b}c}")
	require.Len(t, tokens, 2)
	assert.Equal(t, models.TokenVar, tokens[0].Kind)
	assert.Equal(t, "a{b", tokens[0].Name)
	assert.Equal(t, "{a{b}", tokens[0].Raw)
	assert.Equal(t, "c}", tokens[1].Text)
}

func TestTokenizeRandom(t *testing.T) {
	tokens := Tokenize(`{random|"alpha" "beta"}`)
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, models.TokenRandom, tok.Kind)
	assert.Equal(t, []string{"alpha", "beta"}, tok.Options)
	assert.Contains(t, tok.Options, tok.Choice)
	assert.Equal(t, `{random|"alpha" "beta"}`, tok.Raw)
}

func TestTokenizeRandomFallbackSplitting(t *testing.T) {
	tokens := Tokenize("{random|a, b, c}")
	require.Len(t, tokens, 1)
	assert.Equal(t, models.TokenRandom, tokens[0].Kind)
	assert.Equal(t, []string{"a", "b", "c"}, tokens[0].Options)
}

func TestTokenizeRandomUnterminatedQuote(t *testing.T) {
	// The tokenizer's `}` cuts the span; the dangling quote content is
	// still accepted as a final option.
	tokens := Tokenize(`{random|"a" "b}`)
	require.Len(t, tokens, 1)
	assert.Equal(t, models.TokenRandom, tokens[0].Kind)
	assert.Equal(t, []string{"a", "b"}, tokens[0].Options)
}

func TestExtractOptions(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"quoted", `"a" "b" "c"`, []string{"a", "b", "c"}},
		{"quoted keeps inner commas and spaces", `"one, two" "three four"`, []string{"one, two", "three four"}},
		{"quoted duplicates kept", `"x" "x"`, []string{"x", "x"}},
		{"empty quotes discarded", `"" "a"`, []string{"a"}},
		{"unterminated trailing quote", `"a" "tail`, []string{"a", "tail"}},
		{"fallback whitespace", "a b c", []string{"a", "b", "c"}},
		{"fallback trims commas", "a, b,, ,c,", []string{"a", "b", "c"}},
		{"fallback keeps inner punctuation", "a.b c;d", []string{"a.b", "c;d"}},
		{"empty spec", "", nil},
		{"only commas", ", ,, ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractOptions(tt.spec))
		})
	}
}
