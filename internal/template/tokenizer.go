// Package template implements the placeholder engine for prompt bodies:
// splitting a body into tokens, extracting fillable fields, and rendering
// tokens against the current field values.
//
// Every operation here is total. Malformed placeholder syntax never
// produces an error; it degrades to literal text so that unedited content
// round-trips byte for byte.
package template

import (
	"math/rand/v2"
	"strings"

	"github.com/mwestlund/promptdeck/internal/models"
)

// Tokenize splits a template body into an ordered token sequence. The
// first `}` after a `{` always closes the placeholder; nesting is not
// supported. A `{` with no closing `}` swallows the rest of the body as a
// single text token.
func Tokenize(body string) []models.Token {
	var tokens []models.Token
	rest := body
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}
		if start > 0 {
			tokens = append(tokens, textToken(rest[:start]))
		}
		end := strings.IndexByte(rest[start+1:], '}')
		if end < 0 {
			tokens = append(tokens, textToken(rest[start:]))
			return tokens
		}
		inner := rest[start+1 : start+1+end]
		raw := rest[start : start+1+end+1]
		tokens = append(tokens, classify(inner, raw))
		rest = rest[start+1+end+1:]
	}
	if rest != "" {
		tokens = append(tokens, textToken(rest))
	}
	return tokens
}

// classify decides what a `{...}` span denotes: a random-choice set, a
// named variable, or (for malformed input) plain text equal to the raw
// span.
func classify(inner, raw string) models.Token {
	trimmed := strings.TrimSpace(inner)

	if spec, ok := strings.CutPrefix(trimmed, "random|"); ok {
		options := ExtractOptions(spec)
		if len(options) == 0 {
			return textToken(raw)
		}
		return models.Token{
			Kind:    models.TokenRandom,
			Options: options,
			Choice:  options[rand.IntN(len(options))],
			Raw:     raw,
		}
	}

	name, desc, _ := strings.Cut(trimmed, "|")
	name = strings.TrimSpace(name)
	if name == "" {
		return textToken(raw)
	}
	return models.Token{
		Kind:        models.TokenVar,
		Name:        name,
		Description: strings.TrimSpace(desc),
		Raw:         raw,
	}
}

// ExtractOptions parses the option spec of a random placeholder. Each
// complete double-quoted run becomes one option, content taken verbatim
// with no escape processing; a missing closing quote at the end of input
// still yields its accumulated content. When no quoted option is present,
// the spec is whitespace-split instead, with leading and trailing commas
// trimmed from each piece. Empty options are discarded in both modes.
func ExtractOptions(spec string) []string {
	var options []string
	var current strings.Builder
	inQuote := false
	for _, ch := range spec {
		switch {
		case ch == '"':
			if inQuote {
				if current.Len() > 0 {
					options = append(options, current.String())
				}
				current.Reset()
			}
			inQuote = !inQuote
		case inQuote:
			current.WriteRune(ch)
		}
	}
	if inQuote && current.Len() > 0 {
		options = append(options, current.String())
	}
	if len(options) > 0 {
		return options
	}

	for _, part := range strings.Fields(spec) {
		part = strings.Trim(part, ",")
		if part != "" {
			options = append(options, part)
		}
	}
	return options
}

func textToken(content string) models.Token {
	return models.Token{Kind: models.TokenText, Text: content}
}
