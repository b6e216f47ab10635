package template

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mwestlund/promptdeck/internal/models"
)

// ExtractFields derives the user-fillable fields from a token sequence:
// one field per distinct variable name, in first-occurrence order. The
// first occurrence also decides the label wording; later occurrences of
// the same name are ignored.
func ExtractFields(tokens []models.Token) []models.Field {
	var fields []models.Field
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if tok.Kind != models.TokenVar || seen[tok.Name] {
			continue
		}
		seen[tok.Name] = true
		label := tok.Name
		if tok.Description != "" {
			label = fmt.Sprintf("%s (%s)", tok.Name, tok.Description)
		}
		fields = append(fields, models.Field{Name: tok.Name, Label: label})
	}
	return fields
}

// Render resolves a token sequence against the current field values. An
// unfilled variable and an empty random choice both emit the placeholder's
// original raw span, so a partially filled template stays self-documenting
// about which placeholders are still open.
func Render(tokens []models.Token, fields []models.Field) string {
	var out strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case models.TokenText:
			out.WriteString(tok.Text)
		case models.TokenVar:
			value := fieldValue(fields, tok.Name)
			if value == "" {
				out.WriteString(tok.Raw)
			} else {
				out.WriteString(value)
			}
		case models.TokenRandom:
			if tok.Choice == "" {
				out.WriteString(tok.Raw)
			} else {
				out.WriteString(tok.Choice)
			}
		}
	}
	return out.String()
}

// Reroll replaces the current choice of every random token with a fresh
// uniform pick from its own option list, in place. Text and variable
// tokens are untouched.
func Reroll(tokens []models.Token) {
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind == models.TokenRandom && len(tok.Options) > 0 {
			tok.Choice = tok.Options[rand.IntN(len(tok.Options))]
		}
	}
}

func fieldValue(fields []models.Field, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
