package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/mwestlund/promptdeck/internal/models"
	"github.com/mwestlund/promptdeck/internal/template"
)

// fillState is the per-session editing state for one opened template. It
// is discarded when the user leaves the fill view; field values never
// flow back into the template source.
type fillState struct {
	templateIndex int
	name          string
	tokens        []models.Token
	fields        []models.Field
	inputs        []textinput.Model
	focused       int
	preview       viewport.Model
}

func newFillState(index int, tmpl models.Template) *fillState {
	tokens := template.Tokenize(tmpl.Body)
	fields := template.ExtractFields(tokens)

	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.Name
		input.CharLimit = 0
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}

	return &fillState{
		templateIndex: index,
		name:          tmpl.Name,
		tokens:        tokens,
		fields:        fields,
		inputs:        inputs,
		preview:       viewport.New(60, 8),
	}
}

// focusField moves input focus to the given index, wrapping around.
func (f *fillState) focusField(index int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focused].Blur()
	f.focused = ((index % len(f.inputs)) + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focused].Focus()
}

// syncFields copies the current input values into the field list the
// renderer reads.
func (f *fillState) syncFields() {
	for i := range f.fields {
		f.fields[i].Value = f.inputs[i].Value()
	}
}

func (f *fillState) resize(width, previewHeight int) {
	for i := range f.inputs {
		f.inputs[i].Width = width
	}
	f.preview.Width = width
	f.preview.Height = previewHeight
}
