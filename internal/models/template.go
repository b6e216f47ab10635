package models

// Template is one named section of the prompts file. Name is the raw
// heading text; `/`-separated segments in it are grouping hints for the
// tree view. Templates are immutable once parsed and the collection is
// replaced wholesale on reload.
type Template struct {
	Name string
	Body string
}

// TokenKind discriminates the variants of Token.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenVar
	TokenRandom
)

// Token is one span of a template body. Concatenating the raw or resolved
// text of all tokens in order reproduces the body: the tokenizer covers
// the input with no gaps or overlaps.
type Token struct {
	Kind TokenKind

	// Text holds the literal content of a TokenText.
	Text string

	// Name and Description describe a TokenVar. Description may be empty.
	Name        string
	Description string

	// Options and Choice belong to a TokenRandom. Options is fixed once
	// parsed; Choice is the current pick and changes on reroll.
	Options []string
	Choice  string

	// Raw is the original `{...}` source span of a placeholder, echoed
	// back when no value is available. Empty for TokenText.
	Raw string
}

// Field is one user-fillable input derived from the Var tokens of a body.
// Name is the unique key; Value is owned by the editing session and never
// written back to the template source.
type Field struct {
	Name  string
	Label string
	Value string
}

// TreeItem is one row of the flattened template tree. TemplateIndex is nil
// for grouping folders that no template addresses directly.
type TreeItem struct {
	Label         string
	Depth         int
	TemplateIndex *int
}
