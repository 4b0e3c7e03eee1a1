package tokens

// Field selects which attribute of a token table entry a lookup returns.
type Field string

// Fields of a structured table entry.
const (
	// FieldContext is the maximum total tokens (context window).
	FieldContext Field = "context"

	// FieldOutput is the maximum generated tokens.
	FieldOutput Field = "output"

	// FieldPrompt is the prompt cost in dollars per million tokens.
	FieldPrompt Field = "prompt"

	// FieldCompletion is the completion cost in dollars per million tokens.
	FieldCompletion Field = "completion"
)

// Value is a token table entry: either a bare Limit or a structured
// TokenConfig. The two shapes are handled exhaustively via type switch.
type Value interface {
	tokenValue()
}

// Limit is a bare numeric entry, interpreted contextually as the relevant
// limit for the table it appears in (context window or output cap).
type Limit float64

func (Limit) tokenValue() {}

// TokenConfig is a structured entry carrying token limits and pricing.
// Nil fields mean "unknown", not zero.
type TokenConfig struct {
	// Prompt is the prompt cost in dollars per million tokens.
	Prompt *float64

	// Completion is the completion cost in dollars per million tokens.
	Completion *float64

	// Context is the maximum total tokens (context window).
	Context *float64

	// Output is the maximum generated tokens.
	Output *float64
}

func (TokenConfig) tokenValue() {}

// Get returns the value of the given field, if known.
func (c TokenConfig) Get(field Field) (float64, bool) {
	var p *float64
	switch field {
	case FieldContext:
		p = c.Context
	case FieldOutput:
		p = c.Output
	case FieldPrompt:
		p = c.Prompt
	case FieldCompletion:
		p = c.Completion
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Num returns a pointer to v, for populating optional TokenConfig fields.
func Num(v float64) *float64 {
	return &v
}
