package messages

// Model selects the model that completes the prompt.
type Model string

const (
	ModelClaude3Opus20240229    Model = "claude-3-opus-20240229"
	ModelClaude3Sonnet20240229  Model = "claude-3-sonnet-20240229"
	ModelClaude3Haiku20240307   Model = "claude-3-haiku-20240307"
	ModelClaude35Sonnet20240620 Model = "claude-3-5-sonnet-20240620"
)

// modelLimits is the published per-model table: maximum output tokens and
// context window size. Models outside the table skip limit validation so
// new releases keep working without a library update.
var modelLimits = map[Model]struct {
	maxOutputTokens int
	contextWindow   int
}{
	ModelClaude3Opus20240229:    {4096, 200000},
	ModelClaude3Sonnet20240229:  {4096, 200000},
	ModelClaude3Haiku20240307:   {4096, 200000},
	ModelClaude35Sonnet20240620: {8192, 200000},
}

// MaxOutputTokens returns the model's published max_tokens ceiling, or 0
// for models not in the table.
func (m Model) MaxOutputTokens() int {
	return modelLimits[m].maxOutputTokens
}

// ContextWindow returns the model's context window size in tokens, or 0
// for models not in the table.
func (m Model) ContextWindow() int {
	return modelLimits[m].contextWindow
}
