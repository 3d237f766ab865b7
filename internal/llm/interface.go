package llm

import "context"

// Generator sends instructions plus an input document to a language model
// and returns its free-form text answer. Output is untrusted.
type Generator interface {
	Generate(ctx context.Context, instructions, input string) (string, error)
}
