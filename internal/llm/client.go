package llm

import "context"

// Client is the boundary to the hosted model API. A generation makes
// exactly one call: system instructions plus a user prompt, returning the
// model's single text payload. Implementations must not retry internally.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
