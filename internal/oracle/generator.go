package oracle

import (
	"context"
	"errors"
)

// Schema is an optional structured-output schema passed through to the provider
type Schema map[string]any

// Request is the text-generation contract: an instruction, the user content and an optional schema
type Request struct {
	Instruction string
	Content     string
	Schema      Schema
}

// Response carries the generated text; structured replies arrive as JSON text
type Response struct {
	Text string
}

// Generator produces text. Implementations never retry.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// ErrDisabled is returned by the disabled generator
var ErrDisabled = errors.New(ErrMsgDisabled)

type disabledGenerator struct{}

// NewDisabledGenerator returns a Generator that always fails, so every caller takes its fallback path
func NewDisabledGenerator() Generator {
	return disabledGenerator{}
}

func (disabledGenerator) Generate(context.Context, Request) (*Response, error) {
	return nil, ErrDisabled
}
