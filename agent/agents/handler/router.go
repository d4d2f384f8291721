package handler

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	promptx "github.com/suriyasingaravel/BotDesk/agent/prompt"
)

type routerImpl struct {
	completer contractx.Completer
	prompts   promptx.Set
}

// NewRouter builds the classification router. It returns the model's trimmed
// output verbatim; decoding the label is left to the dispatcher.
func NewRouter(completer contractx.Completer, prompts promptx.Set) contractx.Router {
	return &routerImpl{completer: completer, prompts: prompts}
}

func (r *routerImpl) Route(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	p, err := r.prompts.Router(promptx.QueryContext{Query: query})
	if err != nil {
		return "", fmt.Errorf("%w: render routing prompt: %v", contractx.ErrValidation, err)
	}

	out, err := r.completer.Complete(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%w: route query: %v", contractx.ErrGeneration, err)
	}

	return strings.TrimSpace(out), nil
}
