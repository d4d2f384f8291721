package handler

import (
	"errors"
	"fmt"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	llmx "github.com/suriyasingaravel/BotDesk/agent/llm"
	orderx "github.com/suriyasingaravel/BotDesk/agent/order"
	promptx "github.com/suriyasingaravel/BotDesk/agent/prompt"
	openaix "github.com/suriyasingaravel/BotDesk/pkg/openai"
)

type registryImpl struct {
	router   contractx.Router
	tracking contractx.Handler
	refund   contractx.Handler
	returns  contractx.Handler
	general  contractx.Handler
}

func (r *registryImpl) Router() contractx.Router    { return r.router }
func (r *registryImpl) Tracking() contractx.Handler { return r.tracking }
func (r *registryImpl) Refund() contractx.Handler   { return r.refund }
func (r *registryImpl) Returns() contractx.Handler  { return r.returns }
func (r *registryImpl) General() contractx.Handler  { return r.general }

// NewRegistry wires the router and the four category handlers against the
// remote completion backend using the per-role model configuration.
func NewRegistry(cfg llmx.Config, store orderx.Store) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("order store is required")
	}

	prompts, err := promptx.Load()
	if err != nil {
		return nil, err
	}

	routerGen, err := openaix.NewGenerator(cfg.OpenAIFor(llmx.RoleRouter))
	if err != nil {
		return nil, fmt.Errorf("create router generator: %w", err)
	}
	handlerGen, err := openaix.NewGenerator(cfg.OpenAIFor(llmx.RoleHandler))
	if err != nil {
		return nil, fmt.Errorf("create handler generator: %w", err)
	}

	return NewRegistryWith(routerGen, handlerGen, store, prompts), nil
}

// NewRegistryWith assembles a registry from explicit completers. Useful when
// composing with a non-OpenAI backend or fakes in tests.
func NewRegistryWith(routerCompleter, handlerCompleter contractx.Completer, store orderx.Store, prompts promptx.Set) contractx.Registry {
	return &registryImpl{
		router:   NewRouter(routerCompleter, prompts),
		tracking: NewTracking(handlerCompleter, store, prompts),
		refund:   NewRefund(handlerCompleter, store, prompts),
		returns:  NewReturn(handlerCompleter, store, prompts),
		general:  NewGeneral(handlerCompleter, prompts),
	}
}
