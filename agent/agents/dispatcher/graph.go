package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
)

type GraphInput struct {
	Email string
	Query string
}

type GraphOutput struct {
	Category contractx.Category
	Reply    string
}

type graphState struct {
	email    string
	query    string
	rawLabel string
	category contractx.Category
}

const (
	nodeHandleTracking = "handle_tracking"
	nodeHandleRefund   = "handle_refund"
	nodeHandleReturn   = "handle_return"
	nodeHandleGeneral  = "handle_general"
)

func (d *Dispatcher) compileProcessGraph(
	ctx context.Context,
) (compose.Runnable[GraphInput, GraphOutput], error) {
	graph := compose.NewGraph[GraphInput, GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in GraphInput) (*graphState, error) {
			email := strings.TrimSpace(in.Email)
			query := strings.TrimSpace(in.Query)
			if email == "" {
				return nil, ErrInvalidEmail
			}
			if query == "" {
				return nil, ErrInvalidQuery
			}
			return &graphState{email: email, query: query}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("record_user",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			d.log.AppendUser(in.query, in.email)
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node record_user: %w", err)
	}

	if err := graph.AddLambdaNode("route_query",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			raw, err := d.registry.Router().Route(ctx, in.query)
			if err != nil {
				return nil, err
			}
			in.rawLabel = raw
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node route_query: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_category",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			category, ok := contractx.ParseCategory(in.rawLabel)
			if !ok {
				// Every query gets a reply; an unrecognized label is never an
				// error, only a degraded route.
				log.Warn().
					Str("label", in.rawLabel).
					Msg("unrecognized category label, falling back to general support")
				category = contractx.CategoryGeneralSupport
			}
			in.category = category
			d.log.AppendAssignment(string(category), in.email)

			log.Debug().
				Str("email", in.email).
				Str("category", string(category)).
				Msg("query routed")
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_category: %w", err)
	}

	handlerNodes := []struct {
		name string
		pick func() contractx.Handler
	}{
		{nodeHandleTracking, d.registry.Tracking},
		{nodeHandleRefund, d.registry.Refund},
		{nodeHandleReturn, d.registry.Returns},
		{nodeHandleGeneral, d.registry.General},
	}
	for _, hn := range handlerNodes {
		pick := hn.pick
		if err := graph.AddLambdaNode(hn.name,
			compose.InvokableLambda(func(ctx context.Context, in *graphState) (GraphOutput, error) {
				return d.runHandler(ctx, in, pick())
			}),
		); err != nil {
			return nil, fmt.Errorf("add node %s: %w", hn.name, err)
		}
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *graphState) (string, error) {
			switch in.category {
			case contractx.CategoryOrderTracking:
				return nodeHandleTracking, nil
			case contractx.CategoryRefund:
				return nodeHandleRefund, nil
			case contractx.CategoryReturn:
				return nodeHandleReturn, nil
			default:
				return nodeHandleGeneral, nil
			}
		},
		map[string]bool{
			nodeHandleTracking: true,
			nodeHandleRefund:   true,
			nodeHandleReturn:   true,
			nodeHandleGeneral:  true,
		},
	)

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "record_user"},
		{"record_user", "route_query"},
		{"route_query", "resolve_category"},
		{nodeHandleTracking, compose.END},
		{nodeHandleRefund, compose.END},
		{nodeHandleReturn, compose.END},
		{nodeHandleGeneral, compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	if err := graph.AddBranch("resolve_category", branch); err != nil {
		return nil, fmt.Errorf("add handler branch: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("dispatcher.process"))
	if err != nil {
		return nil, fmt.Errorf("compile dispatcher graph: %w", err)
	}
	return runner, nil
}

func (d *Dispatcher) runHandler(ctx context.Context, in *graphState, h contractx.Handler) (GraphOutput, error) {
	reply, err := h.Handle(ctx, in.email, in.query)
	if err != nil {
		return GraphOutput{}, err
	}

	d.log.AppendReply(reply, string(in.category))

	return GraphOutput{
		Category: in.category,
		Reply:    reply,
	}, nil
}
