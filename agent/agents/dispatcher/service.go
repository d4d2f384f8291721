package dispatcher

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	sessionx "github.com/suriyasingaravel/BotDesk/agent/session"
)

var (
	ErrInvalidEmail = errors.New("email is required")
	ErrInvalidQuery = errors.New("query is required")
)

// Dispatcher orchestrates one submission: route the query, select the matching
// category handler, produce the reply, and record the exchange in the session
// log it was constructed with.
type Dispatcher struct {
	registry contractx.Registry
	log      *sessionx.Log

	graphRunner compose.Runnable[GraphInput, GraphOutput]
}

func New(registry contractx.Registry, log *sessionx.Log) (*Dispatcher, error) {
	if registry == nil {
		return nil, errors.New("handler registry is required")
	}
	if log == nil {
		return nil, errors.New("session log is required")
	}

	d := &Dispatcher{
		registry: registry,
		log:      log,
	}

	graphRunner, err := d.compileProcessGraph(context.Background())
	if err != nil {
		return nil, err
	}
	d.graphRunner = graphRunner

	return d, nil
}

// Process handles one customer submission and returns the category actually
// used for display together with the handler's reply.
func (d *Dispatcher) Process(ctx context.Context, email, query string) (contractx.Category, string, error) {
	out, err := d.graphRunner.Invoke(ctx, GraphInput{
		Email: email,
		Query: query,
	})
	if err != nil {
		return "", "", err
	}
	return out.Category, out.Reply, nil
}

// Log exposes the session log for display by the UI collaborator.
func (d *Dispatcher) Log() *sessionx.Log {
	return d.log
}
