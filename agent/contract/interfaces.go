package contract

import "context"

// Completer is the remote text-completion dependency. It submits one fully
// composed prompt as a single user-role message and returns the generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Router classifies a free-text query into a category label. The returned
// string is the model's trimmed output verbatim; interpreting it is the
// dispatcher's job.
type Router interface {
	Route(ctx context.Context, query string) (string, error)
}

// Handler produces the customer-facing reply for one category.
type Handler interface {
	Handle(ctx context.Context, email, query string) (string, error)
}

// Registry exposes the router and the four category handlers.
type Registry interface {
	Router() Router
	Tracking() Handler
	Refund() Handler
	Returns() Handler
	General() Handler
}
