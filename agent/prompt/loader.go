package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

var (
	//go:embed template/router.txt
	routerRaw string

	//go:embed template/tracking.txt
	trackingRaw string

	//go:embed template/refund_delivered.txt
	refundDeliveredRaw string

	//go:embed template/refund_pending.txt
	refundPendingRaw string

	//go:embed template/return_delivered.txt
	returnDeliveredRaw string

	//go:embed template/return_pending.txt
	returnPendingRaw string

	//go:embed template/general.txt
	generalRaw string
)

// OrderContext carries everything an order-bound template may reference. The
// fields mirror the order record one-to-one; templates embed them verbatim.
type OrderContext struct {
	Query            string
	Email            string
	OrderID          string
	Status           string
	Carrier          string
	ExpectedDelivery string
	TrackingLink     string
	Amount           int
	PickupDate       string
}

// QueryContext is the context for templates that take no order data.
type QueryContext struct {
	Query string
}

// Set holds the parsed prompt templates.
type Set struct {
	router          *template.Template
	tracking        *template.Template
	refundDelivered *template.Template
	refundPending   *template.Template
	returnDelivered *template.Template
	returnPending   *template.Template
	general         *template.Template
}

// Load parses the embedded templates. The embeds are compile-time, so a parse
// failure here means the repository itself is broken.
func Load() (Set, error) {
	var s Set
	var err error

	parse := func(name, raw string) *template.Template {
		if err != nil {
			return nil
		}
		var t *template.Template
		t, err = template.New(name).Parse(strings.TrimSpace(raw))
		if err != nil {
			err = fmt.Errorf("parse prompt template %s: %w", name, err)
		}
		return t
	}

	s.router = parse("router", routerRaw)
	s.tracking = parse("tracking", trackingRaw)
	s.refundDelivered = parse("refund_delivered", refundDeliveredRaw)
	s.refundPending = parse("refund_pending", refundPendingRaw)
	s.returnDelivered = parse("return_delivered", returnDeliveredRaw)
	s.returnPending = parse("return_pending", returnPendingRaw)
	s.general = parse("general", generalRaw)

	if err != nil {
		return Set{}, err
	}
	return s, nil
}

// MustLoad is Load with panic-on-error, for wiring paths that cannot recover.
func MustLoad() Set {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func (s Set) Router(ctx QueryContext) (string, error) {
	return render(s.router, ctx)
}

func (s Set) Tracking(ctx OrderContext) (string, error) {
	return render(s.tracking, ctx)
}

func (s Set) RefundDelivered(ctx OrderContext) (string, error) {
	return render(s.refundDelivered, ctx)
}

func (s Set) RefundPending(ctx OrderContext) (string, error) {
	return render(s.refundPending, ctx)
}

func (s Set) ReturnDelivered(ctx OrderContext) (string, error) {
	return render(s.returnDelivered, ctx)
}

func (s Set) ReturnPending(ctx OrderContext) (string, error) {
	return render(s.returnPending, ctx)
}

func (s Set) General(ctx QueryContext) (string, error) {
	return render(s.general, ctx)
}

func render(t *template.Template, data any) (string, error) {
	if t == nil {
		return "", fmt.Errorf("prompt template is not loaded")
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", t.Name(), err)
	}
	return b.String(), nil
}
