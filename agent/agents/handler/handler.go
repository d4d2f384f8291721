package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	orderx "github.com/suriyasingaravel/BotDesk/agent/order"
	promptx "github.com/suriyasingaravel/BotDesk/agent/prompt"
)

// NoOrderReply is the fixed response for emails without an order. It is
// returned locally with no model call.
const NoOrderReply = "Sorry, we couldn't find any orders with that email."

// returnPickupDate is the fixed pickup slot quoted for eligible returns.
const returnPickupDate = "Tomorrow"

// orderHandler is the shared base for handlers that consult the order store.
type orderHandler struct {
	completer contractx.Completer
	orders    orderx.Store
}

// lookup resolves the customer's order. A missing order is not an error; it is
// reported via found=false and answered with NoOrderReply by the caller.
func (h orderHandler) lookup(ctx context.Context, email string) (*orderx.Order, bool, error) {
	ord, err := h.orders.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, orderx.ErrOrderNotFound) || errors.Is(err, orderx.ErrInvalidEmail) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("order lookup: %w", err)
	}
	return ord, true, nil
}

func (h orderHandler) complete(ctx context.Context, prompt string) (string, error) {
	out, err := h.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrGeneration, err)
	}
	return out, nil
}

func orderContext(query, email string, ord *orderx.Order) promptx.OrderContext {
	return promptx.OrderContext{
		Query:            strings.TrimSpace(query),
		Email:            strings.TrimSpace(email),
		OrderID:          ord.OrderID,
		Status:           string(ord.Status),
		Carrier:          ord.Carrier,
		ExpectedDelivery: ord.ExpectedDelivery,
		TrackingLink:     ord.TrackingLink,
		Amount:           ord.Amount,
	}
}

/* ----------------------------- Order tracking ---------------------------- */

type trackingHandler struct {
	orderHandler
	prompts promptx.Set
}

func NewTracking(completer contractx.Completer, store orderx.Store, prompts promptx.Set) contractx.Handler {
	return &trackingHandler{
		orderHandler: orderHandler{completer: completer, orders: store},
		prompts:      prompts,
	}
}

func (h *trackingHandler) Handle(ctx context.Context, email, query string) (string, error) {
	ord, found, err := h.lookup(ctx, email)
	if err != nil {
		return "", err
	}
	if !found {
		return NoOrderReply, nil
	}

	p, err := h.prompts.Tracking(orderContext(query, email, ord))
	if err != nil {
		return "", fmt.Errorf("%w: render tracking prompt: %v", contractx.ErrValidation, err)
	}
	return h.complete(ctx, p)
}

/* --------------------------------- Refund -------------------------------- */

type refundHandler struct {
	orderHandler
	prompts promptx.Set
}

func NewRefund(completer contractx.Completer, store orderx.Store, prompts promptx.Set) contractx.Handler {
	return &refundHandler{
		orderHandler: orderHandler{completer: completer, orders: store},
		prompts:      prompts,
	}
}

// Handle branches on the delivery status in host code: delivered orders get
// the refund-processed template, everything else the refund-policy template.
func (h *refundHandler) Handle(ctx context.Context, email, query string) (string, error) {
	ord, found, err := h.lookup(ctx, email)
	if err != nil {
		return "", err
	}
	if !found {
		return NoOrderReply, nil
	}

	octx := orderContext(query, email, ord)

	var p string
	if ord.Delivered() {
		p, err = h.prompts.RefundDelivered(octx)
	} else {
		p, err = h.prompts.RefundPending(octx)
	}
	if err != nil {
		return "", fmt.Errorf("%w: render refund prompt: %v", contractx.ErrValidation, err)
	}
	return h.complete(ctx, p)
}

/* --------------------------------- Return -------------------------------- */

type returnHandler struct {
	orderHandler
	prompts promptx.Set
}

func NewReturn(completer contractx.Completer, store orderx.Store, prompts promptx.Set) contractx.Handler {
	return &returnHandler{
		orderHandler: orderHandler{completer: completer, orders: store},
		prompts:      prompts,
	}
}

func (h *returnHandler) Handle(ctx context.Context, email, query string) (string, error) {
	ord, found, err := h.lookup(ctx, email)
	if err != nil {
		return "", err
	}
	if !found {
		return NoOrderReply, nil
	}

	octx := orderContext(query, email, ord)

	var p string
	if ord.Delivered() {
		octx.PickupDate = returnPickupDate
		p, err = h.prompts.ReturnDelivered(octx)
	} else {
		p, err = h.prompts.ReturnPending(octx)
	}
	if err != nil {
		return "", fmt.Errorf("%w: render return prompt: %v", contractx.ErrValidation, err)
	}
	return h.complete(ctx, p)
}

/* ----------------------------- General support --------------------------- */

type generalHandler struct {
	completer contractx.Completer
	prompts   promptx.Set
}

// NewGeneral builds the fallback handler. It never touches the order store.
func NewGeneral(completer contractx.Completer, prompts promptx.Set) contractx.Handler {
	return &generalHandler{completer: completer, prompts: prompts}
}

func (h *generalHandler) Handle(ctx context.Context, _, query string) (string, error) {
	p, err := h.prompts.General(promptx.QueryContext{Query: strings.TrimSpace(query)})
	if err != nil {
		return "", fmt.Errorf("%w: render general support prompt: %v", contractx.ErrValidation, err)
	}

	out, err := h.completer.Complete(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrGeneration, err)
	}
	return out, nil
}
