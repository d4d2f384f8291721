package contract

import "strings"

// Category names one of the support agents a query can be routed to.
// The label values follow the agent names the routing prompt advertises.
type Category string

const (
	CategoryOrderTracking  Category = "Order_Tracking_Agent"
	CategoryRefund         Category = "Refund_Agent"
	CategoryReturn         Category = "Return_Agent"
	CategoryGeneralSupport Category = "General_Support_Agent"
)

// Display returns a human-friendly form of the label, e.g. "Refund Agent".
func (c Category) Display() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// KnownCategories lists every routable category.
// CategoryGeneralSupport is also the fallback for unrecognized router output.
func KnownCategories() []Category {
	return []Category{
		CategoryOrderTracking,
		CategoryRefund,
		CategoryReturn,
		CategoryGeneralSupport,
	}
}

// matchKeys are checked longest-first so "order_tracking" is never shadowed by
// a shorter label it happens to contain.
var matchKeys = []struct {
	key      string
	category Category
}{
	{"order_tracking", CategoryOrderTracking},
	{"general_support", CategoryGeneralSupport},
	{"tracking", CategoryOrderTracking},
	{"refund", CategoryRefund},
	{"return", CategoryReturn},
	{"general", CategoryGeneralSupport},
	{"support", CategoryGeneralSupport},
}

// ParseCategory decodes the router's free-text output into a Category.
// The router has no structural guarantee on its output, so the match is
// tolerant: trim, case-fold, treat punctuation and spaces as underscores, then
// look for a known label inside the text. ok is false when nothing matches;
// callers are expected to fall back to CategoryGeneralSupport.
func ParseCategory(raw string) (Category, bool) {
	normalized := normalizeLabel(raw)
	if normalized == "" {
		return CategoryGeneralSupport, false
	}

	for _, c := range KnownCategories() {
		if normalized == normalizeLabel(string(c)) {
			return c, true
		}
	}

	for _, m := range matchKeys {
		if strings.Contains(normalized, m.key) {
			return m.category, true
		}
	}

	return CategoryGeneralSupport, false
}

func normalizeLabel(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
