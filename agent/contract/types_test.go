package contract

import (
	"math/rand"
	"strings"
	"testing"
)

// randomCase flips letter casing at random so generated labels cover the
// model's natural casing drift.
func randomCase(rng *rand.Rand, s string) string {
	var b strings.Builder
	for _, r := range s {
		if rng.Intn(2) == 0 {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
	}
	return b.String()
}

func pad(rng *rand.Rand, s string) string {
	padding := []string{"", " ", "  ", "\t", "\n", ".", "!", ","}
	return padding[rng.Intn(len(padding))] + s + padding[rng.Intn(len(padding))]
}

// labelVariants generates recognizable-but-noisy renditions of a known label:
// random casing, surrounding whitespace and punctuation, harmless prefix and
// suffix words.
func labelVariants(rng *rand.Rand, label string, n int) []string {
	prefixes := []string{"", "the ", "assign to ", "-> "}
	suffixes := []string{"", " please", " should handle this", "!"}

	out := make([]string, 0, n)
	for len(out) < n {
		v := prefixes[rng.Intn(len(prefixes))] + randomCase(rng, label) + suffixes[rng.Intn(len(suffixes))]
		out = append(out, pad(rng, v))
	}
	return out
}

// malformedLabels generates strings that name no known category: random words,
// separators, casing, and padding, none containing a label fragment.
func malformedLabels(rng *rand.Rand, n int) []string {
	words := []string{"billing", "payments", "invoice", "escalate", "priority", "unknown", "agent", "desk", "bot", "queue"}
	seps := []string{" ", "_", "-", ".", "/"}

	out := make([]string, 0, n)
	for len(out) < n {
		var b strings.Builder
		for i := 0; i <= rng.Intn(3); i++ {
			if i > 0 {
				b.WriteString(seps[rng.Intn(len(seps))])
			}
			b.WriteString(randomCase(rng, words[rng.Intn(len(words))]))
		}
		out = append(out, pad(rng, b.String()))
	}
	return out
}

func TestParseCategoryExactLabels(t *testing.T) {
	t.Parallel()

	for _, c := range KnownCategories() {
		got, ok := ParseCategory(string(c))
		if !ok {
			t.Fatalf("ParseCategory(%q) ok = false", c)
		}
		if got != c {
			t.Fatalf("ParseCategory(%q) = %q", c, got)
		}
	}
}

func TestParseCategoryTolerantVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Category
	}{
		{"order_tracking_agent", CategoryOrderTracking},
		{"ORDER_TRACKING_AGENT", CategoryOrderTracking},
		{"Order_Tracking", CategoryOrderTracking},
		{"Order Tracking Agent", CategoryOrderTracking},
		{"  Refund_Agent  ", CategoryRefund},
		{"Refund_Agent.", CategoryRefund},
		{"refund", CategoryRefund},
		{"The Refund_Agent should handle this", CategoryRefund},
		{"Return_Agent\n", CategoryReturn},
		{"returns", CategoryReturn},
		{"general_support_agent", CategoryGeneralSupport},
		{"General Support", CategoryGeneralSupport},
	}

	for _, tc := range cases {
		got, ok := ParseCategory(tc.raw)
		if !ok {
			t.Fatalf("ParseCategory(%q) ok = false", tc.raw)
		}
		if got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseCategoryUnrecognized(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"   ",
		"\n\t",
		"Unknown_Agent",
		"billing",
		"I cannot classify this request",
		"42",
	} {
		got, ok := ParseCategory(raw)
		if ok {
			t.Fatalf("ParseCategory(%q) ok = true, got %q", raw, got)
		}
		if got != CategoryGeneralSupport {
			t.Fatalf("ParseCategory(%q) fallback = %q, want %q", raw, got, CategoryGeneralSupport)
		}
	}
}

func TestParseCategoryGeneratedVariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	for _, want := range KnownCategories() {
		for _, raw := range labelVariants(rng, string(want), 25) {
			got, ok := ParseCategory(raw)
			if !ok {
				t.Fatalf("ParseCategory(%q) ok = false, want %q", raw, want)
			}
			if got != want {
				t.Fatalf("ParseCategory(%q) = %q, want %q", raw, got, want)
			}
		}
	}
}

func TestParseCategoryGeneratedMalformed(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))

	for _, raw := range malformedLabels(rng, 100) {
		got, ok := ParseCategory(raw)
		if ok {
			t.Fatalf("ParseCategory(%q) ok = true, got %q", raw, got)
		}
		if got != CategoryGeneralSupport {
			t.Fatalf("ParseCategory(%q) fallback = %q, want %q", raw, got, CategoryGeneralSupport)
		}
	}
}

func TestCategoryDisplay(t *testing.T) {
	t.Parallel()

	if got := CategoryOrderTracking.Display(); got != "Order Tracking Agent" {
		t.Fatalf("Display() = %q", got)
	}
}
