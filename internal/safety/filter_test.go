package safety

import (
	"strings"
	"testing"
)

func TestApply_RedactsPurchasePhrases(t *testing.T) {
	f := New()

	tests := []struct {
		name string
		text string
	}{
		{"buy from", "You can buy it from examplevendor"},
		{"order from", "Just order from your usual supplier"},
		{"purchase at", "You could purchase at a research chemical shop"},
		{"available at", "It is available at several outlets"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			redacted, n := f.Apply(tc.text)
			if n == 0 {
				t.Fatalf("no redactions in %q", tc.text)
			}
			if !strings.Contains(redacted, RedactionMarker) {
				t.Errorf("marker missing in %q", redacted)
			}
		})
	}
}

func TestApply_RedactsDomains(t *testing.T) {
	f := New()

	for _, text := range []string{
		"Check examplevendor.com for details",
		"See www.peptide-shop.net",
		"Listed on research.org",
		"Try cheap-peps.shop today",
	} {
		redacted, n := f.Apply(text)
		if n == 0 {
			t.Errorf("no redactions in %q", text)
		}
		if strings.Contains(redacted, ".com") || strings.Contains(redacted, ".net") ||
			strings.Contains(redacted, ".shop") {
			t.Errorf("domain survived redaction: %q", redacted)
		}
	}
}

func TestApply_VendorPhraseWithDomain(t *testing.T) {
	redacted, n := New().Apply("you can buy it from examplevendor.com")

	if n < 1 {
		t.Fatalf("expected redactions, got %d", n)
	}
	if strings.Contains(redacted, "examplevendor") {
		t.Errorf("vendor name survived: %q", redacted)
	}
	if !strings.Contains(redacted, RedactionMarker) {
		t.Errorf("marker missing: %q", redacted)
	}
}

func TestApply_CaseInsensitive(t *testing.T) {
	_, n := New().Apply("ORDER FROM the usual place")
	if n != 1 {
		t.Errorf("got %d redactions, want 1", n)
	}
}

func TestApply_CleanTextUntouched(t *testing.T) {
	text := "BPC-157 is studied for tendon and gut healing. " +
		"Research suggests dosing in the 200-500 mcg range."

	redacted, n := New().Apply(text)

	if n != 0 {
		t.Errorf("got %d redactions on clean text", n)
	}
	if redacted != text {
		t.Errorf("clean text modified: %q", redacted)
	}
}

func TestApply_CountsEverySubstitution(t *testing.T) {
	_, n := New().Apply("order from here, or order from there, both available at retail")
	if n != 3 {
		t.Errorf("got %d redactions, want 3", n)
	}
}
