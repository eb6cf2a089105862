package derive

import (
	"strings"
	"testing"
)

func TestCanonicalCountry(t *testing.T) {
	if got := CanonicalCountry("England"); got != "UK" {
		t.Fatalf("England must fold to UK, got %q", got)
	}
	for _, c := range []string{"UK", "Germany", "USA", ""} {
		if got := CanonicalCountry(c); got != c {
			t.Fatalf("%q must pass through, got %q", c, got)
		}
	}
}

func TestFlagURL(t *testing.T) {
	got := FlagURL("UK")
	if got == "" || !strings.Contains(got, "gb") {
		t.Fatalf("want a gb flag URL, got %q", got)
	}
	if got := FlagURL("Atlantis"); got != "" {
		t.Fatalf("unknown country must yield empty URL, got %q", got)
	}
}

func TestCountriesStable(t *testing.T) {
	a, b := Countries(), Countries()
	if len(a) == 0 {
		t.Fatalf("reference list must not be empty")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("country order changed between calls")
		}
	}
}
