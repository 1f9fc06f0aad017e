package kernel

import (
	"errors"
	"testing"
)

func TestParseRoundTripsNotation(t *testing.T) {
	for _, s := range []string{"B3/S23", "B36/S23", "B2/S", "B3678/S34678", "B/S012345678"} {
		r, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := r.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "B3", "S23/B3", "B9/S23", "B3/S2x", "23/3"} {
		if _, err := Parse(s); !errors.Is(err, ErrRule) {
			t.Errorf("Parse(%q) err = %v, want ErrRule", s, err)
		}
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("Life")
	if err != nil || r != Conway {
		t.Fatalf("Lookup(Life) = %v, %v", r, err)
	}
	r, err = Lookup("b36/s23")
	if err != nil || r.String() != "B36/S23" {
		t.Fatalf("Lookup(b36/s23) = %v, %v", r, err)
	}
	if _, err := Lookup("nope"); !errors.Is(err, ErrRule) {
		t.Fatalf("Lookup(nope) err = %v", err)
	}
	for _, name := range Names() {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("built-in %q does not resolve: %v", name, err)
		}
	}
}

func TestConwayNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Conway.Next(true, n); got != wantAlive {
			t.Errorf("alive with %d: got %v", n, got)
		}
		if got := Conway.Next(false, n); got != (n == 3) {
			t.Errorf("dead with %d: got %v", n, got)
		}
	}
}
