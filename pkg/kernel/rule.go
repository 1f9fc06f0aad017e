package kernel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrRule is returned for rule strings that are neither a known name nor
// valid B/S notation.
var ErrRule = errors.New("kernel: invalid rule")

// Rule is a life-like outer-totalistic rule. Birth[n] reports whether a dead
// cell with n live neighbours is born; Survive[n] whether a live one stays.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23, the rule used unless another is configured.
var Conway = MustParse("B3/S23")

var named = map[string]Rule{
	"life":     Conway,
	"highlife": MustParse("B36/S23"),
	"seeds":    MustParse("B2/S"),
	"daynight": MustParse("B3678/S34678"),
}

// Names lists the built-in rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a built-in rule name or parses B/S notation.
func Lookup(s string) (Rule, error) {
	if r, ok := named[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return Parse(s)
}

// Parse reads rules written as "B<digits>/S<digits>", e.g. "B36/S23".
func Parse(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%q: want B<digits>/S<digits>: %w", s, ErrRule)
	}
	if !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return r, fmt.Errorf("%q: want B<digits>/S<digits>: %w", s, ErrRule)
	}
	if err := parseCounts(parts[0][1:], &r.Birth); err != nil {
		return r, fmt.Errorf("%q birth: %w", s, err)
	}
	if err := parseCounts(parts[1][1:], &r.Survive); err != nil {
		return r, fmt.Errorf("%q survival: %w", s, err)
	}
	return r, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Rule {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(digits string, dst *[9]bool) error {
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return fmt.Errorf("neighbour count %q out of range 0-8: %w", ch, ErrRule)
		}
		dst[ch-'0'] = true
	}
	return nil
}

// String formats the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Next returns the state following state given n live neighbours.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return r.Survive[n]
	}
	return r.Birth[n]
}
