package composer

import (
	"errors"
	"strings"
)

// Tier is a named strength policy bundling which character classes are
// eligible for sampling and which must appear at least once.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

var ErrUnknownTier = errors.New("unknown strength tier")

// Tiers returns all tiers ordered weakest to strongest.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// ParseTier converts a case-insensitive tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(s)) {
	case TierLow:
		return TierLow, nil
	case TierMedium:
		return TierMedium, nil
	case TierHigh:
		return TierHigh, nil
	}
	return "", ErrUnknownTier
}

// Classes returns the character classes eligible for sampling at this tier.
func (t Tier) Classes() []Class {
	switch t {
	case TierLow:
		return []Class{Uppercase, Lowercase}
	case TierMedium:
		return []Class{Uppercase, Lowercase, Digit}
	case TierHigh:
		return []Class{Uppercase, Lowercase, Digit, Special}
	}
	return nil
}

// Guaranteed returns the classes that must each contribute at least one
// character to a composed password.
func (t Tier) Guaranteed() []Class {
	switch t {
	case TierMedium:
		return []Class{Uppercase, Lowercase, Digit}
	case TierHigh:
		return []Class{Uppercase, Lowercase, Digit, Special}
	}
	return nil
}

// Universe returns the union of the eligible class alphabets. The
// alphabets are disjoint, so plain concatenation preserves uniformity.
func (t Tier) Universe() string {
	var sb strings.Builder
	for _, c := range t.Classes() {
		sb.WriteString(c.Alphabet())
	}
	return sb.String()
}
