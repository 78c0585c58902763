package composer

import (
	"errors"
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		tier    Tier
		wantErr error
	}{
		{
			name:   "low tier typical length",
			length: 16, tier: TierLow,
			wantErr: nil,
		},
		{
			name:   "medium tier typical length",
			length: 12, tier: TierMedium,
			wantErr: nil,
		},
		{
			name:   "high tier typical length",
			length: 8, tier: TierHigh,
			wantErr: nil,
		},
		{
			name:   "high tier minimum satisfiable length",
			length: 4, tier: TierHigh,
			wantErr: nil,
		},
		{
			name:   "medium tier minimum satisfiable length",
			length: 3, tier: TierMedium,
			wantErr: nil,
		},
		{
			name:   "low tier single character",
			length: 1, tier: TierLow,
			wantErr: nil,
		},
		{
			name:   "zero length low tier",
			length: 0, tier: TierLow,
			wantErr: nil,
		},
		{
			name:   "zero length medium tier",
			length: 0, tier: TierMedium,
			wantErr: ErrInsufficientLength,
		},
		{
			name:   "high tier below guaranteed count",
			length: 2, tier: TierHigh,
			wantErr: ErrInsufficientLength,
		},
		{
			name:   "medium tier below guaranteed count",
			length: 2, tier: TierMedium,
			wantErr: ErrInsufficientLength,
		},
		{
			name:   "negative length",
			length: -1, tier: TierLow,
			wantErr: ErrInvalidLength,
		},
		{
			name:   "negative length outranks insufficient length",
			length: -5, tier: TierHigh,
			wantErr: ErrInvalidLength,
		},
		{
			name:   "unknown tier has empty universe",
			length: 12, tier: Tier("extreme"),
			wantErr: ErrEmptyUniverse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compose(tt.length, tt.tier)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Compose() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Compose() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Compose() unexpected error: %v", err)
			}
			if len(result) != tt.length {
				t.Errorf("Compose() length = %d, want %d", len(result), tt.length)
			}
		})
	}
}

func TestComposeGuaranteedClassCoverage(t *testing.T) {
	tests := []struct {
		name   string
		length int
		tier   Tier
	}{
		{"medium tier", 12, TierMedium},
		{"high tier", 8, TierHigh},
		{"high tier at minimum length", 4, TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Run multiple times to reduce flakiness from randomness.
			for i := 0; i < 50; i++ {
				password, err := Compose(tt.length, tt.tier)
				if err != nil {
					t.Fatalf("Compose() unexpected error: %v", err)
				}
				for _, class := range tt.tier.Guaranteed() {
					if !strings.ContainsAny(password, class.Alphabet()) {
						t.Errorf("password %q missing %s character", password, class)
					}
				}
			}
		})
	}
}

func TestComposeStaysInsideUniverse(t *testing.T) {
	for _, tier := range Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			universe := tier.Universe()
			password, err := Compose(64, tier)
			if err != nil {
				t.Fatalf("Compose() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(universe, ch) {
					t.Errorf("password contains %q, which is outside the %s universe", string(ch), tier)
				}
			}
		})
	}
}

func TestComposeLowTierExcludesDigitsAndSpecials(t *testing.T) {
	for i := 0; i < 20; i++ {
		password, err := Compose(32, TierLow)
		if err != nil {
			t.Fatalf("Compose() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, digitChars) {
			t.Errorf("low tier password %q contains a digit", password)
		}
		if strings.ContainsAny(password, specialChars) {
			t.Errorf("low tier password %q contains a special character", password)
		}
	}
}

func TestComposeMediumTierExcludesSpecials(t *testing.T) {
	for i := 0; i < 20; i++ {
		password, err := Compose(12, TierMedium)
		if err != nil {
			t.Fatalf("Compose() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, specialChars) {
			t.Errorf("medium tier password %q contains a special character", password)
		}
	}
}

func TestComposeZeroLengthLowTier(t *testing.T) {
	result, err := Compose(0, TierLow)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	if result != "" {
		t.Errorf("Compose(0, low) = %q, want empty string", result)
	}
}

func TestComposeProducesVariedPasswords(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Compose(16, TierHigh)
		if err != nil {
			t.Fatalf("Compose() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

// seqSource returns successive values of a counter reduced modulo n, making
// composition fully deterministic.
type seqSource struct {
	next int
}

func (s *seqSource) IntN(n int) (int, error) {
	v := s.next % n
	s.next++
	return v, nil
}

func TestComposeWithDeterministicSource(t *testing.T) {
	first, err := ComposeWith(&seqSource{}, 12, TierHigh)
	if err != nil {
		t.Fatalf("ComposeWith() unexpected error: %v", err)
	}

	second, err := ComposeWith(&seqSource{}, 12, TierHigh)
	if err != nil {
		t.Fatalf("ComposeWith() unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("identical sources produced different passwords: %q vs %q", first, second)
	}
}

func TestComposeWithKnownSequence(t *testing.T) {
	// Low tier, length 4: filler indices 0,1,2,3 over "AB...Zab...z" give
	// "ABCD"; the shuffle draws 0, 2, 0 and permutes it to "BDCA".
	result, err := ComposeWith(&seqSource{next: 0}, 4, TierLow)
	if err != nil {
		t.Fatalf("ComposeWith() unexpected error: %v", err)
	}
	if result != "BDCA" {
		t.Errorf("ComposeWith() = %q, want %q", result, "BDCA")
	}
}

// failSource always errors, standing in for an exhausted entropy source.
type failSource struct{}

func (failSource) IntN(n int) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestComposeWithFailingSource(t *testing.T) {
	_, err := ComposeWith(failSource{}, 12, TierHigh)
	if err == nil {
		t.Error("ComposeWith() expected error from failing source")
	}
}

func TestComposeInsufficientLengthConsumesNoRandomness(t *testing.T) {
	// The length check is deterministic and must run before any draw.
	_, err := ComposeWith(failSource{}, 2, TierHigh)
	if !errors.Is(err, ErrInsufficientLength) {
		t.Errorf("ComposeWith() error = %v, want ErrInsufficientLength", err)
	}
}
