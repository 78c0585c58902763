package service

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/composer"
	"github.com/securepass/securepass-go/internal/model"
)

var ErrLengthOutOfRange = errors.New("password length is outside the allowed range")

// Policy bounds what the API accepts before the composer runs. The range
// check belongs to the calling side, not the composer itself, which only
// rejects structurally impossible requests.
type Policy struct {
	MinLength     int
	MaxLength     int
	DefaultLength int
	DefaultTier   composer.Tier
}

// DefaultPolicy returns the policy the original form enforced: lengths
// 4 through 80, defaulting to a 12-character high-tier password.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:     4,
		MaxLength:     80,
		DefaultLength: 12,
		DefaultTier:   composer.TierHigh,
	}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	policy Policy
}

// NewGeneratorService creates a new GeneratorService with the given policy.
func NewGeneratorService(policy Policy) *GeneratorService {
	return &GeneratorService{policy: policy}
}

// Generate produces a password based on the given request, applying the
// service defaults and policy range before delegating to the composer.
func (s *GeneratorService) Generate(req model.ComposeRequest) (model.ComposeResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.policy.DefaultLength
	}

	if length < s.policy.MinLength || length > s.policy.MaxLength {
		return model.ComposeResponse{}, fmt.Errorf("%w: length must be between %d and %d",
			ErrLengthOutOfRange, s.policy.MinLength, s.policy.MaxLength)
	}

	tier := s.policy.DefaultTier
	if req.Tier != "" {
		parsed, err := composer.ParseTier(req.Tier)
		if err != nil {
			return model.ComposeResponse{}, err
		}
		tier = parsed
	}

	password, err := composer.Compose(length, tier)
	if err != nil {
		return model.ComposeResponse{}, err
	}

	return model.ComposeResponse{
		Password: password,
		Length:   len(password),
		Tier:     string(tier),
	}, nil
}

// Tiers returns metadata for every strength tier, weakest first.
func (s *GeneratorService) Tiers() []model.TierInfo {
	tiers := composer.Tiers()
	result := make([]model.TierInfo, len(tiers))
	for i, tier := range tiers {
		result[i] = model.TierInfo{
			Name:       string(tier),
			Classes:    classNames(tier.Classes()),
			Guaranteed: classNames(tier.Guaranteed()),
			MinLength:  minSatisfiable(tier, s.policy),
		}
	}
	return result
}

// minSatisfiable returns the smallest length the policy and the tier's
// guaranteed classes jointly allow.
func minSatisfiable(tier composer.Tier, policy Policy) int {
	min := policy.MinLength
	if g := len(tier.Guaranteed()); g > min {
		min = g
	}
	return min
}

// classNames converts a slice of classes to their string names.
func classNames(classes []composer.Class) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
