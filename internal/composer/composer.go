// Package composer generates randomized passwords from tiered character
// policies: each strength tier fixes a sampling universe and a set of
// character classes that must each appear at least once.
package composer

import "errors"

var (
	ErrInvalidLength      = errors.New("password length must not be negative")
	ErrInsufficientLength = errors.New("password length is too short for the tier's required character classes")
	ErrEmptyUniverse      = errors.New("tier has no eligible character classes")
)

// Compose generates a password of exactly length characters for the given
// tier using the process-wide crypto/rand source.
func Compose(length int, tier Tier) (string, error) {
	return ComposeWith(CryptoSource{}, length, tier)
}

// ComposeWith generates a password using the provided randomness source.
//
// One character is drawn from each of the tier's guaranteed classes, the
// remaining positions are filled uniformly from the tier universe, and the
// result is shuffled so guaranteed characters are not positionally
// predictable. A length shorter than the number of guaranteed classes is
// rejected before any randomness is consumed.
func ComposeWith(src Source, length int, tier Tier) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	universe := tier.Universe()
	if universe == "" {
		return "", ErrEmptyUniverse
	}

	guaranteed := tier.Guaranteed()
	if length < len(guaranteed) {
		return "", ErrInsufficientLength
	}

	result := make([]byte, length)

	for i, class := range guaranteed {
		ch, err := pick(src, class.Alphabet())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(guaranteed); i < length; i++ {
		ch, err := pick(src, universe)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// pick draws one character uniformly from alphabet.
func pick(src Source, alphabet string) (byte, error) {
	i, err := src.IntN(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle applies an unbiased Fisher-Yates permutation in place.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
