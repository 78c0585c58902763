package composer

// Class identifies a category of characters bound to a fixed, ordered
// ASCII alphabet.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Special
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet returns the ordered character set for the class.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Special:
		return specialChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	}
	return "unknown"
}
