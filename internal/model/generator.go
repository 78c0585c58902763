package model

// ComposeRequest represents a password generation request. A zero length
// or empty tier means the server-side defaults apply.
type ComposeRequest struct {
	Length int    `json:"length"`
	Tier   string `json:"tier"`
}

// ComposeResponse represents a successfully generated password.
type ComposeResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Tier     string `json:"tier"`
}

// TierInfo describes a strength tier so clients can render the tier
// choice and its minimum satisfiable length.
type TierInfo struct {
	Name       string   `json:"name"`
	Classes    []string `json:"classes"`
	Guaranteed []string `json:"guaranteed"`
	MinLength  int      `json:"min_length"`
}

// ErrorResponse carries a machine-readable error code plus a
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
