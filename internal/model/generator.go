package model

// GenerateRequest represents a batch password generation request.
type GenerateRequest struct {
	Length      int
	Count       int
	NoNumerical bool
	Punctuation bool
	// EachClass guarantees one character from every enabled class.
	EachClass bool
	// Hash adds an Argon2id PHC hash to every generated password.
	Hash bool
}

// Password is one generated password and, when requested, its hash.
type Password struct {
	Value string
	Hash  string
}

// GenerateResponse holds the passwords in generation order.
type GenerateResponse struct {
	Passwords []Password
}
