package ports

// Tokenizer extracts the ordered tokens of a text.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenHasher maps a token to a 64-bit hash.
type TokenHasher interface {
	Hash(token string) uint64
}
