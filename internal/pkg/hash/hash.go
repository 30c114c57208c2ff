package hash

// Hash abstracts a one-way hashing scheme.
type Hash interface {
	// Hash derives an irreversible digest from plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
