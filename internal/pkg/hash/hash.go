package hash

// Hash digests plaintext secrets and verifies user input against stored
// digests. Implementations must never log or return the plaintext.
type Hash interface {
	// Hash produces a storable digest of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored digest.
	Verify(hashed, plaintext string) bool
}
