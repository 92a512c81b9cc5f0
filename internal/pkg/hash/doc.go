// Package hash provides one-way hashing for secrets.
//
// Only the digest of a password is ever stored; user input is verified by
// comparing the plaintext against the stored digest. Constant-effort
// comparison is the job of the underlying primitive (bcrypt), not of callers.
package hash
