// Package jwt implements the stateless bearer-token codec.
//
// Tokens are compact HS256-signed JWS structures carrying the authenticated
// subject (the user email), issued-at and expires-at claims. Verification is a
// pure function of the token, the signing key and the current time, so no
// server-side session state is needed. Failures are reported as one of four
// sentinel errors; nothing in this package panics across the boundary.
package jwt
