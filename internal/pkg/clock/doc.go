// Package clock provides a tiny time abstraction.
//
// Code that reasons about token expiry depends on the Clocker interface
// instead of calling time.Now() directly, so tests can pin the clock to a
// deterministic instant.
package clock
