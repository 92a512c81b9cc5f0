// Package validator wraps struct validation behind a small interface.
//
// Handlers and use cases depend on Validator so the rules stay declarative
// (struct tags) and the error shape stays uniform. The concrete
// implementation is go-playground/validator v10 with English translations.
package validator
