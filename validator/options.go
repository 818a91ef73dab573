package validator

import "github.com/erraggy/discoverytools/loader"

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Default: loader.NopLogger
func WithLogger(l loader.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithEngine replaces the validation engine.
// Default: a JSONSchemaEngine
func WithEngine(e Engine) Option {
	return func(v *Validator) {
		if e != nil {
			v.engine = e
		}
	}
}
