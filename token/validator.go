package token

import "context"

// ClaimsFactory returns a fresh claims value for each validated token.
// The returned value must be a pointer so decoded claims can be written
// into it.
type ClaimsFactory func() any

// Validator binds a secret and an algorithm so tokens can be checked
// behind a transport-agnostic ValidateToken call, the shape expected by
// the middleware and the framework adapters.
type Validator struct {
	secret    []byte
	algorithm Algorithm
	newClaims ClaimsFactory
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithClaims sets the factory producing the claims value each token is
// decoded into. Defaults to *map[string]any.
func WithClaims(factory ClaimsFactory) ValidatorOption {
	return func(v *Validator) {
		v.newClaims = factory
	}
}

// NewValidator returns a Validator for the given secret and algorithm.
func NewValidator(secret []byte, alg Algorithm, opts ...ValidatorOption) (*Validator, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if !alg.Valid() {
		return nil, ErrUnsupportedAlgorithm
	}

	v := &Validator{
		secret:    secret,
		algorithm: alg,
		newClaims: func() any { return &map[string]any{} },
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Issue signs claims under the validator's secret and algorithm.
func (v *Validator) Issue(claims any) (string, error) {
	return Encode(claims, v.secret, v.algorithm)
}

// ValidateToken verifies tok and returns its decoded claims. Only
// authenticity and structure are checked; claim semantics such as expiry
// remain the caller's concern.
func (v *Validator) ValidateToken(_ context.Context, tok string) (any, error) {
	claims := v.newClaims()
	if err := DecodeInto(tok, v.secret, v.algorithm, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
