package jwtmiddleware

import (
	"context"
	"errors"
)

// contextKey is an unexported type for context keys to prevent collisions
// with keys set by other packages.
type contextKey int

const claimsKey contextKey = iota

var (
	// ErrClaimsNotFound is returned when no claims are present in the
	// context.
	ErrClaimsNotFound = errors.New("claims not found in context")

	// ErrClaimsTypeMismatch is returned when the claims in the context are
	// not of the requested type.
	ErrClaimsTypeMismatch = errors.New("claims type assertion failed")
)

// SetClaims stores validated claims in the context. The middleware calls
// this after successful validation; adapters may call it directly.
func SetClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves claims from the context with type safety using
// generics.
//
// Example:
//
//	claims, err := jwtmiddleware.GetClaims[*MyClaims](r.Context())
//	if err != nil {
//	    http.Error(w, "failed to get claims", http.StatusInternalServerError)
//	    return
//	}
func GetClaims[T any](ctx context.Context) (T, error) {
	var zero T

	val := ctx.Value(claimsKey)
	if val == nil {
		return zero, ErrClaimsNotFound
	}

	claims, ok := val.(T)
	if !ok {
		return zero, ErrClaimsTypeMismatch
	}

	return claims, nil
}

// MustGetClaims retrieves claims from the context or panics. Use only when
// claims are certain to exist, i.e. after the middleware has run.
func MustGetClaims[T any](ctx context.Context) T {
	claims, err := GetClaims[T](ctx)
	if err != nil {
		panic(err)
	}
	return claims
}

// HasClaims checks if claims exist in the context without retrieving them.
func HasClaims(ctx context.Context) bool {
	return ctx.Value(claimsKey) != nil
}
