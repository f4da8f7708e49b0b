/*
Package jwtmiddleware provides HTTP middleware for authenticating requests
with HMAC-signed JWTs.

The middleware extracts a token from the request, validates it against a
TokenValidator and, on success, makes the decoded claims available in the
request context. The token codec itself lives in the token package;
adapters for Echo, Gin and gRPC live under framework/.

# Quick Start

	import (
	    jwtmiddleware "github.com/hmackit/go-jwt-hmac"
	    "github.com/hmackit/go-jwt-hmac/token"
	)

	func main() {
	    v, err := token.NewValidator([]byte("secret"), token.HS256)
	    if err != nil {
	        log.Fatal(err)
	    }

	    middleware, err := jwtmiddleware.New(v)
	    if err != nil {
	        log.Fatal(err)
	    }

	    handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	        claims := jwtmiddleware.MustGetClaims[*map[string]any](r.Context())
	        fmt.Fprintf(w, "hello %v", (*claims)["sub"])
	    })

	    http.ListenAndServe(":3000", middleware.CheckJWT(handler))
	}

# Error Handling

When validation fails the configured ErrorHandler writes the response.
The default handler returns 400 for a missing token, 401 for an invalid
one and 500 for anything else; errors passed to custom handlers support
errors.Is against ErrJWTMissing and ErrJWTInvalid as well as the token
package sentinels via Unwrap.

# Observability

Logging, tracing and metrics are optional and off by default. WithLogger
accepts any slog-compatible logger (adapters for logrus, zap and zerolog
are included), WithTracer accepts an OpenTelemetry-backed tracer and
WithMetrics a Prometheus-backed recorder.
*/
package jwtmiddleware
