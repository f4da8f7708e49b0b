package token

import "errors"

var (
	// ErrInvalidToken is returned when a token does not split into three
	// non-empty dot-separated segments, or when its header segment does
	// not match any known algorithm encoding.
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrInvalidSignature is returned when the recomputed signature does
	// not match the one carried by the token.
	ErrInvalidSignature = errors.New("token: invalid signature")

	// ErrWrongAlgorithmHeader is returned when the token's header names a
	// different algorithm than the one the caller requested for
	// verification.
	ErrWrongAlgorithmHeader = errors.New("token: header algorithm does not match requested algorithm")

	// ErrUnsupportedAlgorithm is returned when an Algorithm value outside
	// the supported set is supplied.
	ErrUnsupportedAlgorithm = errors.New("token: unsupported algorithm")

	// ErrMissingSecret is returned by NewValidator when no secret is
	// supplied.
	ErrMissingSecret = errors.New("token: missing secret")

	ErrBase64Decode = errors.New("token: malformed base64url segment")
	ErrUTF8Decode   = errors.New("token: segment is not valid utf-8")
	ErrJSONEncode   = errors.New("token: claims cannot be serialized")
	ErrJSONDecode   = errors.New("token: claims cannot be deserialized")
)
