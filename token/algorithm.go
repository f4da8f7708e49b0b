package token

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm identifies the HMAC signing scheme bound to a token.
type Algorithm string

// Supported signing algorithms.
const (
	HS256 = Algorithm("HS256") // HMAC using SHA-256
	HS384 = Algorithm("HS384") // HMAC using SHA-384
	HS512 = Algorithm("HS512") // HMAC using SHA-512
)

// algorithmEntry binds an Algorithm to its hash constructor and to the
// precomputed base64url encoding of its canonical header JSON. The header
// JSON for a given algorithm is byte-identical on every token, so the
// encoded form is a constant rather than something recomputed per call.
type algorithmEntry struct {
	hash   func() hash.Hash
	header string
}

var algorithms = map[Algorithm]algorithmEntry{
	HS256: {sha256.New, "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9"},
	HS384: {sha512.New384, "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzM4NCJ9"},
	HS512: {sha512.New, "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzUxMiJ9"},
}

// headerAlgorithms is the reverse lookup used when decoding headers. Only
// the three exact encodings are ever accepted, which is what blocks
// algorithm-confusion attacks: a tampered header cannot name an algorithm
// outside the closed set, nor smuggle extra header fields past the check.
var headerAlgorithms = map[string]Algorithm{
	"eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9": HS256,
	"eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzM4NCJ9": HS384,
	"eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzUxMiJ9": HS512,
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithms[a]
	return ok
}
