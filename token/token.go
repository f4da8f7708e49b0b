package token

import "strings"

// Encode signs claims with secret and returns the compact token string
//
//	base64url(header) "." base64url(claims) "." base64url(signature)
//
// with no padding characters. Claims may be any JSON-serializable value.
func Encode(claims any, secret []byte, alg Algorithm) (string, error) {
	header, err := NewHeader(alg).MarshalText()
	if err != nil {
		return "", err
	}

	claimsSegment, err := encodeSegment(claims)
	if err != nil {
		return "", err
	}

	payload := string(header) + "." + claimsSegment
	signature, err := sign(payload, secret, alg)
	if err != nil {
		return "", err
	}

	return payload + "." + signature, nil
}

// Decode verifies tok with secret and alg and returns the claims it
// carries.
//
// The signature is checked before the header or claims are parsed, so no
// work is done on unauthenticated data beyond recomputing the signature.
// The caller names the verification algorithm explicitly; a token whose
// header carries a different algorithm fails with ErrWrongAlgorithmHeader
// rather than being verified under the header's choice.
func Decode[T any](tok string, secret []byte, alg Algorithm) (T, error) {
	var claims T
	err := DecodeInto(tok, secret, alg, &claims)
	return claims, err
}

// DecodeInto is the non-generic form of Decode. It decodes the verified
// claims into the value pointed to by claims, which must be a non-nil
// pointer.
func DecodeInto(tok string, secret []byte, alg Algorithm, claims any) error {
	payload, signature, ok := splitRight(tok)
	if !ok {
		return ErrInvalidToken
	}

	valid, err := verify(signature, payload, secret, alg)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidSignature
	}

	headerSegment, claimsSegment, ok := splitRight(payload)
	if !ok {
		return ErrInvalidToken
	}

	var header Header
	if err := header.UnmarshalText([]byte(headerSegment)); err != nil {
		return err
	}
	if header.Alg != alg {
		return ErrWrongAlgorithmHeader
	}

	return decodeSegment(claimsSegment, claims)
}

// splitRight splits s on its last "." into two non-empty halves. Segment
// boundaries are located on the base64url text, never on decoded bytes,
// so dots inside claim values can never shift them.
func splitRight(s string) (left, right string, ok bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
