package token

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/base64"
)

// sign computes the keyed digest of payload using secret and the hash
// bound to alg, returned base64url encoded without padding.
func sign(payload string, secret []byte, alg Algorithm) (string, error) {
	entry, ok := algorithms[alg]
	if !ok {
		return "", ErrUnsupportedAlgorithm
	}

	mac := hmac.New(entry.hash, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// verify recomputes the signature for payload and compares it against the
// supplied one in constant time. The comparison must not short-circuit on
// the first differing byte: an attacker who can time the check could
// otherwise recover a valid signature byte by byte. Signature length per
// algorithm is fixed and public, so only the content comparison carries
// the constant-time requirement.
func verify(signature, payload string, secret []byte, alg Algorithm) (bool, error) {
	expected, err := sign(payload, secret, alg)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1, nil
}
