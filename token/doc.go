/*
Package token implements compact, signed, self-contained tokens (JWTs)
using the HMAC family of signing algorithms.

A token carries an arbitrary JSON-serializable claims value. One party
signs the claims with a shared secret; any holder of that secret can
later verify authenticity and recover the claims without a database
lookup:

	type Claims struct {
	    Sub     string `json:"sub"`
	    Company string `json:"company"`
	}

	tok, err := token.Encode(Claims{Sub: "b@b.com", Company: "ACME"}, []byte("secret"), token.HS256)
	if err != nil {
	    log.Fatal(err)
	}

	claims, err := token.Decode[Claims](tok, []byte("secret"), token.HS256)
	if err != nil {
	    log.Fatal(err)
	}

The caller names the verification algorithm explicitly on every Decode
call. A token whose header claims a different algorithm is rejected with
ErrWrongAlgorithmHeader; the token is never allowed to choose its own
verification path. Signatures are compared in constant time.

Decode verifies only authenticity and structure. Claim semantics such as
expiry, audience, or issuer checks are application concerns layered on
top of the decoded claims value, as is key management. All operations in
this package are pure and safe for concurrent use.
*/
package token
