package ports

// TokenClaims is the decoded payload of a verified session token.
type TokenClaims struct {
	UserID string
	Access string
}

// TokenIssuer signs and verifies session tokens. Verify checks signature and
// shape only; whether the token is still live is the user repository's call.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (TokenClaims, error)
}
