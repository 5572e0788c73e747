package domain

// TokenAccessAuth is the only access tag issued today. Tokens carry it both
// in the signed payload and in the user's stored token list.
const TokenAccessAuth = "auth"

// MinPasswordLength is enforced on registration and password change.
const MinPasswordLength = 6

// TokenPair is one issued session token together with its access tag.
type TokenPair struct {
	Access string `json:"access" bson:"access"`
	Token  string `json:"token" bson:"token"`
}

// User models an account holder. PasswordHash is the bcrypt hash of the
// password; the plaintext is never persisted. Tokens holds every live
// session; a token is valid only while it appears here, regardless of
// signature validity.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Tokens       []TokenPair `json:"-"`
}

// HasToken reports whether the given token string is in the user's live
// session list.
func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t.Token == token {
			return true
		}
	}
	return false
}
