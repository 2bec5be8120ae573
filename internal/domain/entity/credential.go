package entity

// Credential is a locally managed login. Only the local identity provider uses it.
type Credential struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	PasswordHash  string `json:"passwordHash"`
	EmailVerified bool   `json:"emailVerified"`
	// TokensValidAfter is the Unix millisecond up to which issued tokens are rejected.
	TokensValidAfter int64 `json:"tokensValidAfterMs,omitempty"`
	CreatedAt        int64 `json:"createdAt"`
	UpdatedAt        int64 `json:"updatedAt,omitempty"`
}
