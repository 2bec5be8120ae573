package errors

import "strings"

// authMessages maps identity provider error fragments to user-facing text.
// Order matters: the first matching fragment wins.
var authMessages = []struct {
	fragment string
	message  string
}{
	{"EMAIL_EXISTS", "This email is already registered"},
	{"email-already-in-use", "This email is already registered"},
	{"EMAIL_NOT_FOUND", "Invalid email or password"},
	{"INVALID_PASSWORD", "Invalid email or password"},
	{"INVALID_LOGIN_CREDENTIALS", "Invalid email or password"},
	{"invalid-credential", "Invalid email or password"},
	{"user-not-found", "Invalid email or password"},
	{"wrong-password", "Invalid email or password"},
	{"WEAK_PASSWORD", "Password should be at least 6 characters"},
	{"weak-password", "Password should be at least 6 characters"},
	{"INVALID_EMAIL", "Please enter a valid email address"},
	{"invalid-email", "Please enter a valid email address"},
	{"TOO_MANY_ATTEMPTS_TRY_LATER", "Too many attempts. Please try again later"},
	{"too-many-requests", "Too many attempts. Please try again later"},
	{"USER_DISABLED", "This account has been disabled"},
	{"user-disabled", "This account has been disabled"},
	{"network-request-failed", "Network error. Please check your connection"},
}

// FriendlyAuthMessage translates a raw identity provider error into text a user can act on.
// Unknown errors fall back to the raw message.
func FriendlyAuthMessage(err error) string {
	if err == nil {
		return ""
	}

	raw := err.Error()
	for _, m := range authMessages {
		if strings.Contains(raw, m.fragment) {
			return m.message
		}
	}

	return raw
}

// NewAuthProviderError wraps an identity provider failure as an AppError
// carrying the translated message.
func NewAuthProviderError(err error) *BaseError {
	return &BaseError{
		httpCode:  ErrAuthProvider.httpCode,
		errorCode: ErrAuthProvider.errorCode,
		message:   FriendlyAuthMessage(err),
		details:   err.Error(),
	}
}
