package iap

import "strings"

// Header names injected by the identity-aware proxy. Display only: nothing
// here is validated or used for authorization.
const (
	EmailHeader  = "X-Goog-Authenticated-User-Email"
	UserIDHeader = "X-Goog-Authenticated-User-Id"

	accountPrefix = "accounts.google.com:"

	anonymousEmail = "Not Authenticated"
	anonymousID    = "N/A"
)

type Identity struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// FromValues builds the displayable identity from the raw proxy values.
// Empty values fall back to the anonymous placeholders.
func FromValues(email, userID string) Identity {
	id := Identity{Email: anonymousEmail, UserID: anonymousID}
	if email != "" {
		id.Email = strings.TrimPrefix(email, accountPrefix)
	}
	if userID != "" {
		id.UserID = strings.TrimPrefix(userID, accountPrefix)
	}
	return id
}
