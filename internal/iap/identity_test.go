package iap

import "testing"

func TestFromValues(t *testing.T) {
	cases := []struct {
		name       string
		email, uid string
		wantEmail  string
		wantUID    string
	}{
		{
			name:      "prefixed values stripped",
			email:     "accounts.google.com:user@example.com",
			uid:       "accounts.google.com:1234567890",
			wantEmail: "user@example.com",
			wantUID:   "1234567890",
		},
		{
			name:      "unprefixed values pass through",
			email:     "user@example.com",
			uid:       "1234567890",
			wantEmail: "user@example.com",
			wantUID:   "1234567890",
		},
		{
			name:      "absent values render placeholders",
			wantEmail: "Not Authenticated",
			wantUID:   "N/A",
		},
		{
			name:      "prefix only stripped at the front",
			email:     "user@example.com:accounts.google.com:",
			wantEmail: "user@example.com:accounts.google.com:",
			wantUID:   "N/A",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromValues(tc.email, tc.uid)
			if got.Email != tc.wantEmail {
				t.Errorf("Email = %q, want %q", got.Email, tc.wantEmail)
			}
			if got.UserID != tc.wantUID {
				t.Errorf("UserID = %q, want %q", got.UserID, tc.wantUID)
			}
		})
	}
}
