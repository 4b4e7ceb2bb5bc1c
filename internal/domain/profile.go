package domain

import "net/mail"

// Profile identifies the owner of the document.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"createdAt"`
}

// ProfilePatch carries the settings-tab edits to a profile.
type ProfilePatch struct {
	Username *string
	Email    *string
}

func (pp ProfilePatch) Apply(p Profile) Profile {
	p.Username = StrOr(p.Username, pp.Username)
	p.Email = StrOr(p.Email, pp.Email)
	return p
}

// ValidEmail reports whether s is a bare email address such as
// jane@example.com. Display-name forms like "Jane <jane@example.com>" are
// rejected.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
