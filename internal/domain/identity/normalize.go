// Package identity holds the boundary normalizers applied on every write
// path so that emails, visibility values and roles are stored in exactly one
// canonical form.
package identity

import "strings"

const (
	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"

	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// NormalizeEmail lower-cases and trims an email. Emails are the canonical
// identity key across every collection, so this must be applied before any
// lookup or insert.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeVisibility canonicalizes any casing of public/private. Anything
// unrecognized (including empty) falls back to Public, matching the default
// for new artworks.
func NormalizeVisibility(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), VisibilityPrivate) {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// NormalizeRole canonicalizes a role string. The second return is false when
// the input is neither User nor Admin in any casing.
func NormalizeRole(role string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return RoleAdmin, true
	case "user":
		return RoleUser, true
	}
	return "", false
}
