package identity

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Ana@X.com":        "ana@x.com",
		"  BOB@Mail.COM  ": "bob@mail.com",
		"":                 "",
		"   ":              "",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeVisibility(t *testing.T) {
	cases := map[string]string{
		"public":   VisibilityPublic,
		"PUBLIC":   VisibilityPublic,
		"Private":  VisibilityPrivate,
		"pRiVaTe":  VisibilityPrivate,
		" private": VisibilityPrivate,
		"":         VisibilityPublic,
		"hidden":   VisibilityPublic,
	}
	for in, want := range cases {
		if got := NormalizeVisibility(in); got != want {
			t.Errorf("NormalizeVisibility(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	t.Run("valid roles in any casing", func(t *testing.T) {
		for in, want := range map[string]string{
			"admin": RoleAdmin,
			"ADMIN": RoleAdmin,
			"Admin": RoleAdmin,
			"user":  RoleUser,
			"User":  RoleUser,
		} {
			got, ok := NormalizeRole(in)
			if !ok || got != want {
				t.Errorf("NormalizeRole(%q) = %q, %v; want %q, true", in, got, ok, want)
			}
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, in := range []string{"", "moderator", "root", "adminn"} {
			if _, ok := NormalizeRole(in); ok {
				t.Errorf("NormalizeRole(%q) accepted, want rejection", in)
			}
		}
	})
}
