package core

import (
	"testing"
)

func TestUserOrgSuffix(t *testing.T) {
	cases := map[string]string{
		"en":    "'s workspace",
		"zh":    "的工作区",
		"zh-CN": "的工作区",
		"de":    "'s workspace",
		"":      "'s workspace",
	}

	for locale, want := range cases {
		got := userOrgSuffix(locale)
		if got != want {
			t.Errorf("locale %q: got %q, wanted %q", locale, got, want)
		}
	}
}
