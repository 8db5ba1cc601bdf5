package utils

import (
	"context"
	"testing"
)

func TestRefererDomain(t *testing.T) {
	cases := map[string]string{
		"https://acme.example.com/apps/view": "acme.example.com",
		"http://acme.example.com:8080/":      "acme.example.com",
		"acme.example.com/apps":              "acme.example.com",
		"acme.example.com:8080":              "acme.example.com",
		"":                                   "",
	}

	for referer, want := range cases {
		got := RefererDomain(referer)
		if got != want {
			t.Errorf("referer %q: got %q, wanted %q", referer, got, want)
		}
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	if RefererDomainFromContext(ctx) != "" {
		t.Error("empty context should give empty domain")
	}
	if LocaleFromContext(ctx) != "" {
		t.Error("empty context should give empty locale")
	}

	ctx = WithRefererDomain(ctx, "acme.example.com")
	ctx = WithLocale(ctx, "zh")

	if RefererDomainFromContext(ctx) != "acme.example.com" {
		t.Error("domain is different")
	}
	if LocaleFromContext(ctx) != "zh" {
		t.Error("locale is different")
	}
}
