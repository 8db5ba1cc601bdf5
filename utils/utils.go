package utils

import (
	"context"
	"net/url"
	"strings"
)

type contextKey string

const (
	refererDomainKey contextKey = "referer_domain"
	localeKey        contextKey = "locale"
)

//WithRefererDomain attaches the caller referer domain to the context
func WithRefererDomain(ctx context.Context, domain string) context.Context {
	return context.WithValue(ctx, refererDomainKey, domain)
}

//RefererDomainFromContext gives the caller referer domain, empty when not set
func RefererDomainFromContext(ctx context.Context) string {
	domain, _ := ctx.Value(refererDomainKey).(string)
	return domain
}

//WithLocale attaches the caller locale to the context
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

//LocaleFromContext gives the caller locale, empty when not set
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeKey).(string)
	return locale
}

//RefererDomain extracts the host part of a referer URL.
//A bare host without scheme is accepted as well.
func RefererDomain(referer string) string {
	if len(referer) == 0 {
		return ""
	}

	parsed, err := url.Parse(referer)
	if err == nil && len(parsed.Host) > 0 {
		return parsed.Hostname()
	}

	//no scheme - take everything up to the first slash, drop a port if present
	host := referer
	if index := strings.Index(host, "/"); index != -1 {
		host = host[:index]
	}
	if index := strings.Index(host, ":"); index != -1 {
		host = host[:index]
	}
	return host
}
