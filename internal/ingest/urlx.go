package ingest

import (
	"net/url"
	"strings"
)

// IsSupportedURL accepts absolute http(s) URLs only.
func IsSupportedURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return u.Host != "" && (scheme == "http" || scheme == "https")
}

// CanonicalizeURL lower-cases scheme/host, drops fragments and strips common
// tracking params so the same posting never lands twice under cosmetically
// different URLs.
func CanonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "mc_cid" || lk == "mc_eid" ||
			lk == "mkt_tok" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// ExtractDomain returns the host without a leading www, or "unknown".
func ExtractDomain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "unknown"
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// ExtractCompany guesses the company slug from ATS URL layouts: greenhouse
// puts it in the first path segment, gupy and most career sites in the first
// host label.
func ExtractCompany(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "unknown"
	}
	host := strings.ToLower(u.Hostname())

	if strings.Contains(host, "greenhouse") {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0]
		}
	}

	if label, _, found := strings.Cut(host, "."); found && label != "" {
		return label
	}
	return host
}

// ExtractSource tags the ATS a URL came from.
func ExtractSource(raw string) string {
	host := ExtractDomain(raw)
	switch {
	case strings.Contains(host, "gupy"):
		return "gupy"
	case strings.Contains(host, "greenhouse"):
		return "greenhouse"
	case strings.Contains(host, "lever"):
		return "lever"
	case strings.Contains(host, "workday"):
		return "workday"
	default:
		return "site"
	}
}
