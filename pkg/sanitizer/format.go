package sanitizer

import (
	"net/url"
	"strings"
)

// Text is the default pipeline for free-text catalog fields such as names and cities.
var Text = Compose(RemoveControlChars, StripHTML, SingleLine)

// NormalizeEmail trims and lower-cases an address and collapses repeated dots in
// the local part. Values without exactly one @ are only trimmed and lower-cased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps the digits of a phone number, area code included.
func NormalizePhone(phone string) string {
	return KeepDigits(phone)
}

// NormalizeTaxID strips the punctuation of a CPF or CNPJ.
func NormalizeTaxID(doc string) string {
	return KeepDigits(doc)
}

// NormalizeSKU upper-cases a stock keeping unit and removes inner whitespace.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(whitespaceRegex.ReplaceAllString(sku, ""))
}

// NormalizeURL defaults the scheme to https, lower-cases the host and drops a bare
// trailing slash. Unparseable input is returned trimmed.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}
