package validator

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPart excludes Unicode spaces and separators as well as ASCII whitespace.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var (
	emailRegex   = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	decimalRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Schemes whose URLs are meaningless without an authority.
var hostRequiredSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// IsValidEmail reports whether s looks like local@domain.tld.
// No further RFC 5322 compliance is attempted.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s holds a Brazilian phone number with area code:
// 10 digits for landlines, 11 for mobiles. Punctuation is ignored.
func IsValidPhone(s string) bool {
	n := len(onlyDigits(s))
	return n == 10 || n == 11
}

// IsRequired reports whether v carries a value. Nil values and nil pointers, maps
// and slices are absent; strings must be non-blank after trimming.
func IsRequired(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case *string:
		return val != nil && strings.TrimSpace(*val) != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// HasMinLength compares the character count of the raw, untrimmed string.
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// HasMaxLength compares the character count of the raw, untrimmed string.
func HasMaxLength(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// IsNumeric reports whether s is non-empty and made of ASCII digits only.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsDecimal accepts digits optionally followed by a dot and more digits ("10", "10.50").
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsValidURL reports whether s parses as an absolute URL.
func IsValidURL(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	if hostRequiredSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}

// onlyDigits drops every byte that is not an ASCII digit.
func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
