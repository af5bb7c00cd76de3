package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/erplite/pkg/validator"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@b.co",
		"compras@fornecedor.com.br",
		"user+tag@example.org",
		"x@y.z",
	}
	for _, s := range valid {
		assert.True(t, validator.IsValidEmail(s), s)
	}

	invalid := []string{
		"",
		"a@b",
		"a.b.com",
		"@b.co",
		"a@.co",
		"a@b.",
		"a b@c.co",
		"a@@b.co",
		"a@b.co ",
		"a\u00a0b@c.d",
		"a@b\u2028c.d",
		"a@b.c\u3000",
		"\ufeffa@b.co",
		"a\vb@c.d",
	}
	for _, s := range invalid {
		assert.False(t, validator.IsValidEmail(s), s)
	}
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidPhone("1133334444"))
	assert.True(t, validator.IsValidPhone("(11) 3333-4444"))
	assert.True(t, validator.IsValidPhone("(11) 98765-4321"))
	assert.True(t, validator.IsValidPhone("11 9 8765 4321"))

	assert.False(t, validator.IsValidPhone(""))
	assert.False(t, validator.IsValidPhone("3333-4444"))
	assert.False(t, validator.IsValidPhone("+55 (11) 98765-4321"))
	assert.False(t, validator.IsValidPhone("phone"))
}

func TestIsRequired(t *testing.T) {
	t.Parallel()

	empty := ""
	blank := "   "
	filled := "x"
	var nilPtr *int
	var nilSlice []string

	assert.False(t, validator.IsRequired(nil))
	assert.False(t, validator.IsRequired(""))
	assert.False(t, validator.IsRequired(" \t\n"))
	assert.False(t, validator.IsRequired(&empty))
	assert.False(t, validator.IsRequired(&blank))
	assert.False(t, validator.IsRequired((*string)(nil)))
	assert.False(t, validator.IsRequired(nilPtr))
	assert.False(t, validator.IsRequired(nilSlice))

	assert.True(t, validator.IsRequired("x"))
	assert.True(t, validator.IsRequired(&filled))
	assert.True(t, validator.IsRequired(0))
	assert.True(t, validator.IsRequired(false))
	assert.True(t, validator.IsRequired([]string{}))
}

func TestLengthBounds(t *testing.T) {
	t.Parallel()

	t.Run("min length counts raw characters", func(t *testing.T) {
		assert.True(t, validator.HasMinLength("abc", 3))
		assert.False(t, validator.HasMinLength("ab", 3))
		assert.True(t, validator.HasMinLength("  a", 3), "whitespace is not trimmed")
		assert.True(t, validator.HasMinLength("São", 3))
		assert.True(t, validator.HasMinLength("", 0))
	})

	t.Run("max length counts raw characters", func(t *testing.T) {
		assert.True(t, validator.HasMaxLength("abc", 3))
		assert.False(t, validator.HasMaxLength("abcd", 3))
		assert.False(t, validator.HasMaxLength("ab  ", 3))
		assert.True(t, validator.HasMaxLength("ção", 3))
	})
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsNumeric("0"))
	assert.True(t, validator.IsNumeric("0123456789"))

	assert.False(t, validator.IsNumeric(""))
	assert.False(t, validator.IsNumeric("12.5"))
	assert.False(t, validator.IsNumeric("-1"))
	assert.False(t, validator.IsNumeric(" 1"))
	assert.False(t, validator.IsNumeric("١٢"))
}

func TestIsDecimal(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0", "10", "10.5", "0.99", "123.456"} {
		assert.True(t, validator.IsDecimal(s), s)
	}
	for _, s := range []string{"", ".5", "5.", "1,5", "1.2.3", "-1", "1e3", " 1"} {
		assert.False(t, validator.IsDecimal(s), s)
	}
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com",
		"http://localhost:8080/api/products?page=2",
		"ftp://files.example.com/catalog.csv",
		"mailto:compras@example.com",
		"file:///tmp/report.pdf",
	}
	for _, s := range valid {
		assert.True(t, validator.IsValidURL(s), s)
	}

	invalid := []string{
		"",
		"example.com",
		"/relative/path",
		"http://",
		"https:///path",
		"http://exa mple.com",
		" https://example.com",
		"://missing-scheme",
	}
	for _, s := range invalid {
		assert.False(t, validator.IsValidURL(s), s)
	}
}
