package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/erplite/pkg/validator"
)

// cpfWithCheckDigits appends both check digits to a 9-digit body.
func cpfWithCheckDigits(body string) string {
	digits := make([]int, 0, 11)
	for _, r := range body {
		digits = append(digits, int(r-'0'))
	}
	for len(digits) < 11 {
		sum := 0
		for i, d := range digits {
			sum += d * (len(digits) + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		digits = append(digits, check)
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte('0' + d)
	}
	return string(out)
}

func TestIsValidCPF(t *testing.T) {
	t.Parallel()

	t.Run("known valid numbers", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"52998224725", "529.982.247-25", "11144477735", "111.444.777-35", " 529 982 247 25 "} {
			assert.True(t, validator.IsValidCPF(s), s)
		}
	})

	t.Run("repeated digits are rejected", func(t *testing.T) {
		t.Parallel()
		for d := 0; d <= 9; d++ {
			s := fmt.Sprintf("%011d", 0)
			if d > 0 {
				s = ""
				for range 11 {
					s += fmt.Sprint(d)
				}
			}
			assert.False(t, validator.IsValidCPF(s), s)
		}
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "5299822472", "529982247250", "abc", "529.982.247"} {
			assert.False(t, validator.IsValidCPF(s), s)
		}
	})

	t.Run("wrong check digits are rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidCPF("52998224715"))
		assert.False(t, validator.IsValidCPF("52998224726"))
		assert.False(t, validator.IsValidCPF("111.444.777-36"))
	})

	t.Run("generated numbers are accepted", func(t *testing.T) {
		t.Parallel()
		bodies := []string{"123456789", "987654321", "000000001", "314159265", "271828182", "100000000", "529982247"}
		for _, body := range bodies {
			cpf := cpfWithCheckDigits(body)
			require.Len(t, cpf, 11)
			assert.True(t, validator.IsValidCPF(cpf), cpf)
		}
	})

	t.Run("single digit changes are detected", func(t *testing.T) {
		t.Parallel()
		cpf := cpfWithCheckDigits("314159265")
		for pos := range 11 {
			for delta := 1; delta <= 9; delta++ {
				b := []byte(cpf)
				b[pos] = byte('0' + (int(b[pos]-'0')+delta)%10)
				mutated := string(b)

				// A mutation may land on another valid combination; only those may pass.
				expected := cpfWithCheckDigits(mutated[:9]) == mutated
				assert.Equal(t, expected, validator.IsValidCPF(mutated), mutated)
			}
		}
	})

	t.Run("check digit changes are always detected", func(t *testing.T) {
		t.Parallel()
		cpf := cpfWithCheckDigits("271828182")
		for _, pos := range []int{9, 10} {
			for delta := 1; delta <= 9; delta++ {
				b := []byte(cpf)
				b[pos] = byte('0' + (int(b[pos]-'0')+delta)%10)
				assert.False(t, validator.IsValidCPF(string(b)), string(b))
			}
		}
	})
}

func TestIsValidCNPJ(t *testing.T) {
	t.Parallel()

	t.Run("known valid numbers", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"11222333000181", "11.222.333/0001-81", "11.444.777/0001-61"} {
			assert.True(t, validator.IsValidCNPJ(s), s)
		}
	})

	t.Run("wrong check digits are rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidCNPJ("11222333000180"))
		assert.False(t, validator.IsValidCNPJ("11222333000191"))
		assert.False(t, validator.IsValidCNPJ("11.444.777/0001-62"))
	})

	t.Run("repeated digits are rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidCNPJ("00000000000000"))
		assert.False(t, validator.IsValidCNPJ("11111111111111"))
		assert.False(t, validator.IsValidCNPJ("99.999.999/9999-99"))
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidCNPJ(""))
		assert.False(t, validator.IsValidCNPJ("1122233300018"))
		assert.False(t, validator.IsValidCNPJ("112223330001811"))
		assert.False(t, validator.IsValidCNPJ("52998224725"))
	})
}

func TestFormatTaxIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "529.982.247-25", validator.FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", validator.FormatCPF("529 982 247 25"))
	assert.Equal(t, "123", validator.FormatCPF("123"))

	assert.Equal(t, "11.222.333/0001-81", validator.FormatCNPJ("11222333000181"))
	assert.Equal(t, "11222333000180", validator.FormatCNPJ("11222333000180"))
}
