package validator

const (
	cpfLength  = 11
	cnpjLength = 14
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCPF validates a Brazilian individual taxpayer number (11 digits, two check digits).
// Formatting punctuation such as "529.982.247-25" is ignored.
func IsValidCPF(s string) bool {
	d := digitsOf(s)
	if len(d) != cpfLength || allSame(d) {
		return false
	}

	if cpfCheckDigit(d[:9]) != d[9] {
		return false
	}
	return cpfCheckDigit(d[:10]) == d[10]
}

// IsValidCNPJ validates a Brazilian company taxpayer number (14 digits, two check digits).
// Formatting punctuation such as "11.222.333/0001-81" is ignored.
func IsValidCNPJ(s string) bool {
	d := digitsOf(s)
	if len(d) != cnpjLength || allSame(d) {
		return false
	}

	if cnpjCheckDigit(d[:12], cnpjFirstWeights) != d[12] {
		return false
	}
	return cnpjCheckDigit(d[:13], cnpjSecondWeights) == d[13]
}

// FormatCPF renders a valid CPF as 000.000.000-00. Invalid input is returned unchanged.
func FormatCPF(s string) string {
	if !IsValidCPF(s) {
		return s
	}
	d := onlyDigits(s)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders a valid CNPJ as 00.000.000/0000-00. Invalid input is returned unchanged.
func FormatCNPJ(s string) string {
	if !IsValidCNPJ(s) {
		return s
	}
	d := onlyDigits(s)
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// cpfCheckDigit weighs body digits from len(body)+1 down to 2.
func cpfCheckDigit(body []int) int {
	sum := 0
	weight := len(body) + 1
	for i, v := range body {
		sum += v * (weight - i)
	}
	d := (sum * 10) % 11
	if d == 10 {
		return 0
	}
	return d
}

func cnpjCheckDigit(body []int, weights []int) int {
	sum := 0
	for i, v := range body {
		sum += v * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func digitsOf(s string) []int {
	digits := onlyDigits(s)
	out := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		out[i] = int(digits[i] - '0')
	}
	return out
}

func allSame(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
