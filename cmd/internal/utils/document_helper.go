package utils

const CPFLength = 11

// CleanCPF removes punctuation from a CPF, "123.456.789-09" becomes "12345678909".
func CleanCPF(cpf string) string {
	return OnlyDigits(cpf)
}

// IsCPFValid normalizes the given CPF and checks its length and both verifying digits.
func IsCPFValid(cpf string) bool {
	cpf = CleanCPF(cpf)
	if len(cpf) != CPFLength {
		return false
	}

	// Reject known invalid patterns that trick the math algorithm
	if hasAllSameDigits(cpf) {
		return false
	}
	return validateCPFDigits(cpf)
}

func hasAllSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func validateCPFDigits(cpf string) bool {
	digit1 := calculateCPFDigit(cpf[:9])
	digit2 := calculateCPFDigit(cpf[:10])

	actualDigit1 := int(cpf[9] - '0')
	actualDigit2 := int(cpf[10] - '0')

	return digit1 == actualDigit1 && digit2 == actualDigit2
}

// calculateCPFDigit weights the base from len(base)+1 down to 2.
func calculateCPFDigit(base string) int {
	sum := 0
	weight := len(base) + 1
	for i := 0; i < len(base); i++ {
		digit := int(base[i] - '0')
		sum += digit * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
