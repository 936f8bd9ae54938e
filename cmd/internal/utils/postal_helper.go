package utils

const CEPLength = 8

// CleanCEP normalizes a postal code to its 8 digits form.
// It returns an empty string when the input does not reduce to exactly 8 digits.
func CleanCEP(cep string) string {
	clean := OnlyDigits(cep)
	if len(clean) != CEPLength {
		return ""
	}
	return clean
}

func IsCEPValid(cep string) bool {
	return CleanCEP(cep) != ""
}

// FormatCEP renders a postal code as "01001-000".
func FormatCEP(cep string) string {
	clean := CleanCEP(cep)
	if clean == "" {
		return ""
	}
	return clean[:5] + "-" + clean[5:]
}
