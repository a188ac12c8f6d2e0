package forms

import "unicode"

const licenseNumberLength = 8

// LicenseNumberError returns the reason a license number is malformed, or
// "" when it is valid: three uppercase Latin letters followed by five digits.
func LicenseNumberError(value string) string {
	runes := []rune(value)
	if len(runes) != licenseNumberLength {
		return "License number must be exactly 8 characters long"
	}
	for _, r := range runes[:3] {
		if r < 'A' || r > 'Z' {
			return "First 3 characters must be uppercase letters"
		}
	}
	for _, r := range runes[3:] {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return "Last 5 characters must be digits"
		}
	}
	return ""
}
