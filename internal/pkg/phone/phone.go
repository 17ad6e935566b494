package phone

import "strings"

// maxDigits is the E.164 upper bound.
const maxDigits = 15

// Normalize strips a raw phone string down to digits for storage.
// Russian numbers are canonicalized to a leading 7; display code can add "+".
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) == 11 && digits[0] == '8' {
		return "7" + digits[1:]
	}
	if len(digits) == 10 && digits[0] != '7' && digits[0] != '9' {
		return "7" + digits
	}
	if len(digits) > maxDigits {
		return digits[:maxDigits]
	}
	return digits
}

// IsValid reports whether a normalized phone looks usable as a contact.
func IsValid(normalized string) bool {
	if len(normalized) < 10 {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
