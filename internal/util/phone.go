// Package util holds small shared helpers.
package util

import (
	"strings"
)

const minE164Length = 8

// NormalizePhone normalizes a raw phone number to E.164 format.
//
// Accepts inputs like "+919385426550", "9385426550" (national, prefixed
// with defaultCountryCode), or "+1 (555) 111-2222". Returns the empty
// string when the number is missing or invalid.
func NormalizePhone(raw, defaultCountryCode string) string {
	cleaned := stripFormatting(raw)
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, "+") {
		digits := "+" + keepDigits(cleaned)
		if len(digits) < minE164Length {
			return ""
		}

		return digits
	}

	digits := keepDigits(cleaned)
	if digits == "" {
		return ""
	}

	// Drop trunk-prefix zeros typed before a national number.
	if trimmed := strings.TrimLeft(digits, "0"); trimmed != "" {
		digits = trimmed
	}

	code := defaultCountryCode
	if code == "" {
		code = "+1"
	}
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}

	// The user may already have typed the country code without '+'.
	if strings.HasPrefix(digits, strings.TrimPrefix(code, "+")) {
		return "+" + digits
	}

	return code + digits
}

func stripFormatting(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case ' ', '-', '(', ')', '\t':
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
