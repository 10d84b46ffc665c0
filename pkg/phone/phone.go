package phone

import "strings"

// Normalize canonicalizes a raw phone number string: whitespace trimmed,
// a single leading plus preserved, every other non-digit stripped.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	plus := strings.HasPrefix(raw, "+")

	var b strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}
	if plus {
		return "+" + digits
	}
	return digits
}

// MatchKey returns the identity key of a phone number: the last 10 digits
// of its digit-only form. Numbers with fewer than 10 digits produce an
// empty key, which matches nothing in the reply history.
func MatchKey(raw string) string {
	digits := strings.TrimPrefix(Normalize(raw), "+")
	if len(digits) < 10 {
		return ""
	}
	return digits[len(digits)-10:]
}
