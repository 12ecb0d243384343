package models

import "strings"

// ValidEmail does a basic shape check, not full RFC validation.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// ValidPhone accepts digits with optional spaces, dashes and a leading +.
func ValidPhone(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
	if len(clean) < 10 {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
