package pkg

import "strings"

// EmailName derives a display name from an email address when the user never
// set one: the local part with its first letter upper-cased.
func EmailName(email string) string {
	if email == "" {
		return ""
	}
	namePart := strings.SplitN(email, "@", 2)[0]
	if namePart == "" {
		return email
	}
	return strings.ToUpper(namePart[:1]) + namePart[1:]
}
