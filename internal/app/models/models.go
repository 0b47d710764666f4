package models

// EmailStatus reports whether an email matched the school email grammar
type EmailStatus string

const (
	EmailValid   EmailStatus = "VALID"
	EmailInvalid EmailStatus = "INVALID"
)

// EmailStatusOf maps a validity flag onto EmailStatus
func EmailStatusOf(valid bool) EmailStatus {
	if valid {
		return EmailValid
	}
	return EmailInvalid
}

// PasswordStatus reports whether a password satisfied the strength rule
type PasswordStatus string

const (
	PasswordStrong PasswordStatus = "STRONG"
	PasswordWeak   PasswordStatus = "WEAK"
)

// PasswordStatusOf maps a strength flag onto PasswordStatus
func PasswordStatusOf(strong bool) PasswordStatus {
	if strong {
		return PasswordStrong
	}
	return PasswordWeak
}
