package validator

import (
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
	PasswordMinLength = 12
	PasswordMinDigits = 2
	TwoFactorDigits   = 6

	// PasswordSpecialChars lists the symbols that satisfy the special character class.
	PasswordSpecialChars = "!\"£$%^&*()_+-={}[]~@:;'#<>?/.,|`"
)

// IsUsername reports whether s is 3 to 32 characters drawn from [A-Za-z0-9_].
func IsUsername(s string) bool {
	if len(s) < UsernameMinLength || len(s) > UsernameMaxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

// IsPassword reports whether s has at least 12 characters including one upper case
// letter, one lower case letter, two digits and one special character.
func IsPassword(s string) bool {
	if utf8.RuneCountInString(s) < PasswordMinLength {
		return false
	}

	var upper, lower, digits, special int
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(PasswordSpecialChars, r):
			special++
		}
	}

	return upper > 0 && lower > 0 && digits >= PasswordMinDigits && special > 0
}

// IsTwoFactorCode reports whether s is exactly six decimal digits once spaces are removed.
func IsTwoFactorCode(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != TwoFactorDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func ValidUsername(field, value string) Rule {
	return rule(field, "username", "must be 3-32 letters, digits or underscores", func() bool { return IsUsername(value) })
}

func ValidPassword(field, value string) Rule {
	return rule(field, "password", "must be at least 12 characters with upper and lower case letters, two digits and a symbol", func() bool { return IsPassword(value) })
}

func ValidTwoFactorCode(field, value string) Rule {
	return rule(field, "two_factor_code", "must be a 6 digit code", func() bool { return IsTwoFactorCode(value) })
}
