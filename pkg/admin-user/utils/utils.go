package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

const (
	PASSWORD_MIN_LEN = 6
	PASSWORD_MAX_LEN = 512
)

var usernameRule = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// SanitizeUsername normalizes the username for case-insensitive matching
// against the stored lowercase value.
func SanitizeUsername(username string) string {
	username = strings.ToLower(username)
	username = strings.Trim(username, " \n\r")
	return username
}

// CheckUsernameFormat to check if the username fulfills the account rules
func CheckUsernameFormat(username string) bool {
	return usernameRule.MatchString(username)
}

// CheckEmailFormat to check if input string is a correct email address
func CheckEmailFormat(email string) bool {
	if len(email) > 254 {
		return false
	}
	_, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// additional regex check for correct email format
	emailRule := regexp.MustCompile(`^[a-zA-Z0-9._%+'-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRule.MatchString(email)
}

func SanitizeEmail(email string) string {
	email = strings.ToLower(email)
	email = strings.Trim(email, " \n\r")
	return email
}

// CheckPasswordFormat to check if password fulfills the password policy
func CheckPasswordFormat(password string) bool {
	pl := len(password)
	return pl >= PASSWORD_MIN_LEN && pl <= PASSWORD_MAX_LEN
}
