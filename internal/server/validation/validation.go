// Package validation implements the structural rules for registration
// credentials. Checks are pure functions so they can run before any
// hashing or database work and be tested in isolation.
package validation

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	lowerRe     = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`\d`)
	specialRe   = regexp.MustCompile(`[@$!%*?&]`)
	minEmailLen = 8
	minPassLen  = 8
)

// Error carries the full list of violation messages for a rejected
// candidate. It satisfies the error interface so services can return it
// directly.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Uniqueness of accounts is defined over this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckCredentials validates a registration candidate and returns every
// violation message, in schema order (email first, then password).
//
// The email yields at most one message: required, then format, then length,
// first failure wins. An absent password yields only the required message;
// a present password reports each unmet rule separately.
func CheckCredentials(email, password string) []string {
	var messages []string

	if m := checkEmail(email); m != "" {
		messages = append(messages, m)
	}
	messages = append(messages, checkPassword(password)...)

	return messages
}

func checkEmail(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case !emailRe.MatchString(email):
		return "Invalid email format"
	case len(email) < minEmailLen:
		return "Email must be at least 8 characters long"
	}
	return ""
}

func checkPassword(password string) []string {
	if password == "" {
		return []string{"Password is required"}
	}

	var messages []string
	if len(password) < minPassLen {
		messages = append(messages, "Password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one special character (@$!%*?&)")
	}
	return messages
}
