// Package validation holds the field rules applied to registration input
// that is not bound through gin (spreadsheet rows, service calls).
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// PasswordMinLength applies to self-registered colleges
	PasswordMinLength = 6

	NameMinLength = 2
	NameMaxLength = 255

	// Semesters run from 1 to MaxSemester
	MaxSemester = 10
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

	// phone numbers are stored as bare digits
	phonePattern = regexp.MustCompile(`^\d{7,15}$`)
)

// rule is a single check on a trimmed value; optional rules accept ""
type rule struct {
	optional bool
	min, max int
	pattern  *regexp.Regexp
}

func (r rule) check(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return r.optional
	}

	n := utf8.RuneCountInString(value)
	if r.min > 0 && n < r.min {
		return false
	}
	if r.max > 0 && n > r.max {
		return false
	}
	return r.pattern == nil || r.pattern.MatchString(value)
}

var (
	emailRule = rule{pattern: emailPattern}
	phoneRule = rule{optional: true, pattern: phonePattern}
	nameRule  = rule{min: NameMinLength, max: NameMaxLength}
)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool { return emailRule.check(s) }

// ValidPhone reports whether s is empty or a bare phone number
func ValidPhone(s string) bool { return phoneRule.check(s) }

// ValidName reports whether s is a usable person or college name
func ValidName(s string) bool { return nameRule.check(s) }

// ValidSemester reports whether n is a known semester number
func ValidSemester(n int) bool {
	return n >= 1 && n <= MaxSemester
}
