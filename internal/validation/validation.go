// Package validation holds the input rules shared by the write paths.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/barterup-bff/internal/models"
)

// Error is a user-facing input validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf returns a validation error with the given message.
func Errorf(message string) error {
	return &Error{Message: message}
}

// Message extracts the user-facing message of a validation error.
func Message(err error) (string, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Message, true
	}
	return "", false
}

// Date layouts accepted for birth dates. Day and month may omit the leading zero.
const (
	LayoutISO = "2006-1-2"
	LayoutDMY = "2/1/2006"
	LayoutMDY = "1/2/2006"
)

// StorageDateLayout is the layout dates are sent to the BaaS in.
const StorageDateLayout = "2006-01-02"

const (
	minAgeYears   = 13
	maxAgeYears   = 120
	maxSkillChars = 100
	minBioChars   = 10
	maxBioChars   = 1000
)

var emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether email looks like local@domain.tld.
func IsEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ParseDate tries each layout in order and returns the first match.
func ParseDate(value string, layouts ...string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range layouts {
		d, err := time.Parse(layout, value)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("no date layouts given")
	}
	return time.Time{}, lastErr
}

// CheckAge requires dob to fall between 120 and 13 years (of 365 days) before now, inclusive.
func CheckAge(dob, now time.Time) error {
	today := truncateDay(now)
	oldest := today.AddDate(0, 0, -365*maxAgeYears)
	youngest := today.AddDate(0, 0, -365*minAgeYears)

	d := truncateDay(dob)
	if d.Before(oldest) || d.After(youngest) {
		return Errorf("Age must be between 13 and 120 years")
	}
	return nil
}

// CheckSkillLength bounds the length of both skill strings.
func CheckSkillLength(primary, toLearn string) error {
	if utf8.RuneCountInString(primary) > maxSkillChars || utf8.RuneCountInString(toLearn) > maxSkillChars {
		return Errorf("Skills must be less than 100 characters each")
	}
	return nil
}

// CheckSkills enforces the allow-list and that the two skills differ.
func CheckSkills(primary, toLearn string) error {
	if !models.IsValidSkill(primary) {
		return Errorf("Invalid primary skill. Please select from available options.")
	}
	if !models.IsValidSkill(toLearn) {
		return Errorf("Invalid skill to learn. Please select from available options.")
	}
	if primary == toLearn {
		return Errorf("Primary skill and skill to learn cannot be the same.")
	}
	return nil
}

// CheckBio bounds the bio between 10 and 1000 characters.
func CheckBio(bio string) error {
	n := utf8.RuneCountInString(bio)
	switch {
	case strings.TrimSpace(bio) == "":
		return Errorf("Bio cannot be empty")
	case n < minBioChars:
		return Errorf("Bio must be at least 10 characters long")
	case n > maxBioChars:
		return Errorf("Bio must be less than 1000 characters")
	}
	return nil
}

// Profile applies every profile rule. A nil dob skips the age check.
func Profile(dob *time.Time, primary, toLearn, bio string, now time.Time) error {
	if dob != nil {
		if err := CheckAge(*dob, now); err != nil {
			return err
		}
	}
	if err := CheckSkills(primary, toLearn); err != nil {
		return err
	}
	return CheckBio(bio)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
