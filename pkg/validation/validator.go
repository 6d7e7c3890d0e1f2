package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// ValidateStringLength validates the length of a string
func ValidateStringLength(value string, minLength, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}
	return nil
}

// ValidateEmail validates an email address
func ValidateEmail(value string) error {
	if err := ValidateStringLength(value, 3, 200); err != nil {
		return err
	}
	if !emailRegex.MatchString(value) {
		return fmt.Errorf("is not a valid email address")
	}
	return nil
}
