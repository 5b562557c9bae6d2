package ui

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minNameLength    = 2
	minMessageLength = 10
)

// contactErrors holds one message per invalid field; empty means valid.
type contactErrors struct {
	Name    string
	Email   string
	Message string
}

func (e contactErrors) Valid() bool {
	return e.Name == "" && e.Email == "" && e.Message == ""
}

// validateContact checks the three contact fields independently.
func validateContact(name, email, message string) contactErrors {
	var errs contactErrors

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs.Name = "Name is required"
	case utf8.RuneCountInString(name) < minNameLength:
		errs.Name = "Name must be at least 2 characters"
	}

	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs.Email = "Email is required"
	case !emailRe.MatchString(email):
		errs.Email = "Please enter a valid email address"
	}

	message = strings.TrimSpace(message)
	switch {
	case message == "":
		errs.Message = "Message is required"
	case utf8.RuneCountInString(message) < minMessageLength:
		errs.Message = "Message must be at least 10 characters"
	}

	return errs
}
