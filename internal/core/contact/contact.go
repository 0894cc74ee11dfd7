// Package contact validates contact form submissions.
package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validation failures. The error text is the message shown to the user.
var (
	ErrEmptyField   = errors.New("Please fill in all fields.")          //nolint:staticcheck // user-facing sentence
	ErrInvalidEmail = errors.New("Please enter a valid email address.") //nolint:staticcheck // user-facing sentence
)

// ThankYou acknowledges an accepted submission.
const ThankYou = "Thank you for your message! I will get back to you soon."

// emailPattern is a minimal shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a filled-in contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks the three fields. It returns nil when the form passes,
// otherwise criterio.FieldErrors whose causes are ErrEmptyField or
// ErrInvalidEmail. Empty fields are reported before a bad email.
func Validate(name, email, message string) error {
	var errs criterio.FieldErrorsBuilder
	for _, f := range []struct{ field, value string }{
		{"name", name},
		{"email", email},
		{"message", message},
	} {
		if err := required(f.value); err != nil {
			errs = errs.Append(f.field, err)
		}
	}
	if err := errs.ToError(); err != nil {
		return err
	}

	if err := emailShape(email); err != nil {
		return errs.Append("email", err).ToError()
	}
	return nil
}

// Cause returns the first underlying validation failure of err,
// ErrEmptyField or ErrInvalidEmail for errors returned by Validate.
func Cause(err error) error {
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Err
	}
	return err
}

// Validate checks the submission. See Validate.
func (s Submission) Validate() error {
	return Validate(s.Name, s.Email, s.Message)
}

// Reason returns the user-facing reason for a validation error.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	return Cause(err).Error()
}

// Field validators for use by form inputs.

// Required fails with ErrEmptyField when v is blank.
func Required(v string) error {
	return required(v)
}

// Email fails with ErrInvalidEmail when v does not look like an address.
func Email(v string) error {
	if err := required(v); err != nil {
		return err
	}
	return emailShape(v)
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrEmptyField
	}
	return nil
}

func emailShape(v string) error {
	if !emailPattern.MatchString(v) {
		return ErrInvalidEmail
	}
	return nil
}
