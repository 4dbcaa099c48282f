package session

import (
	"regexp"
	"strings"

	"github.com/abhisek/learnpal/internal/api"
)

// FieldErrors carries one message per invalid form field. The form
// stays editable; nothing was sent to the service.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	dobRe   = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// MinPasswordLen is the client-side minimum; the service may be stricter.
const MinPasswordLen = 6

// ValidateRegistration runs the pre-submit checks for signup. An empty
// result means the registration may be sent.
func ValidateRegistration(reg api.Registration, confirmPassword string) map[string]string {
	errs := make(map[string]string)

	switch {
	case reg.Email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(reg.Email):
		errs["email"] = "Please enter a valid email"
	}

	switch {
	case reg.Password == "":
		errs["password"] = "Password is required"
	case len(reg.Password) < MinPasswordLen:
		errs["password"] = "Password must be at least 6 characters"
	}

	switch {
	case confirmPassword == "":
		errs["confirm_password"] = "Please confirm your password"
	case confirmPassword != reg.Password:
		errs["confirm_password"] = "Passwords do not match"
	}

	if reg.TenantName == "" {
		errs["tenant_name"] = "Organization name is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateLearner runs the pre-submit checks for the add-learner form.
// dob is year and month only, for privacy.
func ValidateLearner(name, dob string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case dob == "":
		errs["dob"] = "Date of birth is required"
	case !dobRe.MatchString(dob):
		errs["dob"] = "Please use YYYY-MM format"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
