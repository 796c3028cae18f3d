package formstate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance supplying the email and
// length checks.
var validate = validator.New()

// PasswordFieldKey is the field key a passwordConfirmation rule compares
// against. If no field with this key exists, confirmation never matches.
const PasswordFieldKey = "password"

// Built-in validation messages.
const (
	msgEmailRequired  = "Please provide an email"
	msgEmailInvalid   = "Please provide a valid email"
	msgPasswordLength = "Please provide a password of at least 6 characters"
	msgPasswordsDiff  = "Passwords do not match"
	msgFirstNameEmpty = "Please provide a first name."
	msgFirstNameBad   = "First name must start with a letter and contain only letters, spaces, apostrophes, periods, and hyphens"
	msgLastNameEmpty  = "Please provide a last name."
	msgLastNameBad    = "Last name must start with a letter and contain only letters, spaces, apostrophes, commas, periods, and hyphens"
)

// Name patterns: a leading letter, then letters plus a small punctuation
// set. Last names additionally allow commas (suffixes like "Jr., III").
var (
	firstNameRx = regexp.MustCompile(`^[A-Za-z][A-Za-z '.-]*$`)
	lastNameRx  = regexp.MustCompile(`^[A-Za-z][A-Za-z '.,-]*$`)
)

// ValidatorFunc checks a single field against the whole field store and
// returns a user-facing message, or the empty string when valid. The store
// is read-only; only the passwordConfirmation rule looks beyond its own
// field.
type ValidatorFunc func(field Field, fields Fields) string

// validators maps each validation type to its check. Types absent from the
// map (TypeNone, out-of-range values) are always valid.
var validators = map[ValidationType]ValidatorFunc{
	TypeEmail:                validateEmail,
	TypePassword:             validatePassword,
	TypePasswordConfirmation: validatePasswordConfirmation,
	TypeFirstName:            validateFirstName,
	TypeLastName:             validateLastName,
}

// ValidateField runs the field's declared check and returns the resulting
// error message, empty meaning valid. Optional fields are always valid.
func ValidateField(field Field, fields Fields) string {
	if field.Validation.Optional {
		return ""
	}
	check, ok := validators[field.Validation.Type]
	if !ok {
		return ""
	}
	return check(field, fields)
}

func validateEmail(field Field, _ Fields) string {
	if field.Value == "" {
		return msgEmailRequired
	}
	if validate.Var(field.Value, "email") != nil {
		return field.Validation.orDefault(msgEmailInvalid)
	}
	return ""
}

func validatePassword(field Field, _ Fields) string {
	if validate.Var(field.Value, "min=6,max=128") != nil {
		return field.Validation.orDefault(msgPasswordLength)
	}
	return ""
}

func validatePasswordConfirmation(field Field, fields Fields) string {
	sibling, ok := fields[PasswordFieldKey]
	if !ok || field.Value != sibling.Value {
		return field.Validation.orDefault(msgPasswordsDiff)
	}
	return ""
}

func validateFirstName(field Field, _ Fields) string {
	if field.Value == "" {
		return field.Validation.orDefault(msgFirstNameEmpty)
	}
	if !firstNameRx.MatchString(field.Value) {
		return field.Validation.orDefault(msgFirstNameBad)
	}
	return ""
}

func validateLastName(field Field, _ Fields) string {
	if field.Value == "" {
		return field.Validation.orDefault(msgLastNameEmpty)
	}
	if !lastNameRx.MatchString(field.Value) {
		return field.Validation.orDefault(msgLastNameBad)
	}
	return ""
}

// orDefault returns the custom error when set, otherwise the built-in
// message.
func (v Validation) orDefault(msg string) string {
	if v.CustomError != "" {
		return v.CustomError
	}
	return msg
}
