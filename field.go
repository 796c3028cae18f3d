package formstate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValidationType selects which built-in check applies to a field.
type ValidationType int

const (
	// TypeNone applies no validation; the field is always valid.
	TypeNone ValidationType = iota

	// TypeEmail requires a non-empty, well-formed email address.
	TypeEmail

	// TypePassword requires a value between 6 and 128 characters.
	TypePassword

	// TypePasswordConfirmation requires the value to equal the current
	// value of the sibling field keyed "password".
	TypePasswordConfirmation

	// TypeFirstName requires a value starting with a letter, followed by
	// letters, spaces, apostrophes, periods, or hyphens.
	TypeFirstName

	// TypeLastName is TypeFirstName with commas additionally allowed
	// after the leading letter.
	TypeLastName
)

// String returns the string representation of the validation type.
func (t ValidationType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeEmail:
		return "email"
	case TypePassword:
		return "password"
	case TypePasswordConfirmation:
		return "passwordConfirmation"
	case TypeFirstName:
		return "firstName"
	case TypeLastName:
		return "lastName"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so validation types
// round-trip through JSON and YAML schema documents.
func (t ValidationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are a
// parse error; schema documents must name a known type. (At validation
// time an out-of-range type still degrades to always-valid, so values
// constructed directly in code never fail.)
func (t *ValidationType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*t = TypeNone
	case "email":
		*t = TypeEmail
	case "password":
		*t = TypePassword
	case "passwordConfirmation":
		*t = TypePasswordConfirmation
	case "firstName":
		*t = TypeFirstName
	case "lastName":
		*t = TypeLastName
	default:
		return fmt.Errorf("unknown validation type %q", text)
	}
	return nil
}

// MarshalYAML mirrors MarshalText; yaml.v3 does not consult the text
// codec interfaces.
func (t ValidationType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML mirrors UnmarshalText for YAML schema documents.
func (t *ValidationType) UnmarshalYAML(value *yaml.Node) error {
	return t.UnmarshalText([]byte(value.Value))
}

// Validation declares the rule attached to a field.
type Validation struct {
	// Type selects the built-in check.
	Type ValidationType `json:"type" yaml:"type"`

	// CustomError, when non-empty, replaces the built-in failure message.
	// The empty-email message is the one exception and is never replaced.
	CustomError string `json:"customError,omitempty" yaml:"customError,omitempty"`

	// Optional marks the field always-valid regardless of its value.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Field is a single form input: its current value, whether focus has left
// it at least once, and its validation rule.
type Field struct {
	Value      string     `json:"value" yaml:"value"`
	Blurred    bool       `json:"blurred,omitempty" yaml:"blurred,omitempty"`
	Validation Validation `json:"validation" yaml:"validation"`
}

// Fields is the field store: a keyed record of form inputs.
type Fields map[string]Field

// Errors is the error store: one entry per field key, empty string
// meaning valid.
type Errors map[string]string

// clone returns a shallow copy of the field store.
func (f Fields) clone() Fields {
	next := make(Fields, len(f))
	for k, v := range f {
		next[k] = v
	}
	return next
}

// clone returns a copy of the error store.
func (e Errors) clone() Errors {
	next := make(Errors, len(e))
	for k, v := range e {
		next[k] = v
	}
	return next
}
