package formstate

// State is the derived condition of a Form. It is recomputed from the
// stores and flags on demand and holds no storage of its own.
type State int32

const (
	// StatePristine indicates no field action has been dispatched yet and
	// every field passed its initial validation.
	StatePristine State = iota

	// StateValid indicates the form has been touched and every non-optional
	// field currently validates.
	StateValid

	// StateInvalid indicates at least one non-optional field has a
	// validation error.
	StateInvalid

	// StateSubmitting indicates the caller has set the loading flag around
	// its own submit logic. Submission itself is outside this package.
	StateSubmitting
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePristine:
		return "pristine"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}
