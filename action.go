package formstate

// ActionType identifies a dispatchable store update.
type ActionType int

const (
	// ActionUpdateValue replaces a field's value with the trimmed input.
	ActionUpdateValue ActionType = iota

	// ActionBlurInput marks a field as blurred (focus left at least once).
	ActionBlurInput

	// ActionUpdateError replaces a field's error entry.
	ActionUpdateError
)

// String returns the string representation of the action type.
func (t ActionType) String() string {
	switch t {
	case ActionUpdateValue:
		return "UPDATE_VALUE"
	case ActionBlurInput:
		return "BLUR_INPUT"
	case ActionUpdateError:
		return "UPDATE_ERROR"
	default:
		return "unknown"
	}
}

// Action is a dispatched store update. Field names the target field key.
// Value is consumed by ActionUpdateValue, Error by ActionUpdateError;
// both are ignored otherwise.
type Action struct {
	Type  ActionType
	Field string
	Value string
	Error string
}

// UpdateValue builds an ActionUpdateValue for the given field.
func UpdateValue(field, value string) Action {
	return Action{Type: ActionUpdateValue, Field: field, Value: value}
}

// BlurInput builds an ActionBlurInput for the given field.
func BlurInput(field string) Action {
	return Action{Type: ActionBlurInput, Field: field}
}

// UpdateError builds an ActionUpdateError for the given field. An empty
// error string marks the field valid.
func UpdateError(field, err string) Action {
	return Action{Type: ActionUpdateError, Field: field, Error: err}
}
