package formstate

import "strings"

// ReduceFields applies a field action to the field store and returns the
// next store. It is a pure function: the input store is never mutated, and
// unrecognized actions (including ActionUpdateError) or actions naming an
// absent field return the input store unchanged.
//
// No validation happens here; reducers only manage raw input state.
func ReduceFields(fields Fields, action Action) Fields {
	field, ok := fields[action.Field]
	if !ok {
		return fields
	}

	switch action.Type {
	case ActionUpdateValue:
		next := fields.clone()
		field.Value = strings.TrimSpace(action.Value)
		next[action.Field] = field
		return next

	case ActionBlurInput:
		next := fields.clone()
		field.Blurred = true
		next[action.Field] = field
		return next

	default:
		return fields
	}
}

// ReduceErrors applies an error action to the error store and returns the
// next store. Only ActionUpdateError is recognized; anything else is
// identity. An empty Error marks the field valid.
func ReduceErrors(errors Errors, action Action) Errors {
	if action.Type != ActionUpdateError {
		return errors
	}
	if _, ok := errors[action.Field]; !ok {
		return errors
	}

	next := errors.clone()
	next[action.Field] = action.Error
	return next
}
