package formstate

import "github.com/zoobzio/capitan"

// Field keys for Form events.
var (
	// KeyField is the field key an event concerns.
	KeyField = capitan.NewStringKey("field")

	// KeyAction is the dispatched action type.
	KeyAction = capitan.NewStringKey("action")

	// KeyError is the validation message or operational error attached to
	// an event.
	KeyError = capitan.NewStringKey("error")

	// KeyValidationType is the validation rule of the field concerned.
	KeyValidationType = capitan.NewStringKey("validation_type")

	// KeyFieldCount is the number of fields in the store.
	KeyFieldCount = capitan.NewIntKey("field_count")

	// KeyInvalidCount is the number of fields failing validation after a
	// pass.
	KeyInvalidCount = capitan.NewIntKey("invalid_count")
)
