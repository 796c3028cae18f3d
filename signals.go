package formstate

import "github.com/zoobzio/capitan"

// Form lifecycle signals.
var (
	// FormInitialized is emitted when a Form is created or reloaded with a
	// fresh field configuration.
	FormInitialized = capitan.NewSignal(
		"formstate.form.initialized",
		"Field store initialized",
	)

	// FormReloaded is emitted when a watched schema source replaced the
	// field configuration.
	FormReloaded = capitan.NewSignal(
		"formstate.form.reloaded",
		"Field store replaced from schema source",
	)

	// FormReloadFailed is emitted when a schema update could not be parsed.
	// The previous stores remain active.
	FormReloadFailed = capitan.NewSignal(
		"formstate.form.reload.failed",
		"Schema update rejected",
	)
)

// Dispatch and validation signals.
var (
	// FormActionDispatched is emitted for every dispatched action,
	// recognized or not.
	FormActionDispatched = capitan.NewSignal(
		"formstate.form.action.dispatched",
		"Store action dispatched",
	)

	// FormValidationRun is emitted after a full validation pass over the
	// field store.
	FormValidationRun = capitan.NewSignal(
		"formstate.form.validation.run",
		"Validation pass completed",
	)

	// FormFieldInvalid is emitted per field that fails its check during a
	// validation pass.
	FormFieldInvalid = capitan.NewSignal(
		"formstate.form.field.invalid",
		"Field failed validation",
	)
)
