// Package formstate provides state management for web form inputs.
//
// The core type is Form, which owns two parallel keyed stores — field
// values and validation errors — updated through dispatched actions and
// settled by a synchronous validation pass after every field change.
//
// # Stores
//
// The field store maps a field key to its current value, blurred flag,
// and validation rule. The error store maps the same keys to user-facing
// messages, the empty string meaning valid. Both stores are updated by
// pure reducers and only ever replaced, never mutated in place:
//
//	Dispatch → ReduceFields → validation pass → ReduceErrors (per field)
//
// # Validation
//
// Each field declares one of the built-in validation types (none, email,
// password, passwordConfirmation, firstName, lastName). Validators are
// looked up in an explicit registry, so each check is a closed, testable
// unit. Validation is total: every field always settles to a defined
// message or to valid, and unrecognized types degrade to valid rather
// than failing. Email and length checks are delegated to
// go-playground/validator.
//
// The passwordConfirmation rule is the single cross-field check: it
// compares against the current value of the field keyed "password" and is
// invalid whenever that field is absent.
//
// # Derived state
//
// Form.Invalid reports whether any non-optional field currently fails
// validation; Form.State folds the caller-owned loading flag and the
// touched status into a single enum (pristine, valid, invalid,
// submitting). Loading, submit-attempt, and global-error values are
// caller-owned slots around the caller's own submit logic — this package
// never reads or interprets them.
//
// # Schemas
//
// Field configurations can be declared as JSON or YAML documents and
// parsed with ParseFields. A Watcher feeds schema changes to a running
// form:
//
//   - SchemaWatcher: file watcher using fsnotify
//   - ChannelWatcher: wraps an existing byte channel, for tests and
//     custom sources
//
// A rejected document never disturbs the current stores; the parse error
// is retained on the form.
//
// # Example
//
//	form := formstate.New(formstate.Fields{
//	    "email":    {Validation: formstate.Validation{Type: formstate.TypeEmail}},
//	    "password": {Validation: formstate.Validation{Type: formstate.TypePassword}},
//	})
//
//	form.Dispatch(ctx, formstate.UpdateValue("email", "  a@b.com  "))
//
//	if form.Invalid() {
//	    for key, msg := range form.Errors() {
//	        fmt.Println(key, msg)
//	    }
//	}
package formstate
