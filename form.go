package formstate

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/capitan"
)

// Form owns a field store and its parallel error store, and exposes the
// dispatch/validate cycle: every field action produces one store update
// followed by one synchronous validation pass over all fields.
//
// All methods are safe for concurrent use; a single mutex serializes
// store updates so a validation pass always observes the field values as
// of the action that triggered it.
type Form struct {
	mu               sync.Mutex
	fields           Fields
	errors           Errors
	loading          bool
	didAttemptSubmit bool
	globalError      string
	touched          bool
	subscribers      []func(Snapshot)

	metrics   MetricsProvider
	lastError atomic.Pointer[error]
}

// Snapshot is a consistent read of both stores delivered to subscribers.
type Snapshot struct {
	Fields  Fields
	Errors  Errors
	Invalid bool
}

// settings holds construction options for a Form.
type settings struct {
	metrics MetricsProvider
}

// Option configures a Form.
type Option func(*settings)

// WithMetrics installs a metrics provider receiving dispatch, validation,
// and reload callbacks.
func WithMetrics(m MetricsProvider) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// New creates a Form from an initial field configuration. The configuration
// is copied, an error entry is created for every field key, and an initial
// validation pass runs immediately.
//
// Example:
//
//	form := formstate.New(formstate.Fields{
//	    "email":    {Validation: formstate.Validation{Type: formstate.TypeEmail}},
//	    "password": {Validation: formstate.Validation{Type: formstate.TypePassword}},
//	})
func New(config Fields, opts ...Option) *Form {
	cfg := &settings{
		metrics: NoOpMetricsProvider{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Form{
		metrics: cfg.metrics,
	}
	f.initialize(context.Background(), config)

	capitan.Emit(context.Background(), FormInitialized,
		KeyFieldCount.Field(len(config)),
	)

	return f
}

// initialize replaces both stores wholesale and runs a validation pass.
// Caller must not hold f.mu.
func (f *Form) initialize(ctx context.Context, config Fields) {
	fields := config.clone()
	errors := make(Errors, len(fields))
	for key := range fields {
		errors[key] = ""
	}

	f.mu.Lock()
	f.fields = fields
	f.errors = errors
	f.mu.Unlock()

	f.revalidate(ctx)
}

// Dispatch applies an action to the stores. Field actions (ActionUpdateValue,
// ActionBlurInput) update the field store and trigger exactly one validation
// pass. ActionUpdateError writes the error store directly. Unrecognized
// action types leave both stores unchanged.
//
// Subscribers are notified after the stores settle.
func (f *Form) Dispatch(ctx context.Context, action Action) {
	capitan.Emit(ctx, FormActionDispatched,
		KeyAction.Field(action.Type.String()),
		KeyField.Field(action.Field),
	)
	f.metrics.OnActionDispatched(action.Type)

	switch action.Type {
	case ActionUpdateValue, ActionBlurInput:
		f.mu.Lock()
		f.fields = ReduceFields(f.fields, action)
		f.touched = true
		f.mu.Unlock()

		f.revalidate(ctx)

	case ActionUpdateError:
		f.mu.Lock()
		f.errors = ReduceErrors(f.errors, action)
		f.mu.Unlock()
		f.notify()

	default:
		// Unknown action: identity on both stores, no notification.
	}
}

// revalidate runs one validation pass over every field, settling each
// field's error entry independently via an ActionUpdateError reduction.
// Caller must not hold f.mu.
func (f *Form) revalidate(ctx context.Context) {
	f.mu.Lock()
	fields := f.fields
	errors := f.errors

	invalid := 0
	for key, field := range fields {
		msg := ValidateField(field, fields)
		errors = ReduceErrors(errors, UpdateError(key, msg))
		if msg != "" {
			invalid++
			capitan.Emit(ctx, FormFieldInvalid,
				KeyField.Field(key),
				KeyValidationType.Field(field.Validation.Type.String()),
				KeyError.Field(msg),
			)
		}
	}
	f.errors = errors
	f.mu.Unlock()

	capitan.Emit(ctx, FormValidationRun,
		KeyFieldCount.Field(len(fields)),
		KeyInvalidCount.Field(invalid),
	)
	f.metrics.OnValidationPass(invalid)

	f.notify()
}

// Fields returns a copy of the field store.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.clone()
}

// Errors returns a copy of the error store. Empty entries mean valid.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.clone()
}

// Invalid reports whether any non-optional field currently has a
// validation error.
func (f *Form) Invalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidLocked()
}

func (f *Form) invalidLocked() bool {
	for key, msg := range f.errors {
		if msg == "" {
			continue
		}
		if f.fields[key].Validation.Optional {
			continue
		}
		return true
	}
	return false
}

// State returns the derived condition of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.loading:
		return StateSubmitting
	case f.invalidLocked():
		return StateInvalid
	case !f.touched:
		return StatePristine
	default:
		return StateValid
	}
}

// Loading reports the caller-owned loading flag.
func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// SetLoading sets the caller-owned loading flag. This package never reads
// or writes it on its own; it exists for callers to bracket their own
// submit logic.
func (f *Form) SetLoading(v bool) {
	f.mu.Lock()
	f.loading = v
	f.mu.Unlock()
}

// DidAttemptSubmit reports whether the caller has flagged a submit attempt.
func (f *Form) DidAttemptSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.didAttemptSubmit
}

// SetDidAttemptSubmit sets the caller-owned submit-attempt flag.
func (f *Form) SetDidAttemptSubmit(v bool) {
	f.mu.Lock()
	f.didAttemptSubmit = v
	f.mu.Unlock()
}

// GlobalError returns the caller-supplied form-level error message, or the
// empty string. This package neither produces nor interprets it.
func (f *Form) GlobalError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.globalError
}

// SetGlobalError sets the form-level error message. Pass the empty string
// to clear it.
func (f *Form) SetGlobalError(msg string) {
	f.mu.Lock()
	f.globalError = msg
	f.mu.Unlock()
}

// LastError returns the last schema-reload error, or nil. Validation
// failures are not errors; they live in the error store.
func (f *Form) LastError() error {
	ptr := f.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Subscribe registers a callback invoked with a consistent snapshot after
// every settled store change. Callbacks run synchronously on the
// dispatching goroutine and must not call back into the Form.
func (f *Form) Subscribe(fn func(Snapshot)) {
	f.mu.Lock()
	f.subscribers = append(f.subscribers, fn)
	f.mu.Unlock()
}

// notify delivers the current snapshot to all subscribers.
// Caller must not hold f.mu.
func (f *Form) notify() {
	f.mu.Lock()
	snap := Snapshot{
		Fields:  f.fields.clone(),
		Errors:  f.errors.clone(),
		Invalid: f.invalidLocked(),
	}
	subs := f.subscribers
	f.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Reload replaces the entire field configuration, the only way a field is
// ever created or destroyed after construction. Both stores are rebuilt
// and a validation pass runs against the new fields.
func (f *Form) Reload(ctx context.Context, config Fields) {
	f.initialize(ctx, config)
	f.lastError.Store(nil)

	capitan.Emit(ctx, FormReloaded,
		KeyFieldCount.Field(len(config)),
	)
	f.metrics.OnReload(true)
}

// applySchema parses raw schema bytes and reloads the form. On parse
// failure the current stores are retained.
func (f *Form) applySchema(ctx context.Context, raw []byte, codec Codec) error {
	config, err := ParseFields(raw, codec)
	if err != nil {
		err = fmt.Errorf("schema rejected: %w", err)
		f.lastError.Store(&err)
		capitan.Emit(ctx, FormReloadFailed,
			KeyError.Field(err.Error()),
		)
		f.metrics.OnReload(false)
		return err
	}

	f.Reload(ctx, config)
	return nil
}
