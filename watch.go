package formstate

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a schema source and emits raw document bytes on change.
// Implementations must emit the current document immediately upon Watch()
// being called so the initial field configuration can be loaded.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when the schema changes. The channel is closed when the
	// context is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// Watch wires a schema source to the form: the first document is applied
// synchronously and its result returned, then subsequent documents are
// applied in the background until ctx is canceled. Each valid document
// replaces the field configuration wholesale; documents that fail to parse
// are rejected (the current stores remain active, the error is available
// via LastError).
func (f *Form) Watch(ctx context.Context, w Watcher, codec Codec) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start schema watcher: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("schema watcher closed before emitting initial document")
		}
		err = f.applySchema(ctx, raw, codec)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-changes:
				if !ok {
					return
				}
				_ = f.applySchema(ctx, raw, codec) //nolint:errcheck // Errors stored via lastError
			}
		}
	}()

	return err
}

// SchemaWatcher watches a schema file and emits its contents on write.
type SchemaWatcher struct {
	path string
}

// NewSchemaWatcher creates a SchemaWatcher for the given file path.
func NewSchemaWatcher(path string) *SchemaWatcher {
	return &SchemaWatcher{path: path}
}

// Watch begins watching the file and returns a channel that emits the file
// contents whenever it is written or recreated. The current contents are
// emitted immediately.
func (w *SchemaWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(w.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch schema %s: %w", w.path, err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer watcher.Close()

		if data, err := os.ReadFile(w.path); err == nil {
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				data, err := os.ReadFile(w.path)
				if err != nil {
					continue
				}

				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching; transient fsnotify errors are not fatal.
			}
		}
	}()

	return out, nil
}

// ChannelWatcher wraps an existing byte channel as a Watcher. Useful for
// tests and for callers that already produce schema documents.
type ChannelWatcher struct {
	ch <-chan []byte
}

// NewChannelWatcher creates a ChannelWatcher around the given channel.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// Watch returns the wrapped channel directly.
func (w *ChannelWatcher) Watch(_ context.Context) (<-chan []byte, error) {
	return w.ch, nil
}
