package formstate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestForm_Watch_InitialSchema(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan []byte, 1)
	ch <- []byte(`{"email": {"validation": {"type": "email"}}}`)

	form := New(Fields{})
	if err := form.Watch(ctx, NewChannelWatcher(ch), JSONCodec{}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	fields := form.Fields()
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected email field after initial schema, got %v", fields)
	}
	if msg := form.Errors()["email"]; msg != "Please provide an email" {
		t.Errorf("expected initial validation to run, got %q", msg)
	}
}

func TestForm_Watch_InitialSchemaRejected(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan []byte, 1)
	ch <- []byte("{not json")

	form := New(Fields{
		"email": {Validation: Validation{Type: TypeEmail}},
	})

	if err := form.Watch(ctx, NewChannelWatcher(ch), JSONCodec{}); err == nil {
		t.Fatal("expected error for rejected initial schema")
	}

	// The previous configuration stays active.
	if _, ok := form.Fields()["email"]; !ok {
		t.Error("rejected schema disturbed the field store")
	}
	if form.LastError() == nil {
		t.Error("expected LastError set")
	}
}

func TestForm_Watch_BackgroundUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan []byte, 1)
	ch <- []byte(`{"email": {"validation": {"type": "email"}}}`)

	form := New(Fields{})
	if err := form.Watch(ctx, NewChannelWatcher(ch), JSONCodec{}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	updated := make(chan Snapshot, 1)
	form.Subscribe(func(s Snapshot) {
		select {
		case updated <- s:
		default:
		}
	})

	ch <- []byte(`{"username": {"validation": {"type": "firstName"}}}`)

	select {
	case snap := <-updated:
		if _, ok := snap.Fields["username"]; !ok {
			t.Errorf("expected username field after update, got %v", snap.Fields)
		}
		if _, ok := snap.Fields["email"]; ok {
			t.Error("old field survived schema replacement")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for schema update")
	}
}

func TestForm_Watch_BackgroundRejectKeepsStores(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan []byte, 1)
	ch <- []byte(`{"email": {"validation": {"type": "email"}}}`)

	form := New(Fields{})
	if err := form.Watch(ctx, NewChannelWatcher(ch), JSONCodec{}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ch <- []byte("{not json")

	deadline := time.Now().Add(2 * time.Second)
	for form.LastError() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if form.LastError() == nil {
		t.Fatal("expected LastError after rejected update")
	}
	if _, ok := form.Fields()["email"]; !ok {
		t.Error("rejected update disturbed the field store")
	}
}

func TestForm_Watch_WatcherClosedBeforeInitial(t *testing.T) {
	ctx := context.Background()

	ch := make(chan []byte)
	close(ch)

	form := New(Fields{})
	if err := form.Watch(ctx, NewChannelWatcher(ch), JSONCodec{}); err == nil {
		t.Fatal("expected error when watcher closes before the initial document")
	}
}

func TestSchemaWatcher_EmitsInitialContents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "form.yaml")
	doc := []byte("email:\n  validation:\n    type: email\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	form := New(Fields{})
	if err := form.Watch(ctx, NewSchemaWatcher(path), YAMLCodec{}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if _, ok := form.Fields()["email"]; !ok {
		t.Errorf("expected email field from schema file, got %v", form.Fields())
	}
}

func TestSchemaWatcher_MissingFile(t *testing.T) {
	ctx := context.Background()

	w := NewSchemaWatcher(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := w.Watch(ctx); err == nil {
		t.Fatal("expected error for missing schema file")
	}
}
