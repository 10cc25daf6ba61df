package errors

import (
	"testing"
)

func TestWrap(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		err := Wrap(ErrFileAccess, "opening caselist")
		if err.Error() != "opening caselist: file access error" {
			t.Errorf("unexpected message: %s", err)
		}
		if !Is(err, ErrFileAccess) {
			t.Error("wrapped error must match its sentinel")
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("wrapping nil must return nil")
		}
		if Wrapf(nil, "context %d", 1) != nil {
			t.Error("wrapping nil must return nil")
		}
	})

	t.Run("wrapf formats", func(t *testing.T) {
		err := Wrapf(ErrTimeout, "after %d seconds", 10)
		if err.Error() != "after 10 seconds: run timeout" {
			t.Errorf("unexpected message: %s", err)
		}
		if !Is(err, ErrTimeout) {
			t.Error("wrapped error must match its sentinel")
		}
	})
}

func TestMultiError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m := NewMultiError()
		if m.HasErrors() {
			t.Error("new MultiError must be empty")
		}
		if m.ErrorOrNil() != nil {
			t.Error("empty MultiError must collapse to nil")
		}
	})

	t.Run("nil adds are ignored", func(t *testing.T) {
		m := NewMultiError()
		m.Add(nil)
		if m.HasErrors() {
			t.Error("adding nil must not record an error")
		}
	})

	t.Run("single error", func(t *testing.T) {
		m := NewMultiError()
		m.Add(ErrReadFailed)
		if m.Error() != ErrReadFailed.Error() {
			t.Errorf("unexpected message: %s", m.Error())
		}
	})

	t.Run("sentinels stay visible", func(t *testing.T) {
		m := NewMultiError()
		m.Add(ErrReadFailed)
		m.Add(ErrTimeout)
		err := m.ErrorOrNil()
		if !Is(err, ErrReadFailed) || !Is(err, ErrTimeout) {
			t.Error("errors.Is must see through MultiError")
		}
		if len(m.Errors()) != 2 {
			t.Errorf("expected 2 errors, got %d", len(m.Errors()))
		}
	})
}
