package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("PlainError", func(t *testing.T) {
		entries := CollectErrorEntries(errors.New("boom"))
		assert.Equal(t, []string{"boom"}, entries)
	})

	t.Run("ZerrChain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer")
		entries := CollectErrorEntries(err)
		assert.Equal(t, []string{"outer", "middle", "root cause"}, entries)
	})

	t.Run("ForeignErrorStopsTraversal", func(t *testing.T) {
		// A joined error has no per-link message; the walk takes its full
		// text and stops.
		err := zerr.Wrap(errors.Join(errors.New("a"), errors.New("b")), "outer")
		entries := CollectErrorEntries(err)
		assert.Equal(t, "outer", entries[0])
		assert.Len(t, entries, 2)
	})
}

func TestFormatErrorEntries(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		got := FormatErrorEntries([]string{"boom"})
		assert.Equal(t, "Error: boom", got)
	})

	t.Run("WithCauses", func(t *testing.T) {
		got := FormatErrorEntries([]string{"outer", "middle", "inner"})
		want := "Error: outer\n\n  Caused by:\n    → middle\n    → inner"
		assert.Equal(t, want, got)
	})

	t.Run("MultilineMain", func(t *testing.T) {
		got := FormatErrorEntries([]string{"first\nsecond"})
		assert.Equal(t, "Error: first\n       second", got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, FormatErrorEntries(nil))
	})
}
