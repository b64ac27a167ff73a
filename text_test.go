package browseruse_test

import (
	"strings"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("collapses blank line runs", func(t *testing.T) {
		t.Parallel()

		got := browseruse.NormalizeMarkdown("# Title\n\n\n\nbody\n\n\nmore")
		assert.Equal(t, "# Title\n\nbody\n\nmore", got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got := browseruse.NormalizeMarkdown("\n\n  hello  \n\n")
		assert.Equal(t, "hello", got)
	})

	t.Run("preserves single blank lines", func(t *testing.T) {
		t.Parallel()

		got := browseruse.NormalizeMarkdown("a\n\nb")
		assert.Equal(t, "a\n\nb", got)
	})
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	t.Run("short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Log in", browseruse.TruncateText("Log in", 50))
	})

	t.Run("long text truncated with ellipsis", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 60)
		got := browseruse.TruncateText(long, 50)

		assert.Len(t, got, 50)
		assert.Equal(t, strings.Repeat("a", 47)+"...", got)
	})

	t.Run("exact length unchanged", func(t *testing.T) {
		t.Parallel()

		exact := strings.Repeat("b", 50)
		assert.Equal(t, exact, browseruse.TruncateText(exact, 50))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		got := browseruse.TruncateText(strings.Repeat("é", 10), 5)
		assert.Equal(t, "éé...", got)
	})
}
