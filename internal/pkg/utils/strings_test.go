package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	t.Run("short string untouched", func(t *testing.T) {
		assert.Equal(t, "glucose", TruncateRunes("glucose", 120))
	})

	t.Run("ascii cut to limit", func(t *testing.T) {
		assert.Equal(t, "abcde", TruncateRunes("abcdefgh", 5))
	})

	t.Run("multi-byte characters are never split", func(t *testing.T) {
		needle := strings.Repeat("血", 10)
		got := TruncateRunes(needle, 4)
		assert.Equal(t, strings.Repeat("血", 4), got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("byte length above limit but rune count within", func(t *testing.T) {
		needle := strings.Repeat("糖", 4)
		assert.Equal(t, needle, TruncateRunes(needle, 5))
	})
}
