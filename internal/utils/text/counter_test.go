package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRunes(t *testing.T) {
	assert.Equal(t, 5, CountRunes("hello"))
	assert.Equal(t, 0, CountRunes(""))
	assert.Equal(t, 4, CountRunes("café"), "multi-byte runes counted once")
	assert.Equal(t, 13, CountRunes("naïve résumés"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "", Truncate("", 3))

	multibyte := strings.Repeat("é", 10)
	got := Truncate(multibyte, 4)
	assert.Equal(t, 4, CountRunes(got))
	assert.Equal(t, "éééé", got)
}
