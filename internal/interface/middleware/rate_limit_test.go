package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemaining_ClampsAtZero(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 9, remaining(10, 1))
	assert.Equal(t, 0, remaining(10, 10))
	// over-limit hits must not report a negative remaining
	assert.Equal(t, 0, remaining(10, 11))
	assert.Equal(t, 0, remaining(10, 250))
}

func TestToInt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, toInt(int64(7)))
	assert.Equal(t, 7, toInt(7))
	assert.Equal(t, 7, toInt("7"))
	assert.Equal(t, 0, toInt("not-a-number"))
	assert.Equal(t, 0, toInt(nil))
}
