package stdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	assert.Equal(t, 0, Zero[int]())
	assert.Equal(t, "", Zero[string]())
	assert.Nil(t, Zero[*int]())
	assert.Nil(t, Zero[map[string]int]())
	assert.Nil(t, Zero[any]())

	type pair struct {
		A int
		B string
	}
	assert.Equal(t, pair{}, Zero[pair]())
}

func TestAs(t *testing.T) {
	t.Run("matching type", func(t *testing.T) {
		v, ok := As[int](42)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("mismatched type", func(t *testing.T) {
		v, ok := As[string](42)
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("nil value", func(t *testing.T) {
		v, ok := As[int](nil)
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	})

	t.Run("interface target", func(t *testing.T) {
		v, ok := As[error](assert.AnError)
		assert.True(t, ok)
		assert.Equal(t, assert.AnError, v)
	})
}
