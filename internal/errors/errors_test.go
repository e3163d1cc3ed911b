package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, Describe(nil))
	})

	t.Run("plain error has no frames", func(t *testing.T) {
		assert.Equal(t, "stock exhausted", Describe(New("stock exhausted")))
	})

	t.Run("wrapped error carries message chain and frames", func(t *testing.T) {
		err := Wrap(Wrap(New("stock exhausted"), "reserve line"), "place order")

		out := Describe(err)
		assert.Contains(t, out, "place order: reserve line: stock exhausted")
		assert.Contains(t, out, "TestDescribe")
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}
