package stopwatch

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()), "an empty context has no stopwatch")
	assert.Nil(t, FromContext(nil))

	sw := New(Config{Notices: &bytes.Buffer{}})
	ctx := NewContext(context.Background(), sw)
	assert.Equal(t, sw, FromContext(ctx))

	other := New(Config{Notices: &bytes.Buffer{}})
	inner := NewContext(ctx, other)
	assert.Equal(t, other, FromContext(inner), "the innermost stopwatch wins")
	assert.Equal(t, sw, FromContext(ctx), "the outer context is untouched")
}
