package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownKindError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewUnknownKindError("platform", "linux")
		assert.Equal(t, `unknown platform: "linux"`, err.Error())
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewUnknownKindError("shape", "triangle")
		assert.True(t, errors.Is(err, &UnknownKindError{}))
	})

	t.Run("errors.As conversion through wrapping", func(t *testing.T) {
		err := fmt.Errorf("select factory: %w", NewUnknownKindError("platform", "beos"))
		var uke *UnknownKindError
		require.True(t, errors.As(err, &uke))
		assert.Equal(t, "platform", uke.Category)
		assert.Equal(t, "beos", uke.Value)
	})

	t.Run("IsUnknownKindError helper", func(t *testing.T) {
		assert.True(t, IsUnknownKindError(NewUnknownKindError("recipe", "castle")))
		assert.False(t, IsUnknownKindError(errors.New("plain")))
	})
}

func TestInvalidOptionError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidOptionError("format", "unsupported", "xml")
		assert.Equal(t, "invalid option: field=format, reason=unsupported, value=xml", err.Error())
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidOptionError("platforms", "cannot be empty", []string{})
		var ioe *InvalidOptionError
		require.True(t, errors.As(err, &ioe))
		assert.Equal(t, "platforms", ioe.Field)
		assert.Equal(t, "cannot be empty", ioe.Reason)
	})

	t.Run("IsInvalidOptionError helper", func(t *testing.T) {
		assert.True(t, IsInvalidOptionError(NewInvalidOptionError("f", "r", 1)))
	})
}

func TestErrorTypeDiscrimination(t *testing.T) {
	uke := NewUnknownKindError("demo", "prototype")
	ioe := NewInvalidOptionError("format", "unsupported", "csv")

	assert.True(t, IsUnknownKindError(uke))
	assert.False(t, IsInvalidOptionError(uke))
	assert.True(t, IsInvalidOptionError(ioe))
	assert.False(t, IsUnknownKindError(ioe))
}
