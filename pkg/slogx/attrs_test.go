package slogx

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	assert.True(t, Error(errors.New("boom")).Equal(slog.String("error", "boom")))
	assert.True(t, LoggerName("radio").Equal(slog.String(KeyLoggerName, "radio")))
	assert.True(t, Event("ping").Equal(slog.String("event", "ping")))

	t.Run("named channel", func(t *testing.T) {
		attr := Channel("hub", "c_1")
		assert.Equal(t, KeyChannel, attr.Key)
		assert.Equal(t, slog.KindGroup, attr.Value.Kind())
		assert.Len(t, attr.Value.Group(), 2)
	})

	t.Run("unnamed channel", func(t *testing.T) {
		attr := Channel("", "c_1")
		group := attr.Value.Group()
		assert.Len(t, group, 1)
		assert.Equal(t, "id", group[0].Key)
	})
}
