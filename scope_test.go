package radio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScope(t *testing.T) {
	t.Run("done context tears the channel down", func(t *testing.T) {
		bus := newTestBus(t)
		component := bus.Channel("component")
		remote := newRecorder()
		component.ListenTo("hub", "x", remote.callback())
		component.On("local", newRecorder().callback()).Reply("state", 1)

		ctx, cancel := context.WithCancel(context.Background())
		component.SetScope(ctx)
		cancel()

		require.Eventually(t, func() bool {
			return component.ListenerCount("") == 0 && !component.HasReply("state")
		}, time.Second, 5*time.Millisecond)
		require.Eventually(t, func() bool {
			return bus.Channel("hub").ListenerCount("x") == 0
		}, time.Second, 5*time.Millisecond)

		bus.TriggerChannel("hub", "x")
		assert.Equal(t, 0, remote.count())
	})

	t.Run("rebinding replaces the previous scope", func(t *testing.T) {
		bus := newTestBus(t)
		ch := bus.Channel("component")
		ch.On("x", newRecorder().callback())

		first, cancelFirst := context.WithCancel(context.Background())
		second, cancelSecond := context.WithCancel(context.Background())
		defer cancelSecond()

		ch.SetScope(first).SetScope(second)
		cancelFirst()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, 1, ch.ListenerCount("x"))

		cancelSecond()
		require.Eventually(t, func() bool { return ch.ListenerCount("x") == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("nil context unbinds", func(t *testing.T) {
		bus := newTestBus(t)
		ch := bus.Channel("component")
		ch.On("x", newRecorder().callback())

		ctx, cancel := context.WithCancel(context.Background())
		ch.SetScope(ctx).SetScope(nil)
		cancel()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, 1, ch.ListenerCount("x"))
	})

	t.Run("rebinding after cancellation keeps new registrations", func(t *testing.T) {
		bus := newTestBus(t)
		ch := bus.Channel("component")

		first, cancelFirst := context.WithCancel(context.Background())
		ch.SetScope(first)
		cancelFirst()
		ch.SetScope(context.Background())
		ch.On("x", newRecorder().callback()).Reply("state", 1)

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 1, ch.ListenerCount("x"))
		assert.True(t, ch.HasReply("state"))
	})

	t.Run("done context tears down immediately", func(t *testing.T) {
		bus := newTestBus(t)
		ch := bus.Channel("component")
		ch.On("x", newRecorder().callback()).Reply("state", 1)
		ch.ListenTo("hub", "y", newRecorder().callback())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ch.SetScope(ctx)

		assert.Equal(t, 0, ch.ListenerCount(""))
		assert.False(t, ch.HasReply("state"))
		assert.Equal(t, 0, bus.Channel("hub").ListenerCount("y"))

		ch.On("x", newRecorder().callback())
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, 1, ch.ListenerCount("x"))
	})

	t.Run("context.Context as channel context binds the scope", func(t *testing.T) {
		bus := newTestBus(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch := bus.Channel("component", WithContext(ctx))
		rec := newRecorder()
		ch.On("x", rec.callback()).Trigger("x")
		require.Equal(t, 1, rec.count())
		assert.Equal(t, ctx, rec.last().Context)

		cancel()
		require.Eventually(t, func() bool { return ch.ListenerCount("") == 0 }, time.Second, 5*time.Millisecond)

		other := bus.Channel("other").SetContext("plain")
		other.On("x", newRecorder().callback())
		assert.Equal(t, 1, other.ListenerCount("x"))
	})
}
