package radio

import (
	"context"
	"log/slog"
	"sync"

	"github.com/casualjim/radio/pkg/slogx"
)

// Channel is a named publish/subscribe unit with its own listener table and
// reply store. Channels are obtained from a Registry (or a Bus) and never
// constructed directly.
//
// Event names and reply item names may be given as a whitespace separated
// list, in which case the operation applies to each name in turn.
//
// Every mutating method returns the channel it was called on so calls can be
// chained:
//
//	ch.On("open close", onChange).Once("ready", onReady).Trigger("ready")
//
// Dispatch is synchronous: Trigger runs every listener on the caller's
// goroutine, in registration order, before returning. Listeners may call back
// into the channel. The rules for such re-entrant calls are:
//   - listeners added during a dispatch do not receive the event being dispatched
//   - listeners removed during a dispatch are skipped if they have not run yet
//   - a fire-once listener runs at most once, even when the same event is
//     triggered again from inside a listener or from another goroutine
//   - fire-once listeners leave their bucket once the dispatch loop is done
//
// A Channel is safe for concurrent use.
type Channel struct {
	id       string
	name     string
	registry *Registry
	logger   *slog.Logger

	mu        sync.Mutex
	context   any
	listeners map[string][]*listener
	slots     map[string]*slot

	// scopeMu serializes scope bindings with their teardown, scope counts
	// bindings so a teardown can tell it has been replaced.
	scopeMu sync.Mutex
	scope   uint64
	unbind  func() bool
}

// ID returns the unique id assigned to the channel when it was created.
func (c *Channel) ID() string { return c.id }

// Name returns the name the channel is registered under.
func (c *Channel) Name() string { return c.name }

// Context returns the default context handed to callbacks registered without
// one. Unless changed with SetContext this is the channel itself.
func (c *Channel) Context() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contextLocked()
}

func (c *Channel) contextLocked() any {
	if c.context == nil {
		return c
	}
	return c.context
}

// SetContext changes the default context. A nil value restores the channel
// itself as the default. When v is a context.Context the channel is also
// scoped to it, see SetScope.
func (c *Channel) SetContext(v any) *Channel {
	c.mu.Lock()
	c.context = v
	c.mu.Unlock()

	if ctx, ok := v.(context.Context); ok {
		c.SetScope(ctx)
	}
	return c
}

// On registers cb for every event named in events. The same callback can be
// registered more than once and then runs once per registration.
func (c *Channel) On(events string, cb *Callback, options ...Option) *Channel {
	return c.register(events, cb, false, options)
}

// Once is like On, but each registration is dropped after its first run.
func (c *Channel) Once(events string, cb *Callback, options ...Option) *Channel {
	return c.register(events, cb, true, options)
}

// OnBatch registers each callback of b under its name, in batch order.
func (c *Channel) OnBatch(b *Batch[*Callback], options ...Option) *Channel {
	b.each(func(events string, cb *Callback) {
		c.register(events, cb, false, options)
	})
	return c
}

// OnceBatch is like OnBatch with fire-once registrations.
func (c *Channel) OnceBatch(b *Batch[*Callback], options ...Option) *Channel {
	b.each(func(events string, cb *Callback) {
		c.register(events, cb, true, options)
	})
	return c
}

func (c *Channel) register(events string, cb *Callback, once bool, options []Option) *Channel {
	if cb == nil {
		return c
	}
	names := splitNames(events)
	if len(names) == 0 {
		return c
	}
	o := c.applyOptions(options)

	c.mu.Lock()
	for _, name := range names {
		c.listeners[name] = append(c.listeners[name], &listener{
			callback: cb,
			context:  o.context,
			owner:    o.owner,
			once:     once,
			detached: o.detached,
		})
	}
	c.mu.Unlock()

	c.logger.Debug("listener registered",
		slog.Any("events", names),
		slog.String("callback", cb.Name()),
		slog.Bool("once", once),
		slog.String("owner", o.owner),
	)
	return c
}

// Off removes listeners. Which ones depends on what is given:
//   - no events and no WithOwner: every listener of the channel
//   - no events and WithOwner: listeners of any event registered with cb or
//     owned by the owner
//   - events only: every listener of those events
//   - events with cb and/or WithOwner: listeners of those events registered
//     with cb or owned by the owner
//
// Replies are never touched.
func (c *Channel) Off(events string, cb *Callback, options ...Option) *Channel {
	names := splitNames(events)
	if events != "" && len(names) == 0 {
		return c
	}
	if len(names) > 1 {
		for _, name := range names {
			c.Off(name, cb, options...)
		}
		return c
	}
	o := c.applyOptions(options)
	match := func(l *listener) bool { return l.matches(cb, o.owner) }

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(names) == 0 {
		if o.owner == "" {
			markRemoved(c.listeners)
			c.listeners = make(map[string][]*listener)
			c.logger.Debug("all listeners removed")
			return c
		}
		for name, bucket := range c.listeners {
			c.storeLocked(name, without(bucket, match))
		}
		c.logger.Debug("listeners removed", slog.String("owner", o.owner), slog.String("callback", cb.Name()))
		return c
	}

	name := names[0]
	bucket, ok := c.listeners[name]
	if !ok {
		return c
	}
	if cb == nil && o.owner == "" {
		c.storeLocked(name, without(bucket, func(*listener) bool { return true }))
	} else {
		c.storeLocked(name, without(bucket, match))
	}
	c.logger.Debug("listeners removed", slogx.Event(name), slog.String("owner", o.owner), slog.String("callback", cb.Name()))
	return c
}

// OffBatch removes, for every entry of b, the listeners of that name
// registered with that callback.
func (c *Channel) OffBatch(b *Batch[*Callback], options ...Option) *Channel {
	b.each(func(events string, cb *Callback) {
		if cb == nil {
			return
		}
		c.Off(events, cb, options...)
	})
	return c
}

func (c *Channel) storeLocked(name string, bucket []*listener) {
	if len(bucket) == 0 {
		delete(c.listeners, name)
		return
	}
	c.listeners[name] = bucket
}

// Trigger runs the listeners of event with args. When nothing listens to
// event and it names several events, each of them is triggered in turn.
func (c *Channel) Trigger(event string, args ...any) *Channel {
	if event == "" {
		return c
	}

	c.mu.Lock()
	// Buckets are only ever appended to or replaced, so the slice header read
	// here stays a valid snapshot after the lock is released.
	bucket, ok := c.listeners[event]
	defaultContext := c.contextLocked()
	c.mu.Unlock()

	if !ok {
		if names := splitNames(event); len(names) > 1 {
			for _, name := range names {
				c.Trigger(name, args...)
			}
		}
		return c
	}

	var fired bool
	for _, l := range bucket {
		if !l.claim() {
			continue
		}
		ctx := l.context
		if ctx == nil {
			ctx = defaultContext
		}
		l.callback.invoke(Event{Name: event, Args: args, Context: ctx, Channel: c})
		fired = fired || l.once
	}

	if fired {
		c.dropFired(event)
	}
	return c
}

func (c *Channel) dropFired(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.listeners[event]
	if !ok {
		return
	}
	kept := without(bucket, func(l *listener) bool { return l.once && l.fired.Load() })
	if len(kept) != len(bucket) {
		c.logger.Debug("fire-once listeners dropped", slogx.Event(event), slog.Int("count", len(bucket)-len(kept)))
	}
	c.storeLocked(event, kept)
}

// ListenerCount returns the number of listeners registered for event, or for
// all events when event is empty.
func (c *Channel) ListenerCount(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if event != "" {
		return len(c.listeners[event])
	}
	var n int
	for _, bucket := range c.listeners {
		n += len(bucket)
	}
	return n
}

// Reset drops every listener and reply. The id and the default context are
// kept.
func (c *Channel) Reset() *Channel {
	c.mu.Lock()
	markRemoved(c.listeners)
	c.listeners = make(map[string][]*listener)
	c.slots = make(map[string]*slot)
	c.mu.Unlock()

	c.logger.Debug("channel reset")
	return c
}
