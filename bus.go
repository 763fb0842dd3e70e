package radio

import "context"

// Bus bundles a Registry with a default channel. The default channel is not
// registered under any name; the Bus forwards every Channel operation to it
// and adds the registry level operations Channel, RemoveChannel and
// TriggerChannel.
type Bus struct {
	registry *Registry
	channel  *Channel
}

// New creates a Bus backed by a new Registry built with options.
func New(options ...RegistryOption) *Bus {
	return NewBus(NewRegistry(options...))
}

// NewBus creates a Bus over an existing registry.
func NewBus(r *Registry) *Bus {
	return &Bus{registry: r, channel: r.newChannel("")}
}

// Registry returns the registry the bus resolves channel names with.
func (b *Bus) Registry() *Registry { return b.registry }

// Default returns the bus default channel.
func (b *Bus) Default() *Channel { return b.channel }

// Channel returns the channel registered under name, creating it when needed.
// When WithContext is given it becomes the channel's default context.
func (b *Bus) Channel(name string, options ...Option) *Channel {
	ch := b.registry.Channel(name)
	if len(options) > 0 {
		if o := ch.applyOptions(options); o.context != nil {
			ch.SetContext(o.context)
		}
	}
	return ch
}

// RemoveChannel removes name from the registry.
func (b *Bus) RemoveChannel(name string) *Bus {
	b.registry.Remove(name)
	return b
}

// TriggerChannel triggers event with args on the channel registered under name.
func (b *Bus) TriggerChannel(name, event string, args ...any) *Bus {
	b.Channel(name).Trigger(event, args...)
	return b
}

// ID returns the id of the default channel.
func (b *Bus) ID() string { return b.channel.ID() }

// Context returns the default channel context.
func (b *Bus) Context() any { return b.channel.Context() }

// SetContext sets the default channel context, see Channel.SetContext.
func (b *Bus) SetContext(v any) *Bus {
	b.channel.SetContext(v)
	return b
}

// SetScope ties the default channel to ctx, see Channel.SetScope.
func (b *Bus) SetScope(ctx context.Context) *Bus {
	b.channel.SetScope(ctx)
	return b
}

// On registers cb for events on the default channel.
func (b *Bus) On(events string, cb *Callback, options ...Option) *Bus {
	b.channel.On(events, cb, options...)
	return b
}

// Once registers a fire-once cb for events on the default channel.
func (b *Bus) Once(events string, cb *Callback, options ...Option) *Bus {
	b.channel.Once(events, cb, options...)
	return b
}

// OnBatch registers every callback of batch on the default channel.
func (b *Bus) OnBatch(batch *Batch[*Callback], options ...Option) *Bus {
	b.channel.OnBatch(batch, options...)
	return b
}

// OnceBatch registers every callback of batch as fire-once on the default channel.
func (b *Bus) OnceBatch(batch *Batch[*Callback], options ...Option) *Bus {
	b.channel.OnceBatch(batch, options...)
	return b
}

// Off removes listeners from the default channel, see Channel.Off.
func (b *Bus) Off(events string, cb *Callback, options ...Option) *Bus {
	b.channel.Off(events, cb, options...)
	return b
}

// OffBatch removes the listeners named in batch from the default channel.
func (b *Bus) OffBatch(batch *Batch[*Callback], options ...Option) *Bus {
	b.channel.OffBatch(batch, options...)
	return b
}

// Trigger runs the listeners of event on the default channel.
func (b *Bus) Trigger(event string, args ...any) *Bus {
	b.channel.Trigger(event, args...)
	return b
}

// ListenerCount counts the listeners of event on the default channel.
func (b *Bus) ListenerCount(event string) int { return b.channel.ListenerCount(event) }

// Subscribe streams events of the default channel, see Channel.Subscribe.
func (b *Bus) Subscribe(ctx context.Context, events string, buffer int) *Subscription {
	return b.channel.Subscribe(ctx, events, buffer)
}

// Reset drops every listener and reply of the default channel.
func (b *Bus) Reset() *Bus {
	b.channel.Reset()
	return b
}

// ListenTo registers cb on the named channel on behalf of the default channel.
func (b *Bus) ListenTo(channel, events string, cb *Callback, options ...Option) *Bus {
	b.channel.ListenTo(channel, events, cb, options...)
	return b
}

// ListenToOnce is like ListenTo with a fire-once registration.
func (b *Bus) ListenToOnce(channel, events string, cb *Callback, options ...Option) *Bus {
	b.channel.ListenToOnce(channel, events, cb, options...)
	return b
}

// StopListening removes registrations the default channel made through ListenTo.
func (b *Bus) StopListening(channel, events string, cb *Callback) *Bus {
	b.channel.StopListening(channel, events, cb)
	return b
}

// Reply stores value as the default channel reply for item.
func (b *Bus) Reply(item string, value any, options ...Option) *Bus {
	b.channel.Reply(item, value, options...)
	return b
}

// ReplyOnce stores a fire-once reply for item on the default channel.
func (b *Bus) ReplyOnce(item string, value any, options ...Option) *Bus {
	b.channel.ReplyOnce(item, value, options...)
	return b
}

// ReplyBatch stores every value of batch on the default channel.
func (b *Bus) ReplyBatch(batch *Batch[any], options ...Option) *Bus {
	b.channel.ReplyBatch(batch, options...)
	return b
}

// ReplyOnceBatch stores every value of batch as fire-once on the default channel.
func (b *Bus) ReplyOnceBatch(batch *Batch[any], options ...Option) *Bus {
	b.channel.ReplyOnceBatch(batch, options...)
	return b
}

// Request asks the default channel for item.
func (b *Bus) Request(item string, args ...any) any {
	return b.channel.Request(item, args...)
}

// HasReply reports whether the default channel has its own reply for item.
func (b *Bus) HasReply(item string) bool { return b.channel.HasReply(item) }

// StopReplying removes replies of the default channel, see Channel.StopReplying.
func (b *Bus) StopReplying(items string) *Bus {
	b.channel.StopReplying(items)
	return b
}
