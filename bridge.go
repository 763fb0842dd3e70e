package radio

import "log/slog"

// ListenTo registers cb on the channel registered under channel, with c as
// the owner of the registration, so StopListening can remove it later.
// Unless WithContext is given, the callback runs with c as its context.
//
// An empty channel name means "every channel" to StopListening, so it is not
// accepted here and the call does nothing.
func (c *Channel) ListenTo(channel, events string, cb *Callback, options ...Option) *Channel {
	if remote, ok := c.remote(channel); ok {
		remote.On(events, cb, c.ownedBy(options)...)
	}
	return c
}

// ListenToOnce is like ListenTo with a fire-once registration.
func (c *Channel) ListenToOnce(channel, events string, cb *Callback, options ...Option) *Channel {
	if remote, ok := c.remote(channel); ok {
		remote.Once(events, cb, c.ownedBy(options)...)
	}
	return c
}

func (c *Channel) remote(channel string) (*Channel, bool) {
	if channel == "" {
		c.logger.Debug("ignoring listen request without a channel name")
		return nil, false
	}
	return c.registry.Channel(channel), true
}

func (c *Channel) ownedBy(options []Option) []Option {
	owned := make([]Option, 0, len(options)+2)
	owned = append(owned, WithContext(c))
	owned = append(owned, options...)
	return append(owned, WithOwner(c.id))
}

// StopListening removes listeners c registered on other channels through
// ListenTo or ListenToOnce. With an empty channel name it removes them from
// every registered channel. Otherwise removal is limited to the named channel
// and, when given, to events and cb.
func (c *Channel) StopListening(channel, events string, cb *Callback) *Channel {
	if channel == "" {
		c.registry.ForEach(func(_ string, remote *Channel) bool {
			remote.Off("", nil, WithOwner(c.id))
			return true
		})
		c.logger.Debug("stopped listening to all channels")
		return c
	}

	remote, ok := c.registry.Lookup(channel)
	if !ok {
		return c
	}
	remote.Off(events, cb, WithOwner(c.id))
	c.logger.Debug("stopped listening", slog.String("remote", channel), slog.String("events", events))
	return c
}
