package radio

import (
	"log/slog"

	"github.com/casualjim/radio/pkg/reflectx"
	"github.com/casualjim/radio/pkg/slogx"
	"github.com/casualjim/radio/pkg/stdx"
)

// DefaultReply is the reserved item name answering requests for items that
// have no reply of their own. It survives StopReplying("").
const DefaultReply = "default"

type slot struct {
	value   any
	context any
	once    bool
}

// Reply stores value as the answer to requests for item, replacing any
// previous reply. A ReplyFunc value is called on every request; any other
// value is returned as is. A nil value, including a nil function, is ignored.
func (c *Channel) Reply(item string, value any, options ...Option) *Channel {
	return c.reply(item, value, false, options)
}

// ReplyOnce is like Reply, but the reply is dropped after the first request
// it answers.
func (c *Channel) ReplyOnce(item string, value any, options ...Option) *Channel {
	return c.reply(item, value, true, options)
}

// ReplyBatch stores every value of b under its name, in batch order.
func (c *Channel) ReplyBatch(b *Batch[any], options ...Option) *Channel {
	b.each(func(item string, value any) {
		c.reply(item, value, false, options)
	})
	return c
}

// ReplyOnceBatch is like ReplyBatch with fire-once replies.
func (c *Channel) ReplyOnceBatch(b *Batch[any], options ...Option) *Channel {
	b.each(func(item string, value any) {
		c.reply(item, value, true, options)
	})
	return c
}

func (c *Channel) reply(items string, value any, once bool, options []Option) *Channel {
	if value == nil || reflectx.IsNilFunction(value) {
		return c
	}
	names := splitNames(items)
	if len(names) == 0 {
		return c
	}
	o := c.applyOptions(options)

	if _, ok := asReplyFunc(value); !ok && reflectx.IsFunction(value) {
		c.logger.Debug("function reply is not a ReplyFunc and will be returned as a value",
			slog.String("function", reflectx.FunctionName(value)))
	}

	c.mu.Lock()
	for _, name := range names {
		c.slots[name] = &slot{value: value, context: o.context, once: once}
	}
	c.mu.Unlock()

	c.logger.Debug("reply registered", slog.Any("items", names), slog.Bool("once", once))
	return c
}

// Request returns the reply stored for item, falling back to the DefaultReply
// item. A ReplyFunc reply is called with args and its result returned. It
// returns nil when neither item nor DefaultReply has a reply.
func (c *Channel) Request(item string, args ...any) any {
	c.mu.Lock()
	name := item
	s, ok := c.slots[name]
	if !ok {
		name = DefaultReply
		s, ok = c.slots[name]
	}
	if !ok {
		c.mu.Unlock()
		return nil
	}
	if s.once {
		delete(c.slots, name)
	}
	ctx := s.context
	if ctx == nil {
		ctx = c.contextLocked()
	}
	c.mu.Unlock()

	if fn, ok := asReplyFunc(s.value); ok {
		return fn(Request{Name: item, Args: args, Context: ctx, Channel: c})
	}
	return s.value
}

// RequestAs requests item from c and asserts the reply to T. The boolean is
// false when there is no reply or it is not a T.
func RequestAs[T any](c *Channel, item string, args ...any) (T, bool) {
	return stdx.As[T](c.Request(item, args...))
}

// HasReply reports whether item has a reply of its own, ignoring the
// DefaultReply fallback.
func (c *Channel) HasReply(item string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.slots[item]
	return ok
}

// StopReplying removes the replies of the named items. With no items it
// removes every reply except the DefaultReply one.
func (c *Channel) StopReplying(items string) *Channel {
	names := splitNames(items)
	if items != "" && len(names) == 0 {
		return c
	}

	c.mu.Lock()
	if len(names) == 0 {
		fallback, ok := c.slots[DefaultReply]
		c.slots = make(map[string]*slot)
		if ok {
			c.slots[DefaultReply] = fallback
		}
	}
	for _, name := range names {
		delete(c.slots, name)
	}
	c.mu.Unlock()

	c.logger.Debug("replies removed", slogx.Event(items))
	return c
}
