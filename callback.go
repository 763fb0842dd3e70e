package radio

import "github.com/casualjim/radio/pkg/reflectx"

// Event is what a listener receives when the event it listens to is triggered.
type Event struct {
	// Name is the single event name the listener was registered under.
	Name string
	// Args are the arguments passed to Trigger.
	Args []any
	// Context is the listener's context, or the channel default context when
	// the listener was registered without one.
	Context any
	// Channel is the channel the event was triggered on.
	Channel *Channel
}

// Arg returns the i-th trigger argument, or nil when there is none.
func (e Event) Arg(i int) any {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

// Callback is a listener function with a stable identity. Off and
// StopListening match listeners by the *Callback they were registered with,
// so keep the value around when the listener needs to be removed later.
type Callback struct {
	fn   func(Event)
	name string
}

// Func wraps fn in a Callback. It returns nil when fn is nil, which turns
// registrations using it into no-ops.
func Func(fn func(Event)) *Callback {
	if fn == nil {
		return nil
	}
	return &Callback{fn: fn, name: reflectx.FunctionName(fn)}
}

// Name returns the name of the wrapped function, for diagnostics.
func (c *Callback) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *Callback) invoke(e Event) {
	c.fn(e)
}

// Request is what a ReplyFunc receives when the item it answers is requested.
type Request struct {
	Name    string
	Args    []any
	Context any
	Channel *Channel
}

// Arg returns the i-th request argument, or nil when there is none.
func (r Request) Arg(i int) any {
	if i < 0 || i >= len(r.Args) {
		return nil
	}
	return r.Args[i]
}

// ReplyFunc computes a reply on every request. Any other value passed to
// Reply, including functions of a different signature, is returned as is.
type ReplyFunc func(Request) any

func asReplyFunc(v any) (ReplyFunc, bool) {
	switch fn := v.(type) {
	case ReplyFunc:
		return fn, fn != nil
	case func(Request) any:
		return fn, fn != nil
	default:
		return nil, false
	}
}
