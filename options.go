package radio

import (
	"log/slog"

	"github.com/casualjim/radio/pkg/slogx"
	"github.com/fogfish/opts"
)

type callOptions struct {
	context any
	owner   string

	// detached is only set by the channel itself, see Subscribe.
	detached func()
}

// Option configures a single listener registration, removal or reply.
type Option = opts.Option[callOptions]

// WithOwner records id as the owner of the listeners being registered, or
// narrows a removal to listeners owned by id. Channels use their own id as
// owner when they subscribe to another channel through ListenTo.
var WithOwner = opts.ForName[callOptions, string]("owner")

// WithContext sets the value handed to callbacks and reply functions as
// Event.Context or Request.Context, overriding the channel default context.
func WithContext(v any) Option {
	return opts.Type[callOptions](func(o *callOptions) error {
		o.context = v
		return nil
	})
}

func withDetached(fn func()) Option {
	return opts.Type[callOptions](func(o *callOptions) error {
		o.detached = fn
		return nil
	})
}

// RegistryOption configures a Registry.
type RegistryOption = opts.Option[Registry]

var (
	// WithLogger sets the logger channels created by the registry log to.
	WithLogger = opts.ForName[Registry, *slog.Logger]("logger")

	// WithIDGenerator replaces the function producing channel ids.
	WithIDGenerator = opts.ForName[Registry, func() string]("newID")
)

func (c *Channel) applyOptions(options []Option) callOptions {
	var o callOptions
	if len(options) == 0 {
		return o
	}
	if err := opts.Apply(&o, options); err != nil {
		c.logger.Warn("ignoring invalid options", slogx.Error(err))
		return callOptions{}
	}
	return o
}
