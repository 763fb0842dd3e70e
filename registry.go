package radio

import (
	"log/slog"

	"github.com/casualjim/radio/internal/registry"
	"github.com/casualjim/radio/pkg/slogx"
	"github.com/casualjim/radio/pkg/uuidx"
	"github.com/fogfish/opts"
)

const channelIDPrefix = "c_"

// Registry maps channel names to channels. Channels are created on first
// lookup and stay registered until Remove is called, so every lookup of a
// name returns the same *Channel in between.
//
// A Registry is safe for concurrent use.
type Registry struct {
	channels registry.Registry[*Channel]
	logger   *slog.Logger
	newID    func() string
}

// NewRegistry creates an empty registry. It panics when an option fails to
// apply.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		channels: registry.New[*Channel](),
		newID:    func() string { return uuidx.Prefixed(channelIDPrefix) },
	}
	if err := opts.Apply(r, options); err != nil {
		panic(err)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With(slogx.LoggerName("radio"))
	return r
}

// Channel returns the channel registered under name, creating it first when
// there is none. The empty name is a valid key, but ListenTo refuses it
// because StopListening reads an empty name as every channel.
func (r *Registry) Channel(name string) *Channel {
	ch, loaded := r.channels.GetOrAdd(name, func() *Channel {
		return r.newChannel(name)
	})
	if !loaded {
		ch.logger.Debug("channel created")
	}
	return ch
}

// Lookup returns the channel registered under name without creating it.
func (r *Registry) Lookup(name string) (*Channel, bool) {
	return r.channels.Get(name)
}

// Remove drops name from the registry. The removed channel keeps its
// listeners and replies for whoever still holds it, but later lookups of the
// name produce a new channel with a new id.
func (r *Registry) Remove(name string) {
	if ch, ok := r.channels.Get(name); ok {
		ch.logger.Debug("channel removed")
	}
	r.channels.Del(name)
}

// ForEach calls fn for every registered channel until fn returns false.
func (r *Registry) ForEach(fn func(name string, ch *Channel) bool) {
	r.channels.ForEach(fn)
}

// Len returns the number of registered channels.
func (r *Registry) Len() int {
	return r.channels.Len()
}

func (r *Registry) newChannel(name string) *Channel {
	id := r.newID()
	return &Channel{
		id:        id,
		name:      name,
		registry:  r,
		logger:    r.logger.With(slogx.Channel(name, id)),
		listeners: make(map[string][]*listener),
		slots:     make(map[string]*slot),
	}
}
