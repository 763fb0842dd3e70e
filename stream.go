package radio

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/casualjim/radio/pkg/uuidx"
)

const defaultStreamBuffer = 50

// Subscription delivers the events of a channel on a Go channel, for
// consumers that prefer to range over events on their own goroutine instead
// of running inside Trigger.
//
// Trigger never blocks on a subscription: when the buffer is full the event
// is dropped and counted.
type Subscription struct {
	id      string
	channel *Channel
	cb      *Callback

	mu      sync.Mutex
	out     chan Event
	closed  bool
	once    sync.Once
	stop    func() bool
	dropped atomic.Int64
}

// Subscribe streams events of c until ctx is done, Unsubscribe is called or
// the subscription's listeners are removed from c (by Off, Reset or a scope
// teardown). In every case the events channel is then closed. A buffer of zero
// or less uses the default size.
func (c *Channel) Subscribe(ctx context.Context, events string, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = defaultStreamBuffer
	}
	s := &Subscription{
		id:      uuidx.NewString(),
		channel: c,
		out:     make(chan Event, buffer),
	}
	if len(splitNames(events)) == 0 {
		s.close()
		return s
	}
	s.cb = Func(s.forward)
	c.On(events, s.cb, WithOwner(s.id), withDetached(s.close))

	stop := context.AfterFunc(ctx, s.Unsubscribe)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		stop()
		return s
	}
	s.stop = stop
	return s
}

func (s *Subscription) ID() string { return s.id }

// Events returns the channel events are delivered on.
func (s *Subscription) Events() <-chan Event { return s.out }

// Dropped returns how many events were discarded because the buffer was full.
func (s *Subscription) Dropped() int64 { return s.dropped.Load() }

// Unsubscribe removes the subscription from its channel and closes the events
// channel. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.cb != nil {
		s.channel.Off("", nil, WithOwner(s.id))
	}
	s.close()
}

// close ends the stream. It runs with the channel lock held when a listener
// of the subscription is removed, so it must not call back into the channel.
func (s *Subscription) close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.out)
		stop := s.stop
		s.mu.Unlock()

		if stop != nil {
			stop()
		}
	})
}

func (s *Subscription) forward(e Event) {
	s.mu.Lock()
	closed := s.closed
	if !closed {
		select {
		case s.out <- e:
		default:
			s.dropped.Add(1)
			s.channel.logger.Debug("subscription buffer full, event dropped",
				slog.String("subscription", s.id), slog.String("event", e.Name))
		}
	}
	s.mu.Unlock()

	// one of several registrations was removed, the rest still point here
	if closed {
		s.channel.Off("", nil, WithOwner(s.id))
	}
}
