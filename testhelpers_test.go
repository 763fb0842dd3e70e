package radio

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	return New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// recorder collects the events delivered to the callbacks it hands out.
type recorder struct {
	mu     sync.Mutex
	events []Event
	tag    string
	log    *[]string
}

func newRecorder() *recorder {
	return &recorder{}
}

// tagged returns a recorder that also appends tag to a shared log, to check
// the relative order of several recorders.
func tagged(tag string, log *[]string) *recorder {
	return &recorder{tag: tag, log: log}
}

func (r *recorder) callback() *Callback {
	return Func(r.record)
}

func (r *recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if r.log != nil {
		*r.log = append(*r.log, r.tag)
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Name)
	}
	return names
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}
	}
	return r.events[len(r.events)-1]
}
