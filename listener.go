package radio

import (
	"strings"
	"sync/atomic"
)

type listener struct {
	callback *Callback
	context  any
	owner    string
	once     bool
	// detached runs once when the listener leaves its bucket, whatever
	// removed it. It is called with the channel lock held.
	detached func()

	// fired is claimed before a fire-once listener runs, removed is set when
	// the listener leaves its bucket. Both are read by in-flight dispatches
	// working from a snapshot of the bucket.
	fired   atomic.Bool
	removed atomic.Bool
}

// matches reports whether l is selected by a removal for cb and owner. A nil
// cb or an empty owner selects nothing on its own.
func (l *listener) matches(cb *Callback, owner string) bool {
	if cb != nil && l.callback == cb {
		return true
	}
	return owner != "" && l.owner == owner
}

// claim reports whether l may run for the current dispatch.
func (l *listener) claim() bool {
	if l.removed.Load() {
		return false
	}
	if l.once {
		return l.fired.CompareAndSwap(false, true)
	}
	return true
}

func (l *listener) remove() {
	if l.removed.CompareAndSwap(false, true) && l.detached != nil {
		l.detached()
	}
}

// without returns the listeners of bucket for which drop is false, preserving
// their order, and marks the dropped ones as removed. The input slice is left
// untouched because dispatches may be iterating over it.
func without(bucket []*listener, drop func(*listener) bool) []*listener {
	kept := make([]*listener, 0, len(bucket))
	for _, l := range bucket {
		if drop(l) {
			l.remove()
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

func markRemoved(buckets map[string][]*listener) {
	for _, bucket := range buckets {
		for _, l := range bucket {
			l.remove()
		}
	}
}

// splitNames splits a whitespace delimited list of event or item names.
// An empty result for a non-empty input means the input held only whitespace.
func splitNames(names string) []string {
	return strings.Fields(names)
}
