package radio

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Batch is an insertion ordered set of name/value pairs, used to register
// several listeners or replies in one call. Entries are applied in the order
// they were first set; setting an existing name replaces its value in place.
//
//	ch.OnBatch(radio.NewBatch[*radio.Callback]().
//		Set("open", onOpen).
//		Set("close", onClose))
type Batch[V any] struct {
	entries *orderedmap.OrderedMap[string, V]
}

// NewBatch returns an empty batch. The zero Batch is ready to use as well.
func NewBatch[V any]() *Batch[V] {
	return &Batch[V]{entries: orderedmap.New[string, V]()}
}

// Set adds name with value, or replaces the value when name is already set.
func (b *Batch[V]) Set(name string, value V) *Batch[V] {
	if b.entries == nil {
		b.entries = orderedmap.New[string, V]()
	}
	b.entries.Set(name, value)
	return b
}

// Len returns the number of entries in the batch.
func (b *Batch[V]) Len() int {
	if b == nil || b.entries == nil {
		return 0
	}
	return b.entries.Len()
}

func (b *Batch[V]) each(fn func(name string, value V)) {
	if b == nil || b.entries == nil {
		return
	}
	for pair := b.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
