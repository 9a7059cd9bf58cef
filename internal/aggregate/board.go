// Package aggregate runs the provider clients and publishes their
// snapshots to independent, atomically replaced slots.
package aggregate

import (
	"sync"
	"sync/atomic"

	"github.com/aryanbv/folio/internal/profile"
)

// Board holds the latest snapshot per source. Readers never observe a
// partially built snapshot: a slot is replaced, never mutated.
type Board struct {
	slots map[profile.Source]*atomic.Pointer[profile.Snapshot]

	mu   sync.Mutex
	subs map[chan profile.Source]struct{}
}

// NewBoard creates a board with one empty slot per known source.
func NewBoard() *Board {
	b := &Board{
		slots: make(map[profile.Source]*atomic.Pointer[profile.Snapshot], len(profile.Sources)),
		subs:  make(map[chan profile.Source]struct{}),
	}
	for _, src := range profile.Sources {
		b.slots[src] = new(atomic.Pointer[profile.Snapshot])
	}
	return b
}

// Get returns the current snapshot for src, or nil before the first store.
func (b *Board) Get(src profile.Source) *profile.Snapshot {
	slot, ok := b.slots[src]
	if !ok {
		return nil
	}
	return slot.Load()
}

// Store replaces the slot for s.Source and notifies subscribers.
// Snapshots for unknown sources are ignored.
func (b *Board) Store(s *profile.Snapshot) {
	slot, ok := b.slots[s.Source]
	if !ok {
		return
	}
	slot.Store(s)
	b.notify(s.Source)
}

// Ready reports whether every source has resolved at least once.
func (b *Board) Ready() bool {
	for _, slot := range b.slots {
		if slot.Load() == nil {
			return false
		}
	}
	return true
}

// Subscribe returns a channel that receives the source of every replaced
// slot. Sends never block: a full channel drops the notification, and the
// subscriber reads the latest snapshot via Get. Call cancel to unsubscribe.
func (b *Board) Subscribe(buffer int) (<-chan profile.Source, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan profile.Source, buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Board) notify(src profile.Source) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- src:
		default:
		}
	}
}
