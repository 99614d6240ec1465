package events

import (
	"context"
	"errors"
	"sync"
)

const memoryBusBuffer = 256

// ErrBusFull is returned when a subscriber's queue cannot take another event.
var ErrBusFull = errors.New("event bus subscriber queue is full")

// MemoryBus delivers events in-process. It serves a single API instance
// running without redis, and tests. Each subscriber drains its own queue on
// a goroutine, so Publish never waits on a handler.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[string][]*memorySub
}

type memorySub struct {
	queue chan Event
	done  <-chan struct{}
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string][]*memorySub)}
}

// Publish enqueues event for every live subscriber of stream. A full queue
// drops the event for that subscriber and reports ErrBusFull.
func (b *MemoryBus) Publish(_ context.Context, stream string, event Event) error {
	b.mu.RLock()
	subs := append([]*memorySub{}, b.subs[stream]...)
	b.mu.RUnlock()

	var err error
	for _, s := range subs {
		select {
		case <-s.done:
		case s.queue <- event:
		default:
			err = ErrBusFull
		}
	}
	return err
}

// Subscribe registers handler until ctx is done. Events reach handler in
// publish order.
func (b *MemoryBus) Subscribe(ctx context.Context, stream string, handler func(Event)) error {
	sub := &memorySub{queue: make(chan Event, memoryBusBuffer), done: ctx.Done()}

	b.mu.Lock()
	b.subs[stream] = append(b.subs[stream], sub)
	b.mu.Unlock()

	go func() {
		defer b.remove(stream, sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-sub.queue:
				handler(ev)
			}
		}
	}()
	return nil
}

func (b *MemoryBus) remove(stream string, sub *memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[stream]
	for i, s := range subs {
		if s == sub {
			b.subs[stream] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[stream]) == 0 {
		delete(b.subs, stream)
	}
}

func (b *MemoryBus) subscribers(stream string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[stream])
}
