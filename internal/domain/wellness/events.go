package wellness

import (
	"context"
	"sync"
	"time"
)

// EventType names a tip store mutation.
type EventType string

const (
	EventGenerated   EventType = "tips.generated"
	EventExpanded    EventType = "tip.expanded"
	EventFavorited   EventType = "tip.favorited"
	EventUnfavorited EventType = "tip.unfavorited"
	EventDeleted     EventType = "tip.deleted"
	EventTranslated  EventType = "tips.translated"
	EventCleared     EventType = "tips.cleared"
)

// Event is published after every successful mutation.
type Event struct {
	Type   EventType `json:"type"`
	TipIDs []string  `json:"tipIds,omitempty"`
	At     time.Time `json:"at"`
}

const subscriberBuffer = 16

// Broadcaster fans events out to subscribers. Slow subscribers drop events.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewBroadcaster constructs an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel that is closed once ctx is done.
func (b *Broadcaster) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(ch)
		b.mu.Unlock()
	}()
	return ch
}

// Publish delivers evt without blocking.
func (b *Broadcaster) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Subscribers reports the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
