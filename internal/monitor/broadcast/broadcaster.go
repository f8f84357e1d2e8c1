package broadcast

import (
	"sync"
	"time"
)

// StatusEvent is the live-update payload pushed to dashboard viewers after
// each completed cycle.
type StatusEvent struct {
	SiteID         string     `json:"site_id"`
	Status         string     `json:"status"`
	ResponseTimeMs *int64     `json:"response_time_ms,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
	SSLValid       *bool      `json:"ssl_valid,omitempty"`
	SSLExpiresAt   *time.Time `json:"ssl_expires_at,omitempty"`
	SSLDaysLeft    *int       `json:"ssl_days_left,omitempty"`
}

// Broadcaster fans status events out to all current subscribers. Delivery is
// best effort: sends never block, and events published while a subscriber's
// channel is full are dropped for that subscriber.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]chan StatusEvent
	nextID int
	closed bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]chan StatusEvent),
	}
}

// Subscribe registers a new subscriber and returns its event channel together
// with an unsubscribe function. Unsubscribing closes the channel.
func (b *Broadcaster) Subscribe() (<-chan StatusEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan StatusEvent, 16)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

// Publish delivers event to every subscriber without blocking. With no
// subscribers the event is simply dropped.
func (b *Broadcaster) Publish(event StatusEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
}

// Close unsubscribes everyone and closes their channels.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub)
	}
}
