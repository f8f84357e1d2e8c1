package broadcast

import (
	"testing"
	"time"

	"sitewatch/internal/monitor/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	events1, unsub1 := b.Subscribe()
	defer unsub1()
	events2, unsub2 := b.Subscribe()
	defer unsub2()

	event := StatusEvent{SiteID: "site-1", Status: model.SiteStatusUp, Timestamp: time.Now()}
	b.Publish(event)

	got1 := <-events1
	got2 := <-events2
	assert.Equal(t, "site-1", got1.SiteID)
	assert.Equal(t, "site-1", got2.SiteID)
}

func TestBroadcaster_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	done := make(chan struct{})
	go func() {
		b.Publish(StatusEvent{SiteID: "site-1"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no subscribers")
	}
}

func TestBroadcaster_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	events, unsub := b.Subscribe()
	defer unsub()

	// Overfill the subscriber's channel; extra events must be dropped without
	// blocking the publisher.
	for i := 0; i < 100; i++ {
		b.Publish(StatusEvent{SiteID: "site-1"})
	}
	assert.Equal(t, 16, len(events))
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	events, unsub := b.Subscribe()
	unsub()

	_, ok := <-events
	assert.False(t, ok)

	// A second unsubscribe is a no-op.
	unsub()

	// Publishing after unsubscribe must not panic on the closed channel.
	b.Publish(StatusEvent{SiteID: "site-1"})
}

func TestBroadcaster_CloseClosesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()

	events1, unsub1 := b.Subscribe()
	events2, _ := b.Subscribe()
	b.Close()

	_, ok := <-events1
	assert.False(t, ok)
	_, ok = <-events2
	assert.False(t, ok)

	// Unsubscribing after Close must not double-close.
	unsub1()
}

func TestBroadcaster_SubscribeAfterClose(t *testing.T) {
	b := NewBroadcaster()
	b.Close()

	events, unsub := b.Subscribe()
	defer unsub()

	_, ok := <-events
	require.False(t, ok)
}
