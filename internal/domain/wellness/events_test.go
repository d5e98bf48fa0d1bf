package wellness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcasterDeliversAndCloses(t *testing.T) {
	b := NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	require.Equal(t, 1, b.Subscribers())

	b.Publish(Event{Type: EventCleared})
	evt := <-ch
	require.Equal(t, EventCleared, evt.Type)

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, 0, b.Subscribers())
}

func TestBroadcasterDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx)

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(Event{Type: EventGenerated})
	}
	require.Len(t, ch, subscriberBuffer)
}
