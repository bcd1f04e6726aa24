package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestQueue(limit int) (*Queue, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	q := NewQueue(5*time.Second, 10*time.Second, limit)
	q.now = clock.now
	return q, clock
}

func TestQueue_AudiencesAreIsolated(t *testing.T) {
	q, _ := newTestQueue(3)
	q.For("a").Notify(Info("Images added", "2 image(s) added successfully"))
	q.For("b").Notify(Failure("Error", "Failed to read some images"))

	a := q.Pending("a")
	require.Len(t, a, 1)
	require.Equal(t, "Images added", a[0].Title)
	require.Equal(t, Default, a[0].Variant)
	require.NotEmpty(t, a[0].ID)

	b := q.Pending("b")
	require.Len(t, b, 1)
	require.Equal(t, Destructive, b[0].Variant)
}

func TestQueue_LifetimeDefaultsAndCap(t *testing.T) {
	q, clock := newTestQueue(3)
	short := q.Push("s", Info("short", ""))
	long := q.Push("s", Notice{Title: "long", Duration: time.Minute})

	require.Equal(t, clock.t.Add(5*time.Second), short.ExpiresAt)
	require.Equal(t, clock.t.Add(10*time.Second), long.ExpiresAt)

	clock.advance(6 * time.Second)
	got := q.Pending("s")
	require.Len(t, got, 1)
	require.Equal(t, "long", got[0].Title)

	clock.advance(5 * time.Second)
	require.Empty(t, q.Pending("s"))
}

func TestQueue_LimitDropsOldest(t *testing.T) {
	q, _ := newTestQueue(2)
	for _, title := range []string{"one", "two", "three"} {
		q.Push("s", Info(title, ""))
	}
	got := q.Pending("s")
	require.Len(t, got, 2)
	require.Equal(t, "two", got[0].Title)
	require.Equal(t, "three", got[1].Title)
}

func TestQueue_Dismiss(t *testing.T) {
	q, _ := newTestQueue(3)
	n := q.Push("s", Info("x", ""))
	require.True(t, q.Dismiss("s", n.ID))
	require.False(t, q.Dismiss("s", n.ID))
	require.Empty(t, q.Pending("s"))
}

func TestQueue_SubscribeReceivesPushes(t *testing.T) {
	q, _ := newTestQueue(3)
	ch, cancel := q.Subscribe("s")

	q.Push("other", Info("not mine", ""))
	q.Push("s", Info("mine", ""))

	select {
	case n := <-ch:
		require.Equal(t, "mine", n.Title)
	case <-time.After(time.Second):
		t.Fatal("no notice delivered")
	}

	cancel()
	cancel()
	_, open := <-ch
	require.False(t, open)
}

func TestQueue_Sweep(t *testing.T) {
	q, clock := newTestQueue(3)
	q.Push("a", Info("x", ""))
	q.Push("b", Info("y", ""))
	clock.advance(time.Minute)

	require.Equal(t, 2, q.Sweep())
	require.Equal(t, 0, q.Sweep())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	require.False(t, ok)

	r.Notify(Info("a", ""))
	r.Notify(Info("b", ""))
	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, "b", last.Title)
	require.Len(t, r.Notices(), 2)
}
