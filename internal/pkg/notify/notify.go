// Package notify is the transient user-facing message channel. Flows talk
// to a Sink; the process-wide Queue stores notices per audience until they
// expire or are dismissed.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

type Notice struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     Variant       `json:"variant"`
	Duration    time.Duration `json:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

// Sink receives notices for one audience.
type Sink interface {
	Notify(n Notice)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notice)

func (f SinkFunc) Notify(n Notice) { f(n) }

// Info and Failure build the two notice shapes the flows use.
func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: Default}
}

func Failure(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: Destructive}
}

// Queue is the process-wide notice store.
type Queue struct {
	mu          sync.Mutex
	pending     map[string][]Notice
	subscribers map[string]map[chan Notice]struct{}
	ttl         time.Duration
	maxTTL      time.Duration
	limit       int
	now         func() time.Time
}

// NewQueue creates a queue whose notices live ttl by default, never longer
// than maxTTL, with at most limit kept per audience.
func NewQueue(ttl, maxTTL time.Duration, limit int) *Queue {
	if maxTTL < ttl {
		maxTTL = ttl
	}
	if limit < 1 {
		limit = 1
	}
	return &Queue{
		pending:     make(map[string][]Notice),
		subscribers: make(map[string]map[chan Notice]struct{}),
		ttl:         ttl,
		maxTTL:      maxTTL,
		limit:       limit,
		now:         time.Now,
	}
}

// For returns the Sink that addresses audience.
func (q *Queue) For(audience string) Sink {
	return SinkFunc(func(n Notice) { q.Push(audience, n) })
}

// Push stamps n and stores it for audience, dropping the oldest notice when
// the audience is at its limit. Live subscribers get a copy immediately.
func (q *Queue) Push(audience string, n Notice) Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Variant == "" {
		n.Variant = Default
	}
	life := n.Duration
	if life <= 0 {
		life = q.ttl
	}
	if life > q.maxTTL {
		life = q.maxTTL
	}
	n.Duration = life
	n.CreatedAt = now
	n.ExpiresAt = now.Add(life)

	list := append(q.live(audience, now), n)
	if len(list) > q.limit {
		list = list[len(list)-q.limit:]
	}
	q.pending[audience] = list

	for ch := range q.subscribers[audience] {
		select {
		case ch <- n:
		default:
			// slow reader; it will still see n through Pending
		}
	}
	return n
}

// live returns audience's unexpired notices. Caller holds mu.
func (q *Queue) live(audience string, now time.Time) []Notice {
	list := q.pending[audience]
	out := list[:0]
	for _, n := range list {
		if now.Before(n.ExpiresAt) {
			out = append(out, n)
		}
	}
	return out
}

// Pending returns the audience's active notices, oldest first.
func (q *Queue) Pending(audience string) []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	list := q.live(audience, q.now())
	if len(list) == 0 {
		delete(q.pending, audience)
		return []Notice{}
	}
	q.pending[audience] = list
	return append([]Notice(nil), list...)
}

// Dismiss removes one notice; it reports whether it was present.
func (q *Queue) Dismiss(audience, id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	list := q.pending[audience]
	for i, n := range list {
		if n.ID == id {
			q.pending[audience] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribe streams new notices for audience until cancel is called.
func (q *Queue) Subscribe(audience string) (<-chan Notice, func()) {
	ch := make(chan Notice, q.limit)

	q.mu.Lock()
	subs, ok := q.subscribers[audience]
	if !ok {
		subs = make(map[chan Notice]struct{})
		q.subscribers[audience] = subs
	}
	subs[ch] = struct{}{}
	q.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			q.mu.Lock()
			delete(q.subscribers[audience], ch)
			if len(q.subscribers[audience]) == 0 {
				delete(q.subscribers, audience)
			}
			q.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Sweep drops expired notices across all audiences and returns how many
// were removed.
func (q *Queue) Sweep() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	removed := 0
	for audience, list := range q.pending {
		before := len(list)
		kept := q.live(audience, now)
		removed += before - len(kept)
		if len(kept) == 0 {
			delete(q.pending, audience)
		} else {
			q.pending[audience] = kept
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
func (q *Queue) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				q.Sweep()
			}
		}
	}()
}
