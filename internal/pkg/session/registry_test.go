package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type draft struct{ n int }

func TestRegistry_GetCreatesOnce(t *testing.T) {
	created := 0
	r := NewRegistry(time.Hour, func() *draft { created++; return &draft{} })

	a := r.Get("s1")
	a.n = 7
	require.Same(t, a, r.Get("s1"))
	require.Equal(t, 7, r.Get("s1").n)
	require.NotSame(t, a, r.Get("s2"))
	require.Equal(t, 2, created)
	require.Equal(t, 2, r.Len())
}

func TestRegistry_SweepDropsIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Hour, func() *draft { return &draft{} })
	r.now = func() time.Time { return now }

	r.Get("old")
	now = now.Add(45 * time.Minute)
	r.Get("fresh")
	now = now.Add(30 * time.Minute)

	require.Equal(t, 1, r.Sweep())
	require.Equal(t, 1, r.Len())

	r.Delete("fresh")
	require.Equal(t, 0, r.Len())
}
