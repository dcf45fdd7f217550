package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFiresOnceAtDeadline(t *testing.T) {
	q := NewQueue(epoch)
	calls := 0
	h := q.Register(500*time.Millisecond, func() { calls++ })

	assert.Equal(t, 0, q.Advance(epoch.Add(499*time.Millisecond)))
	assert.Equal(t, 0, calls)
	assert.True(t, q.Pending(h))

	assert.Equal(t, 1, q.Advance(epoch.Add(500*time.Millisecond)))
	assert.Equal(t, 1, calls)
	assert.False(t, q.Pending(h))

	q.Advance(epoch.Add(time.Hour))
	assert.Equal(t, 1, calls)
}

func TestCancel(t *testing.T) {
	q := NewQueue(epoch)
	fired := false
	h := q.Register(time.Second, func() { fired = true })

	q.Cancel(h)
	q.Advance(epoch.Add(2 * time.Second))
	assert.False(t, fired)

	// Cancelling fired, cancelled and never-issued handles is harmless.
	q.Cancel(h)
	q.Cancel(0)
	q.Cancel(Handle(999))
	assert.Equal(t, 0, q.Len())
}

func TestOrder(t *testing.T) {
	q := NewQueue(epoch)
	var order []string
	q.Register(2*time.Second, func() { order = append(order, "c") })
	q.Register(time.Second, func() { order = append(order, "a") })
	q.Register(time.Second, func() { order = append(order, "b") })

	q.Advance(epoch.Add(5 * time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestReentrantRegister(t *testing.T) {
	q := NewQueue(epoch)
	var at []time.Time
	q.Register(time.Second, func() {
		at = append(at, q.Now())
		q.Register(time.Second, func() { at = append(at, q.Now()) })
	})

	q.Advance(epoch.Add(3 * time.Second))
	require.Len(t, at, 2)
	assert.Equal(t, epoch.Add(time.Second), at[0])
	assert.Equal(t, epoch.Add(2*time.Second), at[1])
	assert.Equal(t, epoch.Add(3*time.Second), q.Now())
}

func TestNext(t *testing.T) {
	q := NewQueue(epoch)
	_, ok := q.Next()
	assert.False(t, ok)

	q.Register(3*time.Second, func() {})
	q.Register(time.Second, func() {})
	next, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, epoch.Add(time.Second), next)
}

func TestAdvanceBefore(t *testing.T) {
	q := NewQueue(epoch)
	var fired []string
	q.Register(time.Second, func() { fired = append(fired, "a") })
	q.Register(2*time.Second, func() { fired = append(fired, "b") })

	assert.Equal(t, 1, q.AdvanceBefore(epoch.Add(2*time.Second)))
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, epoch.Add(2*time.Second), q.Now())

	// Registered at the new time, not the last deadline fired.
	h := q.Register(500*time.Millisecond, func() {})
	assert.Equal(t, 1, q.Advance(epoch.Add(2499*time.Millisecond)))
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.True(t, q.Pending(h))

	assert.Equal(t, 1, q.Advance(epoch.Add(2500*time.Millisecond)))
	assert.False(t, q.Pending(h))
}
