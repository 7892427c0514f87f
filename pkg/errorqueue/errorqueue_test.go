package errorqueue_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjuan-mob/mobilecoind-buddy/pkg/errorqueue"
)

func TestQueueOrdering(t *testing.T) {
	t.Parallel()

	q := errorqueue.New(3)
	_, ok := q.Top()
	require.False(t, ok)

	q.Push("first")
	q.Push("second")

	msg, ok := q.Top()
	require.True(t, ok)
	require.Equal(t, "first", msg)

	q.Pop()
	msg, ok = q.Top()
	require.True(t, ok)
	require.Equal(t, "second", msg)

	q.Pop()
	q.Pop() // popping an empty queue is a no-op
	require.Zero(t, q.Len())
}

func TestQueueDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	q := errorqueue.New(3)
	for i := 0; i < 5; i++ {
		q.Push(fmt.Sprintf("msg %d", i))
	}
	require.Equal(t, 3, q.Len())

	msg, ok := q.Top()
	require.True(t, ok)
	require.Equal(t, "msg 2", msg)
}

func TestQueueDefaultCapacity(t *testing.T) {
	t.Parallel()

	q := errorqueue.New(0)
	for i := 0; i < errorqueue.DefaultCapacity+5; i++ {
		q.Push(fmt.Sprintf("msg %d", i))
	}
	require.Equal(t, errorqueue.DefaultCapacity, q.Len())
}
