// Package errorqueue provides a bounded FIFO of user-facing error
// messages. Background workers push into it and the UI surface reads the
// oldest entry until the user dismisses it.
package errorqueue

import (
	"sync"

	"github.com/gammazero/deque"
)

// DefaultCapacity is used when no capacity is given.
const DefaultCapacity = 10

// Queue is a bounded FIFO of error strings. When full, the oldest entry is
// dropped to make room. Safe for concurrent use.
type Queue struct {
	mtx      sync.Mutex
	capacity int
	messages deque.Deque[string]
}

// New returns a queue holding at most capacity messages.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{capacity: capacity}
}

// Push appends a message, dropping the oldest one if the queue is full.
func (q *Queue) Push(msg string) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if q.messages.Len() >= q.capacity {
		q.messages.PopFront()
	}
	q.messages.PushBack(msg)
}

// Top returns the oldest message without removing it.
func (q *Queue) Top() (string, bool) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if q.messages.Len() == 0 {
		return "", false
	}
	return q.messages.Front(), true
}

// Pop removes the oldest message.
func (q *Queue) Pop() {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if q.messages.Len() > 0 {
		q.messages.PopFront()
	}
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return q.messages.Len()
}
