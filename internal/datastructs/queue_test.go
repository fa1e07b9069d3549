package datastructs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueBounded(t *testing.T) {
	q := NewQueue[int](2)

	assert.True(t, q.Enqueue(1))
	assert.True(t, q.Enqueue(2))
	assert.False(t, q.Enqueue(3), "full queue must reject, not block")
	assert.Equal(t, 2, q.Len())

	assert.Equal(t, 1, q.Dequeue())
	assert.Equal(t, 2, q.Dequeue())
	assert.Equal(t, 0, q.Len())
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue[string](4)
	for _, s := range []string{"a", "b", "c"} {
		q.Enqueue(s)
	}
	assert.Equal(t, "a", q.Dequeue())
	assert.Equal(t, "b", q.Dequeue())
	assert.Equal(t, "c", q.Dequeue())
}
