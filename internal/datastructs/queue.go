package datastructs

// Queue is a bounded FIFO handed between HTTP handlers and a worker
// goroutine.
type Queue[T any] struct {
	data chan T
}

func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{data: make(chan T, size)}
}

// Enqueue reports whether the value was accepted; a full queue rejects
// it instead of blocking the producer.
func (q *Queue[T]) Enqueue(value T) bool {
	select {
	case q.data <- value:
		return true
	default:
		return false
	}
}

// Dequeue blocks until a value is available.
func (q *Queue[T]) Dequeue() T {
	return <-q.data
}

func (q *Queue[T]) Len() int { return len(q.data) }
