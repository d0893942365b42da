package state

import "sync"

// Scheduler dispatches work triggered by a notification.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn using the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// DirectScheduler runs callbacks immediately in the caller goroutine.
var DirectScheduler Scheduler = SchedulerFunc(func(fn func()) {
	if fn != nil {
		fn()
	}
})

// AsyncScheduler runs callbacks in a new goroutine.
type AsyncScheduler struct{}

// Schedule dispatches fn asynchronously.
func (AsyncScheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}

// Queue batches callbacks for explicit flushing.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for later flushing.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush executes queued callbacks and returns the count.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// ScheduleChange wraps fn so each change notification is handed to
// scheduler. The Value still notifies synchronously; only fn is deferred.
// A nil scheduler runs fn directly.
func ScheduleChange[T any](scheduler Scheduler, fn ChangeListener[T]) ChangeListener[T] {
	if fn == nil {
		return nil
	}
	if scheduler == nil {
		return fn
	}
	return func(old, new T) {
		scheduler.Schedule(func() { fn(old, new) })
	}
}

// ScheduleSet wraps a set listener the way ScheduleChange does.
func ScheduleSet[T any](scheduler Scheduler, fn SetListener[T]) SetListener[T] {
	if fn == nil {
		return nil
	}
	if scheduler == nil {
		return fn
	}
	return func(value T) {
		scheduler.Schedule(func() { fn(value) })
	}
}

// ScheduleListChange wraps a list listener the way ScheduleChange does.
// Deferred handlers see the list after the mutation has been applied.
func ScheduleListChange[T any](scheduler Scheduler, fn ListChangeListener[T]) ListChangeListener[T] {
	if fn == nil {
		return nil
	}
	if scheduler == nil {
		return fn
	}
	return func(change ListChange[T]) {
		scheduler.Schedule(func() { fn(change) })
	}
}
