package state

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/oklog/ulid/v2"
)

// List is an ordered sequence that notifies its listener before each
// structural mutation.
//
// The listener runs before the mutation is applied and outside the list
// lock, so it may read the list and observes the old contents. Failures of
// the mutation itself are returned after the listener has run.
type List[T any] struct {
	id ulid.ULID

	mu       sync.Mutex
	items    []T
	listener ListChangeListener[T]
	equal    EqualFunc[T]
	logger   *slog.Logger
}

// NewList creates a List configured by opts.
func NewList[T any](opts ...ListOption[T]) *List[T] {
	l := &List[T]{id: ulid.Make(), equal: EqualDeep[T]}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// ID returns the identifier used for this list in log records.
func (l *List[T]) ID() ulid.ULID {
	if l == nil {
		return ulid.ULID{}
	}
	return l.id
}

// OnListChange returns the change listener.
func (l *List[T]) OnListChange() ListChangeListener[T] {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listener
}

// SetOnListChange replaces the change listener. A nil fn removes it.
func (l *List[T]) SetOnListChange(fn ListChangeListener[T]) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.listener = fn
	l.mu.Unlock()
}

// HasListener reports whether a change listener is registered.
func (l *List[T]) HasListener() bool {
	return l.OnListChange() != nil
}

// SetEqualFunc configures the element comparison. A nil fn restores EqualDeep.
func (l *List[T]) SetEqualFunc(fn EqualFunc[T]) {
	if l == nil {
		return
	}
	if fn == nil {
		fn = EqualDeep[T]
	}
	l.mu.Lock()
	l.equal = fn
	l.mu.Unlock()
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the item at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if l == nil {
		return zero, indexError(index, 0)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	return l.items[index], nil
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// All iterates over a snapshot of the items.
func (l *List[T]) All() iter.Seq2[int, T] {
	items := l.Items()
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	if l == nil {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexLocked(item)
}

// Contains reports whether an item equal to item is present.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// Append adds item to the end.
func (l *List[T]) Append(item T) {
	if l == nil {
		return
	}
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size + 1, Added: []T{item}}
	})
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
}

// AppendAll adds items to the end. An empty call still notifies.
func (l *List[T]) AppendAll(items ...T) {
	if l == nil {
		return
	}
	added := append([]T{}, items...)
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size + len(added), Added: added}
	})
	l.mu.Lock()
	l.items = append(l.items, added...)
	l.mu.Unlock()
}

// Insert adds item at index, shifting later items.
func (l *List[T]) Insert(index int, item T) error {
	return l.InsertAll(index, item)
}

// InsertAll adds items at index, shifting later items. The listener is
// notified before the index is checked.
func (l *List[T]) InsertAll(index int, items ...T) error {
	if l == nil {
		return indexError(index, 0)
	}
	added := append([]T{}, items...)
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size + len(added), Added: added}
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index > len(l.items) {
		return indexError(index, len(l.items))
	}
	l.items = slices.Insert(l.items, index, added...)
	return nil
}

// Remove deletes the first item equal to item and reports whether one was
// found. The listener is notified even when nothing is removed.
func (l *List[T]) Remove(item T) bool {
	if l == nil {
		return false
	}
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size - 1, Removed: []T{item}}
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexLocked(item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// RemoveAt deletes and returns the item at index. An index out of range
// fails before the listener is notified.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if l == nil {
		return zero, indexError(index, 0)
	}
	item, err := l.Get(index)
	if err != nil {
		return zero, err
	}
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size - 1, Removed: []T{item}}
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	if index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return removed, nil
}

// RemoveAll deletes every item equal to any of items and reports whether
// the list changed. NewSize is projected as the current size minus
// len(items), whatever is actually removed.
func (l *List[T]) RemoveAll(items ...T) bool {
	if l == nil {
		return false
	}
	removed := append([]T{}, items...)
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size - len(removed), Removed: removed}
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	equal := l.equalLocked()
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(have T) bool {
		return slices.ContainsFunc(removed, func(want T) bool {
			return equal(have, want)
		})
	})
	return len(l.items) != before
}

// SetAt replaces the item at index and returns the previous item. The
// listener is notified before the index is checked.
func (l *List[T]) SetAt(index int, item T) (T, error) {
	var zero T
	if l == nil {
		return zero, indexError(index, 0)
	}
	l.notify(func(size int) ListChange[T] {
		return ListChange[T]{OldSize: size, NewSize: size, Replaced: []T{item}}
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	old := l.items[index]
	l.items[index] = item
	return old, nil
}

// notify builds the event from the current size and delivers it when a
// listener is registered.
func (l *List[T]) notify(build func(size int) ListChange[T]) {
	l.mu.Lock()
	fn := l.listener
	if fn == nil {
		l.mu.Unlock()
		return
	}
	change := build(len(l.items))
	logger := loggerOr(l.logger)
	l.mu.Unlock()

	logger.Debug("state.list.change",
		slog.String("id", l.id.String()),
		slog.String("kind", change.Kind().String()),
		slog.Int("old_size", change.OldSize),
		slog.Int("new_size", change.NewSize))
	fn(change)
}

func (l *List[T]) indexLocked(item T) int {
	equal := l.equalLocked()
	return slices.IndexFunc(l.items, func(have T) bool {
		return equal(have, item)
	})
}

func (l *List[T]) equalLocked() EqualFunc[T] {
	if l.equal == nil {
		return EqualDeep[T]
	}
	return l.equal
}
