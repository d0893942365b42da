package state

import "log/slog"

// ValueOption configures a Value during NewValue.
type ValueOption[T any] func(*Value[T])

// WithValue writes an initial value. Listeners registered by earlier options
// observe the write; listeners registered by later options do not.
func WithValue[T any](value T) ValueOption[T] {
	return func(v *Value[T]) {
		v.Set(value)
	}
}

// WithOnChange registers a change listener.
func WithOnChange[T any](fn ChangeListener[T]) ValueOption[T] {
	return func(v *Value[T]) {
		v.SetOnChange(fn)
	}
}

// WithOnSet registers a set listener.
func WithOnSet[T any](fn SetListener[T]) ValueOption[T] {
	return func(v *Value[T]) {
		v.SetOnSet(fn)
	}
}

// WithIdentity overrides the comparison used to detect a replaced value.
func WithIdentity[T any](fn IdentityFunc[T]) ValueOption[T] {
	return func(v *Value[T]) {
		v.SetIdentityFunc(fn)
	}
}

// WithValueLogger sets the logger for one value.
func WithValueLogger[T any](logger *slog.Logger) ValueOption[T] {
	return func(v *Value[T]) {
		v.logger = logger
	}
}

// ListOption configures a List during NewList.
type ListOption[T any] func(*List[T])

// WithCapacity preallocates room for n items.
func WithCapacity[T any](n int) ListOption[T] {
	return func(l *List[T]) {
		if n <= 0 || n <= cap(l.items) {
			return
		}
		items := make([]T, len(l.items), n)
		copy(items, l.items)
		l.items = items
	}
}

// WithItems copies items into the list without notifying.
func WithItems[T any](items ...T) ListOption[T] {
	return func(l *List[T]) {
		l.items = append(l.items, items...)
	}
}

// WithOnListChange registers the change listener.
func WithOnListChange[T any](fn ListChangeListener[T]) ListOption[T] {
	return func(l *List[T]) {
		l.listener = fn
	}
}

// WithEqual overrides the element comparison used by Remove, RemoveAll,
// IndexOf and Contains.
func WithEqual[T any](fn EqualFunc[T]) ListOption[T] {
	return func(l *List[T]) {
		if fn != nil {
			l.equal = fn
		}
	}
}

// WithListLogger sets the logger for one list.
func WithListLogger[T any](logger *slog.Logger) ListOption[T] {
	return func(l *List[T]) {
		l.logger = logger
	}
}
