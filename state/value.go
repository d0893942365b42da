// Package state provides observable containers for UI and derived state:
// a single-slot Value with change/set listeners and value bindings, and a
// List that reports structural changes to a listener before applying them.
package state

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// ChangeListener is notified when a Value is replaced by a different instance.
type ChangeListener[T any] func(old, new T)

// SetListener is notified on every write to a Value.
type SetListener[T any] func(value T)

// Value holds one value, notifies listeners on writes and mirrors writes into
// at most one bound Value.
//
// Writes to a Value are serialized. A listener may read the Value or change
// its listeners and bindings, but must not write to the Value it observes.
// Writes to both ends of a bidirectional binding must not run concurrently.
type Value[T any] struct {
	id ulid.ULID

	// writeMu serializes Set, including listener callbacks and propagation.
	writeMu sync.Mutex

	mu        sync.Mutex
	value     T
	set       bool
	onChange  ChangeListener[T]
	onSet     SetListener[T]
	same      IdentityFunc[T]
	boundTo   *Value[T]
	boundFrom *Value[T]
	logger    *slog.Logger

	propagating atomic.Bool
}

// NewValue creates a Value configured by opts, applied in order.
func NewValue[T any](opts ...ValueOption[T]) *Value[T] {
	v := &Value[T]{id: ulid.Make(), same: Identical[T]}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// ID returns the identifier used for this value in log records.
func (v *Value[T]) ID() ulid.ULID {
	if v == nil {
		return ulid.ULID{}
	}
	return v.id
}

// Get returns the stored value.
func (v *Value[T]) Get() T {
	if v == nil {
		var zero T
		return zero
	}
	v.mu.Lock()
	value := v.value
	v.mu.Unlock()
	return value
}

// IsEmpty reports whether the stored value is the zero value.
func (v *Value[T]) IsEmpty() bool {
	return isZero(v.Get())
}

// IsSet reports whether a value has been stored at least once.
func (v *Value[T]) IsSet() bool {
	if v == nil {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.set
}

// Set writes value.
//
// The change listener runs first, only when value is not identical to the
// stored one. The set listener runs next, on every write. The write is then
// mirrored into the bound value, unless this value is itself the target of
// a propagation in progress. The value is stored last, so listeners observe
// the previous value through Get.
func (v *Value[T]) Set(value T) {
	if v == nil {
		return
	}
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	v.mu.Lock()
	old := v.value
	onChange, same := v.onChange, v.same
	v.mu.Unlock()
	if same == nil {
		same = Identical[T]
	}

	if onChange != nil && !same(old, value) {
		onChange(old, value)
	}

	v.mu.Lock()
	onSet := v.onSet
	v.mu.Unlock()
	if onSet != nil {
		onSet(value)
	}

	v.mu.Lock()
	target := v.boundTo
	v.mu.Unlock()
	if target != nil {
		if v.propagating.Load() {
			v.log().Debug("state.value.propagate.suppressed",
				slog.String("id", v.id.String()),
				slog.String("target", target.id.String()))
		} else {
			propagate(target, value)
		}
	}

	v.mu.Lock()
	v.value = value
	v.set = true
	v.mu.Unlock()
}

// propagate writes value into target with target's guard raised for the
// duration of the write.
func propagate[T any](target *Value[T], value T) {
	target.propagating.Store(true)
	defer target.propagating.Store(false)
	target.Set(value)
}

// SetIdentityFunc configures the comparison that decides whether a write
// replaces the stored value. A nil fn restores Identical.
func (v *Value[T]) SetIdentityFunc(fn IdentityFunc[T]) {
	if v == nil {
		return
	}
	if fn == nil {
		fn = Identical[T]
	}
	v.mu.Lock()
	v.same = fn
	v.mu.Unlock()
}

// OnChange returns the change listener.
func (v *Value[T]) OnChange() ChangeListener[T] {
	if v == nil {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.onChange
}

// SetOnChange replaces the change listener. A nil fn removes it.
func (v *Value[T]) SetOnChange(fn ChangeListener[T]) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

// HasChangeListener reports whether a change listener is registered.
func (v *Value[T]) HasChangeListener() bool {
	return v.OnChange() != nil
}

// OnSet returns the set listener.
func (v *Value[T]) OnSet() SetListener[T] {
	if v == nil {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.onSet
}

// SetOnSet replaces the set listener. A nil fn removes it.
func (v *Value[T]) SetOnSet(fn SetListener[T]) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.onSet = fn
	v.mu.Unlock()
}

// HasSetListener reports whether a set listener is registered.
func (v *Value[T]) HasSetListener() bool {
	return v.OnSet() != nil
}

// Bind makes writes to source propagate into v.
//
// Bind raises v's own propagation guard, so a write into v that would be
// mirrored onward is suppressed until a propagated write from source resets
// it. BindBidirectional does not do this.
func (v *Value[T]) Bind(source *Value[T]) {
	if v == nil || source == nil || v == source {
		return
	}
	v.propagating.Store(true)

	source.mu.Lock()
	source.boundTo = v
	source.mu.Unlock()

	v.mu.Lock()
	v.boundFrom = source
	v.mu.Unlock()

	v.log().Debug("state.value.bind",
		slog.String("id", v.id.String()),
		slog.String("source", source.id.String()))
}

// BindBidirectional makes writes to either v or other propagate into the
// other. Propagation stops after one hop.
func (v *Value[T]) BindBidirectional(other *Value[T]) {
	if v == nil || other == nil || v == other {
		return
	}
	other.mu.Lock()
	other.boundTo = v
	other.boundFrom = v
	other.mu.Unlock()

	v.mu.Lock()
	v.boundTo = other
	v.boundFrom = other
	v.mu.Unlock()

	v.log().Debug("state.value.bind_bidirectional",
		slog.String("id", v.id.String()),
		slog.String("other", other.id.String()))
}

// Unbind severs the link to the value pushing into v, in both directions.
// It does nothing when no value pushes into v.
func (v *Value[T]) Unbind() {
	if v == nil {
		return
	}
	v.mu.Lock()
	from := v.boundFrom
	if from == nil {
		v.mu.Unlock()
		return
	}
	v.boundTo = nil
	v.boundFrom = nil
	v.mu.Unlock()

	from.mu.Lock()
	from.boundTo = nil
	from.boundFrom = nil
	from.mu.Unlock()

	v.log().Debug("state.value.unbind",
		slog.String("id", v.id.String()),
		slog.String("from", from.id.String()))
}

// IsBound reports whether v pushes writes into, or receives writes from,
// another value.
func (v *Value[T]) IsBound() bool {
	if v == nil {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.boundTo != nil || v.boundFrom != nil
}

func (v *Value[T]) log() *slog.Logger {
	v.mu.Lock()
	l := v.logger
	v.mu.Unlock()
	return loggerOr(l)
}
