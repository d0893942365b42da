package state

import "sync"

// Links tracks bindings and detach callbacks and releases them together,
// typically when the widget that created them is unmounted.
type Links struct {
	mu      sync.Mutex
	release []func()
}

// Add registers a callback to run on Clear.
func (l *Links) Add(fn func()) {
	if l == nil || fn == nil {
		return
	}
	l.mu.Lock()
	l.release = append(l.release, fn)
	l.mu.Unlock()
}

// Track registers u to be unbound on Clear.
func (l *Links) Track(u Unbindable) {
	if u == nil {
		return
	}
	l.Add(u.Unbind)
}

// Len returns the number of tracked callbacks.
func (l *Links) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.release)
}

// Clear runs and forgets every tracked callback, most recent first.
func (l *Links) Clear() {
	if l == nil {
		return
	}
	l.mu.Lock()
	release := l.release
	l.release = nil
	l.mu.Unlock()
	for i := len(release) - 1; i >= 0; i-- {
		release[i]()
	}
}

// BindTracked binds target to source and tracks the link in links.
func BindTracked[T any](links *Links, target, source *Value[T]) {
	target.Bind(source)
	links.Track(target)
}

// BindBidirectionalTracked binds a and b to each other and tracks the link
// in links.
func BindBidirectionalTracked[T any](links *Links, a, b *Value[T]) {
	a.BindBidirectional(b)
	links.Track(a)
}

// ObserveChange installs fn as v's change listener and tracks its removal.
func ObserveChange[T any](links *Links, v *Value[T], fn ChangeListener[T]) {
	if v == nil || fn == nil {
		return
	}
	v.SetOnChange(fn)
	links.Add(func() { v.SetOnChange(nil) })
}

// ObserveList installs fn as l's change listener and tracks its removal.
func ObserveList[T any](links *Links, l *List[T], fn ListChangeListener[T]) {
	if l == nil || fn == nil {
		return
	}
	l.SetOnListChange(fn)
	links.Add(func() { l.SetOnListChange(nil) })
}
