package state

import "sync/atomic"

// Invalidator coalesces refresh requests raised by notifications. After one
// request is posted, later requests are dropped until Done is called.
type Invalidator struct {
	post    func() bool
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function. post
// reports whether the request was accepted; a rejected request is retried
// on the next Invalidate.
func NewInvalidator(post func() bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a refresh.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if i.pending.CompareAndSwap(false, true) {
		if !i.post() {
			i.pending.Store(false)
		}
	}
}

// Schedule runs fn and requests a refresh.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

// Done marks the posted refresh as handled.
func (i *Invalidator) Done() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}

// Pending reports whether a posted refresh has not been handled yet.
func (i *Invalidator) Pending() bool {
	if i == nil {
		return false
	}
	return i.pending.Load()
}
