package state

// ChangeKind names the structural change a ListChange describes.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeRemoved
	ChangeReplaced
)

// String returns the kind's name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// ListChange describes one pending mutation of a List.
//
// OldSize is the size when the event was built. NewSize is projected from
// the mutation, not measured after it: a Remove of a missing element still
// reports OldSize-1. Exactly one of Added, Removed and Replaced is non-nil.
type ListChange[T any] struct {
	OldSize  int `json:"oldSize" yaml:"oldSize"`
	NewSize  int `json:"newSize" yaml:"newSize"`
	Added    []T `json:"added,omitempty" yaml:"added,omitempty"`
	Removed  []T `json:"removed,omitempty" yaml:"removed,omitempty"`
	Replaced []T `json:"replaced,omitempty" yaml:"replaced,omitempty"`
}

// Kind reports which structural change the event carries.
func (c ListChange[T]) Kind() ChangeKind {
	switch {
	case c.Added != nil:
		return ChangeAdded
	case c.Removed != nil:
		return ChangeRemoved
	case c.Replaced != nil:
		return ChangeReplaced
	default:
		return 0
	}
}

// Items returns the elements carried by the event, whichever kind it is.
func (c ListChange[T]) Items() []T {
	switch c.Kind() {
	case ChangeAdded:
		return c.Added
	case ChangeRemoved:
		return c.Removed
	case ChangeReplaced:
		return c.Replaced
	default:
		return nil
	}
}

// ListChangeListener is notified before each structural mutation of a List.
type ListChangeListener[T any] func(change ListChange[T])
