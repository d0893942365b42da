package state

// Readable exposes read-only observable state.
type Readable[T any] interface {
	Get() T
}

// Writable exposes read/write observable state.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
}

// Unbindable is implemented by anything holding links it can sever.
type Unbindable interface {
	Unbind()
}

var (
	_ Writable[int] = (*Value[int])(nil)
	_ Unbindable    = (*Value[int])(nil)
)
