package list

type singlyNodeElement[T any] struct {
	next  *singlyNodeElement[T]
	value T // It should be placed at the end of the struct to avoid taking too much padding.
}

func newSinglyNodeElement[T any](v T, next *singlyNodeElement[T]) *singlyNodeElement[T] {
	return &singlyNodeElement[T]{
		value: v,
		next:  next,
	}
}

// release drops the links and the value so a detached node retains nothing.
func (e *singlyNodeElement[T]) release() T {
	v := e.value
	e.next = nil
	e.value = *new(T)
	return v
}
