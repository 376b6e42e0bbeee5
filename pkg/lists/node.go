package lists

// Node is a single element of a List. Its link can only be changed by the
// List that owns it.
type Node[T comparable] struct {
	data T
	next *Node[T]
}

// Data returns the stored value, or the zero value for a nil node.
func (n *Node[T]) Data() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.data
}

// Next returns the following node, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}
