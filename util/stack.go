package util

// Stack is a LIFO of T backed by a slice. The zero value is ready to use.
type Stack[T any] []T

// Push adds item on top.
func (s *Stack[T]) Push(item T) {
	*s = append(*s, item)
}

// Pop removes and returns the top element. ok is false on an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(*s)
	if n == 0 {
		return item, false
	}
	item = (*s)[n-1]
	*s = (*s)[:n-1]
	return item, true
}

// Peek returns the top element. ok is false on an empty stack.
func (s Stack[T]) Peek() (item T, ok bool) {
	if len(s) == 0 {
		return item, false
	}
	return s[len(s)-1], true
}

// Len is the number of stacked elements.
func (s Stack[T]) Len() int {
	return len(s)
}
