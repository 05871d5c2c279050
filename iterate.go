package nodelist

import (
	"github.com/bradenaw/juniper/iterator"
)

// listIterator walks the chain forward until it reaches the tail boundary.
type listIterator[T any] struct {
	rec  *link[T]
	tail *link[T]
}

func (it *listIterator[T]) Next() (T, bool) {
	if it.rec == nil || it.rec == it.tail || it.rec.node == nil {
		var zero T
		return zero, false
	}
	v := it.rec.node.Value
	it.rec = it.rec.next
	return v, true
}

// Iterate returns a forward iterator over the payloads currently in l. It
// walks the live links: elements attached or detached mid-iteration are
// seen or skipped according to whatever the links say when the iterator
// reaches them.
func (l *List[T]) Iterate() iterator.Iterator[T] {
	b := l.ends()
	return &listIterator[T]{rec: b.head.next, tail: &b.tail}
}
