package nodelist

import (
	"github.com/pkg/errors"
)

// bounds holds a list's two boundary records behind one stable heap
// allocation. Keeping them out of the List value means their addresses
// never change when a List is copied or reassigned, so the boundary-facing
// links of interior nodes stay valid with no repair step.
type bounds[T any] struct {
	head, tail link[T]
}

func newBounds[T any]() *bounds[T] {
	b := &bounds[T]{}
	b.reset()
	return b
}

// reset links the boundaries directly to each other: the empty state. The
// head's prev and the tail's next stay permanently absent.
func (b *bounds[T]) reset() {
	b.head.prev = nil
	b.head.next = &b.tail
	b.tail.prev = &b.head
	b.tail.next = nil
}

// List is an intrusive doubly-linked list. It owns only its two boundary
// records; the nodes chained between them are owned by their callers, and
// no List operation allocates, copies, or frees node storage.
//
// The zero value is an empty list ready to use. Lists have reference
// semantics: copying a List value yields a second handle to the same chain,
// never a second chain. Call Clear before dropping a list whose nodes will
// be reused; nodes left attached keep the orphaned chain alive but are
// otherwise unharmed.
//
// Not safe for concurrent use.
type List[T any] struct {
	b *bounds[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{b: newBounds[T]()}
}

func (l *List[T]) ends() *bounds[T] {
	if l.b == nil {
		l.b = newBounds[T]()
	}
	return l.b
}

// Begin returns a cursor at the first element, or at the tail boundary when
// the list is empty.
func (l *List[T]) Begin() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{at: l.ends().head.next}}
}

// End returns a cursor at the tail boundary.
func (l *List[T]) End() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{at: &l.ends().tail}}
}

// RBegin returns a reversed cursor at the last element, or at the head
// boundary when the list is empty.
func (l *List[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{fwd: MutCursor[T]{Cursor[T]{at: l.ends().tail.prev}}}
}

// REnd returns a reversed cursor at the head boundary.
func (l *List[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{fwd: MutCursor[T]{Cursor[T]{at: &l.ends().head}}}
}

// Empty reports whether l has no elements. Both boundary links are checked;
// the cross-link invariant must hold symmetrically.
func (l *List[T]) Empty() bool {
	b := l.ends()
	return b.head.next == &b.tail && b.tail.prev == &b.head
}

// Len counts the elements between the boundaries. It is O(n): the list
// keeps no cached counter, because nodes attach and detach without going
// through the list object at all.
func (l *List[T]) Len() int {
	b := l.ends()
	n := 0
	for rec := b.head.next; rec != &b.tail; rec = rec.next {
		n++
	}
	return n
}

// PushBack appends n. Equivalent to n.AttachTo(l).
func (l *List[T]) PushBack(n *Node[T]) error {
	if n == nil {
		return errors.WithMessage(ErrInvalidArgument, "push back: node is nil")
	}
	return n.attachBefore(&l.ends().tail)
}

// PushFront inserts n as the first element.
func (l *List[T]) PushFront(n *Node[T]) error {
	if n == nil {
		return errors.WithMessage(ErrInvalidArgument, "push front: node is nil")
	}
	return n.attachAfter(&l.ends().head)
}

// Clear detaches every record reachable forward from the head boundary,
// boundaries included, then re-links the boundaries empty. Every previously
// attached node is left in the detached state, safe for reuse or release;
// their storage is untouched, since the list never owned it.
func (l *List[T]) Clear() {
	b := l.ends()
	rec := &b.head
	for rec != nil {
		next := rec.next
		rec.next = nil
		rec.prev = nil
		rec = next
	}
	b.reset()
}

// Take transfers src's entire chain into l, leaving src empty. Elements
// already in l are detached first. The first and last transferred records'
// boundary-facing links are re-pointed at l's own boundaries, so the two
// lists never share a chain. Taking from a nil or empty src just clears l;
// taking from l itself (or another handle to the same chain) is a no-op.
func (l *List[T]) Take(src *List[T]) {
	if src != nil && src.ends() == l.ends() {
		return
	}
	l.Clear()
	if src == nil || src.Empty() {
		return
	}
	sb := src.ends()
	b := l.ends()
	first := sb.head.next
	last := sb.tail.prev
	b.head.next = first
	first.prev = &b.head
	b.tail.prev = last
	last.next = &b.tail
	sb.reset()
}
