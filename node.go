package nodelist

import (
	"github.com/pkg/errors"
)

// Node carries one Value plus its own list links. A node is attached to at
// most one list at a time; attaching it anywhere first detaches it from its
// current position. Construct nodes with NewNode.
//
// The node's storage is owned by whoever allocated it, never by a list.
// Detach a node (or Close it) before letting its storage go away; a node
// dropped while attached stays reachable from its neighbors.
type Node[T any] struct {
	rec   link[T]
	Value T
}

// NewNode returns a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	n := &Node[T]{Value: value}
	n.rec.node = n
	return n
}

// Attached reports whether n is currently linked into a chain.
func (n *Node[T]) Attached() bool {
	return n.rec.classify() == posAttached
}

// AttachBefore detaches n from any current position and splices it
// immediately before target. target must be non-nil and attached.
func (n *Node[T]) AttachBefore(target *Node[T]) error {
	if target == nil {
		return errors.WithMessage(ErrInvalidArgument, "attach before: target is nil")
	}
	return n.attachBefore(&target.rec)
}

// AttachAfter detaches n from any current position and splices it
// immediately after target. target must be non-nil and attached.
func (n *Node[T]) AttachAfter(target *Node[T]) error {
	if target == nil {
		return errors.WithMessage(ErrInvalidArgument, "attach after: target is nil")
	}
	return n.attachAfter(&target.rec)
}

// AttachTo appends n at the end of l.
func (n *Node[T]) AttachTo(l *List[T]) error {
	if l == nil {
		return errors.WithMessage(ErrInvalidArgument, "attach to list: list is nil")
	}
	return n.attachBefore(&l.ends().tail)
}

// attachBefore splices n immediately before rec, which may be a boundary
// record. rec must have a predecessor; an unattached record has no
// well-defined "before" position. A failed attach leaves n detached, never
// half-linked.
func (n *Node[T]) attachBefore(rec *link[T]) error {
	if rec.prev == nil {
		return errors.WithMessage(ErrInvalidArgument, "attach before: target is not attached")
	}
	n.Detach()
	if rec.prev == nil {
		// rec was n's own record: the detach just cleared it. Attaching a
		// node relative to itself reduces to a plain detach.
		return nil
	}
	n.rec.next = rec
	n.rec.prev = rec.prev
	rec.prev.next = &n.rec
	rec.prev = &n.rec
	return nil
}

// attachAfter splices n immediately after rec. rec must have a successor,
// so the tail boundary is never a valid target.
func (n *Node[T]) attachAfter(rec *link[T]) error {
	if rec.next == nil {
		return errors.WithMessage(ErrInvalidArgument, "attach after: target is not attached")
	}
	n.Detach()
	if rec.next == nil {
		// rec was n's own record: self-attach reduces to a plain detach.
		return nil
	}
	n.rec.prev = rec
	n.rec.next = rec.next
	rec.next.prev = &n.rec
	rec.next = &n.rec
	return nil
}

// Detach unlinks n from whatever chain it is on: the neighbors are repaired
// to skip n, then n's own links are cleared. It has no preconditions and is
// idempotent, so teardown paths never need to guard against a node that was
// already detached.
func (n *Node[T]) Detach() {
	if n.rec.prev != nil {
		n.rec.prev.next = n.rec.next
	}
	if n.rec.next != nil {
		n.rec.next.prev = n.rec.prev
	}
	n.rec.next = nil
	n.rec.prev = nil
}

// Close detaches n so that no list retains a reference to it, and always
// returns nil. It exists so nodes fit io.Closer-shaped cleanup; call it (or
// Detach) before releasing a node's storage.
func (n *Node[T]) Close() error {
	n.Detach()
	return nil
}

// Cursor returns a mutable cursor positioned at n, whether or not n is
// attached.
func (n *Node[T]) Cursor() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{at: &n.rec}}
}
