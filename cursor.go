package nodelist

import (
	"github.com/pkg/errors"
)

// Cursor is a read-only traversal handle referencing one link record, or no
// record at all. The zero value is the null cursor. A cursor classifies its
// own position from the referenced record's local links; validity is
// re-derived on every operation rather than cached, so there is nothing to
// invalidate when the list mutates underneath it.
type Cursor[T any] struct {
	at *link[T]
}

// IsNull reports whether c references no record. The only predicate that is
// legal on a null cursor.
func (c Cursor[T]) IsNull() bool { return c.at == nil }

// pos classifies c's record, rejecting the null cursor.
func (c Cursor[T]) pos() (position, error) {
	p := c.at.classify()
	if p == posNull {
		return posNull, errors.WithMessage(ErrInvalidState, "cursor is null")
	}
	return p, nil
}

// IsBeforeStart reports whether c is at a head boundary.
func (c Cursor[T]) IsBeforeStart() (bool, error) {
	p, err := c.pos()
	if err != nil {
		return false, err
	}
	return p == posBeforeStart, nil
}

// IsPastEnd reports whether c is at a tail boundary.
func (c Cursor[T]) IsPastEnd() (bool, error) {
	p, err := c.pos()
	if err != nil {
		return false, err
	}
	return p == posPastEnd, nil
}

// IsAtAttached reports whether c is at an element currently linked into a
// chain.
func (c Cursor[T]) IsAtAttached() (bool, error) {
	p, err := c.pos()
	if err != nil {
		return false, err
	}
	return p == posAttached, nil
}

// IsAtDetached reports whether c is at a standalone element.
func (c Cursor[T]) IsAtDetached() (bool, error) {
	p, err := c.pos()
	if err != nil {
		return false, err
	}
	return p == posDetached, nil
}

// IsAtElement reports whether c is at an element, attached or detached, as
// opposed to a boundary.
func (c Cursor[T]) IsAtElement() (bool, error) {
	p, err := c.pos()
	if err != nil {
		return false, err
	}
	return p == posAttached || p == posDetached, nil
}

// Advance moves c to the next record. It fails on a null or past-the-end
// cursor. Advancing from a detached element leaves c null.
func (c *Cursor[T]) Advance() error {
	p, err := c.pos()
	if err != nil {
		return err
	}
	if p == posPastEnd {
		return errors.WithMessage(ErrInvalidState, "advance: cursor is past the end")
	}
	c.at = c.at.next
	return nil
}

// Retreat moves c to the previous record. It fails on a null or
// before-the-start cursor.
func (c *Cursor[T]) Retreat() error {
	p, err := c.pos()
	if err != nil {
		return err
	}
	if p == posBeforeStart {
		return errors.WithMessage(ErrInvalidState, "retreat: cursor is before the start")
	}
	c.at = c.at.prev
	return nil
}

// PostAdvance advances c and returns the cursor's pre-move position. Same
// preconditions as Advance.
func (c *Cursor[T]) PostAdvance() (Cursor[T], error) {
	before := *c
	if err := c.Advance(); err != nil {
		return Cursor[T]{}, err
	}
	return before, nil
}

// PostRetreat retreats c and returns the cursor's pre-move position. Same
// preconditions as Retreat.
func (c *Cursor[T]) PostRetreat() (Cursor[T], error) {
	before := *c
	if err := c.Retreat(); err != nil {
		return Cursor[T]{}, err
	}
	return before, nil
}

// Value returns a copy of the payload at c. The cursor must be at an
// element, attached or detached; boundaries are never dereferenceable.
func (c Cursor[T]) Value() (T, error) {
	var zero T
	nd, err := c.elem()
	if err != nil {
		return zero, err
	}
	return nd.Value, nil
}

// elem resolves c's record to the node it is embedded in.
func (c Cursor[T]) elem() (*Node[T], error) {
	p, err := c.pos()
	if err != nil {
		return nil, err
	}
	if (p != posAttached && p != posDetached) || c.at.node == nil {
		return nil, errors.WithMessage(ErrInvalidState, "cursor is not at an element")
	}
	return c.at.node, nil
}

// Equal reports whether c and o reference the same record. A null cursor is
// never equal to anything, including another null cursor: invalid positions
// do not alias.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.at == o.at && c.at != nil
}

// MutCursor is a cursor that can additionally hand out mutable payload
// references and anchor insertions and removals at its position. The
// embedded Cursor is the read-only view of the same record.
type MutCursor[T any] struct {
	Cursor[T]
}

// Ref returns a mutable reference to the payload at c. Same precondition as
// Value.
func (c MutCursor[T]) Ref() (*T, error) {
	nd, err := c.elem()
	if err != nil {
		return nil, err
	}
	return &nd.Value, nil
}

// InsertBefore attaches n immediately before c's record. The cursor must
// not be before the start: the head boundary has no predecessor position to
// splice into.
func (c MutCursor[T]) InsertBefore(n *Node[T]) error {
	p, err := c.pos()
	if err != nil {
		return err
	}
	if p == posBeforeStart {
		return errors.WithMessage(ErrInvalidState, "insert before: cursor is before the start")
	}
	if n == nil {
		return errors.WithMessage(ErrInvalidArgument, "insert before: node is nil")
	}
	return n.attachBefore(c.at)
}

// InsertAfter attaches n immediately after c's record. The cursor must not
// be past the end.
func (c MutCursor[T]) InsertAfter(n *Node[T]) error {
	p, err := c.pos()
	if err != nil {
		return err
	}
	if p == posPastEnd {
		return errors.WithMessage(ErrInvalidState, "insert after: cursor is past the end")
	}
	if n == nil {
		return errors.WithMessage(ErrInvalidArgument, "insert after: node is nil")
	}
	return n.attachAfter(c.at)
}

// RemoveAndAdvance detaches the element at c and moves c to the record that
// followed it. The successor is captured before detaching, since detaching
// clears the removed record's own links. The cursor must be at an attached
// element.
func (c *MutCursor[T]) RemoveAndAdvance() error {
	nd, next, _, err := c.removable()
	if err != nil {
		return err
	}
	nd.Detach()
	c.at = next
	return nil
}

// RemoveAndRetreat detaches the element at c and moves c to the record that
// preceded it.
func (c *MutCursor[T]) RemoveAndRetreat() error {
	nd, _, prev, err := c.removable()
	if err != nil {
		return err
	}
	nd.Detach()
	c.at = prev
	return nil
}

func (c *MutCursor[T]) removable() (nd *Node[T], next, prev *link[T], err error) {
	p, err := c.pos()
	if err != nil {
		return nil, nil, nil, err
	}
	if p != posAttached {
		return nil, nil, nil, errors.WithMessage(ErrInvalidState, "remove: cursor is not at an attached element")
	}
	return c.at.node, c.at.next, c.at.prev, nil
}

// ReverseCursor traverses a chain back to front: Advance moves toward the
// head boundary. It is a thin reversal adapter over a MutCursor, built by
// List.RBegin and List.REnd.
type ReverseCursor[T any] struct {
	fwd MutCursor[T]
}

// Forward returns the underlying forward cursor at the same record.
func (c ReverseCursor[T]) Forward() MutCursor[T] { return c.fwd }

// IsNull reports whether c references no record.
func (c ReverseCursor[T]) IsNull() bool { return c.fwd.IsNull() }

// IsPastEnd reports whether the reversed traversal is exhausted, which is
// the head boundary of the underlying chain.
func (c ReverseCursor[T]) IsPastEnd() (bool, error) { return c.fwd.IsBeforeStart() }

// IsBeforeStart reports whether c is before the reversed traversal's first
// element, which is the tail boundary of the underlying chain.
func (c ReverseCursor[T]) IsBeforeStart() (bool, error) { return c.fwd.IsPastEnd() }

// IsAtElement reports whether c is at an element.
func (c ReverseCursor[T]) IsAtElement() (bool, error) { return c.fwd.IsAtElement() }

// Advance moves c toward the front of the underlying chain.
func (c *ReverseCursor[T]) Advance() error { return c.fwd.Retreat() }

// Retreat moves c toward the back of the underlying chain.
func (c *ReverseCursor[T]) Retreat() error { return c.fwd.Advance() }

// Value returns a copy of the payload at c.
func (c ReverseCursor[T]) Value() (T, error) { return c.fwd.Value() }

// Equal reports whether c and o reference the same record, with the same
// null-never-equal rule as Cursor.Equal.
func (c ReverseCursor[T]) Equal(o ReverseCursor[T]) bool {
	return c.fwd.Equal(o.fwd.Cursor)
}
