package nodelist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullCursor(t *testing.T) {
	var c Cursor[int]
	require.True(t, c.IsNull())

	_, err := c.IsBeforeStart()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = c.IsPastEnd()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = c.IsAtElement()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = c.Value()
	require.ErrorIs(t, err, ErrInvalidState)
	require.ErrorIs(t, c.Advance(), ErrInvalidState)
	require.ErrorIs(t, c.Retreat(), ErrInvalidState)
}

func TestNullCursorsNeverEqual(t *testing.T) {
	var a, b Cursor[int]
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(a))

	// A null cursor does not equal a live one either.
	l := New[int]()
	require.False(t, a.Equal(l.End().Cursor))
	require.False(t, l.End().Equal(a))
}

func TestClassification(t *testing.T) {
	l := New[int]()
	n := NewNode(1)
	require.NoError(t, n.AttachTo(l))

	head := l.REnd().Forward()
	ok, err := head.IsBeforeStart()
	require.NoError(t, err)
	require.True(t, ok)

	tail := l.End()
	ok, err = tail.IsPastEnd()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = tail.IsAtElement()
	require.NoError(t, err)
	require.False(t, ok)

	at := n.Cursor()
	ok, err = at.IsAtAttached()
	require.NoError(t, err)
	require.True(t, ok)

	n.Detach()
	ok, err = at.IsAtDetached()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = at.IsAtElement()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAdvanceRetreatBounds(t *testing.T) {
	l := New[int]()
	require.NoError(t, NewNode(1).AttachTo(l))

	end := l.End()
	require.ErrorIs(t, end.Advance(), ErrInvalidState)

	head := l.REnd().Forward()
	require.ErrorIs(t, head.Retreat(), ErrInvalidState)
}

func TestAdvanceFromDetachedGoesNull(t *testing.T) {
	n := NewNode(1)
	c := n.Cursor()
	require.NoError(t, c.Advance())
	require.True(t, c.IsNull())

	c = n.Cursor()
	require.NoError(t, c.Retreat())
	require.True(t, c.IsNull())
}

func TestPostAdvanceRetreat(t *testing.T) {
	l := New[int]()
	require.NoError(t, NewNode(1).AttachTo(l))
	require.NoError(t, NewNode(2).AttachTo(l))

	c := l.Begin()
	before, err := c.PostAdvance()
	require.NoError(t, err)
	require.True(t, before.Equal(l.Begin().Cursor))
	v, err := c.Value()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	before, err = c.PostRetreat()
	require.NoError(t, err)
	v, err = before.Value()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.True(t, c.Equal(l.Begin().Cursor))

	var null Cursor[int]
	_, err = null.PostAdvance()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestDereferenceBoundaryFails(t *testing.T) {
	l := New[int]()
	require.NoError(t, NewNode(1).AttachTo(l))

	_, err := l.End().Value()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = l.REnd().Forward().Value()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = l.End().Ref()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRefMutatesPayload(t *testing.T) {
	l := New[int]()
	n := NewNode(1)
	require.NoError(t, n.AttachTo(l))

	ref, err := l.Begin().Ref()
	require.NoError(t, err)
	*ref = 42
	require.Equal(t, 42, n.Value)
}

func TestInsertBeforeAfter(t *testing.T) {
	l := New[int]()

	// Inserting before the tail boundary appends.
	require.NoError(t, l.End().InsertBefore(NewNode(2)))
	// Inserting after the head boundary prepends.
	require.NoError(t, l.REnd().Forward().InsertAfter(NewNode(1)))
	// Anchored at a live element.
	c := l.Begin()
	require.NoError(t, c.Advance())
	require.NoError(t, c.InsertAfter(NewNode(3)))
	require.Equal(t, []int{1, 2, 3}, listValues(l))
	checkChain(t, l)

	require.ErrorIs(t, l.REnd().Forward().InsertBefore(NewNode(0)), ErrInvalidState)
	require.ErrorIs(t, l.End().InsertAfter(NewNode(0)), ErrInvalidState)
	require.ErrorIs(t, l.End().InsertBefore(nil), ErrInvalidArgument)
}

func TestRemoveAndAdvance(t *testing.T) {
	l := New[int]()
	n1, n2, n3 := NewNode(1), NewNode(2), NewNode(3)
	require.NoError(t, n1.AttachTo(l))
	require.NoError(t, n2.AttachTo(l))
	require.NoError(t, n3.AttachTo(l))

	c := l.Begin()
	require.NoError(t, c.Advance())
	require.NoError(t, c.RemoveAndAdvance())
	require.False(t, n2.Attached())
	v, err := c.Value()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, []int{1, 3}, listValues(l))

	require.NoError(t, c.RemoveAndRetreat())
	require.False(t, n3.Attached())
	v, err = c.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, []int{1}, listValues(l))
	checkChain(t, l)
}

func TestRemoveRequiresAttachedElement(t *testing.T) {
	l := New[int]()
	end := l.End()
	require.ErrorIs(t, end.RemoveAndAdvance(), ErrInvalidState)

	loose := NewNode(1)
	c := loose.Cursor()
	require.ErrorIs(t, c.RemoveAndRetreat(), ErrInvalidState)
}

func TestMutCursorConvertsToReadOnly(t *testing.T) {
	l := New[int]()
	require.NoError(t, NewNode(1).AttachTo(l))

	mc := l.Begin()
	var rc Cursor[int] = mc.Cursor
	require.True(t, rc.Equal(mc.Cursor))
	v, err := rc.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestCursorsFromDifferentListsNeverEqual(t *testing.T) {
	a := New[int]()
	b := New[int]()
	require.False(t, a.End().Equal(b.End().Cursor))
	require.False(t, a.Begin().Equal(b.Begin().Cursor))
}

func TestReverseCursorBounds(t *testing.T) {
	l := New[int]()
	require.NoError(t, NewNode(1).AttachTo(l))

	r := l.RBegin()
	ok, err := r.IsAtElement()
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, r.Advance())
	require.True(t, r.Equal(l.REnd()))
	ok, err = r.IsPastEnd()
	require.NoError(t, err)
	require.True(t, ok)
	require.ErrorIs(t, r.Advance(), ErrInvalidState)

	require.NoError(t, r.Retreat())
	v, err := r.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	rb := l.RBegin()
	require.NoError(t, rb.Retreat())
	ok, err = rb.IsBeforeStart()
	require.NoError(t, err)
	require.True(t, ok)
	require.ErrorIs(t, rb.Retreat(), ErrInvalidState)
}
