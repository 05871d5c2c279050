// Package nodelist provides an intrusive doubly-linked list: list membership
// lives inside each element (a Node) rather than in separately-allocated
// cells, so a node can be attached, detached, or moved in O(1) starting from
// a pointer to just the node. The list never allocates, copies, or frees
// node storage; callers own their nodes and the list owns only its two
// boundary records.
//
// Go's container/list keeps the list separate from the elements it stores.
// The intrusive layout here instead lets a node report, purely from its own
// links, whether it is attached, detached, or a boundary marker, and lets a
// cursor classify its own position with no external bookkeeping.
package nodelist

// link is the unit of structural linkage: a next/prev pair. The two boundary
// records of a list are bare links; every other link is embedded in a Node
// and carries a back-pointer to it. The references imply no ownership and
// are mutated only by attach and detach operations.
//
// Invariant: linkage is mutually consistent. Whenever a.next == b, also
// b.prev == a, at every point observable outside an attach or detach call.
type link[T any] struct {
	next, prev *link[T]
	node       *Node[T] // nil exactly for the two boundary records
}

// position classifies a link record from the presence of its own neighbor
// links alone. There are no generation counters or invalidation tokens in
// this package; every operation that moves, dereferences, or anchors at a
// record re-derives validity from this classification.
type position int

const (
	posNull        position = iota
	posBeforeStart          // prev absent, next present: head boundary
	posPastEnd              // prev present, next absent: tail boundary
	posAttached             // both present: element linked into a chain
	posDetached             // both absent: standalone element
)

func (rec *link[T]) classify() position {
	switch {
	case rec == nil:
		return posNull
	case rec.prev == nil && rec.next != nil:
		return posBeforeStart
	case rec.prev != nil && rec.next == nil:
		return posPastEnd
	case rec.prev != nil && rec.next != nil:
		return posAttached
	default:
		return posDetached
	}
}
