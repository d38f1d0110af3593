package layout

import (
	"github.com/google/uuid"

	"github.com/seanwallawalla-forks/blockly-ios/internal/debug"
)

// Scheduler batches change notifications so that each update cycle delivers
// at most one event per node, no matter how many geometry mutations touched
// it. One scheduler is created per workspace session and torn down with it.
//
// The scheduler is confined to the single thread that mutates the tree; it
// holds no locks. Delivery happens only when the owner calls Flush, never
// synchronously inside a mutation.
type Scheduler struct {
	pending      map[uuid.UUID]*Node
	pendingOrder []uuid.UUID // order in which nodes were first scheduled
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[uuid.UUID]*Node),
	}
}

// Schedule records a pending notification for n. Scheduling an
// already-scheduled node is a no-op, so repeated dirty-flag transitions
// within a cycle coalesce into one delivery.
func (s *Scheduler) Schedule(n *Node) {
	if _, ok := s.pending[n.id]; ok {
		return
	}
	s.pending[n.id] = n
	s.pendingOrder = append(s.pendingOrder, n.id)
}

// PendingCount returns the number of nodes with a scheduled, undelivered
// notification.
func (s *Scheduler) PendingCount() int {
	return len(s.pending)
}

// Flush delivers one notification per scheduled node, in the order nodes
// were first scheduled, then clears the cycle's pending set.
//
// Per node: a set needsDisplay flag delivers a display-changed event;
// otherwise a set needsRepositioning flag delivers a position-changed
// event. Display takes priority, the two flags never produce two events,
// and both flags clear after delivery regardless of which branch fired.
// Nodes without an observer drop the event silently but still clear.
//
// The pending set is detached before delivery, so observers that mutate
// geometry during a callback schedule into the next cycle.
func (s *Scheduler) Flush() {
	if len(s.pending) == 0 {
		return
	}
	pending := s.pending
	order := s.pendingOrder
	s.pending = make(map[uuid.UUID]*Node)
	s.pendingOrder = nil

	debug.Log("Scheduler.Flush: delivering %d notifications", len(order))
	for _, id := range order {
		n := pending[id]
		display := n.needsDisplay
		reposition := n.needsRepositioning
		n.clearChangeFlags()
		if n.observer == nil {
			continue
		}
		switch {
		case display:
			n.observer.NodeDisplayChanged(n)
		case reposition:
			n.observer.NodePositionChanged(n)
		}
	}
}
