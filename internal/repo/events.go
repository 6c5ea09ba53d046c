package repo

import "time"

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventProductAdded     EventKind = "product.added"
	EventProductUpdated   EventKind = "product.updated"
	EventProductDeleted   EventKind = "product.deleted"
	EventProductsCleared  EventKind = "products.cleared"
	EventProductsReset    EventKind = "products.reset"
	EventThresholdChanged EventKind = "threshold.changed"
)

// Event is emitted once per successful store mutation. Metrics is the state of
// the store right after the mutation. ProductID is zero for store-wide events.
// Seq increases by one per mutation of a store; listeners may receive events
// from concurrent mutations out of Seq order.
type Event struct {
	Seq       uint64    `json:"seq"`
	Kind      EventKind `json:"kind"`
	ProductID int       `json:"product_id,omitempty"`
	Metrics   Metrics   `json:"metrics"`
	At        time.Time `json:"at"`
}

// Listener consumes store events.
type Listener func(Event)
