package domain

import "time"

// OrderStatus is the lifecycle state of an order. PENDING is the initial
// state; COMPLETED and CANCELLED are terminal. HOLDING marks an order whose
// delivery stalled or whose distribution failed; it can recover to ACTIVE
// once progress resumes.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderActive     OrderStatus = "ACTIVE"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderHolding    OrderStatus = "HOLDING"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderTransitions lists the allowed lifecycle moves. Terminal states have
// no outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderHolding, OrderCancelled},
	OrderProcessing: {OrderActive, OrderHolding, OrderCancelled},
	OrderActive:     {OrderCompleted, OrderHolding, OrderCancelled},
	OrderHolding:    {OrderActive, OrderProcessing, OrderCancelled},
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. A no-op transition (s == next) is always allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Order represents a customer order for social-media engagement. The
// fulfillment engine reads the targeting fields and writes Status and the
// progress tracking columns; everything else is owned by the order
// subsystem.
type Order struct {
	ID              int64
	ServiceCategory string
	TargetQuantity  int64
	TargetURL       string
	GeoKey          string
	ClipCreated     bool
	Status          OrderStatus
	// LastConversions and LastProgressAt track delivery progress for stall
	// detection. LastProgressAt moves forward whenever the aggregated
	// conversion count grows.
	LastConversions int64
	LastProgressAt  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
