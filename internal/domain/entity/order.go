package entity

import "time"

// OrderStatus is the lifecycle state of a service order.
type OrderStatus string

const (
	OrderWaiting    OrderStatus = "waiting"
	OrderInProgress OrderStatus = "in-progress"
	OrderDone       OrderStatus = "done"
	OrderCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a booking of one service kind between an end user and a
// mitra. IDs reference the account emails of both parties.
type Order struct {
	ID        string      `json:"id" firestore:"id"`
	UserID    string      `json:"userId" firestore:"userId"`
	MitraID   string      `json:"mitraId" firestore:"mitraId"`
	Service   ServiceKind `json:"service" firestore:"service"`
	Status    OrderStatus `json:"status" firestore:"status"`
	StartTime *time.Time  `json:"startTime,omitempty" firestore:"startTime,omitempty"`
	EndTime   *time.Time  `json:"endTime,omitempty" firestore:"endTime,omitempty"`
	TotalCost int         `json:"totalCost,omitempty" firestore:"totalCost,omitempty"`
	CreatedAt time.Time   `json:"createdAt" firestore:"createdAt"`
}

// OrderPatch lists the mutable order fields.
type OrderPatch struct {
	Status    *OrderStatus
	StartTime *time.Time
	EndTime   *time.Time
	TotalCost *int
}

// Apply overwrites the order's fields with the patch's non-nil values.
func (p OrderPatch) Apply(order *Order) {
	if p.Status != nil {
		order.Status = *p.Status
	}
	if p.StartTime != nil {
		order.StartTime = p.StartTime
	}
	if p.EndTime != nil {
		order.EndTime = p.EndTime
	}
	if p.TotalCost != nil {
		order.TotalCost = *p.TotalCost
	}
}
