package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the approval lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// ParseOrderStatus validates a raw status value against the closed
// enumeration.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return OrderStatus(raw), true
	default:
		return "", false
	}
}

// Order is a purchase request submitted by a user. Username is fixed at
// creation; Status is mutable only through a manager transition, which
// also records the acting manager and the transition time.
type Order struct {
	ID          uuid.UUID
	Username    string
	Name        string
	Description string
	Quantity    int64
	Price       float64
	Status      OrderStatus
	ApprovedBy  *int64
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderDraft carries the user-supplied fields of a new order.
type OrderDraft struct {
	Name        string
	Description string
	Quantity    int64
	Price       float64
}

// OrderUpdate is a partial update of the user-editable fields. Nil
// pointers leave the stored value untouched. Status, approver, and
// owner are deliberately not representable here.
type OrderUpdate struct {
	Name        *string
	Description *string
	Quantity    *int64
	Price       *float64
}

// Empty reports whether the update changes nothing.
func (u OrderUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Quantity == nil && u.Price == nil
}

// OrderFilter narrows listings to an owner and/or a status.
type OrderFilter struct {
	Username *string
	Status   *OrderStatus
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total int64
	Page  int
	Limit int
	Pages int
}
