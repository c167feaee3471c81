package dto

import (
	"time"

	"orderdesk/internal/domain/model"
)

// CreateOrderRequest carries a new order. Username is accepted for
// wire compatibility but the owner is always the authenticated
// identity. Price and Quantity are pointers so that zero values pass
// the required check and get range-validated downstream.
type CreateOrderRequest struct {
	Username    string   `json:"username"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Quantity    *int64   `json:"quantity" binding:"required"`
}

// Draft converts the payload into a domain draft.
func (r CreateOrderRequest) Draft() model.OrderDraft {
	return model.OrderDraft{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    *r.Quantity,
		Price:       *r.Price,
	}
}

// UpdateOrderRequest is a partial update. Status, approver, and owner
// fields are not representable here; payloads naming them are
// effectively stripped.
type UpdateOrderRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
}

// Update converts the payload into a domain update.
func (r UpdateOrderRequest) Update() model.OrderUpdate {
	return model.OrderUpdate{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		Price:       r.Price,
	}
}

// StatusUpdateRequest carries a manager's status transition.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Quantity    int64      `json:"quantity"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	ApprovedBy  *int64     `json:"approved_by"`
	ApprovedAt  *time.Time `json:"approved_at"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewOrderResponse maps a domain order onto the wire form.
func NewOrderResponse(order model.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		Username:    order.Username,
		Name:        order.Name,
		Description: order.Description,
		Quantity:    order.Quantity,
		Price:       order.Price,
		Status:      string(order.Status),
		ApprovedBy:  order.ApprovedBy,
		ApprovedAt:  order.ApprovedAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// OrderEnvelope wraps a single order.
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// PaginationResponse mirrors model.Pagination on the wire.
type PaginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ListOrdersResponse is the body of a listing.
type ListOrdersResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}
