package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, username string, draft model.OrderDraft) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, approvedBy int64, approvedAt time.Time) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
