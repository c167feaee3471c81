package handlers

import (
	"context"

	"orderdesk/internal/domain/model"
	pkgAuth "orderdesk/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, phone, password, role string) error
	Login(ctx context.Context, email, password string) (string, error)
	ResolveToken(token string) (pkgAuth.Identity, error)
}

// OrderFacade encapsulates the order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, identity pkgAuth.Identity, page, limit int) ([]model.Order, model.Pagination, error)
	CreateOrder(ctx context.Context, identity pkgAuth.Identity, draft model.OrderDraft) (*model.Order, error)
	UpdateOrder(ctx context.Context, identity pkgAuth.Identity, id string, update model.OrderUpdate) (*model.Order, error)
	TransitionOrder(ctx context.Context, identity pkgAuth.Identity, id, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, identity pkgAuth.Identity, id string) error
}

// ApprovalFacade aggregates the full set of operations used across handlers.
type ApprovalFacade interface {
	AuthFacade
	OrderFacade
}

// Pinger reports storage connectivity.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
