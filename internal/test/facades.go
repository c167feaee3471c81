package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/domain/model"
	pkgAuth "orderdesk/internal/pkg/auth"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn func(ctx context.Context, name, email, phone, password, role string) error
	LoginFn    func(ctx context.Context, email, password string) (string, error)
	ResolveFn  func(token string) (pkgAuth.Identity, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, name, email, phone, password, role string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, phone, password, role)
	}
	return nil
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "session-token", nil
}

func (s AuthFacadeStub) ResolveToken(token string) (pkgAuth.Identity, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(token)
	}
	return pkgAuth.Identity{ID: 1, Name: "alice", Role: model.RoleUser}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn     func(ctx context.Context, identity pkgAuth.Identity, page, limit int) ([]model.Order, model.Pagination, error)
	CreateFn     func(ctx context.Context, identity pkgAuth.Identity, draft model.OrderDraft) (*model.Order, error)
	UpdateFn     func(ctx context.Context, identity pkgAuth.Identity, id string, update model.OrderUpdate) (*model.Order, error)
	TransitionFn func(ctx context.Context, identity pkgAuth.Identity, id, status string) (*model.Order, error)
	DeleteFn     func(ctx context.Context, identity pkgAuth.Identity, id string) error
}

// SampleOrder returns a deterministic pending order for stub defaults.
func SampleOrder(username string) model.Order {
	return model.Order{
		ID:          uuid.MustParse("6f1c63e4-8f0a-4f52-9e9a-93f1f4f1b001"),
		Username:    username,
		Name:        "Widget",
		Description: "A widget",
		Quantity:    2,
		Price:       9.99,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Unix(0, 0),
		UpdatedAt:   time.Unix(0, 0),
	}
}

func (s OrderFacadeStub) Orders(ctx context.Context, identity pkgAuth.Identity, page, limit int) ([]model.Order, model.Pagination, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, identity, page, limit)
	}
	order := SampleOrder(identity.Name)
	return []model.Order{order}, model.Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1}, nil
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, identity pkgAuth.Identity, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, identity, draft)
	}
	order := SampleOrder(identity.Name)
	order.Name = draft.Name
	order.Description = draft.Description
	order.Quantity = draft.Quantity
	order.Price = draft.Price
	return &order, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, identity pkgAuth.Identity, id string, update model.OrderUpdate) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, identity, id, update)
	}
	order := SampleOrder(identity.Name)
	return &order, nil
}

func (s OrderFacadeStub) TransitionOrder(ctx context.Context, identity pkgAuth.Identity, id, status string) (*model.Order, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, identity, id, status)
	}
	order := SampleOrder("alice")
	order.Status = model.OrderStatus(status)
	return &order, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, identity pkgAuth.Identity, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, identity, id)
	}
	return nil
}

// ApprovalFacadeStub aggregates the endpoint stubs.
type ApprovalFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
