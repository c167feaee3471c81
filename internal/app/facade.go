package app

import (
	"context"

	"orderdesk/internal/domain/model"
	pkgAuth "orderdesk/internal/pkg/auth"
	"orderdesk/internal/usecase"
)

// ApprovalFacade is the single entry point handlers use to reach the
// auth and order use cases.
type ApprovalFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

// NewApprovalFacade constructs ApprovalFacade.
func NewApprovalFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *ApprovalFacade {
	return &ApprovalFacade{auth: auth, orders: orders}
}

func (f *ApprovalFacade) Register(ctx context.Context, name, email, phone, password, role string) error {
	_, err := f.auth.Register(ctx, name, email, phone, password, role)
	return err
}

func (f *ApprovalFacade) Login(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Login(ctx, email, password)
	return token, err
}

func (f *ApprovalFacade) ResolveToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ResolveToken(token)
}

func (f *ApprovalFacade) Orders(ctx context.Context, identity pkgAuth.Identity, page, limit int) ([]model.Order, model.Pagination, error) {
	return f.orders.List(ctx, identity, page, limit)
}

func (f *ApprovalFacade) CreateOrder(ctx context.Context, identity pkgAuth.Identity, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, identity, draft)
}

func (f *ApprovalFacade) UpdateOrder(ctx context.Context, identity pkgAuth.Identity, id string, update model.OrderUpdate) (*model.Order, error) {
	return f.orders.Update(ctx, identity, id, update)
}

func (f *ApprovalFacade) TransitionOrder(ctx context.Context, identity pkgAuth.Identity, id, status string) (*model.Order, error) {
	return f.orders.Transition(ctx, identity, id, status)
}

func (f *ApprovalFacade) DeleteOrder(ctx context.Context, identity pkgAuth.Identity, id string) error {
	return f.orders.Delete(ctx, identity, id)
}
