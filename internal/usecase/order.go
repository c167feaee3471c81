package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
	"orderdesk/internal/domain/repository"
	pkgAuth "orderdesk/internal/pkg/auth"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// OrderUseCase encapsulates the role-gated order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// List returns one page of orders visible to the identity: users see
// their own orders, managers see pending ones, accountants approved
// ones. Any other role is forbidden.
func (u *OrderUseCase) List(ctx context.Context, identity pkgAuth.Identity, page, limit int) ([]model.Order, model.Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var filter model.OrderFilter
	switch identity.Role {
	case model.RoleUser:
		username := strings.TrimSpace(identity.Name)
		filter.Username = &username
	case model.RoleManager:
		status := model.OrderStatusPending
		filter.Status = &status
	case model.RoleAccountant:
		status := model.OrderStatusApproved
		filter.Status = &status
	default:
		return nil, model.Pagination{}, domainErrors.ErrRoleForbidden
	}

	orders, total, err := u.orders.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	pagination := model.Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int((total + int64(limit) - 1) / int64(limit)),
	}
	return orders, pagination, nil
}

// Create registers a new order owned by the identity. Only users may
// create orders; the owner always comes from the session, never from
// the payload.
func (u *OrderUseCase) Create(ctx context.Context, identity pkgAuth.Identity, draft model.OrderDraft) (*model.Order, error) {
	if identity.Role != model.RoleUser {
		return nil, domainErrors.ErrRoleForbidden
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, strings.TrimSpace(identity.Name), draft)
}

// Update applies a partial update to an order the identity owns.
// Status, approver, and owner are not part of the update type, so a
// payload naming them is silently stripped before it gets here.
func (u *OrderUseCase) Update(ctx context.Context, identity pkgAuth.Identity, rawID string, update model.OrderUpdate) (*model.Order, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if identity.Role != model.RoleUser {
		return nil, domainErrors.ErrRoleForbidden
	}
	if err := ValidateUpdate(update); err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Username != strings.TrimSpace(identity.Name) {
		return nil, domainErrors.ErrNotOwner
	}

	return u.orders.UpdateFields(ctx, id, update)
}

// Transition sets the order status. Managers only. The update is a
// single conditionless write: re-transitions overwrite the approver
// and timestamp, and concurrent managers race with last write winning.
func (u *OrderUseCase) Transition(ctx context.Context, identity pkgAuth.Identity, rawID, rawStatus string) (*model.Order, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if identity.Role != model.RoleManager {
		return nil, domainErrors.ErrRoleForbidden
	}

	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}

	return u.orders.SetStatus(ctx, id, status, identity.ID, u.now())
}

// Delete removes an order the identity owns. Users only; deletion is
// not restricted to pending orders.
func (u *OrderUseCase) Delete(ctx context.Context, identity pkgAuth.Identity, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return domainErrors.ErrInvalidOrderID
	}
	if identity.Role != model.RoleUser {
		return domainErrors.ErrRoleForbidden
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Username != strings.TrimSpace(identity.Name) {
		return domainErrors.ErrNotOwner
	}

	return u.orders.Delete(ctx, id)
}
