package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
)

// UserRepositoryStub keeps users in memory, keyed by email.
type UserRepositoryStub struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int64

	// Err forces every call to fail when set.
	Err error
}

// NewUserRepositoryStub creates an empty stub.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{users: make(map[string]*model.User)}
}

func (s *UserRepositoryStub) Create(ctx context.Context, name, email, phone, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.nextID++
	u := &model.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	s.users[email] = u
	return u, nil
}

func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in memory with creation-time
// ordering, so listings behave like the real store.
type OrderRepositoryStub struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*model.Order
	created int64

	// Err forces every call to fail when set.
	Err error
}

// NewOrderRepositoryStub creates an empty stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{orders: make(map[uuid.UUID]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, username string, draft model.OrderDraft) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created++
	now := time.Unix(0, 0).Add(time.Duration(s.created) * time.Second)
	o := &model.Order{
		ID:          uuid.New(),
		Username:    username,
		Name:        draft.Name,
		Description: draft.Description,
		Quantity:    draft.Quantity,
		Price:       draft.Price,
		Status:      model.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.orders[o.ID] = o
	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []model.Order
	for _, o := range s.orders {
		if filter.Username != nil && o.Username != strings.TrimSpace(*filter.Username) {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		matched = append(matched, *o)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *OrderRepositoryStub) UpdateFields(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Name != nil {
		o.Name = *update.Name
	}
	if update.Description != nil {
		o.Description = *update.Description
	}
	if update.Quantity != nil {
		o.Quantity = *update.Quantity
	}
	if update.Price != nil {
		o.Price = *update.Price
	}
	o.UpdatedAt = o.UpdatedAt.Add(time.Second)
	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, approvedBy int64, approvedAt time.Time) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.Status = status
	o.ApprovedBy = &approvedBy
	o.ApprovedAt = &approvedAt
	o.UpdatedAt = o.UpdatedAt.Add(time.Second)
	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}
