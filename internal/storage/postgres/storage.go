package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
	"orderdesk/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on. Narrowing
// it to an interface lets tests substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. It is
// constructed explicitly at startup and injected; there is no ambient
// connection state.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

// newPgxPool is a seam for substituting the pool in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            phone TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            username TEXT NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL,
            quantity BIGINT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            approved_by BIGINT REFERENCES users(id),
            approved_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_username ON orders(username, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, phone, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (name, email, phone, password_hash, role) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, phone, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.Phone = phone
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, phone, password_hash, role, created_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, phone, password_hash, role, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = model.ParseRole(role)
	return &u, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, username, name, description, quantity, price, status, approved_by, approved_at, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, username string, draft model.OrderDraft) (*model.Order, error) {
	const query = `INSERT INTO orders (id, username, name, description, quantity, price, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	order := model.Order{
		ID:          uuid.New(),
		Username:    username,
		Name:        draft.Name,
		Description: draft.Description,
		Quantity:    draft.Quantity,
		Price:       draft.Price,
		Status:      model.OrderStatusPending,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Username, order.Name, order.Description, order.Quantity, order.Price, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Username != nil {
		args = append(args, *filter.Username)
		conds = append(conds, fmt.Sprintf("username=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		orderColumns, where, len(args)+1, len(args)+2)
	rows, err := r.storage.pool.Query(ctx, query, append(args, offset, limit)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrderRow(rows, &o); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *orderRepository) UpdateFields(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}
	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Quantity != nil {
		appendSet("quantity", *update.Quantity)
	}
	if update.Price != nil {
		appendSet("price", *update.Price)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), orderColumns)
	return scanOrder(r.storage.pool.QueryRow(ctx, query, args...))
}

func (r *orderRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, approvedBy int64, approvedAt time.Time) (*model.Order, error) {
	// Conditionless write by id: concurrent transitions race and the
	// last one wins.
	query := `UPDATE orders SET status=$1, approved_by=$2, approved_at=$3, updated_at=NOW() WHERE id=$4 RETURNING ` + orderColumns
	return scanOrder(r.storage.pool.QueryRow(ctx, query, status, approvedBy, approvedAt, id))
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var status string
	err := row.Scan(&o.ID, &o.Username, &o.Name, &o.Description, &o.Quantity, &o.Price, &status, &o.ApprovedBy, &o.ApprovedAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func scanOrderRow(rows pgx.Rows, o *model.Order) error {
	var status string
	if err := rows.Scan(&o.ID, &o.Username, &o.Name, &o.Description, &o.Quantity, &o.Price, &status, &o.ApprovedBy, &o.ApprovedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	o.Status = model.OrderStatus(status)
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
