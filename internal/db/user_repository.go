package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easybanking/backoffice/internal/domain"
)

// UserRepository implements domain.UserRepository on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) db(ctx context.Context) querier {
	if tx := getTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const userColumns = `id, username, password, first_name, last_name, is_active, role`

// Save upserts a user by id. The role column is written at insert and
// deliberately left out of the update list: a user's role never changes, so
// updates cannot rewrite it.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password, first_name, last_name, is_active, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    password = EXCLUDED.password,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    is_active = EXCLUDED.is_active
	`

	_, err := r.db(ctx).Exec(ctx, query,
		user.ID.UUID,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.IsActive,
		string(user.Role),
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row := r.db(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id.UUID)
	return scanUser(row)
}

// FindByUsername retrieves a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// FindAllCustomers lists customers ordered by username.
func (r *UserRepository) FindAllCustomers(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY username`,
		string(domain.RoleCustomer))
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// ExistsByUsername reports whether the username is registered.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id        uuid.UUID
		username  string
		password  string
		firstName string
		lastName  string
		isActive  bool
		rawRole   string
	)

	err := row.Scan(&id, &username, &password, &firstName, &lastName, &isActive, &rawRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	role, err := domain.ParseUserRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("stored role is invalid: %w", err)
	}

	return &domain.User{
		ID:           domain.UserID{UUID: id},
		Username:     username,
		PasswordHash: password,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     isActive,
		Role:         role,
	}, nil
}
