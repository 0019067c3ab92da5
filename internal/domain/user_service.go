package domain

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles user management: creating employees and customers and
// the customer listing the back office works from.
type UserService struct {
	users UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateCustomer registers a new customer with a bcrypt-hashed password.
func (s *UserService) CreateCustomer(ctx context.Context, username, password, firstName, lastName string) (*User, error) {
	return s.create(ctx, username, password, firstName, lastName, RoleCustomer)
}

// CreateEmployee registers a new back-office employee.
func (s *UserService) CreateEmployee(ctx context.Context, username, password, firstName, lastName string) (*User, error) {
	return s.create(ctx, username, password, firstName, lastName, RoleEmployee)
}

func (s *UserService) create(ctx context.Context, username, password, firstName, lastName string, role UserRole) (*User, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%q: %w", username, ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user *User
	switch role {
	case RoleEmployee:
		user, err = NewEmployee(NewUserID(), username, string(hash), firstName, lastName)
	default:
		user, err = NewCustomer(NewUserID(), username, string(hash), firstName, lastName)
	}
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// Customers lists all registered customers.
func (s *UserService) Customers(ctx context.Context) ([]*User, error) {
	return s.users.FindAllCustomers(ctx)
}

// VerifyPassword checks a plaintext password against the user's stored hash.
// Session handling on top of this lives outside the core.
func (s *UserService) VerifyPassword(ctx context.Context, username, password string) (*User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials for %q", username)
	}
	return user, nil
}
