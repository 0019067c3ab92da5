package domain

import (
	"fmt"
	"strings"
)

// UserRole discriminates the two kinds of users. Employees run the back
// office; customers own accounts.
type UserRole string

const (
	RoleEmployee UserRole = "EMPLOYEE"
	RoleCustomer UserRole = "CUSTOMER"
)

// ParseUserRole parses a stored role value.
func ParseUserRole(value string) (UserRole, error) {
	switch UserRole(value) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown user role %q", value)
	}
}

const (
	usernameMinLength = 3
	usernameMaxLength = 50
	nameMinLength     = 2
	nameMaxLength     = 50
)

// User is an employee or customer, discriminated by Role. Authorization on
// top of the role lives outside the core.
type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
	Role         UserRole
}

// NewEmployee creates an active employee user.
func NewEmployee(id UserID, username, passwordHash, firstName, lastName string) (*User, error) {
	return newUser(id, username, passwordHash, firstName, lastName, RoleEmployee)
}

// NewCustomer creates an active customer user.
func NewCustomer(id UserID, username, passwordHash, firstName, lastName string) (*User, error) {
	return newUser(id, username, passwordHash, firstName, lastName, RoleCustomer)
}

func newUser(id UserID, username, passwordHash, firstName, lastName string, role UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters",
			ErrInvalidUser, usernameMinLength, usernameMaxLength)
	}
	if len(firstName) < nameMinLength || len(firstName) > nameMaxLength {
		return nil, fmt.Errorf("%w: first name must be between %d and %d characters",
			ErrInvalidUser, nameMinLength, nameMaxLength)
	}
	if len(lastName) < nameMinLength || len(lastName) > nameMaxLength {
		return nil, fmt.Errorf("%w: last name must be between %d and %d characters",
			ErrInvalidUser, nameMinLength, nameMaxLength)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash cannot be empty", ErrInvalidUser)
	}

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		Role:         role,
	}, nil
}

func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) Deactivate() {
	u.IsActive = false
}

func (u *User) Activate() {
	u.IsActive = true
}
