package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/easybanking/backoffice/internal/domain"
)

func TestNewCustomer(t *testing.T) {
	user, err := domain.NewCustomer(domain.NewUserID(), "jan.kowalski", "$2a$10$hash", "Jan", "Kowalski")
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}

	if !user.IsCustomer() {
		t.Error("expected customer role")
	}
	if user.IsEmployee() {
		t.Error("expected not employee")
	}
	if !user.IsActive {
		t.Error("expected new user to be active")
	}
	if got := user.FullName(); got != "Jan Kowalski" {
		t.Errorf("FullName: expected Jan Kowalski, got %s", got)
	}
}

func TestNewEmployee(t *testing.T) {
	user, err := domain.NewEmployee(domain.NewUserID(), "admin", "$2a$10$hash", "Adam", "Adminowski")
	if err != nil {
		t.Fatalf("NewEmployee: %v", err)
	}
	if !user.IsEmployee() {
		t.Error("expected employee role")
	}
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name                 string
		username, hash       string
		firstName, lastName  string
	}{
		{name: "username too short", username: "ab", hash: "h", firstName: "Jan", lastName: "Kowalski"},
		{name: "username too long", username: strings.Repeat("a", 51), hash: "h", firstName: "Jan", lastName: "Kowalski"},
		{name: "first name too short", username: "jan", hash: "h", firstName: "J", lastName: "Kowalski"},
		{name: "last name too short", username: "jan", hash: "h", firstName: "Jan", lastName: "K"},
		{name: "blank names", username: "jan", hash: "h", firstName: "   ", lastName: "   "},
		{name: "empty password hash", username: "jan", hash: "", firstName: "Jan", lastName: "Kowalski"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCustomer(domain.NewUserID(), tt.username, tt.hash, tt.firstName, tt.lastName)
			if !errors.Is(err, domain.ErrInvalidUser) {
				t.Fatalf("expected ErrInvalidUser, got %v", err)
			}
		})
	}
}

func TestNewUser_TrimsWhitespace(t *testing.T) {
	user, err := domain.NewCustomer(domain.NewUserID(), "  jan.kowalski  ", "h", " Jan ", " Kowalski ")
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	if user.Username != "jan.kowalski" {
		t.Errorf("expected trimmed username, got %q", user.Username)
	}
	if user.FirstName != "Jan" || user.LastName != "Kowalski" {
		t.Errorf("expected trimmed names, got %q %q", user.FirstName, user.LastName)
	}
}

func TestParseUserRole(t *testing.T) {
	if role, err := domain.ParseUserRole("EMPLOYEE"); err != nil || role != domain.RoleEmployee {
		t.Errorf("ParseUserRole(EMPLOYEE): %v, %v", role, err)
	}
	if role, err := domain.ParseUserRole("CUSTOMER"); err != nil || role != domain.RoleCustomer {
		t.Errorf("ParseUserRole(CUSTOMER): %v, %v", role, err)
	}
	if _, err := domain.ParseUserRole("ADMIN"); err == nil {
		t.Error("ParseUserRole(ADMIN): expected error")
	}
}
