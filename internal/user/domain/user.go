package domain

import (
	"context"
	"errors"
	"time"
)

// Role types
const (
	RoleInventory = "INVENTORY"
	RoleDelivery  = "DELIVERY"
	RoleAdmin     = "ADMIN"
)

// IsValidRole reports whether role is one of the known roles
func IsValidRole(role string) bool {
	return role == RoleInventory || role == RoleDelivery || role == RoleAdmin
}

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateUser  = errors.New("username already exists")
	ErrDuplicateEmail = errors.New("email already exists")
)

// User represents a system account. DELIVERY users carry an agent id that
// deliveries are assigned against.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"not null"`
	AgentID   string    `json:"agentId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}
