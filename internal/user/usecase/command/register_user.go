package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dlvery/dlvery/internal/user/domain"
	"github.com/dlvery/dlvery/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Password string
	Email    string
	Role     string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command. DELIVERY users are assigned
// an agent id that deliveries reference.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !domain.IsValidRole(cmd.Role) {
		return nil, fmt.Errorf("invalid role: %q", cmd.Role)
	}

	if existing, err := h.repo.FindByUsername(ctx, cmd.Username); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	if existing, err := h.repo.FindByEmail(ctx, cmd.Email); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  cmd.Username,
		Password:  hashedPassword,
		Email:     cmd.Email,
		Role:      cmd.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if cmd.Role == domain.RoleDelivery {
		user.AgentID = uuid.NewString()
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
