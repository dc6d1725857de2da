package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlvery/dlvery/internal/user/domain"
	"github.com/dlvery/dlvery/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]domain.User // keyed by username
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	found := u
	return &found, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Save(ctx context.Context, user *domain.User) error {
	f.users[user.Username] = *user
	return nil
}

func TestRegisterUser_Success(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "alice",
		Password: "s3cret!",
		Email:    "alice@example.com",
		Role:     domain.RoleInventory,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleInventory, user.Role)
	assert.Empty(t, user.AgentID)
	assert.NotEqual(t, "s3cret!", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret!"))
}

func TestRegisterUser_DeliveryRoleGetsAgentID(t *testing.T) {
	handler := NewRegisterUserHandler(newFakeUserRepo())

	user, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "bob",
		Password: "s3cret!",
		Email:    "bob@example.com",
		Role:     domain.RoleDelivery,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.AgentID)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: "u1", Username: "alice", Email: "old@example.com"})
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "alice",
		Password: "s3cret!",
		Email:    "new@example.com",
		Role:     domain.RoleInventory,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"})
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "alice2",
		Password: "s3cret!",
		Email:    "alice@example.com",
		Role:     domain.RoleInventory,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegisterUser_Validation(t *testing.T) {
	handler := NewRegisterUserHandler(newFakeUserRepo())

	cases := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"MissingUsername", RegisterUserCommand{Password: "s3cret!", Email: "a@b.com", Role: domain.RoleAdmin}},
		{"MissingPassword", RegisterUserCommand{Username: "alice", Email: "a@b.com", Role: domain.RoleAdmin}},
		{"ShortPassword", RegisterUserCommand{Username: "alice", Password: "abc", Email: "a@b.com", Role: domain.RoleAdmin}},
		{"MissingEmail", RegisterUserCommand{Username: "alice", Password: "s3cret!", Role: domain.RoleAdmin}},
		{"InvalidRole", RegisterUserCommand{Username: "alice", Password: "s3cret!", Email: "a@b.com", Role: "SUPERUSER"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			assert.Error(t, err)
		})
	}
}

func TestLoginUser_Success(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	repo := newFakeUserRepo(domain.User{
		ID: "u1", Username: "alice", Password: hash,
		Email: "alice@example.com", Role: domain.RoleInventory,
	})
	handler := NewLoginUserHandler(repo)

	resp, err := handler.Handle(context.Background(), LoginUserCommand{
		Username: "alice",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleInventory, claims.Role)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	repo := newFakeUserRepo(domain.User{ID: "u1", Username: "alice", Password: hash})
	handler := NewLoginUserHandler(repo)

	_, err = handler.Handle(context.Background(), LoginUserCommand{
		Username: "alice",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	handler := NewLoginUserHandler(newFakeUserRepo())

	_, err := handler.Handle(context.Background(), LoginUserCommand{
		Username: "ghost",
		Password: "s3cret!",
	})
	assert.Error(t, err)
}
