package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmayElinje/inventory-pro/internal/application/auth"
	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/pkg/config"
	pkgjwt "github.com/TanmayElinje/inventory-pro/pkg/jwt"
)

const (
	testSecret      = "test-secret-key-for-unit-tests"
	testAdminCode   = "admin-code"
	testManagerCode = "manager-code"
)

type memUserRepo struct {
	users map[string]*entity.User // by username
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventory-pro-test",
	}, config.SignupConfig{
		AdminCode:   testAdminCode,
		ManagerCode: testManagerCode,
	})
}

func TestRegisterUser_DefaultsToStaff(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	user, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestRegisterUser_SignupCodes(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{"admin code", testAdminCode, entity.RoleAdmin},
		{"manager code", testManagerCode, entity.RoleManager},
		{"unknown code", "bogus", entity.RoleStaff},
		{"empty code", "", entity.RoleStaff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAuthUC(newMemUserRepo())
			user, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
				Username:   "bob",
				Password:   "password123",
				SignupCode: tc.code,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, user.Role)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "alice", Password: "otherpassword"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_PasswordIsHashed(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	stored := repo.users["alice"]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestLogin_ReturnsTokenWithRole(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Username:   "alice",
		Password:   "password123",
		SignupCode: testAdminCode,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)

	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "alice", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUser(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	created, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	user, err := uc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = uc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
