package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/auth"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByBiometricID(ctx context.Context, biometricID string) (user.User, error) {
	return user.User{}, user.ErrUnknownBiometricID
}

func (f *fakeUserRepo) ListActiveEmployees(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

type fakeJWTRepo struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{revoked: make(map[string]bool)}
}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64) error {
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = true
	return nil
}

func testUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{
		"emp-1": {
			ID:        "emp-1",
			Email:     "alice@corp.test",
			FirstName: "Alice",
			LastName:  "Martin",
			Role:      user.RoleEmploye,
			IsActive:  true,
		},
		"emp-2": {
			ID:       "emp-2",
			Email:    "bob@corp.test",
			Role:     user.RoleEmploye,
			IsActive: false,
		},
	}}
}

func newTestService(jwtRepo *fakeJWTRepo) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(nil, testUsers(), jwtService, jwtRepo), jwtService
}

func refreshTokenFor(t *testing.T, jwtService jwt.Service, userID string) string {
	t.Helper()
	token, _, err := jwtService.GenerateRefreshToken(userID)
	require.NoError(t, err)
	return token
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, jwtService := newTestService(newFakeJWTRepo())
	refresh := refreshTokenFor(t, jwtService, "emp-1")

	resp, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiry, int64(0))
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, jwtService := newTestService(newFakeJWTRepo())
	access, _, err := jwtService.GenerateAccessToken("emp-1", "alice@corp.test", user.RoleEmploye)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _ := newTestService(newFakeJWTRepo())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	jwtRepo := newFakeJWTRepo()
	svc, jwtService := newTestService(jwtRepo)
	refresh := refreshTokenFor(t, jwtService, "emp-1")

	require.NoError(t, svc.Logout(context.Background(), refresh))

	_, err := svc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	svc, jwtService := newTestService(newFakeJWTRepo())
	refresh := refreshTokenFor(t, jwtService, "emp-2")

	_, err := svc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, user.ErrInactiveUser)
}

func TestAuthService_Logout_EmptyTokenIsNoop(t *testing.T) {
	svc, _ := newTestService(newFakeJWTRepo())

	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	jwtRepo := newFakeJWTRepo()
	svc, jwtService := newTestService(jwtRepo)
	refresh := refreshTokenFor(t, jwtService, "emp-1")

	require.NoError(t, svc.Logout(context.Background(), refresh))
	require.NoError(t, svc.Logout(context.Background(), refresh))

	revoked, err := jwtRepo.IsRefreshTokenRevoked(context.Background(), refresh)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := newTestService(newFakeJWTRepo())

	resp, err := svc.Me(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "alice@corp.test", resp.Email)
	assert.Equal(t, "Alice", resp.FirstName)
	assert.Equal(t, string(user.RoleEmploye), resp.Role)
}

func TestAuthService_Me_Unknown(t *testing.T) {
	svc, _ := newTestService(newFakeJWTRepo())

	_, err := svc.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
