package accounts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*domain.Account{}}
}

func accountKey(username string, role domain.Role) string {
	return fmt.Sprintf("%s/%s", role, username)
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	key := accountKey(account.Username, account.Role)
	if _, exists := f.accounts[key]; exists {
		return nil, accountRepo.ErrUsernameTaken
	}
	saved := *account
	f.accounts[key] = &saved
	return &saved, nil
}

func (f *fakeAccountRepo) GetByUsername(_ context.Context, username string, role domain.Role) (*domain.Account, error) {
	account, ok := f.accounts[accountKey(username, role)]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) addAccount(t *testing.T, username, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	f.accounts[accountKey(username, role)] = &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	repo.addAccount(t, "ivan", "secret", domain.RoleUser)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Authenticate(context.Background(), "ivan", "secret", domain.RoleUser)
	require.NoError(t, err)
	require.Equal(t, "ivan", resp.Username)
	require.Equal(t, domain.RoleUser, resp.Role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	repo.addAccount(t, "ivan", "secret", domain.RoleUser)
	svc := NewService(repo, noopLogger{})

	_, err := svc.Authenticate(context.Background(), "ivan", "wrong", domain.RoleUser)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAccountRepo(), noopLogger{})

	_, err := svc.Authenticate(context.Background(), "nobody", "secret", domain.RoleUser)
	require.ErrorIs(t, err, ErrUnauthorized)
}

// Партиция ролей: user/ivan не открывает admin/ivan
func TestAuthenticateRolePartition(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	repo.addAccount(t, "ivan", "secret", domain.RoleUser)
	svc := NewService(repo, noopLogger{})

	_, err := svc.Authenticate(context.Background(), "ivan", "secret", domain.RoleAdmin)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticateValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAccountRepo(), noopLogger{})

	_, err := svc.Authenticate(context.Background(), "", "secret", domain.RoleUser)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Authenticate(context.Background(), "ivan", "", domain.RoleUser)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Authenticate(context.Background(), "ivan", "secret", "manager")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Register(context.Background(), "newuser", "pass123")
	require.NoError(t, err)
	require.Equal(t, "newuser", resp.Username)
	require.Equal(t, domain.RoleUser, resp.Role, "self-registration is user-only")

	stored := repo.accounts[accountKey("newuser", domain.RoleUser)]
	require.NotNil(t, stored)
	require.NotEqual(t, "pass123", stored.PasswordHash, "password is stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")))
}

func TestRegisterUsernameTaken(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	repo.addAccount(t, "ivan", "secret", domain.RoleUser)
	svc := NewService(repo, noopLogger{})

	_, err := svc.Register(context.Background(), "ivan", "other")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestEnsureDefaultAccounts(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.EnsureDefaultAccounts(context.Background()))
	require.Contains(t, repo.accounts, accountKey(domain.SeedAdminUsername, domain.RoleAdmin))
	require.Contains(t, repo.accounts, accountKey(domain.SeedUserUsername, domain.RoleUser))

	// Повторный запуск не трогает существующие записи
	adminHash := repo.accounts[accountKey(domain.SeedAdminUsername, domain.RoleAdmin)].PasswordHash
	require.NoError(t, svc.EnsureDefaultAccounts(context.Background()))
	require.Equal(t, adminHash, repo.accounts[accountKey(domain.SeedAdminUsername, domain.RoleAdmin)].PasswordHash)

	// Сидированные пароли работают через Authenticate
	_, err := svc.Authenticate(context.Background(), domain.SeedAdminUsername, domain.SeedAdminPassword, domain.RoleAdmin)
	require.NoError(t, err)
}
