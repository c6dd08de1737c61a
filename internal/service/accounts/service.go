package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// Service сервис аутентификации и регистрации
// Пароли хранятся только в виде bcrypt-хешей
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Authenticate проверяет учетные данные в партиции указанной роли
func (s *Service) Authenticate(ctx context.Context, username, password string, role domain.Role) (*models.AccountResponse, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	account, err := s.accountRepo.GetByUsername(ctx, username, role)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Authenticate: unknown account %s/%s", role, username)
			return nil, ErrUnauthorized
		}
		s.logger.Error("Authenticate: repository error for %s/%s: %v", role, username, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for %s/%s", role, username)
		return nil, ErrUnauthorized
	}

	s.logger.Info("Authenticate: %s/%s logged in", role, username)
	return models.FromDomainAccount(account), nil
}

// Register регистрирует новую учетную запись
// Самостоятельная регистрация доступна только для роли user;
// администраторы заводятся сидированием
func (s *Service) Register(ctx context.Context, username, password string) (*models.AccountResponse, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for %s: %v", username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, accountRepo.ErrUsernameTaken) {
			s.logger.Warn("Register: username %s already taken", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: repository error for %s: %v", username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user %s registered", username)
	return models.FromDomainAccount(created), nil
}

// EnsureDefaultAccounts сидирует учетные записи по умолчанию
// admin/admin123 и user/user123 — дефолты для разработки, уже существующие
// записи не трогаются
func (s *Service) EnsureDefaultAccounts(ctx context.Context) error {
	seeds := []struct {
		username string
		password string
		role     domain.Role
	}{
		{domain.SeedAdminUsername, domain.SeedAdminPassword, domain.RoleAdmin},
		{domain.SeedUserUsername, domain.SeedUserPassword, domain.RoleUser},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: EnsureDefaultAccounts - hash password: %v", ErrInternal, err)
		}

		_, err = s.accountRepo.Create(ctx, &domain.Account{
			Username:     seed.username,
			PasswordHash: string(hash),
			Role:         seed.role,
		})
		if err != nil {
			if errors.Is(err, accountRepo.ErrUsernameTaken) {
				continue
			}
			return fmt.Errorf("%w: EnsureDefaultAccounts - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("EnsureDefaultAccounts: seeded %s/%s", seed.role, seed.username)
	}

	return nil
}
