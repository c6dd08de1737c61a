package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// AccountResponse модель учетной записи для вызывающего слоя (без хеша пароля)
type AccountResponse struct {
	Username string
	Role     domain.Role
}

// FromDomainAccount конвертирует доменную учетную запись в ответ сервиса
func FromDomainAccount(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		Username: account.Username,
		Role:     account.Role,
	}
}
