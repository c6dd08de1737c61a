package domain

import "time"

// Role роль учетной записи
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid проверяет, что роль входит в допустимый набор
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account учетная запись
// Уникальность username действует внутри партиции роли:
// admin/alice и user/alice — разные учетные записи
type Account struct {
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin возвращает true для администратора
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Session явное состояние аутентифицированного вызова
// Передается в операции вместо глобального "текущего пользователя"
type Session struct {
	Username string
	Role     Role
}
