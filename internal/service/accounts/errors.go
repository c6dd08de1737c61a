package accounts

import "errors"

var (
	// ErrUnauthorized возвращается при неверных учетных данных
	// Намеренно не различает "нет такого пользователя" и "неверный пароль"
	ErrUnauthorized = errors.New("accounts: invalid credentials")

	// ErrUsernameTaken возвращается при регистрации занятого имени
	ErrUsernameTaken = errors.New("accounts: username already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accounts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
