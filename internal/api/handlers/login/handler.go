package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите имя пользователя, пароль и роль"
	msgUnauthorized       = "неверные учетные данные"
)

type Handler struct {
	service AccountsService
	tokens  TokenIssuer
	logger  Logger
}

func NewHandler(service AccountsService, tokens TokenIssuer, logger Logger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	account, err := h.service.Authenticate(r.Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, accounts.ErrUnauthorized):
			h.logger.Warn("POST /auth/login - Unauthorized: username=%s, role=%s", req.Username, req.Role)
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)

		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.tokens.Issue(domain.Session{
		Username: account.Username,
		Role:     account.Role,
	})
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to issue token: username=%s, error=%v", account.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - Logged in: username=%s, role=%s", account.Username, account.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:    token,
		Username: account.Username,
		Role:     string(account.Role),
	})
}
