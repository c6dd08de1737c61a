package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// sessionContextKey ключ контекста для сессии аутентифицированного пользователя
type sessionContextKey struct{}

// sessionClaims полезная нагрузка JWT-токена сессии
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT-токены сессий
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает токен для учетной записи
func (m *TokenManager) Issue(session domain.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: session.Username,
		Role:     string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("middleware: failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет токен и восстанавливает сессию
func (m *TokenManager) Parse(tokenString string) (domain.Session, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("middleware: unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("middleware: invalid token: %w", err)
	}

	session := domain.Session{
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}
	if session.Username == "" || !session.Role.IsValid() {
		return domain.Session{}, fmt.Errorf("middleware: malformed session claims")
	}

	return session, nil
}

// SessionFromContext достает сессию из контекста запроса
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(domain.Session)
	return session, ok
}

// Auth проверяет Bearer-токен и кладет явную сессию (account, role) в контекст
func Auth(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				respondUnauthorized(w)
				return
			}

			session, err := tm.Parse(token)
			if err != nil {
				respondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только сессии с ролью admin
// Должен стоять после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			respondUnauthorized(w)
			return
		}
		if !session.Role.IsValid() || session.Role != domain.RoleAdmin {
			respondForbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"требуется аутентификация"}`))
}

func respondForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"операция доступна только администратору"}`))
}
