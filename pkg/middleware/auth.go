package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/lottery-results-api/pkg/apiErrors"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

type contextKey string

const (
	ContextKeyCaller contextKey = "cron_caller"

	cronAudience = "lottery-cron"
)

// CronClaims identifica quem disparou uma execução manual
type CronClaims struct {
	Caller string `json:"caller"`
	jwt.RegisteredClaims
}

// IssueCronToken assina um token HS256 com o segredo das execuções manuais
func IssueCronToken(secret, caller string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("segredo de cron não configurado")
	}

	now := time.Now()
	claims := CronClaims{
		Caller: caller,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{cronAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateCronToken confere assinatura, audiência e validade do token
func ValidateCronToken(secret, tokenString string) (*CronClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CronClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithAudience(cronAudience))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CronClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("token inválido")
}

// CronAuth aceita o segredo puro como bearer ou um JWT assinado com ele.
// Sem segredo configurado as rotas protegidas ficam fechadas.
func CronAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			if secret == "" {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Execução manual desabilitada: CRON_SECRET não configurado", nil)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(tokenString), []byte(secret)) == 1 {
				ctx := context.WithValue(r.Context(), ContextKeyCaller, "secret")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			claims, err := ValidateCronToken(secret, tokenString)
			if err != nil {
				logger.WithError(err).Warn("Token de cron rejeitado")
				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCaller, claims.Caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext devolve quem foi autenticado pelo CronAuth
func CallerFromContext(ctx context.Context) string {
	if caller, ok := ctx.Value(ContextKeyCaller).(string); ok {
		return caller
	}
	return ""
}
