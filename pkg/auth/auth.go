package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/configs"
)

// EmailKey is the gin context key the middleware stores the caller's
// email claim under.
const EmailKey = "auth.email"

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// Middleware validates the Bearer token on every request and aborts with a
// 401 envelope when it is missing or invalid.
func (a *Manager) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		keyFunc := func(token *jwt.Token) (interface{}, error) {
			_, ok := token.Method.(*jwt.SigningMethodHMAC)
			if !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return []byte(a.conf.Auth.SecretKey), nil
		}

		accessToken, err := a.extractTokenFromHeader(ctx.Request.Header)
		if err != nil {
			a.abort(ctx, err.Error())

			return
		}

		token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
		if err != nil {
			a.logger.Error("error parsing token", zap.Error(err))
			a.abort(ctx, "error parsing token")

			return
		}

		claims, found := token.Claims.(jwt.MapClaims)
		if !found || !token.Valid {
			a.logger.Error("invalid token", zap.Any("claims", claims))
			a.abort(ctx, "invalid token")

			return
		}

		email, found := claims["email"].(string)
		if !found {
			a.logger.Error("unable to get user id from token", zap.Any("claims", claims))
			a.abort(ctx, "unable to get user id from token")

			return
		}

		ctx.Set(EmailKey, email)
		ctx.Next()
	}
}

func (a *Manager) abort(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, fmt.Errorf("authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, fmt.Errorf("authorization format must be Bearer {token}")
	}

	return &token, nil
}
