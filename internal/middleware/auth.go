package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ghaniswara/swipe-match/internal/entity"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	"github.com/ghaniswara/swipe-match/pkg/http_util"
	"github.com/ghaniswara/swipe-match/pkg/jwt"
	"github.com/labstack/echo"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey      = "claims"
	UserProfileKey = "userProfile"
)

func JWTMiddleware(userRepo userRepo.IUserRepo, tokens *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return http_util.Error(c, http.StatusUnauthorized, "missing token")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return http_util.Error(c, http.StatusUnauthorized, "invalid token format")
			}
			token := parts[1]

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				return http_util.Error(c, http.StatusUnauthorized, "invalid token")
			}

			userProfile, err := userRepo.GetUserByID(c.Request().Context(), claims.UserID)
			if errors.Is(err, entity.ErrUserNotFound) {
				return http_util.Error(c, http.StatusUnauthorized, "invalid token")
			}
			if err != nil {
				log.Ctx(c.Request().Context()).Error().Err(err).Msg("load token owner")
				return http_util.Error(c, http.StatusInternalServerError, "Internal server error")
			}

			c.Set(ClaimsKey, claims)
			c.Set(UserProfileKey, userProfile)

			return next(c)
		}
	}
}

// UserProfile returns the authenticated user stored by JWTMiddleware.
func UserProfile(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(UserProfileKey).(*entity.User)
	return user, ok && user != nil
}
