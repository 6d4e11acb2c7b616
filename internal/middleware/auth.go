package middleware

import (
	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "current_user"

const AccessTokenCookie = "access_token"

// Identify resolves the access_token cookie into a user and stores it in
// the request context. A missing, invalid, or stale token leaves the
// request anonymous; endpoints that need identity reject it themselves.
func Identify(secret []byte, users *mysql.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims, err := pkg.DecodeIdentity(secret, tokenStr)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(claims.ID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the resolved identity, if any.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
