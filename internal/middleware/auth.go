package middleware

import (
	"strings"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/repository"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
)

// CtxUserKey is the gin context key holding the authenticated user.
const CtxUserKey = "currentUser"

// CurrentUser returns the authenticated user for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// BearerToken extracts the bearer credential from the Authorization
// header, or "" when the header is absent or not bearer-scheme.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequestGate validates the bearer token on every request and, when it
// checks out, establishes the caller's identity in the context. It
// never rejects a request itself: any failure leaves the request
// unauthenticated and route authorization decides the outcome.
func RequestGate(jwtSecret string, users repository.UserRepositoryI, tokens repository.TokenRepositoryI) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := BearerToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		username, err := util.ExtractUsername(jwtSecret, tokenStr)
		if err != nil || username == "" {
			// malformed or badly signed token: treat as anonymous
			c.Next()
			return
		}

		if _, established := c.Get(CtxUserKey); !established {
			if user := validateToken(jwtSecret, tokenStr, username, users, tokens); user != nil {
				c.Set(CtxUserKey, user)
			}
		}

		c.Next()
	}
}

// validateToken resolves the subject against the credential store and
// accepts the token only if the subject is a known user, the token is
// not expired, and the ledger holds this exact token string unrevoked.
func validateToken(jwtSecret, tokenStr, username string, users repository.UserRepositoryI, tokens repository.TokenRepositoryI) *models.User {
	user, err := users.FindByUsername(username)
	if err != nil || user == nil {
		return nil
	}

	expired, err := util.IsExpired(jwtSecret, tokenStr)
	if err != nil || expired {
		return nil
	}

	stored, err := tokens.FindByToken(tokenStr)
	if err != nil || stored == nil || stored.Revoked {
		return nil
	}

	return user
}
