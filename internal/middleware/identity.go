package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/model"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

const identityKey = "identity"

// Validator resolves a session token to an identity.
type Validator interface {
	Validate(ctx context.Context, token string) (*model.Identity, bool)
}

// Identity resolves the caller's session once per request and stashes the
// result in the gin context. Anonymous requests pass straight through:
// handlers that require a user check CurrentIdentity themselves.
func Identity(auth Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if ident, ok := auth.Validate(c.Request.Context(), token); ok {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, if any.
func CurrentIdentity(c *gin.Context) (*model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*model.Identity)
	return ident, ok
}
