package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const identityKey = "identity"

// Identity is the request-scoped authenticated user, resolved once at the
// boundary and handed to handlers through the gin context.
type Identity struct {
	UserID    uint
	SessionID string
	Role      authorization.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// CurrentIdentity returns the identity set by RequireAuth or OptionalAuth.
// ok is false for anonymous requests.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

type AuthMiddleware struct {
	tokens      *auth.SessionTokenService
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewAuthMiddleware(tokens *auth.SessionTokenService, sessionRepo user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// RequireAuth resolves the session cookie into an Identity. Anonymous
// requests are redirected to the login page with the original destination
// preserved in the next parameter.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.resolve(c)
		if !ok {
			redirectToLogin(c)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid session cookie is present
// and stays silent otherwise. Used by the anonymous-preferred pages.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := m.resolve(c); ok {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends logged-in users home from pages meant for
// anonymous visitors (login, register).
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (Identity, bool) {
	token := utils.GetSessionToken(c)
	if token == "" {
		return Identity{}, false
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Debugw("failed to verify session token", "error", err)
		return Identity{}, false
	}

	// The signed token is only half the story: the server-side session must
	// still exist. A logout elsewhere invalidates every copy of the cookie.
	session, err := m.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
	if err != nil || session == nil {
		return Identity{}, false
	}

	return Identity{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Role:      claims.Role,
	}, true
}

func redirectToLogin(c *gin.Context) {
	next := c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		next += "?" + c.Request.URL.RawQuery
	}
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
	c.Abort()
}
