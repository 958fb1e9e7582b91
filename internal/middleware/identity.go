package middleware

import "github.com/gin-gonic/gin"

// Context keys populated by Identity.
const (
	UserIDKey    = "identity.user_id"
	UserNameKey  = "identity.user_name"
	UserEmailKey = "identity.user_email"
)

// Identity headers set by the fronting identity-aware proxy. The portal
// does not manage sessions itself; these values are treated as opaque
// trusted input.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
)

// Identity extracts the caller identity headers into the request context.
// Requests without identity pass through; handlers that require a caller
// reject them individually.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetHeader(HeaderUserID); uid != "" {
			c.Set(UserIDKey, uid)
		}
		if name := c.GetHeader(HeaderUserName); name != "" {
			c.Set(UserNameKey, name)
		}
		if email := c.GetHeader(HeaderUserEmail); email != "" {
			c.Set(UserEmailKey, email)
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's user ID, or "" when absent.
func CallerID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// CallerName returns the authenticated caller's display name, or "" when absent.
func CallerName(c *gin.Context) string {
	return c.GetString(UserNameKey)
}

// CallerEmail returns the authenticated caller's email, or "" when absent.
func CallerEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
