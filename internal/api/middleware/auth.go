package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/api/apperrors"
	"tasktracker/internal/api/models"
	"tasktracker/internal/api/response"
	"tasktracker/internal/api/service"
)

// currentUserKey is the gin context key the resolved identity is stored
// under. It is only ever written by RequireAuth.
const currentUserKey = "currentUser"

// RequireAuth extracts the bearer token from the Authorization header,
// resolves it to a known user and stores the user in the request context.
// Any failure aborts the request with 401; missing header, malformed header,
// bad token and unknown user are not distinguished.
func RequireAuth(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		user, err := userService.Resolve(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity RequireAuth resolved for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
	c.Abort()
}
