package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role does not allow this action", http.StatusForbidden)
)

// Authenticate parses the bearer token into an auth.Session and stores it in
// the request context. Expiry is checked against now on every request.
func Authenticate(tokens interfaces.ITokenIssuer, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		session, err := tokens.Parse(raw)
		if err != nil || session.Expired(now()) {
			logger.Info(c.Request.Context(), "[auth][middleware] token rejected", zap.Error(err))
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}

		ctx := auth.WithSession(c.Request.Context(), session)
		ctx = context.WithValue(ctx, logger.UserIDKey, session.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireCapability must run after Authenticate.
func RequireCapability(policy auth.Policy, capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.SessionFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !policy.Allows(session.Role, capability) {
			logger.Warn(c.Request.Context(), "[auth][middleware] forbidden",
				zap.String("role", string(session.Role)),
				zap.String("capability", string(capability)),
			)
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
