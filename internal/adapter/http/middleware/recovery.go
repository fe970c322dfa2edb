package middleware

import (
	"fmt"
	"net/http"

	"nirman/pkg"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPanic = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery answers a panic with the 500 envelope instead of an empty body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "[http] recovered from panic",
			zap.String("panic", fmt.Sprint(recovered)),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(errPanic.HTTPStatus, errPanic.ToHTTPError())
	})
}
