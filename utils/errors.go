package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Playhub/services/api"
	"Playhub/services/identity"
	"Playhub/services/session"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

var ErrBadRequest = errors.New("bad request")

// BadRequest marks a malformed input
func BadRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// StatusFor maps an error to the status the browser receives. Upstream
// authorization failures and missing sessions are 401, local precondition
// failures 400/409 and everything else coming from upstream 502.
func StatusFor(err error) int {
	var httpErr *api.HTTPError
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrMoveRejected):
		return http.StatusConflict
	case errors.Is(err, identity.ErrUnknownSession), errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrInvalidTicket), api.IsUnauthorized(err):
		return http.StatusUnauthorized
	case api.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusConflict:
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// RespondError writes err as {"error": ...} with the mapped status
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
