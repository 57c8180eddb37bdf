package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/apperr"
)

// succeeded is embedded first into every successful response body.
type succeeded struct {
	Success bool `json:"success"`
}

var ok = succeeded{Success: true}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondError writes err with the status of its apperr class. Server side failures are logged and
// reported without their internal details.
func (s *Server) respondError(c *gin.Context, err error) {
	apiErr := apperr.FromError(err)
	message := apiErr.Error()
	if apiErr.Status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("code", apiErr.Code),
			zap.Error(err))
		message = publicMessage(err)
	}
	_ = c.Error(err)
	c.JSON(apiErr.Status, errorBody{Error: message, Code: apiErr.Code})
}

func publicMessage(err error) string {
	switch {
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return "Database is unavailable, please try again later"
	case errors.Is(err, apperr.ErrExternalService):
		return "AI service is unavailable, please try again later"
	default:
		return "Internal server error"
	}
}

// bindJSON decodes the request body into req. A body that fails to decode or to pass the
// binding rules is answered with a 400 carrying message.
func (s *Server) bindJSON(c *gin.Context, req any, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, errorBody{Error: "Request body too large", Code: "body_too_large"})
			return false
		}
		s.respondError(c, apperr.Validation("%s", message))
		return false
	}
	return true
}
