package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

func RespondJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// RespondMessage writes {"message": message} merged with extra.
func RespondMessage(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"message": err.Error()})
}

// RespondAppError writes the client-facing part of err. Internal faults are
// logged with their cause and answered with a generic message.
func RespondAppError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	if appErr.Kind == KindInternal {
		ErrorLogger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Errorf("internal error: %v", appErr.Err)
	}
	c.JSON(appErr.Status(), gin.H{"message": appErr.Message})
}
