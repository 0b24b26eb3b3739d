package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/logger"
)

// The frontend contract embeds success in a 200 body for every business
// outcome; non-200 is reserved for malformed ids and server faults.

func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// FailErr maps a usecase error to the uniform failure shape. Infrastructure
// errors are logged with request context and degraded to the fallback text.
func FailErr(c *gin.Context, err error, fallback string) {
	if kind, ok := httperr.KindOf(err); !ok || kind == httperr.KindInfrastructure {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		Fail(c, fallback)
		return
	}
	Fail(c, httperr.UserMessage(err, fallback))
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func Internal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}
