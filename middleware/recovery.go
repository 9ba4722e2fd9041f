package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the JSON 500 shape the admin SPA expects.
// The panic detail is echoed back only outside production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString("request_id")
		log.Printf("💥 Panic recovered (request %s): %v", requestID, recovered)

		body := gin.H{
			"status":  "error",
			"message": "Internal Server Error",
		}
		if !production {
			body["error"] = fmt.Sprintf("%v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
