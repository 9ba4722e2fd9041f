package healthController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check reports liveness. It deliberately does not touch the database: the
// endpoint answers 200 whether or not the store is reachable.
func Check(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"message":     "Server is healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": environment,
		})
	}
}
