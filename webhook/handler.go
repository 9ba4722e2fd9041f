package webhook

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// Handler verifies and ingests Clerk webhook deliveries. Responses drive the
// provider's retry loop: 2xx acknowledges, 4xx drops the delivery, 5xx asks
// for redelivery.
func Handler(signingSecret string, dispatcher *Dispatcher) gin.HandlerFunc {
	var wh *svix.Webhook
	if signingSecret != "" {
		var err error
		wh, err = svix.NewWebhook(signingSecret)
		if err != nil {
			log.Printf("❌ Invalid CLERK_WEBHOOK_SECRET: %v", err)
		}
	}

	return func(c *gin.Context) {
		if wh == nil {
			// No signing secret configured: refuse every delivery rather
			// than accept unverifiable events.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook signing is not configured"})
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}

		if err := wh.Verify(payload, c.Request.Header); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook signature"})
			return
		}

		evt, err := ParseEvent(payload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := dispatcher.Dispatch(c.Request.Context(), evt)
		if err != nil {
			var unknown ErrUnknownEvent
			if errors.As(err, &unknown) {
				c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
				return
			}
			// Store failure: report it so the provider redelivers.
			log.Printf("❌ Failed to sync %s for clerk user %s: %v", evt.Type, evt.Data.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"type":    result.Type,
			"clerkId": result.ClerkID,
			"created": result.Created,
		})
	}
}
