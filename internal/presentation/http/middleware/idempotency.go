package middleware

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the header clients send on retryable requests.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a recorded response can be replayed.
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds the dependencies for the idempotency middleware.
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyRequired rejects POSTs that arrive without an Idempotency-Key
// header. A repeated key within the TTL replays the recorded response
// instead of running the handler again, so a retried checkout cannot bill
// twice.
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			return
		}

		userID := currentUserID(c)
		if userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			return
		}

		// Two concurrent first requests with the same key can both miss here
		// and both run the handler; the (key, user_id) unique constraint
		// makes the recording an upsert, so the later writer's response is
		// the one subsequent retries replay.
		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to check idempotency key",
			})
			return
		}
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		// Only successful responses are worth replaying; a failed attempt
		// should be allowed to retry for real.
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		err = config.Repo.Create(c.Request.Context(), &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: recorder.body.String(),
			ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
		})
		if err != nil {
			// The response was already sent; an unrecorded key means the
			// next retry re-executes, so make the failure visible.
			log.Printf("idempotency: failed to record response for key %s: %v", key, err)
		}
	}
}
