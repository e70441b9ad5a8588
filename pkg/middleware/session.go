package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expoquest/pkg/utils"
)

// AttendeeResolver reports whether an attendee id still names a live row.
// The attendee service satisfies it.
type AttendeeResolver interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

const attendeeHeader = "X-Attendee-ID"

// SessionMiddleware authenticates attendee routes from the X-Attendee-ID
// header. An id that parses but no longer exists answers 401 with a
// session_expired flag so the client clears its stored session.
func SessionMiddleware(resolver AttendeeResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(attendeeHeader)
		if raw == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Missing attendee session")
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid attendee session")
			c.Abort()
			return
		}

		ok, err := resolver.Exists(c.Request.Context(), id)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !ok {
			c.Writer.Header().Set("X-Session-Expired", "true")
			utils.RespondError(c, http.StatusUnauthorized, "Session expired, please register again")
			c.Abort()
			return
		}

		c.Set("attendee_id", id)
		c.Next()
	}
}
