package copier

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxNotificationBytes = 1 << 20

// RegisterRoutes mounts the notification webhook under the provided router group.
// The payload is an S3 event notification, as sent by a MinIO webhook target.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.POST("/notifications", handler.receiveNotification)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) receiveNotification(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxNotificationBytes))
	if err != nil {
		h.service.fail(fmt.Errorf("%w: read body: %w", ErrDecode, err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable notification payload"})
		return
	}

	rec, err := h.service.HandlePayload(c.Request.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrDecode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification payload"})
		case errors.Is(err, ErrCopy):
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to copy object"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record metadata"})
		}
		return
	}

	c.JSON(http.StatusCreated, rec)
}
