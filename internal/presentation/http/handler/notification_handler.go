package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	client *upstream.Client
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(client *upstream.Client) *NotificationHandler {
	return &NotificationHandler{client: client}
}

// List handles listing notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.client.Notifications.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Notifications retrieved successfully", notifications)
}

// MarkRead marks a single notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	notification, err := h.client.Notifications.MarkRead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Notification marked as read", notification)
}

// MarkAllRead marks every notification as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.client.Notifications.MarkAllRead(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "All notifications marked as read", nil)
}

// Delete handles deleting a notification
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.client.Notifications.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteAll handles deleting every notification
func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	if err := h.client.Notifications.DeleteAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateTest asks the POS service to seed test notifications
func (h *NotificationHandler) CreateTest(c *gin.Context) {
	if err := h.client.Notifications.CreateTest(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Test notifications created", nil)
}
