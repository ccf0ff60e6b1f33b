package handlers

import (
	"net/http"

	"fieldtech/internal/usecase"
	"fieldtech/pkg"

	"github.com/gin-gonic/gin"
)

var errNotificationNotFound = pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)

type NotificationHandler struct {
	center usecase.INotificationCenter
}

func NewNotificationHandler(center usecase.INotificationCenter) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List godoc
// @Summary      Active notifications, oldest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  entities.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.center.Active())
}

// Dismiss godoc
// @Summary      Dismiss a notification
// @Tags         notifications
// @Param        id  path  string  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if !h.center.Dismiss(c.Param("id")) {
		writeError(c, errNotificationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
