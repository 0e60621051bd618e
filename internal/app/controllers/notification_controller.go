package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services/container"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/code"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/response"
)

// NotificationController handles the notification read path
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController creates a new notification controller
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNotificationFunc returns a gin handler dispatching to the
// notification controller
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getAdminNotifications":
			controller.GetAdminNotifications()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// GetAdminNotifications lists the notifications addressed to one admin
// @Summary      List admin notifications
// @Description  Returns every notification whose receiver is the given admin
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Success      200  {array}   models.Notification
// @Failure      400  {object}  response.MessageBody
// @Failure      404  "admin does not exist"
// @Router       /admin/{id}/notifications [get]
func (c *NotificationController) GetAdminNotifications() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid id parameter")
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, err := notificationService.GetNotificationsByAdminID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	// An empty list on its own is ambiguous: the admin may exist with no
	// notifications, or not exist at all. Only the latter is a 404.
	if len(notifications) == 0 {
		adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
		admin, err := adminService.GetAdminByID(uint(id))
		if err != nil {
			response.Fail(c.Ctx, code.ErrDatabase)
			return
		}
		if admin == nil {
			response.NotFoundEmpty(c.Ctx)
			return
		}
	}

	response.OK(c.Ctx, notifications)
}
