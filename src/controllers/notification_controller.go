package controllers

import (
	"errors"
	"net/http"

	"Backend-PlacementCell/src/repositories"
	"Backend-PlacementCell/src/services/notifications"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyNotifications godoc
// @Summary      List my notifications
// @Description  Direct, role-targeted and broadcast notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Notification
// @Router       /notifications [get]
func GetMyNotifications(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid token subject")
	}

	role, _ := c.Locals("role").(string)
	list, err := notifications.ListForUser(userID, role)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(list)
}

// MarkNotificationRead godoc
// @Summary      Mark one notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        notificationId path string true "Notification ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /notifications/{notificationId}/read [patch]
func MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("notificationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid notificationId format")
	}

	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid token subject")
	}

	if err := notifications.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Notification not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead godoc
// @Summary      Mark all my notifications read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SuccessResponse
// @Router       /notifications/read-all [patch]
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid token subject")
	}

	if err := notifications.MarkAllRead(userID); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
