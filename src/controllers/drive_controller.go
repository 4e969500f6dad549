package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/drives"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wired in main.
var DriveService *drives.Service

func driveErrorStatus(err error) int {
	if errors.Is(err, drives.ErrDriveNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// CreateDrive godoc
// @Summary      Create a recruiting drive
// @Description  Creates the drive, announces it to students and schedules its lifecycle transitions
// @Tags         drives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateDriveRequest true "Drive data"
// @Success      201  {object}  models.Drive
// @Failure      400  {object}  models.ErrorResponse
// @Router       /drives [post]
func CreateDrive(c *fiber.Ctx) error {
	var req models.CreateDriveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	createdBy, _ := primitive.ObjectIDFromHex(c.Locals("userId").(string))

	ctx, cancel := requestContext()
	defer cancel()

	drive, err := DriveService.Create(ctx, req, createdBy)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(drive)
}

// GetDrives godoc
// @Summary      List drives
// @Description  Paginated drive list with company/role search and optional status filter
// @Tags         drives
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search"
// @Param        status query string false "Lifecycle status filter"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /drives [get]
func GetDrives(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", "driveDate")
	params.Order = c.Query("order", "asc")

	drivesPage, total, err := drives.GetDrivesPaginated(params, c.Query("status", ""))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.NewPaginatedResponse(drivesPage, total, params))
}

// GetDrive godoc
// @Summary      Get one drive
// @Tags         drives
// @Produce      json
// @Security     BearerAuth
// @Param        driveId path string true "Drive ID"
// @Success      200  {object}  models.Drive
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drives/{driveId} [get]
func GetDrive(c *fiber.Ctx) error {
	driveID, err := primitive.ObjectIDFromHex(c.Params("driveId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	drive, err := DriveService.GetByID(ctx, driveID)
	if err != nil {
		return utils.HandleError(c, driveErrorStatus(err), err.Error())
	}

	return c.JSON(drive)
}

// UpdateDrive godoc
// @Summary      Update a drive
// @Tags         drives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        driveId path string true "Drive ID"
// @Param        body body models.CreateDriveRequest true "Drive data"
// @Success      200  {object}  models.Drive
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drives/{driveId} [put]
func UpdateDrive(c *fiber.Ctx) error {
	driveID, err := primitive.ObjectIDFromHex(c.Params("driveId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	var req models.CreateDriveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	drive, err := DriveService.Update(ctx, driveID, req)
	if err != nil {
		return utils.HandleError(c, driveErrorStatus(err), err.Error())
	}

	return c.JSON(drive)
}

// CancelDrive godoc
// @Summary      Cancel a drive
// @Tags         drives
// @Produce      json
// @Security     BearerAuth
// @Param        driveId path string true "Drive ID"
// @Success      200  {object}  models.Drive
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drives/{driveId}/cancel [patch]
func CancelDrive(c *fiber.Ctx) error {
	driveID, err := primitive.ObjectIDFromHex(c.Params("driveId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	drive, err := DriveService.Cancel(ctx, driveID)
	if err != nil {
		return utils.HandleError(c, driveErrorStatus(err), err.Error())
	}

	return c.JSON(drive)
}

// DeleteDrive godoc
// @Summary      Delete a drive
// @Description  Deletes the drive and cascades to its applications
// @Tags         drives
// @Produce      json
// @Security     BearerAuth
// @Param        driveId path string true "Drive ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drives/{driveId} [delete]
func DeleteDrive(c *fiber.Ctx) error {
	driveID, err := primitive.ObjectIDFromHex(c.Params("driveId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := DriveService.Delete(ctx, driveID); err != nil {
		return utils.HandleError(c, driveErrorStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{"message": "Drive deleted successfully"})
}
