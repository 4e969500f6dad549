package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/applications"
	"Backend-PlacementCell/src/services/students"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wired in main.
var ApplicationService *applications.Service
var StudentService *students.Service

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// currentStudent resolves the authenticated user's student profile.
func currentStudent(c *fiber.Ctx) (*models.Student, error) {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return nil, err
	}
	ctx, cancel := requestContext()
	defer cancel()
	return StudentService.GetByUserID(ctx, userID)
}

func applicationErrorStatus(err error) int {
	var ineligible *applications.IneligibleError
	var invalidTransition *applications.InvalidStateTransitionError

	switch {
	case errors.Is(err, applications.ErrDriveNotFound),
		errors.Is(err, applications.ErrApplicationNotFound),
		errors.Is(err, applications.ErrStudentNotFound):
		return http.StatusNotFound
	case errors.Is(err, applications.ErrDuplicateApplication):
		return http.StatusConflict
	case errors.Is(err, applications.ErrInvalidStatus),
		errors.Is(err, applications.ErrInvalidDecision),
		errors.Is(err, applications.ErrInvalidRating),
		errors.As(err, &ineligible),
		errors.As(err, &invalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Apply godoc
// @Summary      Apply to a drive
// @Description  Creates an application after the eligibility gate passes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.ApplyRequest true "Drive to apply to"
// @Success      201  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /applications [post]
func Apply(c *fiber.Ctx) error {
	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	driveID, err := primitive.ObjectIDFromHex(req.DriveID)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.Apply(ctx, student.ID, driveID)
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Allowed only while the application is still in applied state
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId} [delete]
func Withdraw(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.GetByID(ctx, appID)
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}
	if app.StudentID != student.ID {
		return utils.HandleError(c, http.StatusForbidden, "Not your application")
	}

	if err := ApplicationService.Withdraw(ctx, appID); err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{"message": "Application withdrawn"})
}

// AdminSetStatus godoc
// @Summary      Update application status
// @Description  Moves an application to a new status and fires the placement and notification side effects
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Param        body body models.SetStatusRequest true "New status"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId}/status [put]
func AdminSetStatus(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	var req models.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.AdminSetStatus(ctx, appID, models.ApplicationStatus(req.Status), applications.UpdateOptions{
		Feedback:   req.Feedback,
		OfferedCTC: req.OfferedCTC,
	})
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.JSON(app)
}

// RespondToOffer godoc
// @Summary      Accept or decline an offer
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Param        body body models.RespondRequest true "Decision"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId}/respond [put]
func RespondToOffer(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	var req models.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	ctx, cancel := requestContext()
	defer cancel()

	existing, err := ApplicationService.GetByID(ctx, appID)
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}
	if existing.StudentID != student.ID {
		return utils.HandleError(c, http.StatusForbidden, "Not your application")
	}

	app, err := ApplicationService.RespondToOffer(ctx, appID, models.ApplicationStatus(req.Decision))
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.JSON(app)
}

// GetApplication godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Success      200  {object}  models.Application
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId} [get]
func GetApplication(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.GetByID(ctx, appID)
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	if c.Locals("role") == models.RoleStudent {
		student, err := currentStudent(c)
		if err != nil || app.StudentID != student.ID {
			return utils.HandleError(c, http.StatusForbidden, "Not your application")
		}
	}

	return c.JSON(app)
}

// GetMyApplications godoc
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Application
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/me [get]
func GetMyApplications(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	ctx, cancel := requestContext()
	defer cancel()

	apps, err := ApplicationService.ListByStudent(ctx, student.ID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(apps)
}

// GetApplicationsByDrive godoc
// @Summary      List a drive's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        driveId path string true "Drive ID"
// @Success      200  {array}   models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Router       /applications/drive/{driveId} [get]
func GetApplicationsByDrive(c *fiber.Ctx) error {
	driveID, err := primitive.ObjectIDFromHex(c.Params("driveId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid driveId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	apps, err := ApplicationService.ListByDrive(ctx, driveID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(apps)
}

// UpsertRound godoc
// @Summary      Record an interview round
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Param        body body models.RoundRequest true "Round record"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId}/rounds [put]
func UpsertRound(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	var req models.RoundRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.UpsertRound(ctx, appID, models.InterviewRound{
		Number:      req.Number,
		Name:        req.Name,
		Date:        req.Date,
		Outcome:     req.Outcome,
		Feedback:    req.Feedback,
		Interviewer: req.Interviewer,
	})
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.JSON(app)
}

// SetReview godoc
// @Summary      Patch internal rating and notes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId path string true "Application ID"
// @Param        body body models.ReviewRequest true "Review fields"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{applicationId}/review [patch]
func SetReview(c *fiber.Ctx) error {
	appID, err := primitive.ObjectIDFromHex(c.Params("applicationId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicationId format")
	}

	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	app, err := ApplicationService.SetReview(ctx, appID, req.Rating, req.Notes)
	if err != nil {
		return utils.HandleError(c, applicationErrorStatus(err), err.Error())
	}

	return c.JSON(app)
}
