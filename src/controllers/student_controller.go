package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/students"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetStudents godoc
// @Summary      List students
// @Description  Paginated student list with name/code/department search
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", "name")
	params.Order = c.Query("order", "asc")

	studentsPage, total, err := students.GetStudentsPaginated(params)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.NewPaginatedResponse(studentsPage, total, params))
}

// GetStudent godoc
// @Summary      Get one student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        studentId path string true "Student ID"
// @Success      200  {object}  models.Student
// @Failure      404  {object}  models.ErrorResponse
// @Router       /students/{studentId} [get]
func GetStudent(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Params("studentId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid studentId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	student, err := StudentService.GetByID(ctx, studentID)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}

	return c.JSON(student)
}

// GetMyProfile godoc
// @Summary      My student profile
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Student
// @Failure      404  {object}  models.ErrorResponse
// @Router       /students/me [get]
func GetMyProfile(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}
	return c.JSON(student)
}

// UpdateMyProfile godoc
// @Summary      Update my profile
// @Description  Self-service edit of profile fields; placement fields are read-only here
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.UpdateProfileRequest true "Profile fields"
// @Success      200  {object}  models.Student
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /students/me [put]
func UpdateMyProfile(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	updated, err := StudentService.UpdateProfile(ctx, student.ID, req)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(updated)
}

// DeleteStudent godoc
// @Summary      Delete a student
// @Description  Refused while applications still reference the profile
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        studentId path string true "Student ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /students/{studentId} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Params("studentId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid studentId format")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := StudentService.Delete(ctx, studentID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, students.ErrProfileNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, students.ErrHasApplications) {
			status = http.StatusBadRequest
		}
		return utils.HandleError(c, status, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// Shortlist godoc
// @Summary      Shortlist students
// @Description  Filters students by CGPA, backlogs, departments and required skills; CGPA descending
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.ShortlistCriteria true "Filter criteria"
// @Success      200  {array}   models.Student
// @Failure      400  {object}  models.ErrorResponse
// @Router       /students/shortlist [post]
func Shortlist(c *fiber.Ctx) error {
	var criteria models.ShortlistCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(criteria); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := StudentService.Shortlist(ctx, criteria)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

// GetMyReadiness godoc
// @Summary      Readiness score and drive recommendations
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  students.ReadinessReport
// @Failure      404  {object}  models.ErrorResponse
// @Router       /students/me/readiness [get]
func GetMyReadiness(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student profile not found")
	}

	ctx, cancel := requestContext()
	defer cancel()

	report, err := StudentService.Readiness(ctx, student.ID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(report)
}
