package controllers

import (
	"net/http"
	"time"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register godoc
// @Summary      Register a student account
// @Description  Creates a user account together with its student profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Registration data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	user, student, err := services.RegisterStudent(req)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"data":    fiber.Map{"user": user, "student": student},
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a JWT access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to generate token")
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		refreshToken = "" // Redis down; access token alone still works
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Refresh godoc
// @Summary      Refresh an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RefreshRequest true "Refresh token"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func Refresh(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	userIDHex, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, err.Error())
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Account no longer exists")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{"token": token})
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func Me(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid token subject")
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Account not found")
	}

	return c.JSON(user)
}
