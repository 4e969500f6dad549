package utils

import (
	"testing"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("ValidRequest", func(t *testing.T) {
		req := models.LoginRequest{Email: "asha@example.com", Password: "secret123"}
		assert.NoError(t, ValidateStruct(req))
	})

	t.Run("MissingFields", func(t *testing.T) {
		err := ValidateStruct(models.LoginRequest{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("BadEmail", func(t *testing.T) {
		req := models.RegisterRequest{
			Email:      "not-an-email",
			Password:   "secret123",
			Name:       "Asha",
			Code:       "CS-001",
			Department: "CS",
		}
		err := ValidateStruct(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email")
	})

	t.Run("DecisionEnum", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(models.RespondRequest{Decision: "accepted"}))
		assert.NoError(t, ValidateStruct(models.RespondRequest{Decision: "declined"}))
		assert.Error(t, ValidateStruct(models.RespondRequest{Decision: "maybe"}))
	})
}
