package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email is already registered")

// AuthenticateUser checks credentials and hydrates the display name from the
// role profile.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid email or password")
	}

	result := &models.User{
		ID:    dbUser.ID,
		Email: dbUser.Email,
		Role:  dbUser.Role,
		RefID: dbUser.RefID,
	}

	if dbUser.Role == models.RoleStudent {
		var student models.Student
		err := database.StudentCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&student)
		if err == nil {
			result.Name = student.Name
		}
	}

	return result, nil
}

// RegisterStudent creates a user account together with its student profile.
// Email uniqueness is enforced by the unique index on users.email.
func RegisterStudent(req models.RegisterRequest) (*models.User, *models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Role:     models.RoleStudent,
	}

	student := models.Student{
		ID:              primitive.NewObjectID(),
		UserID:          user.ID,
		Code:            req.Code,
		Name:            req.Name,
		Department:      req.Department,
		Batch:           req.Batch,
		CGPA:            req.CGPA,
		Backlogs:        req.Backlogs,
		Skills:          []models.SkillEntry{},
		Certifications:  []models.Certification{},
		PlacementStatus: models.PlacementNotPlaced,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	user.RefID = student.ID

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	if _, err := database.StudentCollection.InsertOne(ctx, student); err != nil {
		// Keep accounts and profiles consistent if the second insert fails.
		_, _ = database.UserCollection.DeleteOne(ctx, bson.M{"_id": user.ID})
		return nil, nil, err
	}

	user.Name = student.Name
	return &user, &student, nil
}

// GetUserByID loads an account by id, without the password hash.
func GetUserByID(id primitive.ObjectID) (*models.User, error) {
	ctx := context.Background()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	user.Password = ""

	if user.Role == models.RoleStudent {
		var student models.Student
		if err := database.StudentCollection.FindOne(ctx, bson.M{"_id": user.RefID}).Decode(&student); err == nil {
			user.Name = student.Name
		}
	}

	return &user, nil
}
