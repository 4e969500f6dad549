// Package repositories defines one persistence interface per entity so the
// application lifecycle engine never depends on which backing store is
// active. Mongo implementations back the running server; the in-memory ones
// back the test suite.
package repositories

import (
	"context"
	"errors"

	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

type StudentRepository interface {
	Insert(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	// UpdatePlacement stamps the placement fields written by the state machine.
	UpdatePlacement(ctx context.Context, id primitive.ObjectID, status, company, role string, ctc float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DriveRepository interface {
	Insert(ctx context.Context, drive *models.Drive) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Drive, error)
	List(ctx context.Context) ([]models.Drive, error)
	Update(ctx context.Context, drive *models.Drive) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Registered/selected student sets use set semantics: adds are idempotent.
	AddRegisteredStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error
	RemoveRegisteredStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error
	AddSelectedStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error
}

type ApplicationRepository interface {
	// Insert returns ErrDuplicateKey when an application for the same
	// (student, drive) pair already exists.
	Insert(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	FindByStudentAndDrive(ctx context.Context, studentID, driveID primitive.ObjectID) (*models.Application, error)
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Application, error)
	FindByDrive(ctx context.Context, driveID primitive.ObjectID) ([]models.Application, error)
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByDrive(ctx context.Context, driveID primitive.ObjectID) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
}
