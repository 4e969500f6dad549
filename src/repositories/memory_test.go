package repositories

import (
	"context"
	"testing"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryApplicationRepoUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApplicationRepository()

	studentID := primitive.NewObjectID()
	driveID := primitive.NewObjectID()

	first := models.Application{StudentID: studentID, DriveID: driveID, Status: models.StatusApplied}
	require.NoError(t, repo.Insert(ctx, &first))
	assert.False(t, first.ID.IsZero())

	// Same pair again violates the compound constraint.
	second := models.Application{StudentID: studentID, DriveID: driveID, Status: models.StatusApplied}
	assert.ErrorIs(t, repo.Insert(ctx, &second), ErrDuplicateKey)

	// Same student, different drive is fine.
	third := models.Application{StudentID: studentID, DriveID: primitive.NewObjectID(), Status: models.StatusApplied}
	assert.NoError(t, repo.Insert(ctx, &third))
}

func TestMemoryApplicationRepoDeleteByDrive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApplicationRepository()

	driveID := primitive.NewObjectID()
	otherDrive := primitive.NewObjectID()

	for _, d := range []primitive.ObjectID{driveID, driveID, otherDrive} {
		app := models.Application{StudentID: primitive.NewObjectID(), DriveID: d, Status: models.StatusApplied}
		require.NoError(t, repo.Insert(ctx, &app))
	}

	require.NoError(t, repo.DeleteByDrive(ctx, driveID))

	remaining, err := repo.FindByDrive(ctx, driveID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := repo.FindByDrive(ctx, otherDrive)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestMemoryDriveRepoStudentSets(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDriveRepository()

	drive := models.Drive{
		RegisteredStudents: []primitive.ObjectID{},
		SelectedStudents:   []primitive.ObjectID{},
	}
	require.NoError(t, repo.Insert(ctx, &drive))

	studentID := primitive.NewObjectID()

	// Adding twice keeps set semantics.
	require.NoError(t, repo.AddRegisteredStudent(ctx, drive.ID, studentID))
	require.NoError(t, repo.AddRegisteredStudent(ctx, drive.ID, studentID))

	got, err := repo.FindByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Len(t, got.RegisteredStudents, 1)

	require.NoError(t, repo.RemoveRegisteredStudent(ctx, drive.ID, studentID))
	got, err = repo.FindByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RegisteredStudents)

	require.NoError(t, repo.AddSelectedStudent(ctx, drive.ID, studentID))
	require.NoError(t, repo.AddSelectedStudent(ctx, drive.ID, studentID))
	got, err = repo.FindByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Len(t, got.SelectedStudents, 1)

	t.Run("UnknownDrive", func(t *testing.T) {
		assert.ErrorIs(t, repo.AddRegisteredStudent(ctx, primitive.NewObjectID(), studentID), ErrNotFound)
	})
}

func TestMemoryStudentRepoPlacement(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStudentRepository()

	student := models.Student{UserID: primitive.NewObjectID(), Name: "Asha"}
	require.NoError(t, repo.Insert(ctx, &student))

	require.NoError(t, repo.UpdatePlacement(ctx, student.ID, models.PlacementPlaced, "Initech", "SRE", 15))

	got, err := repo.FindByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlacementPlaced, got.PlacementStatus)
	assert.Equal(t, "Initech", got.PlacedCompany)
	assert.Equal(t, "SRE", got.PlacedRole)
	assert.Equal(t, 15.0, got.PlacedCTC)

	byUser, err := repo.FindByUserID(ctx, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, byUser.ID)

	assert.ErrorIs(t, repo.UpdatePlacement(ctx, primitive.NewObjectID(), models.PlacementPlaced, "", "", 0), ErrNotFound)
}
