package drives

import (
	"context"
	"testing"
	"time"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingNotifier struct {
	sent []models.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification models.Notification) {
	n.sent = append(n.sent, notification)
}

func newTestService() (*Service, *repositories.MemoryDriveRepo, *repositories.MemoryApplicationRepo, *recordingNotifier) {
	driveRepo := repositories.NewMemoryDriveRepository()
	appRepo := repositories.NewMemoryApplicationRepository()
	notifier := &recordingNotifier{}
	return NewService(driveRepo, appRepo, notifier), driveRepo, appRepo, notifier
}

func driveRequest() models.CreateDriveRequest {
	return models.CreateDriveRequest{
		CompanyName: "Initech",
		Role:        "Backend Engineer",
		DriveDate:   time.Now().Add(14 * 24 * time.Hour),
		Deadline:    time.Now().Add(7 * 24 * time.Hour),
		CTC:         12,
		Positions:   5,
	}
}

func TestCreateDrive(t *testing.T) {
	ctx := context.Background()
	svc, driveRepo, _, notifier := newTestService()

	drive, err := svc.Create(ctx, driveRequest(), primitive.NewObjectID())
	require.NoError(t, err)

	assert.Equal(t, models.DriveUpcoming, drive.Status)
	assert.NotNil(t, drive.RegisteredStudents)
	assert.NotNil(t, drive.SelectedStudents)

	stored, err := driveRepo.FindByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, "Initech", stored.CompanyName)

	// Creation announces the drive to all students.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.RoleStudent, notifier.sent[0].TargetRole)
	assert.Equal(t, "New drive: Initech", notifier.sent[0].Title)
	assert.Equal(t, models.CategoryDrive, notifier.sent[0].Category)
}

func TestUpdateDrive(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	drive, err := svc.Create(ctx, driveRequest(), primitive.NewObjectID())
	require.NoError(t, err)

	req := driveRequest()
	req.Role = "Platform Engineer"
	req.Positions = 3

	updated, err := svc.Update(ctx, drive.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", updated.Role)
	assert.Equal(t, 3, updated.Positions)
	// Lifecycle status is not writable through Update.
	assert.Equal(t, models.DriveUpcoming, updated.Status)

	t.Run("UnknownDrive", func(t *testing.T) {
		_, err := svc.Update(ctx, primitive.NewObjectID(), driveRequest())
		assert.ErrorIs(t, err, ErrDriveNotFound)
	})
}

func TestCancelDrive(t *testing.T) {
	ctx := context.Background()
	svc, driveRepo, _, _ := newTestService()

	drive, err := svc.Create(ctx, driveRequest(), primitive.NewObjectID())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriveCancelled, cancelled.Status)

	stored, err := driveRepo.FindByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriveCancelled, stored.Status)
}

func TestDeleteDriveCascades(t *testing.T) {
	ctx := context.Background()
	svc, driveRepo, appRepo, _ := newTestService()

	drive, err := svc.Create(ctx, driveRequest(), primitive.NewObjectID())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		app := models.Application{
			StudentID: primitive.NewObjectID(),
			DriveID:   drive.ID,
			Status:    models.StatusApplied,
		}
		require.NoError(t, appRepo.Insert(ctx, &app))
	}

	require.NoError(t, svc.Delete(ctx, drive.ID))

	_, err = driveRepo.FindByID(ctx, drive.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	orphans, err := appRepo.FindByDrive(ctx, drive.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	t.Run("UnknownDrive", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, primitive.NewObjectID()), ErrDriveNotFound)
	})
}
