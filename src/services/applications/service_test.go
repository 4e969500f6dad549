package applications

import (
	"context"
	"testing"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordingNotifier captures outbound notifications for assertions.
type recordingNotifier struct {
	sent []models.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification models.Notification) {
	n.sent = append(n.sent, notification)
}

type fixture struct {
	svc      *Service
	students *repositories.MemoryStudentRepo
	drives   *repositories.MemoryDriveRepo
	apps     *repositories.MemoryApplicationRepo
	notifier *recordingNotifier
	student  models.Student
	drive    models.Drive
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		students: repositories.NewMemoryStudentRepository(),
		drives:   repositories.NewMemoryDriveRepository(),
		apps:     repositories.NewMemoryApplicationRepository(),
		notifier: &recordingNotifier{},
	}
	f.svc = NewService(f.students, f.drives, f.apps, f.notifier)

	f.student = models.Student{
		ID:         primitive.NewObjectID(),
		UserID:     primitive.NewObjectID(),
		Name:       "Asha Verma",
		Department: "CS",
		CGPA:       8.7,
		Backlogs:   0,
		Skills:     []models.SkillEntry{{Name: "Go", Proficiency: "advanced"}},
	}
	require.NoError(t, f.students.Insert(context.Background(), &f.student))

	f.drive = models.Drive{
		ID:          primitive.NewObjectID(),
		CompanyName: "Initech",
		Role:        "Backend Engineer",
		CTC:         12.0,
		Status:      models.DriveUpcoming,
		Eligibility: models.EligibilityRule{
			MinCGPA:     floatPtr(8.0),
			MaxBacklogs: intPtr(0),
		},
		RegisteredStudents: []primitive.ObjectID{},
		SelectedStudents:   []primitive.ObjectID{},
	}
	require.NoError(t, f.drives.Insert(context.Background(), &f.drive))

	return f
}

func (f *fixture) apply(t *testing.T) *models.Application {
	t.Helper()
	app, err := f.svc.Apply(context.Background(), f.student.ID, f.drive.ID)
	require.NoError(t, err)
	return app
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		assert.Equal(t, models.StatusApplied, app.Status)
		assert.False(t, app.AppliedAt.IsZero())
		assert.Equal(t, f.drive.ID, app.DriveID)

		drive, err := f.drives.FindByID(ctx, f.drive.ID)
		require.NoError(t, err)
		assert.Contains(t, drive.RegisteredStudents, f.student.ID)
	})

	t.Run("DuplicateApplicationRejected", func(t *testing.T) {
		f := newFixture(t)
		f.apply(t)

		_, err := f.svc.Apply(ctx, f.student.ID, f.drive.ID)
		assert.ErrorIs(t, err, ErrDuplicateApplication)

		apps, err := f.apps.FindByStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("IneligibleStudentRejectedWithReason", func(t *testing.T) {
		f := newFixture(t)
		f.student.CGPA = 6.5
		require.NoError(t, f.students.Update(ctx, &f.student))

		_, err := f.svc.Apply(ctx, f.student.ID, f.drive.ID)
		var ineligible *IneligibleError
		require.ErrorAs(t, err, &ineligible)
		assert.Equal(t, "minimum CGPA requirement: 8", ineligible.Reason)

		// Nothing persisted on refusal.
		apps, err := f.apps.FindByStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("UnknownDrive", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Apply(ctx, f.student.ID, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrDriveNotFound)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Apply(ctx, primitive.NewObjectID(), f.drive.ID)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("AllowedWhileApplied", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		require.NoError(t, f.svc.Withdraw(ctx, app.ID))

		_, err := f.apps.FindByID(ctx, app.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		drive, err := f.drives.FindByID(ctx, f.drive.ID)
		require.NoError(t, err)
		assert.NotContains(t, drive.RegisteredStudents, f.student.ID)
	})

	t.Run("RefusedAfterShortlisting", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)
		_, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusShortlisted, UpdateOptions{})
		require.NoError(t, err)

		err = f.svc.Withdraw(ctx, app.ID)
		var transition *InvalidStateTransitionError
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, models.StatusShortlisted, transition.Current)

		// Refusal leaves the record unmodified.
		kept, err := f.apps.FindByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusShortlisted, kept.Status)
	})

	t.Run("UnknownApplication", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Withdraw(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestAdminSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidStatusRejected", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)
		_, err := f.svc.AdminSetStatus(ctx, app.ID, "hired", UpdateOptions{})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("NotificationPerTransition", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusShortlisted, UpdateOptions{})
		require.NoError(t, err)

		require.Len(t, f.notifier.sent, 1)
		n := f.notifier.sent[0]
		assert.Equal(t, f.student.UserID, n.UserID)
		assert.Equal(t, "Application update from Initech", n.Title)
		assert.Equal(t, "Your application status is now SHORTLISTED", n.Message)
		assert.Equal(t, models.CategoryInfo, n.Category)
	})

	t.Run("OfferedStampsInProcessAndOfferRef", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		updated, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusOffered, UpdateOptions{OfferedCTC: floatPtr(14.5)})
		require.NoError(t, err)

		assert.Equal(t, models.StatusOffered, updated.Status)
		assert.NotEmpty(t, updated.OfferLetterRef)
		require.NotNil(t, updated.OfferedCTC)
		assert.Equal(t, 14.5, *updated.OfferedCTC)

		student, err := f.students.FindByID(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PlacementInProcess, student.PlacementStatus)
		assert.Equal(t, "Initech", student.PlacedCompany)
		assert.Equal(t, 14.5, student.PlacedCTC)

		require.Len(t, f.notifier.sent, 1)
		assert.Equal(t, models.CategorySuccess, f.notifier.sent[0].Category)
	})

	t.Run("OfferedCTCFallsBackToDrive", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusOffered, UpdateOptions{})
		require.NoError(t, err)

		student, err := f.students.FindByID(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Equal(t, f.drive.CTC, student.PlacedCTC)
	})

	t.Run("OfferLetterRefStableAcrossRepeats", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		first, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusOffered, UpdateOptions{})
		require.NoError(t, err)
		second, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusOffered, UpdateOptions{})
		require.NoError(t, err)
		assert.Equal(t, first.OfferLetterRef, second.OfferLetterRef)
	})

	t.Run("RejectedEmitsErrorCategory", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusRejected, UpdateOptions{Feedback: strPtr("not a fit")})
		require.NoError(t, err)

		kept, err := f.apps.FindByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, "not a fit", kept.Notes)

		require.Len(t, f.notifier.sent, 1)
		assert.Equal(t, models.CategoryError, f.notifier.sent[0].Category)
	})

	t.Run("BackwardMoveAllowed", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusRound2, UpdateOptions{})
		require.NoError(t, err)
		updated, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusRound1, UpdateOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.StatusRound1, updated.Status)
		assert.Len(t, f.notifier.sent, 2)
	})
}

func TestRespondToOffer(t *testing.T) {
	ctx := context.Background()

	offered := func(t *testing.T, f *fixture) *models.Application {
		app := f.apply(t)
		updated, err := f.svc.AdminSetStatus(ctx, app.ID, models.StatusOffered, UpdateOptions{})
		require.NoError(t, err)
		return updated
	}

	t.Run("InvalidDecision", func(t *testing.T) {
		f := newFixture(t)
		app := offered(t, f)
		_, err := f.svc.RespondToOffer(ctx, app.ID, models.StatusRejected)
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("RefusedWhenNotOffered", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.RespondToOffer(ctx, app.ID, models.StatusAccepted)
		var transition *InvalidStateTransitionError
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, models.StatusApplied, transition.Current)
	})

	t.Run("AcceptingPlacesAndSelects", func(t *testing.T) {
		f := newFixture(t)
		app := offered(t, f)

		updated, err := f.svc.RespondToOffer(ctx, app.ID, models.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)

		student, err := f.students.FindByID(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PlacementPlaced, student.PlacementStatus)
		assert.Equal(t, "Initech", student.PlacedCompany)
		assert.Equal(t, "Backend Engineer", student.PlacedRole)

		drive, err := f.drives.FindByID(ctx, f.drive.ID)
		require.NoError(t, err)
		assert.Contains(t, drive.SelectedStudents, f.student.ID)
		assert.Len(t, drive.SelectedStudents, 1)
	})

	t.Run("DecliningChangesStatusOnly", func(t *testing.T) {
		f := newFixture(t)
		app := offered(t, f)

		updated, err := f.svc.RespondToOffer(ctx, app.ID, models.StatusDeclined)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDeclined, updated.Status)

		// Declining does not rewind the in_process stamp from the offer.
		student, err := f.students.FindByID(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PlacementInProcess, student.PlacementStatus)

		drive, err := f.drives.FindByID(ctx, f.drive.ID)
		require.NoError(t, err)
		assert.Empty(t, drive.SelectedStudents)
	})

	t.Run("NoSecondResponse", func(t *testing.T) {
		f := newFixture(t)
		app := offered(t, f)

		_, err := f.svc.RespondToOffer(ctx, app.ID, models.StatusAccepted)
		require.NoError(t, err)
		_, err = f.svc.RespondToOffer(ctx, app.ID, models.StatusDeclined)
		var transition *InvalidStateTransitionError
		assert.ErrorAs(t, err, &transition)
	})
}

func TestUpsertRound(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendAndReplace", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		updated, err := f.svc.UpsertRound(ctx, app.ID, models.InterviewRound{Number: 1, Name: "Technical", Outcome: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.CurrentRound)

		updated, err = f.svc.UpsertRound(ctx, app.ID, models.InterviewRound{Number: 2, Name: "System Design", Outcome: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.CurrentRound)
		assert.Len(t, updated.Rounds, 2)

		// Same round number replaces in place.
		updated, err = f.svc.UpsertRound(ctx, app.ID, models.InterviewRound{Number: 1, Name: "Technical", Outcome: "cleared"})
		require.NoError(t, err)
		assert.Len(t, updated.Rounds, 2)
		assert.Equal(t, "cleared", updated.Rounds[0].Outcome)
		assert.Equal(t, 2, updated.CurrentRound)
	})

	t.Run("RoundsSortedByNumber", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.UpsertRound(ctx, app.ID, models.InterviewRound{Number: 3, Name: "HR"})
		require.NoError(t, err)
		updated, err := f.svc.UpsertRound(ctx, app.ID, models.InterviewRound{Number: 1, Name: "Technical"})
		require.NoError(t, err)

		assert.Equal(t, 1, updated.Rounds[0].Number)
		assert.Equal(t, 3, updated.Rounds[1].Number)
		assert.Equal(t, 3, updated.CurrentRound)
	})
}

func TestSetReview(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidRating", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		updated, err := f.svc.SetReview(ctx, app.ID, intPtr(4), strPtr("strong fundamentals"))
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Rating)
		assert.Equal(t, "strong fundamentals", updated.Notes)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		f := newFixture(t)
		app := f.apply(t)

		_, err := f.svc.SetReview(ctx, app.ID, intPtr(0), nil)
		assert.ErrorIs(t, err, ErrInvalidRating)
		_, err = f.svc.SetReview(ctx, app.ID, intPtr(6), nil)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})
}

func TestListByStudent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	second := models.Drive{
		ID:          primitive.NewObjectID(),
		CompanyName: "Acme",
		Role:        "SRE",
		Status:      models.DriveUpcoming,
	}
	require.NoError(t, f.drives.Insert(ctx, &second))

	f.apply(t)
	_, err := f.svc.Apply(ctx, f.student.ID, second.ID)
	require.NoError(t, err)

	apps, err := f.svc.ListByStudent(ctx, f.student.ID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	for _, app := range apps {
		require.NotNil(t, app.Drive)
	}
	assert.True(t, !apps[0].AppliedAt.Before(apps[1].AppliedAt))
}
