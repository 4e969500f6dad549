package applications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"
	"Backend-PlacementCell/src/services/drives"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier is the outbound notification sink. Delivery is best-effort: a
// failed Notify never rolls back the transition that triggered it.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Service is the application state machine. It is the only place allowed to
// move an application between statuses or to derive student placement state.
type Service struct {
	Students     repositories.StudentRepository
	Drives       repositories.DriveRepository
	Applications repositories.ApplicationRepository
	Notifier     Notifier
}

func NewService(
	students repositories.StudentRepository,
	driveRepo repositories.DriveRepository,
	apps repositories.ApplicationRepository,
	notifier Notifier,
) *Service {
	return &Service{
		Students:     students,
		Drives:       driveRepo,
		Applications: apps,
		Notifier:     notifier,
	}
}

// UpdateOptions are the optional admin inputs on a status update.
type UpdateOptions struct {
	Feedback   *string
	OfferedCTC *float64
}

// Apply creates an application with status applied and registers the student
// on the drive. Preconditions in order: drive exists, student exists, the
// eligibility rule passes, no application exists for the pair yet. The unique
// index is the authority on uniqueness; the pre-check only gives a friendlier
// fast path.
func (s *Service) Apply(ctx context.Context, studentID, driveID primitive.ObjectID) (*models.Application, error) {
	drive, err := s.Drives.FindByID(ctx, driveID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDriveNotFound
		}
		return nil, err
	}

	student, err := s.Students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if result := drives.IsEligible(*student, *drive); !result.Eligible {
		return nil, &IneligibleError{Reason: result.Reason}
	}

	if _, err := s.Applications.FindByStudentAndDrive(ctx, studentID, driveID); err == nil {
		return nil, ErrDuplicateApplication
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	app := &models.Application{
		ID:        primitive.NewObjectID(),
		StudentID: studentID,
		DriveID:   driveID,
		Status:    models.StatusApplied,
		AppliedAt: time.Now(),
		Rounds:    []models.InterviewRound{},
	}

	if err := s.Applications.Insert(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	if err := s.Drives.AddRegisteredStudent(ctx, driveID, studentID); err != nil {
		// Roll back the insert so the caller sees all-or-nothing.
		log.Println("⚠️ Failed to register student on drive, rolling back application:", err)
		if delErr := s.Applications.Delete(ctx, app.ID); delErr != nil {
			log.Println("❌ Rollback failed, application left without drive registration:", delErr)
		}
		return nil, err
	}

	app.Drive = drive
	app.Student = student
	return app, nil
}

// Withdraw removes an application, allowed only while its status is exactly
// applied. The record is left untouched on refusal.
func (s *Service) Withdraw(ctx context.Context, appID primitive.ObjectID) error {
	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}

	if !CanWithdraw(app.Status) {
		return &InvalidStateTransitionError{
			Current:     app.Status,
			Requirement: "withdrawal is only allowed while the application is in applied state",
		}
	}

	if err := s.Drives.RemoveRegisteredStudent(ctx, app.DriveID, app.StudentID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		// Drive already gone; the cascade owns its applications, keep going.
	}

	return s.Applications.Delete(ctx, appID)
}

// AdminSetStatus moves an application to newStatus. Progression is not
// forced forward — admins may move an application back to correct a mistake —
// but the side effects fire exactly once per call: placement cascade on
// offered/accepted, feedback and CTC persistence, and one notification to
// the student.
func (s *Service) AdminSetStatus(ctx context.Context, appID primitive.ObjectID, newStatus models.ApplicationStatus, opts UpdateOptions) (*models.Application, error) {
	if !models.IsValidApplicationStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	drive, err := s.Drives.FindByID(ctx, app.DriveID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDriveNotFound
		}
		return nil, err
	}

	student, err := s.Students.FindByID(ctx, app.StudentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	app.Status = newStatus
	if opts.Feedback != nil {
		app.Notes = *opts.Feedback
	}
	if opts.OfferedCTC != nil {
		app.OfferedCTC = opts.OfferedCTC
	}
	if newStatus == models.StatusOffered && app.OfferLetterRef == "" {
		app.OfferLetterRef = uuid.NewString()
	}

	if err := s.Applications.Update(ctx, app); err != nil {
		return nil, err
	}

	if placement, ok := PlacementStatusFor(newStatus); ok {
		ctc := s.offeredCTC(app, drive)
		if err := s.Students.UpdatePlacement(ctx, student.ID, placement, drive.CompanyName, drive.Role, ctc); err != nil {
			log.Println("⚠️ Application status updated but placement stamp failed:", err)
			return nil, err
		}
		student.PlacementStatus = placement
		student.PlacedCompany = drive.CompanyName
		student.PlacedRole = drive.Role
		student.PlacedCTC = ctc
	}

	s.Notifier.Notify(ctx, models.Notification{
		UserID:   student.UserID,
		Title:    fmt.Sprintf("Application update from %s", drive.CompanyName),
		Message:  fmt.Sprintf("Your application status is now %s", HumanizeStatus(newStatus)),
		Category: NotificationCategory(newStatus),
	})

	app.Drive = drive
	app.Student = student
	return app, nil
}

// RespondToOffer records the student's decision on an offer. Accepting
// places the student and adds them to the drive's selected set; declining
// changes the status only — the student intentionally stays in_process.
func (s *Service) RespondToOffer(ctx context.Context, appID primitive.ObjectID, decision models.ApplicationStatus) (*models.Application, error) {
	if !IsOfferDecision(decision) {
		return nil, ErrInvalidDecision
	}

	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if !CanRespondToOffer(app.Status) {
		return nil, &InvalidStateTransitionError{
			Current:     app.Status,
			Requirement: "application is not in offered state",
		}
	}

	app.Status = decision
	if err := s.Applications.Update(ctx, app); err != nil {
		return nil, err
	}

	if decision == models.StatusAccepted {
		drive, err := s.Drives.FindByID(ctx, app.DriveID)
		if err != nil {
			return nil, err
		}
		student, err := s.Students.FindByID(ctx, app.StudentID)
		if err != nil {
			return nil, err
		}

		ctc := s.offeredCTC(app, drive)
		if err := s.Students.UpdatePlacement(ctx, student.ID, models.PlacementPlaced, drive.CompanyName, drive.Role, ctc); err != nil {
			log.Println("⚠️ Offer accepted but placement stamp failed:", err)
			return nil, err
		}
		if err := s.Drives.AddSelectedStudent(ctx, app.DriveID, app.StudentID); err != nil {
			log.Println("⚠️ Offer accepted but selected-set update failed:", err)
			return nil, err
		}

		student.PlacementStatus = models.PlacementPlaced
		student.PlacedCompany = drive.CompanyName
		student.PlacedRole = drive.Role
		student.PlacedCTC = ctc
		app.Drive = drive
		app.Student = student
	}

	return app, nil
}

// offeredCTC falls back to the drive's CTC when no explicit offer figure was
// recorded on the application.
func (s *Service) offeredCTC(app *models.Application, drive *models.Drive) float64 {
	if app.OfferedCTC != nil {
		return *app.OfferedCTC
	}
	return drive.CTC
}

// GetByID returns an application populated with its drive and student.
func (s *Service) GetByID(ctx context.Context, appID primitive.ObjectID) (*models.Application, error) {
	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	s.populate(ctx, app)
	return app, nil
}

// ListByStudent returns a student's applications, each populated with its
// drive, newest first.
func (s *Service) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Application, error) {
	apps, err := s.Applications.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		s.populate(ctx, &apps[i])
	}
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].AppliedAt.After(apps[j].AppliedAt) })
	return apps, nil
}

// ListByDrive returns a drive's applications, each populated with its
// student.
func (s *Service) ListByDrive(ctx context.Context, driveID primitive.ObjectID) ([]models.Application, error) {
	apps, err := s.Applications.FindByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		s.populate(ctx, &apps[i])
	}
	return apps, nil
}

// UpsertRound records an interview round. An existing round with the same
// number is replaced, otherwise the round is appended; currentRound tracks
// the highest recorded round.
func (s *Service) UpsertRound(ctx context.Context, appID primitive.ObjectID, round models.InterviewRound) (*models.Application, error) {
	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	replaced := false
	for i := range app.Rounds {
		if app.Rounds[i].Number == round.Number {
			app.Rounds[i] = round
			replaced = true
			break
		}
	}
	if !replaced {
		app.Rounds = append(app.Rounds, round)
	}
	sort.SliceStable(app.Rounds, func(i, j int) bool { return app.Rounds[i].Number < app.Rounds[j].Number })

	app.CurrentRound = 0
	for _, r := range app.Rounds {
		if r.Number > app.CurrentRound {
			app.CurrentRound = r.Number
		}
	}

	if err := s.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	s.populate(ctx, app)
	return app, nil
}

// SetReview patches the internal rating and notes on an application.
func (s *Service) SetReview(ctx context.Context, appID primitive.ObjectID, rating *int, notes *string) (*models.Application, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, ErrInvalidRating
	}

	app, err := s.Applications.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if rating != nil {
		app.Rating = *rating
	}
	if notes != nil {
		app.Notes = *notes
	}

	if err := s.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Service) populate(ctx context.Context, app *models.Application) {
	if drive, err := s.Drives.FindByID(ctx, app.DriveID); err == nil {
		app.Drive = drive
	}
	if student, err := s.Students.FindByID(ctx, app.StudentID); err == nil {
		app.Student = student
	}
}
