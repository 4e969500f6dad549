package drives

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/jobs"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDriveNotFound = errors.New("drive not found")

// Notifier matches the dispatcher; declared here so the drives service does
// not pull the notifications package into its dependencies.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Service covers admin drive management. Deleting a drive cascades to its
// applications; creating one announces it to students and schedules the
// lifecycle transitions.
type Service struct {
	Drives       repositories.DriveRepository
	Applications repositories.ApplicationRepository
	Notifier     Notifier
}

func NewService(
	driveRepo repositories.DriveRepository,
	apps repositories.ApplicationRepository,
	notifier Notifier,
) *Service {
	return &Service{Drives: driveRepo, Applications: apps, Notifier: notifier}
}

// Create inserts a drive as upcoming, announces it to students, and — when
// the queue is up — schedules the deadline and drive-date transitions.
func (s *Service) Create(ctx context.Context, req models.CreateDriveRequest, createdBy primitive.ObjectID) (*models.Drive, error) {
	drive := &models.Drive{
		ID:                 primitive.NewObjectID(),
		CompanyName:        req.CompanyName,
		Role:               req.Role,
		JobType:            req.JobType,
		DriveDate:          req.DriveDate,
		Deadline:           req.Deadline,
		CTC:                req.CTC,
		BaseSalary:         req.BaseSalary,
		Location:           req.Location,
		Mode:               req.Mode,
		Venue:              req.Venue,
		Eligibility:        req.Eligibility,
		RequiredSkills:     req.RequiredSkills,
		Positions:          req.Positions,
		Status:             models.DriveUpcoming,
		RegisteredStudents: []primitive.ObjectID{},
		SelectedStudents:   []primitive.ObjectID{},
		CreatedBy:          createdBy,
		CreatedAt:          time.Now(),
	}

	if err := s.Drives.Insert(ctx, drive); err != nil {
		return nil, err
	}

	s.Notifier.Notify(ctx, models.Notification{
		TargetRole: models.RoleStudent,
		Title:      fmt.Sprintf("New drive: %s", drive.CompanyName),
		Message:    fmt.Sprintf("%s is hiring for %s. Registration closes %s.", drive.CompanyName, drive.Role, drive.Deadline.Format("02 Jan 2006")),
		Category:   models.CategoryDrive,
	})

	s.scheduleLifecycle(drive)

	return drive, nil
}

func (s *Service) scheduleLifecycle(drive *models.Drive) {
	if database.AsynqClient == nil {
		return
	}

	if task, err := jobs.NewDriveStateTask(drive.ID.Hex(), models.DriveOngoing); err == nil {
		if _, err := database.AsynqClient.Enqueue(task, asynq.ProcessAt(drive.Deadline)); err != nil {
			log.Println("⚠️ Failed to schedule drive ongoing transition:", err)
		}
	}

	// The drive is considered done at the end of the drive day.
	completeAt := drive.DriveDate.Add(24 * time.Hour)
	if task, err := jobs.NewDriveStateTask(drive.ID.Hex(), models.DriveCompleted); err == nil {
		if _, err := database.AsynqClient.Enqueue(task, asynq.ProcessAt(completeAt)); err != nil {
			log.Println("⚠️ Failed to schedule drive completed transition:", err)
		}
	}
}

func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Drive, error) {
	drive, err := s.Drives.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrDriveNotFound
	}
	return drive, err
}

// Update applies admin edits to a drive's descriptive and eligibility
// fields; lifecycle status and the student sets are managed elsewhere.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, req models.CreateDriveRequest) (*models.Drive, error) {
	drive, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	drive.CompanyName = req.CompanyName
	drive.Role = req.Role
	drive.JobType = req.JobType
	drive.DriveDate = req.DriveDate
	drive.Deadline = req.Deadline
	drive.CTC = req.CTC
	drive.BaseSalary = req.BaseSalary
	drive.Location = req.Location
	drive.Mode = req.Mode
	drive.Venue = req.Venue
	drive.Eligibility = req.Eligibility
	drive.RequiredSkills = req.RequiredSkills
	drive.Positions = req.Positions

	if err := s.Drives.Update(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// Cancel marks a drive cancelled. Scheduled lifecycle tasks notice the
// status and skip themselves.
func (s *Service) Cancel(ctx context.Context, id primitive.ObjectID) (*models.Drive, error) {
	drive, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	drive.Status = models.DriveCancelled
	if err := s.Drives.Update(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// Delete removes a drive and cascades to its applications.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.Applications.DeleteByDrive(ctx, id); err != nil {
		log.Println("⚠️ Drive delete: application cascade failed:", err)
		return err
	}

	return s.Drives.Delete(ctx, id)
}

// GetDrivesPaginated lists drives with paging, company/role search and
// sorting. An optional status narrows the listing (e.g. only upcoming).
func GetDrivesPaginated(params models.PaginationParams, status string) ([]models.Drive, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"companyName": bson.M{"$regex": params.Search, "$options": "i"}},
			{"role": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := database.DriveCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortDoc := bson.D{}
	for field, order := range params.GetSortOrder() {
		sortDoc = append(sortDoc, bson.E{Key: field, Value: order})
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(sortDoc)

	cursor, err := database.DriveCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var drivesPage []models.Drive
	if err := cursor.All(ctx, &drivesPage); err != nil {
		return nil, 0, err
	}

	return drivesPage, total, nil
}
