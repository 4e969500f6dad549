package students

import (
	"context"
	"errors"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrProfileNotFound = errors.New("student profile not found")
	// ErrHasApplications guards against deleting a profile that applications
	// still reference.
	ErrHasApplications = errors.New("student has applications and cannot be deleted")
)

// Service covers student profile reads/writes and the read-only shortlist /
// readiness queries.
type Service struct {
	Students     repositories.StudentRepository
	Drives       repositories.DriveRepository
	Applications repositories.ApplicationRepository
}

func NewService(
	students repositories.StudentRepository,
	driveRepo repositories.DriveRepository,
	apps repositories.ApplicationRepository,
) *Service {
	return &Service{Students: students, Drives: driveRepo, Applications: apps}
}

func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student, err := s.Students.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return student, err
}

func (s *Service) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Student, error) {
	student, err := s.Students.FindByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return student, err
}

// UpdateProfile applies the self-service editable fields. Placement fields
// are off-limits here; only the application state machine writes those.
func (s *Service) UpdateProfile(ctx context.Context, studentID primitive.ObjectID, req models.UpdateProfileRequest) (*models.Student, error) {
	student, err := s.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.CGPA != nil {
		student.CGPA = *req.CGPA
	}
	if req.Backlogs != nil {
		student.Backlogs = *req.Backlogs
	}
	if req.Skills != nil {
		student.Skills = req.Skills
	}
	if req.Certifications != nil {
		student.Certifications = req.Certifications
	}
	if req.ResumeURL != nil {
		student.ResumeURL = *req.ResumeURL
	}

	if err := s.Students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a profile, refusing while applications still reference it.
func (s *Service) Delete(ctx context.Context, studentID primitive.ObjectID) error {
	apps, err := s.Applications.FindByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if len(apps) > 0 {
		return ErrHasApplications
	}

	err = s.Students.Delete(ctx, studentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}

// Shortlist returns every student satisfying the criteria, CGPA descending.
func (s *Service) Shortlist(ctx context.Context, criteria models.ShortlistCriteria) ([]models.Student, error) {
	all, err := s.Students.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterShortlist(all, criteria), nil
}

// ReadinessReport is the student-facing readiness payload.
type ReadinessReport struct {
	Score           float64      `json:"score"`
	Recommendations []DriveMatch `json:"recommendations"`
}

// Readiness computes the student's readiness score and drive
// recommendations over drives that are still open (upcoming or ongoing).
func (s *Service) Readiness(ctx context.Context, studentID primitive.ObjectID) (*ReadinessReport, error) {
	student, err := s.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	allDrives, err := s.Drives.List(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]models.Drive, 0, len(allDrives))
	for _, drive := range allDrives {
		if drive.Status == models.DriveUpcoming || drive.Status == models.DriveOngoing {
			open = append(open, drive)
		}
	}

	return &ReadinessReport{
		Score:           ReadinessScore(*student),
		Recommendations: MatchDrives(*student, open),
	}, nil
}

// GetStudentsPaginated lists students with paging, name/code search and
// sorting for the admin table view.
func GetStudentsPaginated(params models.PaginationParams) ([]models.Student, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter = bson.M{"$or": []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"code": bson.M{"$regex": params.Search, "$options": "i"}},
			{"department": bson.M{"$regex": params.Search, "$options": "i"}},
		}}
	}

	total, err := database.StudentCollection.CountDocuments(ctx, filter)
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

	cursor, err := database.StudentCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var studentsPage []models.Student
	if err := cursor.All(ctx, &studentsPage); err != nil {
		return nil, 0, err
	}

	return studentsPage, total, nil
}
