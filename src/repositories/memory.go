package repositories

import (
	"context"
	"sync"

	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations with the same contracts as the mongo ones,
// including the unique (studentId, driveId) constraint and set semantics on
// the drive student lists. The state-machine test suite runs on these.

type MemoryStudentRepo struct {
	mu       sync.Mutex
	students map[primitive.ObjectID]models.Student
}

func NewMemoryStudentRepository() *MemoryStudentRepo {
	return &MemoryStudentRepo{students: make(map[primitive.ObjectID]models.Student)}
}

func (r *MemoryStudentRepo) Insert(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	r.students[student.ID] = *student
	return nil
}

func (r *MemoryStudentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &student, nil
}

func (r *MemoryStudentRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, student := range r.students {
		if student.UserID == userID {
			s := student
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryStudentRepo) List(_ context.Context) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Student, 0, len(r.students))
	for _, student := range r.students {
		out = append(out, student)
	}
	return out, nil
}

func (r *MemoryStudentRepo) Update(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[student.ID]; !ok {
		return ErrNotFound
	}
	r.students[student.ID] = *student
	return nil
}

func (r *MemoryStudentRepo) UpdatePlacement(_ context.Context, id primitive.ObjectID, status, company, role string, ctc float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return ErrNotFound
	}
	student.PlacementStatus = status
	student.PlacedCompany = company
	student.PlacedRole = role
	student.PlacedCTC = ctc
	r.students[id] = student
	return nil
}

func (r *MemoryStudentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return ErrNotFound
	}
	delete(r.students, id)
	return nil
}

type MemoryDriveRepo struct {
	mu     sync.Mutex
	drives map[primitive.ObjectID]models.Drive
}

func NewMemoryDriveRepository() *MemoryDriveRepo {
	return &MemoryDriveRepo{drives: make(map[primitive.ObjectID]models.Drive)}
}

func (r *MemoryDriveRepo) Insert(_ context.Context, drive *models.Drive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if drive.ID.IsZero() {
		drive.ID = primitive.NewObjectID()
	}
	r.drives[drive.ID] = *drive
	return nil
}

func (r *MemoryDriveRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Drive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drive, ok := r.drives[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &drive, nil
}

func (r *MemoryDriveRepo) List(_ context.Context) ([]models.Drive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Drive, 0, len(r.drives))
	for _, drive := range r.drives {
		out = append(out, drive)
	}
	return out, nil
}

func (r *MemoryDriveRepo) Update(_ context.Context, drive *models.Drive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drives[drive.ID]; !ok {
		return ErrNotFound
	}
	r.drives[drive.ID] = *drive
	return nil
}

func (r *MemoryDriveRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drives[id]; !ok {
		return ErrNotFound
	}
	delete(r.drives, id)
	return nil
}

func (r *MemoryDriveRepo) AddRegisteredStudent(_ context.Context, driveID, studentID primitive.ObjectID) error {
	return r.mutateSet(driveID, func(drive *models.Drive) {
		drive.RegisteredStudents = addToSet(drive.RegisteredStudents, studentID)
	})
}

func (r *MemoryDriveRepo) RemoveRegisteredStudent(_ context.Context, driveID, studentID primitive.ObjectID) error {
	return r.mutateSet(driveID, func(drive *models.Drive) {
		drive.RegisteredStudents = removeFromSet(drive.RegisteredStudents, studentID)
	})
}

func (r *MemoryDriveRepo) AddSelectedStudent(_ context.Context, driveID, studentID primitive.ObjectID) error {
	return r.mutateSet(driveID, func(drive *models.Drive) {
		drive.SelectedStudents = addToSet(drive.SelectedStudents, studentID)
	})
}

func (r *MemoryDriveRepo) mutateSet(driveID primitive.ObjectID, fn func(*models.Drive)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drive, ok := r.drives[driveID]
	if !ok {
		return ErrNotFound
	}
	fn(&drive)
	r.drives[driveID] = drive
	return nil
}

func addToSet(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func removeFromSet(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := set[:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type MemoryApplicationRepo struct {
	mu   sync.Mutex
	apps map[primitive.ObjectID]models.Application
}

func NewMemoryApplicationRepository() *MemoryApplicationRepo {
	return &MemoryApplicationRepo{apps: make(map[primitive.ObjectID]models.Application)}
}

func (r *MemoryApplicationRepo) Insert(_ context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.StudentID == app.StudentID && existing.DriveID == app.DriveID {
			return ErrDuplicateKey
		}
	}
	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *MemoryApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (r *MemoryApplicationRepo) FindByStudentAndDrive(_ context.Context, studentID, driveID primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.StudentID == studentID && app.DriveID == driveID {
			a := app
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryApplicationRepo) FindByStudent(_ context.Context, studentID primitive.ObjectID) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *MemoryApplicationRepo) FindByDrive(_ context.Context, driveID primitive.ObjectID) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		if app.DriveID == driveID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *MemoryApplicationRepo) Update(_ context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return ErrNotFound
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *MemoryApplicationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *MemoryApplicationRepo) DeleteByDrive(_ context.Context, driveID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, app := range r.apps {
		if app.DriveID == driveID {
			delete(r.apps, id)
		}
	}
	return nil
}

type MemoryNotificationRepo struct {
	mu            sync.Mutex
	Notifications []models.Notification
}

func NewMemoryNotificationRepository() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{}
}

func (r *MemoryNotificationRepo) Insert(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	r.Notifications = append(r.Notifications, *n)
	return nil
}
