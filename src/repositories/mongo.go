package repositories

import (
	"context"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo-backed implementations over the shared collections.

type mongoStudentRepo struct{ col *mongo.Collection }
type mongoDriveRepo struct{ col *mongo.Collection }
type mongoApplicationRepo struct{ col *mongo.Collection }
type mongoNotificationRepo struct{ col *mongo.Collection }

func NewMongoStudentRepository() StudentRepository {
	return &mongoStudentRepo{col: database.StudentCollection}
}

func NewMongoDriveRepository() DriveRepository {
	return &mongoDriveRepo{col: database.DriveCollection}
}

func NewMongoApplicationRepository() ApplicationRepository {
	return &mongoApplicationRepo{col: database.ApplicationCollection}
}

func NewMongoNotificationRepository() NotificationRepository {
	return &mongoNotificationRepo{col: database.NotificationCollection}
}

func mapMongoErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// ---------- students ----------

func (r *mongoStudentRepo) Insert(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, student)
	return mapMongoErr(err)
}

func (r *mongoStudentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&student); err != nil {
		return nil, mapMongoErr(err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	if err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&student); err != nil {
		return nil, mapMongoErr(err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *mongoStudentRepo) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": student.ID}, student)
	if err != nil {
		return mapMongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStudentRepo) UpdatePlacement(ctx context.Context, id primitive.ObjectID, status, company, role string, ctc float64) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"placementStatus": status,
		"placedCompany":   company,
		"placedRole":      role,
		"placedCtc":       ctc,
		"updatedAt":       time.Now(),
	}})
	if err != nil {
		return mapMongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapMongoErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- drives ----------

func (r *mongoDriveRepo) Insert(ctx context.Context, drive *models.Drive) error {
	if drive.ID.IsZero() {
		drive.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, drive)
	return mapMongoErr(err)
}

func (r *mongoDriveRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Drive, error) {
	var drive models.Drive
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&drive); err != nil {
		return nil, mapMongoErr(err)
	}
	return &drive, nil
}

func (r *mongoDriveRepo) List(ctx context.Context) ([]models.Drive, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drives []models.Drive
	if err := cursor.All(ctx, &drives); err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *mongoDriveRepo) Update(ctx context.Context, drive *models.Drive) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": drive.ID}, drive)
	if err != nil {
		return mapMongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoDriveRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapMongoErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoDriveRepo) AddRegisteredStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": driveID},
		bson.M{"$addToSet": bson.M{"registeredStudents": studentID}})
	return mapMongoErr(err)
}

func (r *mongoDriveRepo) RemoveRegisteredStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": driveID},
		bson.M{"$pull": bson.M{"registeredStudents": studentID}})
	return mapMongoErr(err)
}

func (r *mongoDriveRepo) AddSelectedStudent(ctx context.Context, driveID, studentID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": driveID},
		bson.M{"$addToSet": bson.M{"selectedStudents": studentID}})
	return mapMongoErr(err)
}

// ---------- applications ----------

func (r *mongoApplicationRepo) Insert(ctx context.Context, app *models.Application) error {
	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, app)
	return mapMongoErr(err)
}

func (r *mongoApplicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		return nil, mapMongoErr(err)
	}
	return &app, nil
}

func (r *mongoApplicationRepo) FindByStudentAndDrive(ctx context.Context, studentID, driveID primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	err := r.col.FindOne(ctx, bson.M{"studentId": studentID, "driveId": driveID}).Decode(&app)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &app, nil
}

func (r *mongoApplicationRepo) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Application, error) {
	return r.find(ctx, bson.M{"studentId": studentID})
}

func (r *mongoApplicationRepo) FindByDrive(ctx context.Context, driveID primitive.ObjectID) ([]models.Application, error) {
	return r.find(ctx, bson.M{"driveId": driveID})
}

func (r *mongoApplicationRepo) find(ctx context.Context, filter bson.M) ([]models.Application, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *mongoApplicationRepo) Update(ctx context.Context, app *models.Application) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": app.ID}, app)
	if err != nil {
		return mapMongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoApplicationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapMongoErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoApplicationRepo) DeleteByDrive(ctx context.Context, driveID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"driveId": driveID})
	return mapMongoErr(err)
}

// ---------- notifications ----------

func (r *mongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, n)
	return mapMongoErr(err)
}
