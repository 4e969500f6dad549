package notifications

import (
	"context"
	"log"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/jobs"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dispatcher is the single route for every notification the system emits.
// Dispatch is best-effort: it queues through asynq when Redis is up, falls
// back to a direct insert otherwise, and never surfaces a failure to the
// transition that triggered it.
type Dispatcher struct {
	Repo repositories.NotificationRepository
}

func NewDispatcher(repo repositories.NotificationRepository) *Dispatcher {
	return &Dispatcher{Repo: repo}
}

func (d *Dispatcher) Notify(ctx context.Context, n models.Notification) {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	n.CreatedAt = time.Now()

	if database.AsynqClient != nil {
		task, err := jobs.NewDeliverNotificationTask(n)
		if err == nil {
			if _, err = database.AsynqClient.Enqueue(task); err == nil {
				return
			}
		}
		log.Println("⚠️ Notification enqueue failed, delivering inline:", err)
	}

	if err := d.Repo.Insert(ctx, &n); err != nil {
		log.Println("❌ Notification delivery failed:", err)
	}
}

// ListForUser returns notifications addressed to the user directly, to the
// user's role, or broadcast to all — newest first.
func ListForUser(userID primitive.ObjectID, role string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"userId": userID},
		{"targetRole": role},
		{"targetRole": models.TargetRoleAll},
	}}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(100)
	cursor, err := database.NotificationCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Notification
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkRead flags one notification as read for its recipient.
func MarkRead(notificationID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": notificationID, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// MarkAllRead flags every directly-addressed notification of a user as read.
func MarkAllRead(userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.NotificationCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}
