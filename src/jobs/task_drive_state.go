package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDriveStateTask moves a drive to its scheduled lifecycle state:
// ongoing when the registration deadline passes, completed after the drive
// date. Deleted or cancelled drives are skipped without error.
func HandleDriveStateTask(ctx context.Context, t *asynq.Task) error {
	var payload DriveStatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.DriveID)
	if err != nil {
		return err
	}

	var drive models.Drive
	err = database.DriveCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&drive)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Drive not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	if drive.Status == models.DriveCancelled {
		log.Println("⚠️ Drive cancelled, skipping state transition:", id.Hex())
		return nil
	}

	// A drive already past the target state is left alone; admins may have
	// moved it by hand.
	if payload.Target == models.DriveOngoing && drive.Status != models.DriveUpcoming {
		return nil
	}

	_, err = database.DriveCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": payload.Target}},
	)
	if err != nil {
		log.Println("❌ Failed to update drive state:", err)
		return err
	}

	log.Printf("✅ Drive %s moved to %s", id.Hex(), payload.Target)
	return nil
}
