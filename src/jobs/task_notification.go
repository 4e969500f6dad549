package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"github.com/hibiken/asynq"
)

// HandleDeliverNotificationTask writes a queued notification into the
// notifications collection. Delivery is best-effort end to end, so a failed
// insert is logged and retried by asynq.
func HandleDeliverNotificationTask(ctx context.Context, t *asynq.Task) error {
	var n models.Notification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		log.Println("❌ Notification payload decode error:", err)
		return err
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if _, err := database.NotificationCollection.InsertOne(ctx, n); err != nil {
		log.Println("❌ Notification delivery failed:", err)
		return err
	}
	return nil
}
