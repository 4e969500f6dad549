package jobs

import (
	"log"

	"Backend-PlacementCell/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker in the background. Without Redis the
// worker is skipped and queued side effects degrade to inline execution.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDriveState, HandleDriveStateTask)
	mux.HandleFunc(TypeDeliverNotification, HandleDeliverNotificationTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}
