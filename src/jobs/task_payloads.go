package jobs

import (
	"encoding/json"

	"Backend-PlacementCell/src/models"

	"github.com/hibiken/asynq"
)

const TypeDriveState = "drive:state"

// DriveStatePayload asks the worker to move a drive to Target at the
// scheduled time.
type DriveStatePayload struct {
	DriveID string `json:"drive_id"`
	Target  string `json:"target"` // ongoing | completed
}

func NewDriveStateTask(driveID, target string) (*asynq.Task, error) {
	payload, err := json.Marshal(DriveStatePayload{DriveID: driveID, Target: target})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDriveState, payload), nil
}

const TypeDeliverNotification = "notification:deliver"

func NewDeliverNotificationTask(n models.Notification) (*asynq.Task, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeliverNotification, payload), nil
}
