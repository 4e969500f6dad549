package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the closed status enum of an application. Only the
// application state machine constructs transitions between these values.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRound1      ApplicationStatus = "round1"
	StatusRound2      ApplicationStatus = "round2"
	StatusHRRound     ApplicationStatus = "hr_round"
	StatusOffered     ApplicationStatus = "offered"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusDeclined    ApplicationStatus = "declined"
	StatusRejected    ApplicationStatus = "rejected"
)

// AllApplicationStatuses lists the pipeline in order, terminal branches last.
var AllApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusShortlisted,
	StatusRound1,
	StatusRound2,
	StatusHRRound,
	StatusOffered,
	StatusAccepted,
	StatusDeclined,
	StatusRejected,
}

// IsValidApplicationStatus reports whether s is a member of the status enum.
func IsValidApplicationStatus(s ApplicationStatus) bool {
	for _, v := range AllApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// InterviewRound บันทึกผลการสัมภาษณ์รอบหนึ่ง
type InterviewRound struct {
	Number      int        `bson:"number" json:"number" example:"1"`
	Name        string     `bson:"name" json:"name" example:"Technical Round"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Outcome     string     `bson:"outcome,omitempty" json:"outcome,omitempty"` // pending | cleared | failed
	Feedback    string     `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Interviewer string     `bson:"interviewer,omitempty" json:"interviewer,omitempty"`
}

// Application joins one student to one drive; the applications collection
// carries a unique compound index on (studentId, driveId).
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID      primitive.ObjectID `bson:"studentId" json:"studentId"`
	DriveID        primitive.ObjectID `bson:"driveId" json:"driveId"`
	Status         ApplicationStatus  `bson:"status" json:"status" example:"applied"`
	AppliedAt      time.Time          `bson:"appliedAt" json:"appliedAt"`
	CurrentRound   int                `bson:"currentRound" json:"currentRound"`
	Rounds         []InterviewRound   `bson:"rounds" json:"rounds"`
	OfferedCTC     *float64           `bson:"offeredCtc,omitempty" json:"offeredCtc,omitempty"`
	OfferLetterRef string             `bson:"offerLetterRef,omitempty" json:"offerLetterRef,omitempty"`
	JoiningDate    *time.Time         `bson:"joiningDate,omitempty" json:"joiningDate,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating         int                `bson:"rating,omitempty" json:"rating,omitempty" example:"4"`

	// Populated for caller convenience on reads, never persisted.
	Drive   *Drive   `bson:"-" json:"drive,omitempty"`
	Student *Student `bson:"-" json:"student,omitempty"`
}
