package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drive lifecycle states.
const (
	DriveUpcoming  = "upcoming"
	DriveOngoing   = "ongoing"
	DriveCompleted = "completed"
	DriveCancelled = "cancelled"
)

// EligibilityRule is the admission gate attached to a drive. Nil bounds mean
// unconstrained; an empty department list means all departments may apply.
type EligibilityRule struct {
	MinCGPA            *float64 `bson:"minCgpa,omitempty" json:"minCgpa,omitempty" example:"8.5"`
	MaxBacklogs        *int     `bson:"maxBacklogs,omitempty" json:"maxBacklogs,omitempty" example:"0"`
	AllowedDepartments []string `bson:"allowedDepartments" json:"allowedDepartments"`
}

// Drive การรับสมัครงานของบริษัทหนึ่งตำแหน่ง
type Drive struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CompanyName        string               `bson:"companyName" json:"companyName" example:"Google"`
	Role               string               `bson:"role" json:"role" example:"Software Engineer"`
	JobType            string               `bson:"jobType" json:"jobType" example:"full-time"`
	DriveDate          time.Time            `bson:"driveDate" json:"driveDate"`
	Deadline           time.Time            `bson:"deadline" json:"deadline"`
	CTC                float64              `bson:"ctc" json:"ctc" example:"1200000"`
	BaseSalary         float64              `bson:"baseSalary" json:"baseSalary" example:"900000"`
	Location           string               `bson:"location" json:"location"`
	Mode               string               `bson:"mode" json:"mode" example:"on-campus"`
	Venue              string               `bson:"venue,omitempty" json:"venue,omitempty"`
	Eligibility        EligibilityRule      `bson:"eligibility" json:"eligibility"`
	RequiredSkills     []string             `bson:"requiredSkills" json:"requiredSkills"`
	Positions          int                  `bson:"positions" json:"positions" example:"5"`
	Status             string               `bson:"status" json:"status" example:"upcoming"`
	RegisteredStudents []primitive.ObjectID `bson:"registeredStudents" json:"registeredStudents"`
	SelectedStudents   []primitive.ObjectID `bson:"selectedStudents" json:"selectedStudents"`
	CreatedBy          primitive.ObjectID   `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
}
