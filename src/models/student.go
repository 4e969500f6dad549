package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placement status of a student. Moves to in_process on an offer and to
// placed on acceptance; only the application state machine writes it.
const (
	PlacementNotPlaced = "not_placed"
	PlacementInProcess = "in_process"
	PlacementPlaced    = "placed"
)

// SkillEntry ทักษะของนิสิตพร้อมระดับความชำนาญ
type SkillEntry struct {
	Name        string `bson:"name" json:"name"`
	Proficiency string `bson:"proficiency" json:"proficiency"` // beginner | intermediate | advanced | expert
}

type Certification struct {
	Name     string     `bson:"name" json:"name"`
	Issuer   string     `bson:"issuer" json:"issuer"`
	IssuedAt *time.Time `bson:"issuedAt,omitempty" json:"issuedAt,omitempty"`
}

// Student profile. CGPA is on a 0–10 scale, Backlogs is the failed-course
// count. PlacedCompany/PlacedRole/PlacedCTC are stamped by the application
// state machine when an offer arrives.
type Student struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Code            string             `bson:"code" json:"code" example:"65160999"`
	Name            string             `bson:"name" json:"name"`
	Department      string             `bson:"department" json:"department" example:"CS"`
	Batch           int                `bson:"batch" json:"batch" example:"2026"`
	CGPA            float64            `bson:"cgpa" json:"cgpa" example:"8.75"`
	Backlogs        int                `bson:"backlogs" json:"backlogs"`
	Skills          []SkillEntry       `bson:"skills" json:"skills"`
	Certifications  []Certification    `bson:"certifications" json:"certifications"`
	PlacementStatus string             `bson:"placementStatus" json:"placementStatus" example:"not_placed"`
	PlacedCompany   string             `bson:"placedCompany,omitempty" json:"placedCompany,omitempty"`
	PlacedRole      string             `bson:"placedRole,omitempty" json:"placedRole,omitempty"`
	PlacedCTC       float64            `bson:"placedCtc,omitempty" json:"placedCtc,omitempty"`
	ResumeURL       string             `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
