package models

import "time"

// Request bodies validated at the boundary before any mutation is attempted.

type RegisterRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Name       string  `json:"name" validate:"required"`
	Code       string  `json:"code" validate:"required"`
	Department string  `json:"department" validate:"required"`
	Batch      int     `json:"batch" validate:"required,gte=2000"`
	CGPA       float64 `json:"cgpa" validate:"gte=0,lte=10"`
	Backlogs   int     `json:"backlogs" validate:"gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type CreateDriveRequest struct {
	CompanyName    string          `json:"companyName" validate:"required"`
	Role           string          `json:"role" validate:"required"`
	JobType        string          `json:"jobType"`
	DriveDate      time.Time       `json:"driveDate" validate:"required"`
	Deadline       time.Time       `json:"deadline" validate:"required"`
	CTC            float64         `json:"ctc" validate:"gte=0"`
	BaseSalary     float64         `json:"baseSalary" validate:"gte=0"`
	Location       string          `json:"location"`
	Mode           string          `json:"mode"`
	Venue          string          `json:"venue"`
	Eligibility    EligibilityRule `json:"eligibility"`
	RequiredSkills []string        `json:"requiredSkills"`
	Positions      int             `json:"positions" validate:"gte=0"`
}

type ApplyRequest struct {
	DriveID string `json:"driveId" validate:"required"`
}

type SetStatusRequest struct {
	Status     string   `json:"status" validate:"required"`
	Feedback   *string  `json:"feedback,omitempty"`
	OfferedCTC *float64 `json:"offeredCtc,omitempty" validate:"omitempty,gte=0"`
}

type RespondRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted declined"`
}

type RoundRequest struct {
	Number      int        `json:"number" validate:"required,gte=1"`
	Name        string     `json:"name" validate:"required"`
	Date        *time.Time `json:"date,omitempty"`
	Outcome     string     `json:"outcome" validate:"omitempty,oneof=pending cleared failed"`
	Feedback    string     `json:"feedback"`
	Interviewer string     `json:"interviewer"`
}

type ReviewRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Notes  *string `json:"notes,omitempty"`
}

type UpdateProfileRequest struct {
	Name           *string         `json:"name,omitempty"`
	CGPA           *float64        `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	Backlogs       *int            `json:"backlogs,omitempty" validate:"omitempty,gte=0"`
	Skills         []SkillEntry    `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	ResumeURL      *string         `json:"resumeUrl,omitempty"`
}

// ShortlistCriteria is the admin filter over student profiles.
type ShortlistCriteria struct {
	MinCGPA            float64  `json:"minCgpa" validate:"gte=0,lte=10"`
	MaxBacklogs        int      `json:"maxBacklogs" validate:"gte=0"`
	AllowedDepartments []string `json:"allowedDepartments,omitempty"`
	RequiredSkills     []string `json:"requiredSkills,omitempty"`
}
