package applications

import (
	"errors"
	"fmt"

	"Backend-PlacementCell/src/models"
)

// Typed failures of the application state machine. Controllers translate
// these to HTTP statuses; none of them leaks as a generic error.
var (
	ErrDriveNotFound        = errors.New("drive not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this drive")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrInvalidDecision      = errors.New("decision must be accepted or declined")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
)

// IneligibleError reports which eligibility rule rejected the student.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return "not eligible: " + e.Reason
}

// InvalidStateTransitionError reports a precondition violation on a
// transition, with the state the application was actually in.
type InvalidStateTransitionError struct {
	Current     models.ApplicationStatus
	Requirement string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s (current status: %s)", e.Requirement, e.Current)
}
