package drives

import (
	"fmt"
	"strings"

	"Backend-PlacementCell/src/models"
)

// EligibilityResult carries the admission verdict and, on rejection, the
// human-readable rule that failed.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// IsEligible decides whether a student may apply to a drive. Rules are
// evaluated in a fixed order and the first failure wins, so rejection
// reasons are deterministic. Pure function, no I/O.
func IsEligible(student models.Student, drive models.Drive) EligibilityResult {
	rule := drive.Eligibility

	if rule.MinCGPA != nil && student.CGPA < *rule.MinCGPA {
		return EligibilityResult{Reason: fmt.Sprintf("minimum CGPA requirement: %g", *rule.MinCGPA)}
	}

	if rule.MaxBacklogs != nil && student.Backlogs > *rule.MaxBacklogs {
		return EligibilityResult{Reason: fmt.Sprintf("maximum backlogs allowed: %d", *rule.MaxBacklogs)}
	}

	// Empty list means the drive is open to all departments.
	if len(rule.AllowedDepartments) > 0 {
		allowed := false
		for _, dept := range rule.AllowedDepartments {
			if strings.EqualFold(dept, student.Department) {
				allowed = true
				break
			}
		}
		if !allowed {
			return EligibilityResult{Reason: "department not eligible"}
		}
	}

	return EligibilityResult{Eligible: true}
}
