package applications

import (
	"strings"

	"Backend-PlacementCell/src/models"
)

// Transition guards and status-derived mappings. Kept as pure functions so
// the state machine rules are testable without a database.

// CanWithdraw reports whether an application may still be withdrawn. Any
// progress past applied forbids withdrawal.
func CanWithdraw(status models.ApplicationStatus) bool {
	return status == models.StatusApplied
}

// CanRespondToOffer reports whether a student may respond to an offer.
func CanRespondToOffer(status models.ApplicationStatus) bool {
	return status == models.StatusOffered
}

// IsOfferDecision reports whether status is a valid offer response.
func IsOfferDecision(status models.ApplicationStatus) bool {
	return status == models.StatusAccepted || status == models.StatusDeclined
}

// PlacementStatusFor returns the student placement status implied by an
// application status, if any: offered → in_process, accepted → placed.
func PlacementStatusFor(status models.ApplicationStatus) (string, bool) {
	switch status {
	case models.StatusOffered:
		return models.PlacementInProcess, true
	case models.StatusAccepted:
		return models.PlacementPlaced, true
	}
	return "", false
}

// NotificationCategory maps a status to the category of the notification
// emitted on transition.
func NotificationCategory(status models.ApplicationStatus) string {
	switch status {
	case models.StatusOffered:
		return models.CategorySuccess
	case models.StatusRejected:
		return models.CategoryError
	}
	return models.CategoryInfo
}

// HumanizeStatus renders a status for notification bodies: underscores
// become spaces and the result is upper-cased, e.g. hr_round → "HR ROUND".
func HumanizeStatus(status models.ApplicationStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(status), "_", " "))
}
