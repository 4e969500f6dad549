package students

import (
	"sort"
	"strings"

	"Backend-PlacementCell/src/models"
)

// Pure scoring and filtering helpers for admin shortlisting and student
// recommendations.

// ReadinessScore estimates placement preparedness on a 0–100 scale:
//
//	cgpa/10 * 40 + min(skillCount * 10, 40) - (backlogs > 0 ? 20 : 0)
//
// The formula is a heuristic but callers depend on its exact outputs, so it
// must not be reweighted casually.
func ReadinessScore(student models.Student) float64 {
	score := student.CGPA / 10 * 40

	skillPoints := float64(len(student.Skills)) * 10
	if skillPoints > 40 {
		skillPoints = 40
	}
	score += skillPoints

	if student.Backlogs > 0 {
		score -= 20
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// MatchesShortlist reports whether a student satisfies the criteria: CGPA at
// least minCgpa, backlogs at most maxBacklogs, department in the allowlist if
// one is given, and every required skill present by case-insensitive
// substring match on the student's skill names.
func MatchesShortlist(student models.Student, criteria models.ShortlistCriteria) bool {
	if student.CGPA < criteria.MinCGPA {
		return false
	}
	if student.Backlogs > criteria.MaxBacklogs {
		return false
	}

	if len(criteria.AllowedDepartments) > 0 {
		found := false
		for _, dept := range criteria.AllowedDepartments {
			if strings.EqualFold(dept, student.Department) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, required := range criteria.RequiredSkills {
		if !hasSkillSubstring(student.Skills, required) {
			return false
		}
	}

	return true
}

func hasSkillSubstring(skills []models.SkillEntry, required string) bool {
	needle := strings.ToLower(required)
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill.Name), needle) {
			return true
		}
	}
	return false
}

// FilterShortlist applies MatchesShortlist over a student set and sorts the
// result by CGPA descending (stable, so equal-CGPA students keep their input
// order). The ordering is presentational, not contractual.
func FilterShortlist(studentList []models.Student, criteria models.ShortlistCriteria) []models.Student {
	out := make([]models.Student, 0)
	for _, student := range studentList {
		if MatchesShortlist(student, criteria) {
			out = append(out, student)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CGPA > out[j].CGPA })
	return out
}

// DriveMatch annotates a drive with a match probability for one student.
type DriveMatch struct {
	Drive            models.Drive `json:"drive"`
	MatchProbability int          `json:"matchProbability"`
}

// MatchDrives returns every drive whose eligibility bounds admit the student,
// annotated with a probability: base 60, +20 when the student holds a skill
// named in the drive's required skills (case-insensitive equality), +10 when
// the student's CGPA clears the minimum by more than a full point, capped at
// 100. Unset bounds admit everyone.
func MatchDrives(student models.Student, driveList []models.Drive) []DriveMatch {
	matches := make([]DriveMatch, 0)

	for _, drive := range driveList {
		minCgpa := 0.0
		if drive.Eligibility.MinCGPA != nil {
			minCgpa = *drive.Eligibility.MinCGPA
		}
		if student.CGPA < minCgpa {
			continue
		}
		if drive.Eligibility.MaxBacklogs != nil && student.Backlogs > *drive.Eligibility.MaxBacklogs {
			continue
		}

		probability := 60
		if hasAnySkillEqual(student.Skills, drive.RequiredSkills) {
			probability += 20
		}
		if student.CGPA > minCgpa+1 {
			probability += 10
		}
		if probability > 100 {
			probability = 100
		}

		matches = append(matches, DriveMatch{Drive: drive, MatchProbability: probability})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchProbability > matches[j].MatchProbability
	})
	return matches
}

func hasAnySkillEqual(skills []models.SkillEntry, required []string) bool {
	for _, req := range required {
		for _, skill := range skills {
			if strings.EqualFold(skill.Name, req) {
				return true
			}
		}
	}
	return false
}
