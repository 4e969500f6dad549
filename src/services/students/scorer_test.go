package students

import (
	"testing"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func skills(names ...string) []models.SkillEntry {
	out := make([]models.SkillEntry, 0, len(names))
	for _, name := range names {
		out = append(out, models.SkillEntry{Name: name, Proficiency: "intermediate"})
	}
	return out
}

func TestReadinessScore(t *testing.T) {
	t.Run("StrongProfile", func(t *testing.T) {
		student := models.Student{
			CGPA:     9.0,
			Backlogs: 0,
			Skills:   skills("Go", "Python", "SQL", "Docker", "React"),
		}
		// 36 + 40 - 0
		assert.Equal(t, 76.0, ReadinessScore(student))
	})

	t.Run("NoSkillsWithBacklog", func(t *testing.T) {
		student := models.Student{CGPA: 8.0, Backlogs: 1}
		// 32 + 0 - 20
		assert.Equal(t, 12.0, ReadinessScore(student))
	})

	t.Run("SkillPointsCapAtForty", func(t *testing.T) {
		student := models.Student{
			CGPA:   10.0,
			Skills: skills("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"),
		}
		assert.Equal(t, 80.0, ReadinessScore(student))
	})

	t.Run("ClampedToZero", func(t *testing.T) {
		student := models.Student{CGPA: 0, Backlogs: 3}
		assert.Equal(t, 0.0, ReadinessScore(student))
	})

	t.Run("AlwaysWithinBounds", func(t *testing.T) {
		for _, student := range []models.Student{
			{CGPA: 0, Backlogs: 10},
			{CGPA: 10, Backlogs: 0, Skills: skills("a", "b", "c", "d", "e", "f")},
			{CGPA: 4.2, Backlogs: 1, Skills: skills("a")},
		} {
			score := ReadinessScore(student)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	})
}

func TestFilterShortlist(t *testing.T) {
	pool := []models.Student{
		{Name: "A", CGPA: 9.2, Backlogs: 0, Department: "CS", Skills: skills("JavaScript", "Go")},
		{Name: "B", CGPA: 8.0, Backlogs: 0, Department: "IT", Skills: skills("Java")},
		{Name: "C", CGPA: 8.9, Backlogs: 1, Department: "CS"},
		{Name: "D", CGPA: 7.5, Backlogs: 0, Department: "CS", Skills: skills("Go")},
	}

	t.Run("FilterByCGPAAndBacklogs", func(t *testing.T) {
		result := FilterShortlist(pool, models.ShortlistCriteria{MinCGPA: 8, MaxBacklogs: 0})
		names := []string{}
		for _, s := range result {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"A", "B"}, names) // CGPA descending
	})

	t.Run("DepartmentAllowlist", func(t *testing.T) {
		result := FilterShortlist(pool, models.ShortlistCriteria{
			MinCGPA:            7,
			MaxBacklogs:        1,
			AllowedDepartments: []string{"IT"},
		})
		assert.Len(t, result, 1)
		assert.Equal(t, "B", result[0].Name)
	})

	t.Run("RequiredSkillSubstringMatch", func(t *testing.T) {
		// "java" matches both "Java" and "JavaScript" case-insensitively.
		result := FilterShortlist(pool, models.ShortlistCriteria{
			MinCGPA:        7,
			MaxBacklogs:    1,
			RequiredSkills: []string{"java"},
		})
		assert.Len(t, result, 2)
		assert.Equal(t, "A", result[0].Name)
		assert.Equal(t, "B", result[1].Name)
	})

	t.Run("AllRequiredSkillsMustBePresent", func(t *testing.T) {
		result := FilterShortlist(pool, models.ShortlistCriteria{
			MinCGPA:        0,
			MaxBacklogs:    5,
			RequiredSkills: []string{"go", "javascript"},
		})
		assert.Len(t, result, 1)
		assert.Equal(t, "A", result[0].Name)
	})

	t.Run("NoMatchesIsEmptyNotNil", func(t *testing.T) {
		result := FilterShortlist(pool, models.ShortlistCriteria{MinCGPA: 9.9, MaxBacklogs: 0})
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestMatchDrives(t *testing.T) {
	student := models.Student{
		CGPA:     9.0,
		Backlogs: 0,
		Skills:   skills("Go", "SQL"),
	}

	t.Run("BaseProbability", func(t *testing.T) {
		driveList := []models.Drive{{
			CompanyName: "Acme",
			Eligibility: models.EligibilityRule{MinCGPA: floatPtr(8.5), MaxBacklogs: intPtr(0)},
		}}
		matches := MatchDrives(student, driveList)
		assert.Len(t, matches, 1)
		// No skill overlap, CGPA margin only 0.5: base 60.
		assert.Equal(t, 60, matches[0].MatchProbability)
	})

	t.Run("SkillAndMarginBonus", func(t *testing.T) {
		driveList := []models.Drive{{
			CompanyName:    "Initech",
			Eligibility:    models.EligibilityRule{MinCGPA: floatPtr(7.0), MaxBacklogs: intPtr(0)},
			RequiredSkills: []string{"go"},
		}}
		matches := MatchDrives(student, driveList)
		assert.Len(t, matches, 1)
		// 60 + 20 (skill equality, case-insensitive) + 10 (cgpa > min+1).
		assert.Equal(t, 90, matches[0].MatchProbability)
	})

	t.Run("IneligibleDrivesExcluded", func(t *testing.T) {
		driveList := []models.Drive{
			{CompanyName: "TooStrict", Eligibility: models.EligibilityRule{MinCGPA: floatPtr(9.5)}},
			{CompanyName: "NoBacklogs", Eligibility: models.EligibilityRule{MaxBacklogs: intPtr(0)}},
		}
		withBacklog := models.Student{CGPA: 9.0, Backlogs: 2}
		matches := MatchDrives(withBacklog, driveList)
		assert.Empty(t, matches)
	})

	t.Run("EqualCGPAStillMatches", func(t *testing.T) {
		driveList := []models.Drive{{
			Eligibility: models.EligibilityRule{MinCGPA: floatPtr(9.0)},
		}}
		matches := MatchDrives(student, driveList)
		assert.Len(t, matches, 1)
		assert.Equal(t, 60, matches[0].MatchProbability)
	})

	t.Run("UnsetBoundsMatchEveryone", func(t *testing.T) {
		driveList := []models.Drive{{CompanyName: "Open"}}
		weak := models.Student{CGPA: 3.0, Backlogs: 6}
		matches := MatchDrives(weak, driveList)
		assert.Len(t, matches, 1)
		// min defaults to 0 so cgpa > 1 earns the margin bonus.
		assert.Equal(t, 70, matches[0].MatchProbability)
	})

	t.Run("SortedByProbabilityDescending", func(t *testing.T) {
		driveList := []models.Drive{
			{CompanyName: "Plain", Eligibility: models.EligibilityRule{MinCGPA: floatPtr(8.5)}},
			{CompanyName: "Fit", RequiredSkills: []string{"SQL"}, Eligibility: models.EligibilityRule{MinCGPA: floatPtr(7.0)}},
		}
		matches := MatchDrives(student, driveList)
		assert.Len(t, matches, 2)
		assert.Equal(t, "Fit", matches[0].Drive.CompanyName)
		assert.GreaterOrEqual(t, matches[0].MatchProbability, matches[1].MatchProbability)
	})
}
