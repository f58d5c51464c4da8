package algorithms

import "talentia_backend/internal/models"

// CalculateCompletenessScore scores how filled-in a faculty profile is
// (0-100). Weighting favors the fields institutions actually search on.
func CalculateCompletenessScore(profile *models.FacultyProfile, expertiseCount, documentCount int) int {
	score := 0

	// Identity basics (25 points)
	if profile.FullName != "" {
		score += 10
	}
	if profile.Headline != "" {
		score += 10
	}
	if profile.Country != "" {
		score += 5
	}

	// Narrative (20 points)
	if len(profile.Bio) >= 50 {
		score += 15
	} else if profile.Bio != "" {
		score += 5
	}
	if profile.ResearchSummary != "" {
		score += 5
	}

	// Credentials (20 points)
	if profile.DegreeLevel != "" {
		score += 10
	}
	if profile.AnecaAccreditation != nil && *profile.AnecaAccreditation != "" {
		score += 5
	}
	if profile.Orcid != nil && *profile.Orcid != "" {
		score += 5
	}

	// Searchable attributes (20 points)
	if len(profile.Languages) > 0 {
		score += 5
	}
	if len(profile.Modalities) > 0 {
		score += 5
	}
	if expertiseCount > 0 {
		score += 10
	}

	// Experience and documents (15 points)
	if profile.YearsTeaching > 0 || profile.YearsProfessional > 0 {
		score += 5
	}
	if documentCount > 0 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
