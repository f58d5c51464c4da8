package algorithms

import (
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"talentia_backend/internal/models"
)

func TestCalculateCompletenessScore_EmptyProfile(t *testing.T) {
	assert.Equal(t, 0, CalculateCompletenessScore(&models.FacultyProfile{}, 0, 0))
}

func TestCalculateCompletenessScore_FullProfile(t *testing.T) {
	aneca := "Profesor Titular"
	orcid := "0000-0002-1825-0097"
	p := &models.FacultyProfile{
		FullName:           "Dr. Elena Ruiz",
		Headline:           "Profesora de IA",
		Country:            "ES",
		Bio:                strings.Repeat("experienced educator ", 5),
		ResearchSummary:    "Neural network interpretability.",
		DegreeLevel:        "PhD",
		AnecaAccreditation: &aneca,
		Orcid:              &orcid,
		Languages:          pq.StringArray{"Spanish"},
		Modalities:         pq.StringArray{"online"},
		YearsTeaching:      12,
	}

	assert.Equal(t, 100, CalculateCompletenessScore(p, 2, 1))
}

func TestCalculateCompletenessScore_ShortBioScoresLess(t *testing.T) {
	long := &models.FacultyProfile{Bio: strings.Repeat("x", 50)}
	short := &models.FacultyProfile{Bio: "short"}

	assert.Greater(t,
		CalculateCompletenessScore(long, 0, 0),
		CalculateCompletenessScore(short, 0, 0))
	assert.Greater(t, CalculateCompletenessScore(short, 0, 0), 0)
}

func TestCalculateCompletenessScore_Monotonic(t *testing.T) {
	p := &models.FacultyProfile{FullName: "Dr. Elena Ruiz"}

	base := CalculateCompletenessScore(p, 0, 0)
	withExpertise := CalculateCompletenessScore(p, 1, 0)
	withDocuments := CalculateCompletenessScore(p, 1, 1)

	assert.Greater(t, withExpertise, base)
	assert.Greater(t, withDocuments, withExpertise)
	assert.LessOrEqual(t, withDocuments, 100)
}
