package algorithms

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"talentia_backend/internal/models"
)

func searchableProfile() *models.FacultyProfile {
	subarea := "Machine Learning"
	return &models.FacultyProfile{
		FullName:    "Dr. Elena Ruiz",
		Headline:    "Profesora de Inteligencia Artificial",
		Bio:         "Teaching online courses on AI and data science for over a decade.",
		DegreeLevel: "PhD in Computer Science",
		Languages:   pq.StringArray{"Spanish", "English"},
		Modalities:  pq.StringArray{"online", "hybrid"},
		TeachingLevels: pq.StringArray{
			"undergraduate", "master",
		},
		Expertise: []models.ExpertiseEntry{
			{
				Area:    "Computer Science",
				Subarea: &subarea,
				Topics:  pq.StringArray{"neural networks", "NLP"},
			},
		},
	}
}

func TestMatchesArea(t *testing.T) {
	p := searchableProfile()

	assert.True(t, MatchesArea(p, ""))
	assert.True(t, MatchesArea(p, "computer science"))
	assert.True(t, MatchesArea(p, "Computer"), "substring should match")
	assert.False(t, MatchesArea(p, "Biology"))
}

func TestMatchesSubarea(t *testing.T) {
	p := searchableProfile()

	assert.True(t, MatchesSubarea(p, ""))
	assert.True(t, MatchesSubarea(p, "machine learning"))
	assert.True(t, MatchesSubarea(p, "nlp"), "topics count as subarea matches")
	assert.False(t, MatchesSubarea(p, "databases"))

	p.Expertise[0].Subarea = nil
	assert.True(t, MatchesSubarea(p, "neural"), "nil subarea still scans topics")
}

func TestMatchesLanguage_ExactMembership(t *testing.T) {
	p := searchableProfile()

	assert.True(t, MatchesLanguage(p, ""))
	assert.True(t, MatchesLanguage(p, "spanish"))
	assert.False(t, MatchesLanguage(p, "Span"), "languages are discrete values, not substrings")
	assert.False(t, MatchesLanguage(p, "French"))
}

func TestHasDoctorate(t *testing.T) {
	keywords := []string{"phd", "doctor", "doctorado"}

	p := searchableProfile()
	assert.True(t, HasDoctorate(p, keywords))

	p.DegreeLevel = "Master of Science"
	assert.False(t, HasDoctorate(p, keywords))

	p.Bio = "Doctorado en Ciencias por la Universidad de Madrid."
	assert.True(t, HasDoctorate(p, keywords), "bio keywords count too")
}

func TestMatchesModality(t *testing.T) {
	p := searchableProfile()

	assert.True(t, MatchesModality(p, nil))
	assert.True(t, MatchesModality(p, []string{"Online"}))
	assert.False(t, MatchesModality(p, []string{"presencial"}))
	assert.True(t, MatchesModality(p, []string{"presencial", "hybrid"}), "any requested modality suffices")

	// Without a declared list the headline/bio text scan applies.
	p.Modalities = nil
	assert.True(t, MatchesModality(p, []string{"online"}))
	assert.False(t, MatchesModality(p, []string{"presencial"}))
}

func TestMatchesModality_TextScanRunsAlongsideDeclaredList(t *testing.T) {
	// Declared lists go stale; the free-text scan must still count.
	p := searchableProfile()
	p.Modalities = pq.StringArray{"in-person"}
	p.Headline = "Lecturer"
	p.Bio = "Also teaching online courses every semester."

	assert.True(t, MatchesModality(p, []string{"online"}), "bio mentions the requested modality")
	assert.True(t, MatchesModality(p, []string{"in-person"}))
	assert.False(t, MatchesModality(p, []string{"hybrid"}))
}

func TestMatchesTeachingLevels(t *testing.T) {
	p := searchableProfile()

	assert.True(t, MatchesTeachingLevels(p, nil))
	assert.True(t, MatchesTeachingLevels(p, []string{"master"}))
	assert.True(t, MatchesTeachingLevels(p, []string{"doctorate", "master"}), "any overlap passes")
	assert.False(t, MatchesTeachingLevels(p, []string{"doctorate"}))

	p.TeachingLevels = nil
	assert.False(t, MatchesTeachingLevels(p, []string{"master"}), "empty declaration matches no requested level")
}
