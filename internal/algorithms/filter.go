package algorithms

import (
	"strings"

	"talentia_backend/internal/models"
)

// In-memory refinement predicates for the search pipeline. All of them are
// pure: they look only at the candidate profile and the criterion value, so
// they can be mixed freely and unit-tested without a database. Empty or
// unrecognized criteria always match; the filters narrow, never invent.

// MatchesArea checks the area criterion against the profile's expertise
// entries using case-insensitive substring containment.
func MatchesArea(profile *models.FacultyProfile, area string) bool {
	if area == "" {
		return true
	}
	needle := strings.ToLower(area)
	for _, e := range profile.Expertise {
		if strings.Contains(strings.ToLower(e.Area), needle) {
			return true
		}
	}
	return false
}

// MatchesSubarea checks subarea and topic fields. A profile matches when any
// expertise entry has the needle in its subarea or in any topic.
func MatchesSubarea(profile *models.FacultyProfile, subarea string) bool {
	if subarea == "" {
		return true
	}
	needle := strings.ToLower(subarea)
	for _, e := range profile.Expertise {
		if e.Subarea != nil && strings.Contains(strings.ToLower(*e.Subarea), needle) {
			return true
		}
		for _, topic := range e.Topics {
			if strings.Contains(strings.ToLower(topic), needle) {
				return true
			}
		}
	}
	return false
}

// MatchesLanguage requires exact membership in the profile's language list.
// "Spanish" must not match "Spanish Sign Language": languages are discrete
// values, unlike the free-text expertise fields.
func MatchesLanguage(profile *models.FacultyProfile, language string) bool {
	if language == "" {
		return true
	}
	return profile.HasLanguage(language)
}

// HasDoctorate approximates a missing structured field by scanning the
// degree level, headline and bio for doctorate keywords.
func HasDoctorate(profile *models.FacultyProfile, keywords []string) bool {
	haystack := strings.ToLower(profile.DegreeLevel + " " + profile.Headline + " " + profile.Bio)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MatchesModality passes when any requested modality intersects the
// profile's declared set, or appears in the headline/bio free text. The
// text scan always runs: a declared list is often stale, so a profile
// saying "in-person" that writes about online courses still matches
// "online".
func MatchesModality(profile *models.FacultyProfile, modalities []string) bool {
	if len(modalities) == 0 {
		return true
	}
	haystack := strings.ToLower(profile.Headline + " " + profile.Bio)
	for _, want := range modalities {
		if want == "" {
			continue
		}
		for _, have := range profile.Modalities {
			if strings.EqualFold(have, want) {
				return true
			}
		}
		if strings.Contains(haystack, strings.ToLower(want)) {
			return true
		}
	}
	return false
}

// MatchesTeachingLevels passes when the profile declares at least one of the
// requested levels. Profiles with an empty list match nothing here.
func MatchesTeachingLevels(profile *models.FacultyProfile, levels []string) bool {
	if len(levels) == 0 {
		return true
	}
	for _, want := range levels {
		for _, have := range profile.TeachingLevels {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
