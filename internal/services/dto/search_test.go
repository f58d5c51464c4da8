package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFacultyCriteria_Normalize(t *testing.T) {
	c := SearchFacultyCriteria{
		Query:          "  machine learning ",
		Country:        " ES ",
		Language:       "Spanish",
		Modality:       []string{" online ", ""},
		TeachingLevels: []string{" master ", "", "undergraduate"},
	}
	c.Normalize()

	assert.Equal(t, "machine learning", c.Query)
	assert.Equal(t, "ES", c.Country)
	assert.Equal(t, "Spanish", c.Language)
	assert.Equal(t, []string{"online"}, c.Modality)
	assert.Equal(t, []string{"master", "undergraduate"}, c.TeachingLevels)
}

func TestSearchFacultyCriteria_NormalizeEmpty(t *testing.T) {
	c := SearchFacultyCriteria{}
	c.Normalize()

	assert.Empty(t, c.Query)
	assert.Empty(t, c.TeachingLevels)
}
