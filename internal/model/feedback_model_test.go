package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackBeforeCreateAssignsID(t *testing.T) {
	f := &Feedback{}
	require.NoError(t, f.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, f.ID)

	fixed := uuid.New()
	f = &Feedback{ID: fixed}
	require.NoError(t, f.BeforeCreate(nil))
	assert.Equal(t, fixed, f.ID)
}

func TestCategoryScoresColumnRoundTrip(t *testing.T) {
	f := Feedback{CategoryScores: []CategoryScore{{Name: CategoryTechnical, Score: 80, Comment: "solid"}}}

	v, err := f.CategoryScores.Value()
	require.NoError(t, err)

	var scanned Feedback
	require.NoError(t, scanned.CategoryScores.Scan(v))
	assert.Equal(t, f.CategoryScores, scanned.CategoryScores)
}

func TestIsFeedbackCategory(t *testing.T) {
	for _, c := range FeedbackCategories {
		assert.True(t, IsFeedbackCategory(c))
	}
	assert.False(t, IsFeedbackCategory("Leadership"))
	assert.False(t, IsFeedbackCategory("communication skills"))
}
