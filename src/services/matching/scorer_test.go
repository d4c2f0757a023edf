package matching

import (
	"testing"

	"Backend-VolunteerHub/src/models"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("TestFullAndEmptyOverlap", func(t *testing.T) {
		result := Score(
			[]string{"first-aid", "cooking"}, []string{},
			[]string{"first-aid", "cooking"}, []string{"transport"},
		)
		assert.Equal(t, 100, result.SkillMatchScore)
		assert.Equal(t, 0, result.ServiceMatchScore)
		assert.Equal(t, 50, result.TotalScore)
	})

	t.Run("TestPartialOverlapRoundsHalfUp", func(t *testing.T) {
		// 1 of 3 required skills: 100/3 = 33.33… rounds to 33
		result := Score(
			[]string{"cooking"}, nil,
			[]string{"cooking", "first-aid", "driving"}, nil,
		)
		assert.Equal(t, 33, result.SkillMatchScore)

		// 2 of 3: 66.66… rounds to 67
		result = Score(
			[]string{"cooking", "driving"}, nil,
			[]string{"cooking", "first-aid", "driving"}, nil,
		)
		assert.Equal(t, 67, result.SkillMatchScore)
	})

	t.Run("TestTotalAveragesBothComponents", func(t *testing.T) {
		// skill 33, service 100 → mean 66.5 rounds to 67
		result := Score(
			[]string{"cooking"}, []string{"delivery"},
			[]string{"cooking", "first-aid", "driving"}, []string{"delivery"},
		)
		assert.Equal(t, 33, result.SkillMatchScore)
		assert.Equal(t, 100, result.ServiceMatchScore)
		assert.Equal(t, 67, result.TotalScore)
	})

	t.Run("TestSingleRequiredSetIsTheTotal", func(t *testing.T) {
		result := Score([]string{"cooking"}, []string{"delivery"}, []string{"cooking"}, nil)
		assert.Equal(t, 100, result.TotalScore)

		result = Score([]string{"cooking"}, []string{"delivery"}, nil, []string{"delivery", "transport"})
		assert.Equal(t, 50, result.TotalScore)
	})

	t.Run("TestNoRequirementsScoresZero", func(t *testing.T) {
		result := Score([]string{"cooking"}, []string{"delivery"}, nil, nil)
		assert.Equal(t, models.MatchResult{}, result)
	})

	t.Run("TestVolunteerExtrasDoNotCount", func(t *testing.T) {
		result := Score(
			[]string{"cooking", "first-aid", "driving", "translation"}, nil,
			[]string{"cooking"}, nil,
		)
		assert.Equal(t, 100, result.SkillMatchScore)
	})

	t.Run("TestScoresStayWithinBounds", func(t *testing.T) {
		result := Score(nil, nil, []string{"a", "b", "c"}, []string{"x"})
		assert.GreaterOrEqual(t, result.SkillMatchScore, 0)
		assert.LessOrEqual(t, result.SkillMatchScore, 100)
		assert.Equal(t, 0, result.TotalScore)
	})
}

func TestPageOf(t *testing.T) {
	scored := make([]ScoredActivity, 25)

	t.Run("TestRegularPages", func(t *testing.T) {
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: 1, Limit: 10}), 10)
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: 3, Limit: 10}), 5)
		assert.Empty(t, pageOf(scored, models.PaginationParams{Page: 4, Limit: 10}))
	})

	t.Run("TestNonPositivePageAndLimitClamped", func(t *testing.T) {
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: 0, Limit: 10}), 10)
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: -3, Limit: 10}), 10)
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: 1, Limit: 0}), 10)
		assert.Len(t, pageOf(scored, models.PaginationParams{Page: 0, Limit: -5}), 10)
	})

	t.Run("TestEmptyInput", func(t *testing.T) {
		assert.Empty(t, pageOf(nil, models.PaginationParams{Page: 0, Limit: 0}))
	})
}

func TestRankActivities(t *testing.T) {
	scoredWith := func(total int, date string) ScoredActivity {
		return ScoredActivity{
			Activity: models.Activity{Date: date},
			Match:    models.MatchResult{TotalScore: total},
		}
	}

	scored := []ScoredActivity{
		scoredWith(50, "2026-06-10"),
		scoredWith(90, "2026-06-20"),
		scoredWith(50, "2026-06-01"),
		scoredWith(0, "2026-05-01"),
	}
	RankActivities(scored)

	assert.Equal(t, 90, scored[0].Match.TotalScore)
	assert.Equal(t, "2026-06-01", scored[1].Activity.Date)
	assert.Equal(t, "2026-06-10", scored[2].Activity.Date)
	assert.Equal(t, 0, scored[3].Match.TotalScore)
}
