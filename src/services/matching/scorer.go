package matching

import (
	"math"

	"Backend-VolunteerHub/src/models"
)

// Score computes 0–100 compatibility between a volunteer's skill and
// service sets and an activity's required sets. Pure function: each
// component is the matched fraction of the required set; the total is
// the mean of the components that have a non-empty required set.
func Score(volSkills, volServices, reqSkills, reqServices []string) models.MatchResult {
	skill := overlapScore(volSkills, reqSkills)
	service := overlapScore(volServices, reqServices)

	var total int
	switch {
	case len(reqSkills) > 0 && len(reqServices) > 0:
		total = roundHalfUp(float64(skill+service) / 2)
	case len(reqSkills) > 0:
		total = skill
	case len(reqServices) > 0:
		total = service
	default:
		total = 0
	}

	return models.MatchResult{
		SkillMatchScore:   skill,
		ServiceMatchScore: service,
		TotalScore:        total,
	}
}

func overlapScore(have, required []string) int {
	if len(required) == 0 {
		return 0
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, s := range have {
		haveSet[s] = struct{}{}
	}
	matched := 0
	for _, r := range required {
		if _, ok := haveSet[r]; ok {
			matched++
		}
	}
	return roundHalfUp(100 * float64(matched) / float64(len(required)))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
