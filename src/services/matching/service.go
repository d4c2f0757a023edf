package matching

import (
	"context"
	"sort"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ScoredActivity pairs a published activity with the volunteer's scores.
type ScoredActivity struct {
	Activity models.Activity    `json:"activity"`
	Match    models.MatchResult `json:"match"`
}

// RankActivities sorts by total score descending, ties broken by the
// earlier activity date.
func RankActivities(scored []ScoredActivity) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Match.TotalScore != scored[j].Match.TotalScore {
			return scored[i].Match.TotalScore > scored[j].Match.TotalScore
		}
		return scored[i].Activity.Date < scored[j].Activity.Date
	})
}

// ActivitiesForVolunteer lists published activities scored against the
// volunteer's profile, best matches first.
func ActivitiesForVolunteer(volunteerID primitive.ObjectID, params models.PaginationParams) ([]ScoredActivity, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var volunteer models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": volunteerID}).Decode(&volunteer)
	if err == mongo.ErrNoDocuments {
		return nil, 0, DB.ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	filter := bson.M{"status": models.StatusPublished}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	cursor, err := DB.ActivityCollection.Find(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var scored []ScoredActivity
	for cursor.Next(ctx) {
		var a models.Activity
		if err := cursor.Decode(&a); err != nil {
			continue
		}
		scored = append(scored, ScoredActivity{
			Activity: a,
			Match:    Score(volunteer.Skills, volunteer.Services, a.RequiredSkills, a.RequiredServices),
		})
	}

	RankActivities(scored)

	// Scores are computed in process, so the page is cut after ranking.
	return pageOf(scored, params), int64(len(scored)), nil
}

// pageOf cuts one page out of the ranked slice. Page and limit are
// clamped so hostile query values can never index out of bounds.
func pageOf(scored []ScoredActivity, params models.PaginationParams) []ScoredActivity {
	if params.Limit < 1 {
		params.Limit = models.DefaultPagination().Limit
	}
	if params.Page < 1 {
		params.Page = 1
	}
	start := int(params.GetSkip())
	if start > len(scored) {
		start = len(scored)
	}
	end := start + params.Limit
	if end > len(scored) {
		end = len(scored)
	}
	return scored[start:end]
}
