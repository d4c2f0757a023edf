package activities

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/attendance"
	"Backend-VolunteerHub/src/services/notifications"
	"Backend-VolunteerHub/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Clock is swapped for a fixed clock in tests.
var Clock utils.Clock = utils.RealClock{}

var ErrInvalidInitialStatus = errors.New("a new activity must be draft or published")

// --- Redis cache helpers ---

func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

func invalidateActivityCache(id primitive.ObjectID) {
	DB.InvalidatePattern("activities:list:*")
	DB.DelCache("activity:" + id.Hex())
}

// CreateActivity inserts a new aggregate. Initial status is the
// creator's choice of draft or published; publishing immediately emits
// the fan-out event and schedules auto-completion.
func CreateActivity(a *models.Activity) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.Status != models.StatusDraft && a.Status != models.StatusPublished {
		return nil, ErrInvalidInitialStatus
	}

	now := Clock.Now()
	a.ID = primitive.NewObjectID()
	a.Participants = []models.Participant{}
	a.CurrentParticipants = 0
	a.Version = 1
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := DB.ActivityCollection.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	invalidateActivityCache(a.ID)

	if a.Status == models.StatusPublished {
		notifications.Dispatch(models.DomainEvent{
			Type:          models.EventActivityPublished,
			ActivityID:    a.ID,
			ActivityTitle: a.Title,
		})
		ScheduleCompletion(a)
	}

	return a, nil
}

// GetAllActivities lists activities with pagination, search and
// status/skill filters, cached for five minutes.
func GetAllActivities(params models.PaginationParams, statuses, skills []string) ([]models.Activity, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "activities:list:" + hashParams(struct {
		Params   models.PaginationParams
		Statuses []string
		Skills   []string
	}{params, statuses, skills})

	var cached struct {
		Data       []models.Activity
		Total      int64
		TotalPages int
	}
	if DB.GetCache(key, &cached) {
		return cached.Data, cached.Total, cached.TotalPages, nil
	}

	filter := buildActivitiesFilter(params, statuses, skills)

	total, err := DB.ActivityCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	sortOrder := 1
	if strings.ToLower(params.Order) == "desc" {
		sortOrder = -1
	}
	sortField := params.SortBy
	if sortField == "" {
		sortField = "date"
	}

	cursor, err := DB.ActivityCollection.Find(ctx, filter,
		findOptions(sortField, sortOrder, params.GetSkip(), int64(params.Limit)))
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []models.Activity
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, 0, err
	}

	totalPages := pageCount(total, params.Limit)
	DB.SetCache(key, struct {
		Data       []models.Activity
		Total      int64
		TotalPages int
	}{results, total, totalPages}, 5*time.Minute)

	return results, total, totalPages, nil
}

func GetActivityByID(activityID string) (*models.Activity, error) {
	cacheKey := "activity:" + activityID
	var cached models.Activity
	if DB.GetCache(cacheKey, &cached) {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	a, err := DB.LoadActivity(ctx, objectID)
	if err == DB.ErrNotFound {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	DB.SetCache(cacheKey, *a, 5*time.Minute)
	return a, nil
}

// UpdateFields edits descriptive fields. Status, participants and the
// participant count are reachable only through the dedicated
// operations: ApplyTo never copies them, so stray values in the request
// are stripped rather than rejected.
type UpdateFields struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Date             *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeFrom         *string   `json:"timeFrom" validate:"omitempty,datetime=15:04"`
	TimeTo           *string   `json:"timeTo" validate:"omitempty,datetime=15:04"`
	RequiredSkills   []string  `json:"requiredSkills" validate:"omitempty,min=1"`
	RequiredServices []string  `json:"requiredServices" validate:"omitempty,min=1"`
	MaxParticipants  *int      `json:"maxParticipants" validate:"omitempty,min=1"`
	IsUrgent         *bool     `json:"isUrgent"`
	Tags             *[]string `json:"tags"`
	Notes            *string   `json:"notes"`
}

func (u UpdateFields) applyTo(a *models.Activity) (scheduleChanged bool) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Date != nil && *u.Date != a.Date {
		a.Date = *u.Date
		scheduleChanged = true
	}
	if u.TimeFrom != nil && *u.TimeFrom != a.TimeFrom {
		a.TimeFrom = *u.TimeFrom
		scheduleChanged = true
	}
	if u.TimeTo != nil && *u.TimeTo != a.TimeTo {
		a.TimeTo = *u.TimeTo
		scheduleChanged = true
	}
	if len(u.RequiredSkills) > 0 {
		a.RequiredSkills = u.RequiredSkills
	}
	if len(u.RequiredServices) > 0 {
		a.RequiredServices = u.RequiredServices
	}
	if u.MaxParticipants != nil {
		a.MaxParticipants = *u.MaxParticipants
	}
	if u.IsUrgent != nil {
		a.IsUrgent = *u.IsUrgent
	}
	if u.Tags != nil {
		a.Tags = *u.Tags
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	return scheduleChanged
}

// UpdateActivity applies field edits under the aggregate's version check.
func UpdateActivity(id primitive.ObjectID, fields UpdateFields) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, id)
	if err == DB.ErrNotFound {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	scheduleChanged := fields.applyTo(a)
	a.UpdatedAt = Clock.Now()

	if err := DB.SaveActivity(ctx, a); err != nil {
		if err == DB.ErrConflict {
			return nil, ErrConflict
		}
		return nil, err
	}
	invalidateActivityCache(id)

	notifications.Dispatch(models.DomainEvent{
		Type:          models.EventActivityUpdated,
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		Participants:  len(a.Participants),
	})

	if scheduleChanged && a.Status == models.StatusPublished {
		ScheduleCompletion(a)
	}

	return a, nil
}

// ChangeStatus runs the lifecycle transition, executes the tied side
// effects, and persists the whole aggregate as one versioned write.
func ChangeStatus(id primitive.ObjectID, requested models.ActivityStatus) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, id)
	if err == DB.ErrNotFound {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := CanTransition(a.Status, requested); err != nil {
		return nil, err
	}

	previous := a.Status
	a.Status = requested
	a.UpdatedAt = Clock.Now()

	// Completion reconciles attendance before the write so the final
	// participant records land atomically with the status.
	if requested == models.StatusCompleted {
		if err := attendance.Finalize(a); err != nil {
			return nil, err
		}
	}

	if err := DB.SaveActivity(ctx, a); err != nil {
		if err == DB.ErrConflict {
			return nil, ErrConflict
		}
		return nil, err
	}
	invalidateActivityCache(id)

	switch requested {
	case models.StatusPublished:
		if previous != models.StatusPublished {
			notifications.Dispatch(models.DomainEvent{
				Type:          models.EventActivityPublished,
				ActivityID:    a.ID,
				ActivityTitle: a.Title,
			})
			ScheduleCompletion(a)
		}
	case models.StatusCancelled:
		notifications.Dispatch(models.DomainEvent{
			Type:          models.EventActivityCancelled,
			ActivityID:    a.ID,
			ActivityTitle: a.Title,
			Participants:  len(a.Participants),
		})
		RemoveScheduledCompletion(a.ID)
	case models.StatusCompleted:
		RemoveScheduledCompletion(a.ID)
	}

	return a, nil
}

// DeleteActivity refuses to delete any activity that still has
// participants, independent of status.
func DeleteActivity(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, id)
	if err == DB.ErrNotFound {
		return ErrActivityNotFound
	}
	if err != nil {
		return err
	}
	if len(a.Participants) > 0 {
		return ErrHasParticipants
	}

	res, err := DB.ActivityCollection.DeleteOne(ctx, bson.M{"_id": id, "version": a.Version})
	if err != nil {
		return err
	}
	// A concurrent write bumped the version between load and delete; the
	// activity is live and must keep its cache entry and scheduled task.
	if res.DeletedCount == 0 {
		return ErrConflict
	}
	invalidateActivityCache(id)
	RemoveScheduledCompletion(id)
	log.Println("✅ Activity deleted:", id.Hex())
	return nil
}

// VolunteerHours sums finalized served hours for one volunteer across
// completed activities.
func VolunteerHours(volunteerID primitive.ObjectID) (float64, []models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":                  models.StatusCompleted,
		"participants.volunteerId": volunteerID,
	}
	cursor, err := DB.ActivityCollection.Find(ctx, filter)
	if err != nil {
		return 0, nil, err
	}
	defer cursor.Close(ctx)

	var acts []models.Activity
	if err := cursor.All(ctx, &acts); err != nil {
		return 0, nil, err
	}

	sort.Slice(acts, func(i, j int) bool { return acts[i].Date < acts[j].Date })
	var total float64
	for _, a := range acts {
		if idx := a.FindParticipant(volunteerID); idx >= 0 {
			total += a.Participants[idx].TotalHours
		}
	}
	return total, acts, nil
}

// --- listing helpers ---

func buildActivitiesFilter(params models.PaginationParams, statuses, skills []string) bson.M {
	filter := bson.M{}
	if params.Search != "" {
		searchRegex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": searchRegex},
			bson.M{"description": searchRegex},
			bson.M{"tags": searchRegex},
		}
	}
	if len(statuses) > 0 && statuses[0] != "" {
		filter["status"] = bson.M{"$in": statuses}
	}
	if len(skills) > 0 && skills[0] != "" {
		filter["requiredSkills"] = bson.M{"$in": skills}
	}
	return filter
}

func findOptions(sortField string, sortOrder int, skip, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(limit)
}

func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
