package volunteers

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUserNotFound = errors.New("user not found")

// GetByID returns one directory entry, password stripped.
func GetByID(id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var u models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return &u, nil
}

// UpdateSkills replaces the volunteer's skill and service sets.
// Empty slices are allowed: a volunteer may clear their profile.
func UpdateSkills(id primitive.ObjectID, skills, services []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"skills": normalize(skills), "services": normalize(services)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListVolunteers pages through active volunteers, optionally filtered to
// those having any of the given skills or services. This is the query
// the publish fan-out uses.
func ListVolunteers(params models.PaginationParams, skills, services []string) ([]models.User, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleVolunteer, "isActive": true}
	var or bson.A
	if len(skills) > 0 && skills[0] != "" {
		or = append(or, bson.M{"skills": bson.M{"$in": skills}})
	}
	if len(services) > 0 && services[0] != "" {
		or = append(or, bson.M{"services": bson.M{"$in": services}})
	}
	if len(or) > 0 {
		filter["$or"] = or
	}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetProjection(bson.M{"password": 0})

	cursor, err := DB.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
