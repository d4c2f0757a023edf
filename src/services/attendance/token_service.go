package attendance

import (
	"context"
	"errors"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTokenInvalid = errors.New("check-in token expired or invalid")
	ErrBadTokenType = errors.New("check-in token type must be checkin or checkout")
)

// tokenTTL keeps venue QR codes short-lived; staff screens refresh them.
const tokenTTL = 30 * time.Second

// CreateCheckinToken issues a token the staff screen renders as a QR
// code. tokenType is "checkin" or "checkout".
func CreateCheckinToken(activityID primitive.ObjectID, tokenType string) (string, int64, error) {
	if tokenType != "checkin" && tokenType != "checkout" {
		return "", 0, ErrBadTokenType
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := DB.LoadActivity(ctx, activityID); err != nil {
		return "", 0, err
	}

	now := Clock.Now().Unix()
	token := models.CheckinToken{
		Token:      uuid.NewString(),
		ActivityID: activityID,
		Type:       tokenType,
		CreatedAt:  now,
		ExpiresAt:  now + int64(tokenTTL.Seconds()),
	}
	if _, err := DB.CheckinTokenCollection.InsertOne(ctx, token); err != nil {
		return "", 0, err
	}
	return token.Token, token.ExpiresAt, nil
}

// ClaimCheckinToken resolves a scanned token and records the matching
// time-in or time-out for the volunteer.
func ClaimCheckinToken(token string, volunteerID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var t models.CheckinToken
	err := DB.CheckinTokenCollection.FindOne(ctx, bson.M{
		"token":     token,
		"expiresAt": bson.M{"$gt": Clock.Now().Unix()},
	}).Decode(&t)
	if err != nil {
		return ErrTokenInvalid
	}

	if t.Type == "checkout" {
		return RecordTimeOutForActivity(t.ActivityID, volunteerID, nil)
	}
	return RecordTimeInForActivity(t.ActivityID, volunteerID, nil)
}
