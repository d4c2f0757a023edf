package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CheckinToken is a short-lived token shown at the venue. A volunteer
// claims it to record time-in or time-out for an activity.
type CheckinToken struct {
	Token      string             `bson:"token" json:"token"`
	ActivityID primitive.ObjectID `bson:"activityId" json:"activityId"`
	Type       string             `bson:"type" json:"type" example:"checkin"` // "checkin" | "checkout"
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	ExpiresAt  int64              `bson:"expiresAt" json:"expiresAt"`
}
