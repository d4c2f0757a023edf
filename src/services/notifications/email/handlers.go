package email

import (
	"context"
	"encoding/json"
	"log"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/matching"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newSender is swapped in tests.
var newSender = func() (MailSender, error) { return NewSMTPSenderFromEnv() }

func loadActivity(ctx context.Context, hexID string) (*models.Activity, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, err
	}
	return DB.LoadActivity(ctx, id)
}

// HandleNotifyPublished fans a published activity out to every active
// volunteer sharing at least one required skill or service, with their
// personal match score in the message.
func HandleNotifyPublished(ctx context.Context, t *asynq.Task) error {
	var payload jobs.ActivityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	activity, err := loadActivity(ctx, payload.ActivityID)
	if err != nil {
		if err == DB.ErrNotFound {
			log.Println("⚠️ Activity gone, skipping publish fan-out:", payload.ActivityID)
			return nil
		}
		return err
	}
	if activity.Status != models.StatusPublished {
		log.Println("⚠️ Activity no longer published, skipping fan-out:", payload.ActivityID)
		return nil
	}

	filter := bson.M{
		"role":     models.RoleVolunteer,
		"isActive": true,
		"$or": bson.A{
			bson.M{"skills": bson.M{"$in": activity.RequiredSkills}},
			bson.M{"services": bson.M{"$in": activity.RequiredServices}},
		},
	}
	cursor, err := DB.UserCollection.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	sender, err := newSender()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return nil // config problem, retrying will not help
	}

	sent := 0
	for cursor.Next(ctx) {
		var v models.User
		if err := cursor.Decode(&v); err != nil {
			continue
		}
		match := matching.Score(v.Skills, v.Services, activity.RequiredSkills, activity.RequiredServices)
		subject := "New volunteer activity: " + activity.Title
		if activity.IsUrgent {
			subject = "[URGENT] " + subject
		}
		if err := sender.Send(v.Email, subject, publishedBody(activity, match)); err != nil {
			log.Printf("❌ mail to %s: %v", v.Email, err)
			continue
		}
		sent++
	}
	log.Printf("✅ publish fan-out for %s: %d mails", payload.ActivityID, sent)
	return nil
}

// HandleNotifyCancelled mails every registered participant.
func HandleNotifyCancelled(ctx context.Context, t *asynq.Task) error {
	var payload jobs.ActivityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	activity, err := loadActivity(ctx, payload.ActivityID)
	if err != nil {
		if err == DB.ErrNotFound {
			return nil
		}
		return err
	}

	sender, err := newSender()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return nil
	}

	for _, p := range activity.Participants {
		var v models.User
		if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": p.VolunteerID}).Decode(&v); err != nil {
			continue
		}
		if err := sender.Send(v.Email, "Activity cancelled: "+activity.Title, cancelledBody(activity)); err != nil {
			log.Printf("❌ mail to %s: %v", v.Email, err)
		}
	}
	return nil
}

// HandleNotifyRegistration confirms a join or leave to the volunteer.
func HandleNotifyRegistration(ctx context.Context, t *asynq.Task) error {
	var payload jobs.RegistrationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	activity, err := loadActivity(ctx, payload.ActivityID)
	if err != nil {
		if err == DB.ErrNotFound {
			return nil
		}
		return err
	}

	volunteerID, err := primitive.ObjectIDFromHex(payload.VolunteerID)
	if err != nil {
		return err
	}
	var v models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": volunteerID}).Decode(&v); err != nil {
		return nil
	}

	sender, err := newSender()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return nil
	}

	subject := "Registration confirmed: " + activity.Title
	if payload.Left {
		subject = "Registration cancelled: " + activity.Title
	}
	if err := sender.Send(v.Email, subject, registrationBody(activity, payload.Left)); err != nil {
		log.Printf("❌ mail to %s: %v", v.Email, err)
	}
	return nil
}
