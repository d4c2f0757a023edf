package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// Clock is swapped for a fixed clock in tests.
var Clock utils.Clock = utils.RealClock{}

// newVolunteer builds a fresh volunteer account around the password hash.
func newVolunteer(email, name string, hash []byte, now time.Time) models.User {
	return models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hash),
		Name:      name,
		Role:      models.RoleVolunteer,
		Skills:    []string{},
		Services:  []string{},
		IsActive:  true,
		CreatedAt: now,
	}
}

// Register creates a volunteer account and returns it without the hash.
func Register(email, password, name string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := newVolunteer(email, name, hash, Clock.Now())
	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// Login verifies the password and issues a JWT.
func Login(email, password string) (string, *models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	user.Password = ""
	return token, &user, nil
}
