package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles
const (
	RoleAdmin     = "admin"
	RoleStaff     = "staff"
	RoleVolunteer = "volunteer"
)

// User is the volunteer directory entry. Skills and services drive
// activity matching and publish-time notification fan-out.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role" example:"volunteer"`
	Skills    []string           `bson:"skills" json:"skills" example:"first aid,cooking"`
	Services  []string           `bson:"services" json:"services" example:"relief operations"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
