package models

import "time"

// Profile represents a user profile for either role.
type Profile struct {
	UserID    string         `bson:"user_id" json:"user_id" validate:"required"`
	Role      string         `bson:"role,omitempty" json:"role,omitempty"`
	Name      string         `bson:"name,omitempty" json:"name,omitempty"`
	Email     string         `bson:"email,omitempty" json:"email,omitempty"`
	Bio       string         `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL  string         `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Topics    []string       `bson:"topics,omitempty" json:"topics,omitempty"`
	Extra     map[string]any `bson:"extra,omitempty" json:"extra,omitempty"` // forward-compatible optional fields
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// RoleTeacher marks profiles that show up in teacher search.
const RoleTeacher = "teacher"
