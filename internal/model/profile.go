package model

import "time"

// Profile maps an external identity to the internal numeric user key
type Profile struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AuthUserID string    `json:"auth_user_id" bson:"auth_user_id"`
	UserKey    int64     `json:"user_key" bson:"user_key"`
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
