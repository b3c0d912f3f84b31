package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// VolunteerRequest holds the structure for the request collection in mongo.
// A request carries a snapshot of the post it was made against so the
// requester's dashboard stays renderable even while the post is being edited.
type VolunteerRequest struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VolunteerEmail  string             `json:"volunteerEmail" bson:"volunteerEmail"`
	VolunteerPostID string             `json:"volunteerPostId" bson:"volunteerPostId"`
	VolunteerName   string             `json:"volunteerName,omitempty" bson:"volunteerName,omitempty"`
	Suggestion      string             `json:"suggestion,omitempty" bson:"suggestion,omitempty"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
	Thumbnail       string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Title           string             `json:"title,omitempty" bson:"title,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Category        string             `json:"category,omitempty" bson:"category,omitempty"`
	Location        string             `json:"location,omitempty" bson:"location,omitempty"`
	Deadline        string             `json:"deadline,omitempty" bson:"deadline,omitempty"`
	OrganizerName   string             `json:"organizerName,omitempty" bson:"organizerName,omitempty"`
	OrganizerEmail  string             `json:"organizerEmail,omitempty" bson:"organizerEmail,omitempty"`
}
