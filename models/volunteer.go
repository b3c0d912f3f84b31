package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// VolunteerPost holds the structure for the volunteer collection in mongo
type VolunteerPost struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Thumbnail        string             `json:"thumbnail" bson:"thumbnail"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description" bson:"description"`
	Category         string             `json:"category" bson:"category"`
	Location         string             `json:"location" bson:"location"`
	VolunteersNeeded int                `json:"volunteersNeeded" bson:"volunteersNeeded"`
	Deadline         string             `json:"deadline" bson:"deadline"`
	OrganizerName    string             `json:"organizerName" bson:"organizerName"`
	OrganizerEmail   string             `json:"organizerEmail" bson:"organizerEmail"`
}
