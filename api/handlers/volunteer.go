package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// Volunteer exported for testing purposes
type Volunteer struct {
	DB databases.VolunteerDatabase
}

// VolunteerHandler returns all volunteer posts
func (v Volunteer) VolunteerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get volunteer posts", http.StatusNotFound, w, err)
		return
	}
	// The frontend expects an array even when the collection is empty
	if len(dbResp) == 0 {
		dbResp = []models.VolunteerPost{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VolunteerByIDHandler returns a volunteer post by ID
func (v Volunteer) VolunteerByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	postID := mux.Vars(r)["id"]

	zap.S().Debugf("volunteer post id: %v", postID)

	pID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get volunteer post by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateVolunteerHandler creates a volunteer post
func (v Volunteer) CreateVolunteerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var post models.VolunteerPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if post.Title == "" || post.OrganizerEmail == "" {
		config.Message("title and organizerEmail are required", http.StatusBadRequest, w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	post.ID = primitive.NewObjectID()
	dbResp, err := v.DB.InsertOne(ctx, post)
	if err != nil {
		config.ErrorStatus("failed to create volunteer post", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.InsertResponse{Acknowledged: true, InsertedID: dbResp.InsertedID})
}

// UpdateVolunteerHandler replaces all mutable fields of a volunteer post.
// Every field is written from the submitted body, the frontend always sends
// the complete edited form.
func (v Volunteer) UpdateVolunteerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	postID := mux.Vars(r)["id"]

	pID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var post models.VolunteerPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.UpdateOne(ctx, bson.M{"_id": pID}, bson.M{
		"$set": bson.M{
			"thumbnail":        post.Thumbnail,
			"title":            post.Title,
			"description":      post.Description,
			"category":         post.Category,
			"location":         post.Location,
			"volunteersNeeded": post.VolunteersNeeded,
			"deadline":         post.Deadline,
			"organizerName":    post.OrganizerName,
			"organizerEmail":   post.OrganizerEmail,
		},
	})
	if err != nil {
		config.ErrorStatus("failed to update volunteer post", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  dbResp.MatchedCount,
		ModifiedCount: dbResp.ModifiedCount,
	})
}

// DecreaseVolunteersHandler atomically decrements volunteersNeeded by 1.
// The store applies the $inc, concurrent acceptances never lose updates.
func (v Volunteer) DecreaseVolunteersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	postID := mux.Vars(r)["id"]

	pID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.UpdateOne(ctx, bson.M{"_id": pID}, bson.M{"$inc": bson.M{"volunteersNeeded": -1}})
	if err != nil {
		config.ErrorStatus("failed to decrease volunteersNeeded", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  dbResp.MatchedCount,
		ModifiedCount: dbResp.ModifiedCount,
	})
}

// DeleteVolunteerHandler deletes a volunteer post by ID
func (v Volunteer) DeleteVolunteerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	postID := mux.Vars(r)["id"]

	pID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.DeleteOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to delete volunteer post", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteResponse{Acknowledged: true, DeletedCount: dbResp.DeletedCount})
}

// MyVolunteerPostsHandler returns the posts organized by the logged in user
func (v Volunteer) MyVolunteerPostsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userEmail := r.URL.Query().Get("email")

	sessionEmail, ok := api.SessionEmailFromContext(r.Context())
	if !ok {
		config.Message("unauthorized access", http.StatusUnauthorized, w)
		return
	}
	if sessionEmail != userEmail {
		config.Message("not valid", http.StatusBadRequest, w)
		return
	}
	if userEmail == "" {
		config.Message("email is required", http.StatusBadRequest, w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.M{"organizerEmail": userEmail})
	if err != nil {
		config.ErrorStatus("failed to get volunteer posts by organizer", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.VolunteerPost{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
