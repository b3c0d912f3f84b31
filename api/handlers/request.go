package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// duplicateRequestMessage is matched verbatim by the frontend
const duplicateRequestMessage = "You have already requested for this post."

// Request exported for testing purposes
type Request struct {
	DB databases.RequestDatabase
}

// RequestedHandler reports whether the given email already requested the given post
func (rq Request) RequestedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email := r.URL.Query().Get("email")
	postID := r.URL.Query().Get("postId")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := rq.DB.FindOne(ctx, bson.M{"volunteerEmail": email, "volunteerPostId": postID})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to check existing request", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.RequestedResponse{Requested: err == nil})
}

// CreateRequestHandler creates a volunteer request. The unique
// (volunteerEmail, volunteerPostId) index makes the duplicate rejection hold
// even when the same user submits concurrently, the pre-check only exists to
// answer with the friendly message without a write attempt.
func (rq Request) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request models.VolunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if request.VolunteerEmail == "" || request.VolunteerPostID == "" {
		config.Message("volunteerEmail and volunteerPostId are required", http.StatusBadRequest, w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := rq.DB.FindOne(ctx, bson.M{
		"volunteerEmail":  request.VolunteerEmail,
		"volunteerPostId": request.VolunteerPostID,
	})
	if err == nil {
		config.Message(duplicateRequestMessage, http.StatusBadRequest, w)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to check existing request", http.StatusInternalServerError, w, err)
		return
	}

	request.ID = primitive.NewObjectID()
	dbResp, err := rq.DB.InsertOne(ctx, request)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			config.Message(duplicateRequestMessage, http.StatusBadRequest, w)
			return
		}
		config.ErrorStatus("failed to create volunteer request", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.InsertResponse{Acknowledged: true, InsertedID: dbResp.InsertedID})
}

// MyRequestsHandler returns the requests made by the logged in user
func (rq Request) MyRequestsHandler(w http.ResponseWriter, r *http.Request) {
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

	dbResp, err := rq.DB.Find(ctx, bson.M{"volunteerEmail": userEmail})
	if err != nil {
		config.ErrorStatus("failed to get volunteer requests by requester", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.VolunteerRequest{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteRequestHandler deletes a volunteer request by ID
func (rq Request) DeleteRequestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	requestID := mux.Vars(r)["id"]

	rID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := rq.DB.DeleteOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to delete volunteer request", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteResponse{Acknowledged: true, DeletedCount: dbResp.DeletedCount})
}
