package search

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// Post searches volunteer posts by title and category
type Post struct {
	DB databases.VolunteerDatabase
}

// PostSearchHandler matches posts whose title contains the search term,
// case-insensitive, optionally narrowed to one category
func (p Post) PostSearchHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	category := r.URL.Query().Get("category")

	zap.S().Debugf("title: %v, category: %v", title, category)

	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: title, Options: "i"}}
	}
	if category != "" {
		filter["category"] = category
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := p.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to search volunteer posts", http.StatusNotFound, w, err)
		return
	}
	// The frontend expects an array even when nothing matches
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
