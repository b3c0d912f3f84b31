package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// Auth exported for testing purposes
type Auth struct {
	Session *api.Session
}

// CreateSessionHandler signs the posted identity and sets the session cookie.
// The identity claim itself is authenticated upstream by the frontend's
// identity provider, this route only converts it into a session.
func (a Auth) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var payload models.SessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if payload.Email == "" {
		config.Message("email is required", http.StatusBadRequest, w)
		return
	}

	token, err := a.Session.IssueToken(payload.Email)
	if err != nil {
		config.ErrorStatus("failed to sign session token", http.StatusInternalServerError, w, err)
		return
	}

	http.SetCookie(w, a.Session.Cookie(token))
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SessionResponse{Success: true})
}

// LogoutHandler expires the session cookie immediately
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	http.SetCookie(w, a.Session.ExpiredCookie())
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SessionResponse{Success: true})
}
