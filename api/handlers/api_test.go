package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func TestUnknownRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)

}

func TestLivenessRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "server is running") {
		t.Errorf("Expected 'server is running' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_MyVolunteerPostsUnauthorized(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/my-volunteer-posts", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_MyVolunteerRequestsInvalidToken(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/my-volunteer-requests", nil)
	req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: "asdfasdf"})
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)

	if !strings.Contains(response.Body.String(), "unauthorized access") {
		t.Errorf("Expected 'unauthorized access' in the reponse. Got '%s'", response.Body.String())
	}
}
