package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/api/handlers"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases/mocks"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

func TestVolunteer_VolunteerByIDHandlerBadHex(t *testing.T) {
	req, err := http.NewRequest("GET", "/volunteer/asdf", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VolunteerByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"Response":{"Message":"failed to get objectID from Hex","Error":"the provided hex string is not a valid ObjectID"}}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_VolunteerByIDHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/volunteer/5fc51f58c72ff10004dca381", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "5fc51f58c72ff10004dca381"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VolunteerByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := `{"Response":{"Message":"failed to get volunteer post by ID","Error":"mocked-error"}}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_VolunteerByIDHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/volunteer/5fc51f58c72ff10004dca381", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "5fc51f58c72ff10004dca381"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.VolunteerPost)
		(*arg).Title = "Beach Cleanup"
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VolunteerByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !bytes.Contains(rr.Body.Bytes(), []byte("Beach Cleanup")) {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestVolunteer_VolunteerHandlerEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/volunteer", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	// an empty collection must still serialize as an array
	expected := `[]`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_VolunteerHandlerFindError(t *testing.T) {
	req, err := http.NewRequest("GET", "/volunteer", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := `{"Response":{"Message":"failed to get volunteer posts","Error":"mocked-error"}}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_CreateVolunteerHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"title":"Beach Cleanup","organizerEmail":"org@x.com","volunteersNeeded":5}`)
	req, err := http.NewRequest("POST", "/add_volunteer", body)
	if err != nil {
		t.Fatal(err)
	}

	pID, _ := primitive.ObjectIDFromHex("5fc51f58c72ff10004dca381")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("InsertOne", mock.Anything, mock.Anything).Return(&mongo.InsertOneResult{InsertedID: pID}, nil)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.CreateVolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"acknowledged":true,"insertedId":"5fc51f58c72ff10004dca381"}` + "\n"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_CreateVolunteerHandlerMissingFields(t *testing.T) {
	body := bytes.NewBufferString(`{"description":"no title or organizer"}`)
	req, err := http.NewRequest("POST", "/add_volunteer", body)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.CreateVolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"message":"title and organizerEmail are required"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_UpdateVolunteerHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"title":"Updated","organizerEmail":"org@x.com"}`)
	req, err := http.NewRequest("PUT", "/volunteer/5fc51f58c72ff10004dca381", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "5fc51f58c72ff10004dca381"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	var update interface{}
	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Run(func(args mock.Arguments) {
		update = args.Get(2)
	})
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.UpdateVolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}` + "\n"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}

	// the update replaces every mutable field from the submitted body; fields
	// the body omits are written back as zero values, never preserved
	assert.Equal(t, bson.M{
		"$set": bson.M{
			"thumbnail":        "",
			"title":            "Updated",
			"description":      "",
			"category":         "",
			"location":         "",
			"volunteersNeeded": 0,
			"deadline":         "",
			"organizerName":    "",
			"organizerEmail":   "org@x.com",
		},
	}, update)
}

func TestVolunteer_DecreaseVolunteersHandler(t *testing.T) {
	req, err := http.NewRequest("PATCH", "/volunteers/decrease/5fc51f58c72ff10004dca381", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "5fc51f58c72ff10004dca381"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	var update interface{}
	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Run(func(args mock.Arguments) {
		update = args.Get(2)
	})
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.DecreaseVolunteersHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}` + "\n"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}

	// the decrement happens inside the store with a single $inc, never as a
	// read-modify-write
	assert.Equal(t, bson.M{"$inc": bson.M{"volunteersNeeded": -1}}, update)
}

func TestVolunteer_DeleteVolunteerHandler(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/volunteer/5fc51f58c72ff10004dca381", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "5fc51f58c72ff10004dca381"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("DeleteOne", mock.Anything, mock.Anything).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.DeleteVolunteerHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"acknowledged":true,"deletedCount":1}` + "\n"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_MyVolunteerPostsHandlerWrongEmail(t *testing.T) {
	req, err := http.NewRequest("GET", "/my-volunteer-posts?email=other@x.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.SetSessionEmail(req.Context(), "a@x.com"))

	var db databases.DatabaseHelper
	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.MyVolunteerPostsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"message":"not valid"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_MyVolunteerPostsHandlerMissingEmail(t *testing.T) {
	req, err := http.NewRequest("GET", "/my-volunteer-posts", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.SetSessionEmail(req.Context(), ""))

	var db databases.DatabaseHelper
	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.MyVolunteerPostsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := `{"message":"email is required"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestVolunteer_MyVolunteerPostsHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/my-volunteer-posts?email=a@x.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.SetSessionEmail(req.Context(), "a@x.com"))

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.VolunteerPost)
		*arg = []models.VolunteerPost{{Title: "Food Drive", OrganizerEmail: "a@x.com"}}
	})
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.(*MockDatabaseHelper).On("Collection", "volunteer").Return(conn)

	v := handlers.Volunteer{DB: databases.NewVolunteerDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.MyVolunteerPostsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !bytes.Contains(rr.Body.Bytes(), []byte("Food Drive")) {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}
