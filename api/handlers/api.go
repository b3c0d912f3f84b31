package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/api"
	"github.com/SabbirRshuvo/Volunteer-management-server/api/handlers/search"
	"github.com/SabbirRshuvo/Volunteer-management-server/api/scheduler"
	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Handler   http.Handler
	Config    config.Config
	Session   *api.Session
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
	client    databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Session == nil {
		a.Session = api.NewSession(&a.Config)
	}

	r := mux.NewRouter()

	s := Auth{Session: a.Session}
	v := Volunteer{DB: databases.NewVolunteerDatabase(a.dbHelper)}
	req := Request{DB: databases.NewRequestDatabase(a.dbHelper)}
	ps := search.Post{DB: databases.NewVolunteerDatabase(a.dbHelper)}
	t := Thumbnail{}

	// liveness
	r.HandleFunc("/", livenessHandler).Methods("GET")

	r.Handle("/jwt", http.HandlerFunc(s.CreateSessionHandler)).Methods("POST")
	r.Handle("/logout", http.HandlerFunc(s.LogoutHandler)).Methods("GET")

	r.Handle("/volunteer", http.HandlerFunc(v.VolunteerHandler)).Methods("GET")
	r.Handle("/volunteer/{id}", http.HandlerFunc(v.VolunteerByIDHandler)).Methods("GET")
	r.Handle("/volunteer/{id}", http.HandlerFunc(v.UpdateVolunteerHandler)).Methods("PUT")
	r.Handle("/volunteer/{id}", http.HandlerFunc(v.DeleteVolunteerHandler)).Methods("DELETE")
	r.Handle("/add_volunteer", http.HandlerFunc(v.CreateVolunteerHandler)).Methods("POST")
	r.Handle("/volunteers/search", http.HandlerFunc(ps.PostSearchHandler)).Methods("GET")
	r.Handle("/volunteers/decrease/{id}", http.HandlerFunc(v.DecreaseVolunteersHandler)).Methods("PATCH")
	r.Handle("/my-volunteer-posts", a.Session.Middleware(http.HandlerFunc(v.MyVolunteerPostsHandler))).Methods("GET")

	r.Handle("/volunteers/requested", http.HandlerFunc(req.RequestedHandler)).Methods("GET")
	r.Handle("/volunteers/request", http.HandlerFunc(req.CreateRequestHandler)).Methods("POST")
	r.Handle("/volunteers/request/{id}", http.HandlerFunc(req.DeleteRequestHandler)).Methods("DELETE")
	r.Handle("/my-volunteer-requests", a.Session.Middleware(http.HandlerFunc(req.MyRequestsHandler))).Methods("GET")

	r.Handle("/thumbnails/signature", http.HandlerFunc(t.GenerateSignatureHandler)).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	a.client = client

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	if err = client.Ping(ctx); err != nil {
		// a server with no usable database must not report itself alive
		zap.S().With(err).Error("failed to ping database")
		return err
	}
	zap.S().Info("volunteer-management-server has connected to the database")

	a.dbHelper = databases.NewDatabase(&a.Config, client)

	requestDB := databases.NewRequestDatabase(a.dbHelper)
	if err = requestDB.EnsureIndexes(ctx); err != nil {
		zap.S().With(err).Error("failed to create request indexes")
		return err
	}

	a.Scheduler = scheduler.NewScheduler(databases.NewVolunteerDatabase(a.dbHelper), requestDB)

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Shutdown releases the database connection
func (a *App) Shutdown(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
	a.Handler = api.CORS(api.DefaultCORSConfig(a.Config.AllowedOrigins))(a.Router)
}

func livenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "server is running")
}
