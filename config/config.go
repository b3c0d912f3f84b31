package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

const (
	defaultPort         = "3000"
	defaultDatabaseName = "volunteer_DB"

	// atlasURITemplate matches the cluster the frontend was built against
	atlasURITemplate = "mongodb+srv://%s:%s@cluster0.nugjc.mongodb.net/?appName=Cluster0"
)

// Config holds the project config values
type Config struct {
	URL            string
	DatabaseName   string
	Port           string
	SecretKey      string
	Environment    string
	AllowedOrigins []string
}

// New sets up all config related services
func New() *Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("NODE_ENV")
	}

	// setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	url := os.Getenv("DB_URI")
	if url == "" {
		url = fmt.Sprintf(atlasURITemplate, os.Getenv("DB_USER"), os.Getenv("DB_PASS"))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDatabaseName
	}

	allowedOrigins := []string{"http://localhost:5173"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	return &Config{
		URL:            url,
		DatabaseName:   dbName,
		Port:           port,
		SecretKey:      os.Getenv("SECRET_KEY"),
		Environment:    env,
		AllowedOrigins: allowedOrigins,
	}
}

// setLogger picks the zap config for the given environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: err.Error()}})
	w.Write(b)
}

// Message writes one of the small `message` bodies the frontend matches on
func Message(message string, httpStatusCode int, w http.ResponseWriter) {
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.MessageResponse{Message: message})
	w.Write(b)
}
