package databases

// go generate: mockery --name RequestDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

const requestName = "request"

// RequestDatabase contains the methods to use with the request collection
type RequestDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.VolunteerRequest, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.VolunteerRequest, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	EnsureIndexes(ctx context.Context) error
}

type requestDatabase struct {
	db DatabaseHelper
}

// NewRequestDatabase initializes a new instance of request database with the provided db connection
func NewRequestDatabase(db DatabaseHelper) RequestDatabase {
	return &requestDatabase{
		db: db,
	}
}

func (c *requestDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VolunteerRequest, error) {
	request := &models.VolunteerRequest{}
	err := c.db.Collection(requestName).FindOne(ctx, filter, opts...).Decode(&request)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (c *requestDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VolunteerRequest, error) {
	var requests []models.VolunteerRequest
	cur, err := c.db.Collection(requestName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *requestDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return c.db.Collection(requestName).InsertOne(ctx, document, opts...)
}

func (c *requestDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	return c.db.Collection(requestName).DeleteOne(ctx, filter, opts...)
}

// EnsureIndexes creates the unique (volunteerEmail, volunteerPostId) index
// that closes the duplicate-request race at the store
func (c *requestDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(requestName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "volunteerEmail", Value: 1},
			{Key: "volunteerPostId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
