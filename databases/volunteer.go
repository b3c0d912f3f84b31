package databases

// go generate: mockery --name VolunteerDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

const volunteerName = "volunteer"

// VolunteerDatabase contains the methods to use with the volunteer collection
type VolunteerDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.VolunteerPost, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.VolunteerPost, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type volunteerDatabase struct {
	db DatabaseHelper
}

// NewVolunteerDatabase initializes a new instance of volunteer database with the provided db connection
func NewVolunteerDatabase(db DatabaseHelper) VolunteerDatabase {
	return &volunteerDatabase{
		db: db,
	}
}

func (c *volunteerDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VolunteerPost, error) {
	post := &models.VolunteerPost{}
	err := c.db.Collection(volunteerName).FindOne(ctx, filter, opts...).Decode(&post)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (c *volunteerDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VolunteerPost, error) {
	var posts []models.VolunteerPost
	cur, err := c.db.Collection(volunteerName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *volunteerDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return c.db.Collection(volunteerName).InsertOne(ctx, document, opts...)
}

func (c *volunteerDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(volunteerName).UpdateOne(ctx, filter, update, opts...)
}

func (c *volunteerDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	return c.db.Collection(volunteerName).DeleteOne(ctx, filter, opts...)
}
