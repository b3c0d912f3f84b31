package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/databases"
)

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron *cron.Cron
	VDB  databases.VolunteerDatabase
	RDB  databases.RequestDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(vDB databases.VolunteerDatabase, rDB databases.RequestDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		VDB:  vDB,
		RDB:  rDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep requests pointing at deleted posts nightly at 4 AM UTC
	_, err := s.cron.AddFunc("0 4 * * *", s.SweepOrphanedRequests)
	if err != nil {
		zap.S().Errorw("failed to register orphaned request sweep", "error", err)
	}

	s.cron.Start()
	zap.S().Info("request sweep scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("request sweep scheduler stopped")
}

// SweepOrphanedRequests deletes requests whose post no longer exists. Posts
// are deleted without touching their requests, so dangling references are
// tolerated between sweeps and garbage-collected here.
func (s *Scheduler) SweepOrphanedRequests() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Requests are loaded before posts: a request made against a post that
	// appears between the two reads then sees its post in the live set, while
	// the reverse order would sweep it as orphaned
	requests, err := s.RDB.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to load requests for sweep", "error", err)
		return
	}

	posts, err := s.VDB.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to load posts for request sweep", "error", err)
		return
	}

	live := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		live[post.ID.Hex()] = struct{}{}
	}

	swept := 0
	for _, request := range requests {
		if _, ok := live[request.VolunteerPostID]; ok {
			continue
		}
		if _, err := s.RDB.DeleteOne(ctx, bson.M{"_id": request.ID}); err != nil {
			zap.S().Errorw("failed to delete orphaned request",
				"error", err,
				"requestId", request.ID.Hex())
			continue
		}
		swept++
	}

	zap.S().Infow("orphaned request sweep complete",
		"requestsChecked", len(requests),
		"swept", swept,
	)
}
