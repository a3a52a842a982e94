package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/filter"
	"HireEcho-backend/internal/model"
)

// ApplicationStore reads and writes the applied-job collection.
type ApplicationStore struct {
	coll *mongo.Collection
}

// NewApplicationStore creates an ApplicationStore over the applied-job collection of db.
func NewApplicationStore(db *database.Service) *ApplicationStore {
	return &ApplicationStore{coll: db.AppliedJobs()}
}

// Find returns every application matching f. The result is never nil.
func (s *ApplicationStore) Find(ctx context.Context, f filter.ApplicationFilter) ([]model.AppliedJob, error) {
	cur, err := s.coll.Find(ctx, f.BSON())
	if err != nil {
		return nil, classify("find applications", err)
	}
	apps := []model.AppliedJob{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, classify("decode applications", err)
	}
	return apps, nil
}

// Insert stores a new application under a fresh identifier. A second
// application by the same applicant to the same job fails with ErrDuplicate.
func (s *ApplicationStore) Insert(ctx context.Context, app *model.AppliedJob) (*model.InsertResult, error) {
	app.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, app); err != nil {
		return nil, classify("insert application", err)
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

// FindIDs returns the identifiers of the applications matching f.
func (s *ApplicationStore) FindIDs(ctx context.Context, f filter.ApplicationFilter) ([]model.IDOnly, error) {
	cur, err := s.coll.Find(ctx, f.BSON(), options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, classify("find application ids", err)
	}
	ids := []model.IDOnly{}
	if err := cur.All(ctx, &ids); err != nil {
		return nil, classify("decode application ids", err)
	}
	return ids, nil
}

// CountForJob returns the number of applications referencing the job.
func (s *ApplicationStore) CountForJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return 0, classify("count applications", err)
	}
	return n, nil
}
