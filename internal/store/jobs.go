package store

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/filter"
	"HireEcho-backend/internal/model"
)

const fieldApplicants = "jobApplicantsNumber"

// protectedJobFields are never written by a job update.
var protectedJobFields = []string{"_id", fieldApplicants}

// JobStore reads and writes the job collection.
type JobStore struct {
	coll *mongo.Collection
}

// NewJobStore creates a JobStore over the job collection of db.
func NewJobStore(db *database.Service) *JobStore {
	return &JobStore{coll: db.Jobs()}
}

// Find returns every job matching f. The result is never nil.
func (s *JobStore) Find(ctx context.Context, f filter.JobFilter) ([]model.Job, error) {
	cur, err := s.coll.Find(ctx, f.BSON())
	if err != nil {
		return nil, classify("find jobs", err)
	}
	jobs := []model.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, classify("decode jobs", err)
	}
	return jobs, nil
}

// FindByID returns the job with the given hex identifier.
func (s *JobStore) FindByID(ctx context.Context, id string) (*model.Job, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var job model.Job
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		return nil, classify("find job", err)
	}
	return &job, nil
}

// Insert stores a new job. The store assigns its identifier and every job
// starts without applicants.
func (s *JobStore) Insert(ctx context.Context, job *model.Job) (*model.InsertResult, error) {
	job.ID = primitive.NewObjectID()
	job.JobApplicantsNumber = 0
	delete(job.Extra, fieldApplicants)
	if _, err := s.coll.InsertOne(ctx, job); err != nil {
		return nil, classify("insert job", err)
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: job.ID}, nil
}

// Update overwrites the given fields of a job. The identifier and the
// applicant counter cannot be changed this way.
func (s *JobStore) Update(ctx context.Context, id string, fields bson.M) (*model.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for k, v := range fields {
		if strings.HasPrefix(k, "$") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidUpdate, k)
		}
		set[k] = v
	}
	for _, k := range protectedJobFields {
		delete(set, k)
	}
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, classify("update job", err)
	}
	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// Delete removes the job with the given identifier. Deleting a missing job
// is acknowledged with a zero count.
func (s *JobStore) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, classify("delete job", err)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// FindIDs returns the identifiers of the jobs matching f.
func (s *JobStore) FindIDs(ctx context.Context, f filter.JobFilter) ([]model.IDOnly, error) {
	cur, err := s.coll.Find(ctx, f.BSON(), options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, classify("find job ids", err)
	}
	ids := []model.IDOnly{}
	if err := cur.All(ctx, &ids); err != nil {
		return nil, classify("decode job ids", err)
	}
	return ids, nil
}

// IncrementApplicants adds delta to the applicant counter of a job in a single
// atomic update. It reports whether a job matched.
func (s *JobStore) IncrementApplicants(ctx context.Context, id primitive.ObjectID, delta int) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{fieldApplicants: delta}},
	)
	if err != nil {
		return false, classify("increment applicants", err)
	}
	return res.MatchedCount > 0, nil
}
