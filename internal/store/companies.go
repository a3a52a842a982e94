package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/model"
)

// CompanyStore reads the company directory.
type CompanyStore struct {
	coll *mongo.Collection
}

// NewCompanyStore creates a CompanyStore over the company collection of db.
func NewCompanyStore(db *database.Service) *CompanyStore {
	return &CompanyStore{coll: db.Companies()}
}

// All returns the whole directory. The result is never nil.
func (s *CompanyStore) All(ctx context.Context) ([]model.Company, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, classify("find companies", err)
	}
	companies := []model.Company{}
	if err := cur.All(ctx, &companies); err != nil {
		return nil, classify("decode companies", err)
	}
	return companies, nil
}

// InsertMany adds companies to the directory. Companies without an
// identifier get a fresh one.
func (s *CompanyStore) InsertMany(ctx context.Context, companies []model.Company) (int, error) {
	if len(companies) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(companies))
	for i := range companies {
		if companies[i].ID.IsZero() {
			companies[i].ID = primitive.NewObjectID()
		}
		docs[i] = companies[i]
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, classify("insert companies", err)
	}
	return len(res.InsertedIDs), nil
}
