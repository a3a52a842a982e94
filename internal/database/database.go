// Package database implement connection to the document store.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	JobsCollection        = "allJobs"
	CompaniesCollection   = "topCompanies"
	AppliedJobsCollection = "appliedJobs"
)

// DBConfig holds the configuration parameters for connecting to the database.
type DBConfig struct {
	URI    string
	DBName string
	// StrictAPI pins the Stable API v1 in strict mode, as required by the Atlas cluster.
	StrictAPI bool
}

// Service owns the process-wide client. The client is safe for concurrent use.
type Service struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *DBConfig

	log logrus.FieldLogger
}

// NewDBInstance connects to the store described by config and makes sure the
// indexes the API relies on exist.
func NewDBInstance(ctx context.Context, config *DBConfig, log logrus.FieldLogger) (*Service, error) {
	if config.URI == "" {
		return nil, errors.New("database URI is empty")
	}
	if config.DBName == "" {
		return nil, errors.New("database name is empty")
	}

	opts := options.Client().
		ApplyURI(config.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if config.StrictAPI {
		opts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	s := &Service{
		Client: client,
		DB:     client.Database(config.DBName),
		Config: config,
		log:    log,
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	log.WithField("database", config.DBName).Info("connected to document store")
	return s, nil
}

// Jobs returns the job collection.
func (s *Service) Jobs() *mongo.Collection {
	return s.DB.Collection(JobsCollection)
}

// Companies returns the company directory collection.
func (s *Service) Companies() *mongo.Collection {
	return s.DB.Collection(CompaniesCollection)
}

// AppliedJobs returns the job application collection.
func (s *Service) AppliedJobs() *mongo.Collection {
	return s.DB.Collection(AppliedJobsCollection)
}

// EnsureIndexes creates the secondary indexes. Creating an existing index is a no-op.
func (s *Service) EnsureIndexes(ctx context.Context) error {
	if _, err := s.Jobs().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "buyer.buyerEmail", Value: 1}}},
	}); err != nil {
		return err
	}

	// One application per applicant and job. Legacy records without a jobId are left out.
	_, err := s.AppliedJobs().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "applicantDetails.email", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "jobId", Value: 1},
				{Key: "applicantDetails.email", Value: 1},
			},
			Options: options.Index().
				SetName("unique_application").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"jobId":                  bson.M{"$exists": true},
					"applicantDetails.email": bson.M{"$exists": true},
				}),
		},
	})
	return err
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *Service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.Client.Ping(ctx, nil); err != nil {
		stats["status"] = "down"
		stats["error"] = "db down"
		s.log.WithError(err).Error("db down")
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["database"] = s.DB.Name()
	stats["open_sessions"] = fmt.Sprintf("%d", s.Client.NumberSessionsInProgress())

	return stats
}

// Close disconnects the client.
func (s *Service) Close(ctx context.Context) error {
	s.log.WithField("database", s.Config.DBName).Info("disconnected from document store")
	return s.Client.Disconnect(ctx)
}
