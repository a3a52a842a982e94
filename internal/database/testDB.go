package database

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	m "HireEcho-backend/internal/model"
)

var testDBInstance *Service
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seed documents
var (
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	TestCompany1 m.Company
	TestCompany2 m.Company

	TestApplication1 m.AppliedJob

	TestBuyerEmail     = "buyer1@example.com"
	TestOtherBuyer     = "buyer2@example.com"
	TestApplicantEmail = "applicant1@example.com"
)

// GetTestDB starts a MongoDB test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *Service, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	ctx := context.Background()
	dbContainer, err := mongodb.Run(
		ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	uri, err := dbContainer.ConnectionString(ctx)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	db, err := NewDBInstance(ctx, &DBConfig{URI: uri, DBName: "hireEchoTestDB"}, silent)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(ctx, db); err != nil {
		_ = dbContainer.Terminate(ctx)
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts three jobs, two companies and one application.
func seedTestData(ctx context.Context, db *Service) error {
	TestJob1 = m.Job{
		ID:       primitive.NewObjectID(),
		JobTitle: "Senior Frontend Developer",
		Category: "web-development",
		Buyer:    m.Buyer{BuyerEmail: TestBuyerEmail, Extra: bson.M{"buyerName": "Buyer One"}},
		Extra:    bson.M{"deadline": "2026-12-01", "minPrice": 300.0, "maxPrice": 900.0},
	}
	TestJob2 = m.Job{
		ID:       primitive.NewObjectID(),
		JobTitle: "Logo Design for Startup",
		Category: "graphics-design",
		Buyer:    m.Buyer{BuyerEmail: TestBuyerEmail},
		Extra:    bson.M{"deadline": "2026-11-15"},
	}
	TestJob3 = m.Job{
		ID:       primitive.NewObjectID(),
		JobTitle: "SEO Campaign",
		Category: "digital-marketing",
		Buyer:    m.Buyer{BuyerEmail: TestOtherBuyer},
	}

	if _, err := db.Jobs().InsertMany(ctx, []interface{}{TestJob1, TestJob2, TestJob3}); err != nil {
		return err
	}

	TestCompany1 = m.Company{ID: primitive.NewObjectID(), Extra: bson.M{"name": "Acme", "industry": "software"}}
	TestCompany2 = m.Company{ID: primitive.NewObjectID(), Extra: bson.M{"name": "Globex", "industry": "energy"}}

	if _, err := db.Companies().InsertMany(ctx, []interface{}{TestCompany1, TestCompany2}); err != nil {
		return err
	}

	TestApplication1 = m.AppliedJob{
		ID:               primitive.NewObjectID(),
		JobID:            TestJob3.ID,
		ApplicantDetails: m.ApplicantDetails{Email: TestApplicantEmail, Extra: bson.M{"name": "Applicant One"}},
		Category:         TestJob3.Category,
	}
	_, err := db.AppliedJobs().InsertOne(ctx, TestApplication1)
	return err
}
