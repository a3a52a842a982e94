// Package filter turns optional listing parameters into document-store predicates.
//
// Every field is optional. A nil field contributes no clause, and the
// clauses that are present are combined by conjunction, so an empty filter
// matches every document of the collection.
package filter

import (
	"net/url"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field paths addressed by the predicates.
const (
	FieldCategory       = "category"
	FieldJobTitle       = "jobTitle"
	FieldBuyerEmail     = "buyer.buyerEmail"
	FieldApplicantEmail = "applicantDetails.email"
)

// JobFilter selects documents of the job collection.
type JobFilter struct {
	// Category matches exactly, case-sensitive.
	Category *string
	// Search matches jobTitle as a literal, case-insensitive substring.
	Search *string
	// Email matches buyer.buyerEmail exactly.
	Email *string
}

// ApplicationFilter selects documents of the applied-job collection.
type ApplicationFilter struct {
	// Email matches applicantDetails.email exactly.
	Email *string
	// Category matches exactly. Supplied by the filterBy parameter.
	Category *string
}

// JobFilterFromQuery reads the category, search and email parameters.
// Missing and empty parameters are both treated as absent.
func JobFilterFromQuery(q url.Values) JobFilter {
	return JobFilter{
		Category: param(q, "category"),
		Search:   param(q, "search"),
		Email:    param(q, "email"),
	}
}

// ApplicationFilterFromQuery reads the email and filterBy parameters.
func ApplicationFilterFromQuery(q url.Values) ApplicationFilter {
	return ApplicationFilter{
		Email:    param(q, "email"),
		Category: param(q, "filterBy"),
	}
}

// BSON translates the filter to a predicate.
func (f JobFilter) BSON() bson.M {
	pred := bson.M{}
	if f.Category != nil {
		pred[FieldCategory] = *f.Category
	}
	if f.Search != nil {
		pred[FieldJobTitle] = Contains(*f.Search)
	}
	if f.Email != nil {
		pred[FieldBuyerEmail] = *f.Email
	}
	return pred
}

// BSON translates the filter to a predicate.
func (f ApplicationFilter) BSON() bson.M {
	pred := bson.M{}
	if f.Email != nil {
		pred[FieldApplicantEmail] = *f.Email
	}
	if f.Category != nil {
		pred[FieldCategory] = *f.Category
	}
	return pred
}

// Contains returns a case-insensitive regular expression matching s literally.
func Contains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// String returns a pointer to s, for building filters by hand.
func String(s string) *string {
	return &s
}

// param returns the last value supplied for key, or nil when it is missing or empty.
func param(q url.Values, key string) *string {
	values, ok := q[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[len(values)-1]
	if v == "" {
		return nil
	}
	return &v
}
