package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a posting stored in the allJobs collection. Posting fields the
// server does not interpret are kept in Extra and round-trip untouched.
type Job struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	JobTitle            string             `json:"jobTitle" bson:"jobTitle"`
	Category            string             `json:"category" bson:"category"`
	Buyer               Buyer              `json:"buyer" bson:"buyer"`
	JobApplicantsNumber int                `json:"jobApplicantsNumber" bson:"jobApplicantsNumber"`

	Extra bson.M `json:"-" bson:",inline"`
}

// Buyer is the user that posted a job.
type Buyer struct {
	BuyerEmail string `json:"buyerEmail" bson:"buyerEmail"`

	Extra bson.M `json:"-" bson:",inline"`
}

var jobFields = []string{"jobTitle", "category", "buyer", "jobApplicantsNumber"}

type jobAlias Job

// MarshalJSON flattens Extra into the job object.
func (j Job) MarshalJSON() ([]byte, error) {
	return encodeFlat(jobAlias(j), j.Extra)
}

// UnmarshalJSON decodes a job payload. An `_id` that is not a valid
// identifier is ignored, the store assigns one on insert.
func (j *Job) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil || obj == nil {
		return err
	}
	id := objectIDFromString(obj.takeString("_id"))

	known, extra, err := obj.split(jobFields...)
	if err != nil {
		return err
	}

	var alias jobAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	alias.ID = id
	alias.Extra = extra
	*j = Job(alias)
	return nil
}

type buyerAlias Buyer

// MarshalJSON flattens Extra into the buyer object.
func (b Buyer) MarshalJSON() ([]byte, error) {
	return encodeFlat(buyerAlias(b), b.Extra)
}

// UnmarshalJSON keeps unknown buyer fields in Extra.
func (b *Buyer) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil || obj == nil {
		return err
	}
	known, extra, err := obj.split("buyerEmail")
	if err != nil {
		return err
	}

	var alias buyerAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	alias.Extra = extra
	*b = Buyer(alias)
	return nil
}
