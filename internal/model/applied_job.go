package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppliedJob is a job application stored in the appliedJobs collection.
// JobID references the Job the applicant applied to; ID is the record's own identifier.
type AppliedJob struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	JobID            primitive.ObjectID `json:"jobId" bson:"jobId"`
	ApplicantDetails ApplicantDetails   `json:"applicantDetails" bson:"applicantDetails"`
	Category         string             `json:"category" bson:"category"`

	Extra bson.M `json:"-" bson:",inline"`

	// jobRef is the raw job reference from the request payload.
	jobRef string
}

// ApplicantDetails describes who applied.
type ApplicantDetails struct {
	Email string `json:"email" bson:"email"`

	Extra bson.M `json:"-" bson:",inline"`
}

// JobReference returns the job identifier carried by the submitted payload.
// It prefers `jobId`; payloads from older clients carry the job identifier in `_id`.
func (a *AppliedJob) JobReference() (string, bool) {
	if a.jobRef != "" {
		return a.jobRef, true
	}
	if !a.JobID.IsZero() {
		return a.JobID.Hex(), true
	}
	return "", false
}

type appliedJobAlias AppliedJob

// MarshalJSON flattens Extra into the application object.
func (a AppliedJob) MarshalJSON() ([]byte, error) {
	return encodeFlat(appliedJobAlias(a), a.Extra)
}

// UnmarshalJSON decodes an application payload. The record's own `_id` is
// never taken from the client.
func (a *AppliedJob) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil || obj == nil {
		return err
	}
	legacyRef := obj.takeString("_id")
	jobRef := obj.takeString("jobId")
	if jobRef == "" {
		jobRef = legacyRef
	}

	known, extra, err := obj.split("applicantDetails", "category")
	if err != nil {
		return err
	}

	var alias appliedJobAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	alias.Extra = extra
	alias.jobRef = jobRef
	*a = AppliedJob(alias)
	return nil
}

type applicantAlias ApplicantDetails

// MarshalJSON flattens Extra into the applicant object.
func (d ApplicantDetails) MarshalJSON() ([]byte, error) {
	return encodeFlat(applicantAlias(d), d.Extra)
}

// UnmarshalJSON keeps unknown applicant fields in Extra.
func (d *ApplicantDetails) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil || obj == nil {
		return err
	}
	known, extra, err := obj.split("email")
	if err != nil {
		return err
	}

	var alias applicantAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	alias.Extra = extra
	*d = ApplicantDetails(alias)
	return nil
}
