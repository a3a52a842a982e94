package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult acknowledges a single document insert.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateResult acknowledges a single document update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult acknowledges a single document delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// IDOnly is a document projected down to its identifier.
type IDOnly struct {
	ID primitive.ObjectID `json:"_id" bson:"_id"`
}
