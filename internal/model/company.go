package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is an entry of the topCompanies directory. The directory is
// read-only for the API so every attribute besides the identifier lives in Extra.
type Company struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

type companyAlias Company

// MarshalJSON flattens Extra into the company object.
func (c Company) MarshalJSON() ([]byte, error) {
	return encodeFlat(companyAlias(c), c.Extra)
}

// UnmarshalJSON keeps every attribute in Extra.
func (c *Company) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil || obj == nil {
		return err
	}
	id := objectIDFromString(obj.takeString("_id"))

	_, extra, err := obj.split()
	if err != nil {
		return err
	}
	*c = Company{ID: id, Extra: extra}
	return nil
}
