package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rawObject is a JSON object whose values are left undecoded.
type rawObject map[string]json.RawMessage

// decodeObject returns a nil object for JSON null, which callers treat as a no-op.
func decodeObject(data []byte) (rawObject, error) {
	obj := rawObject{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// take removes key from the object and returns its raw value.
func (o rawObject) take(key string) (json.RawMessage, bool) {
	v, ok := o[key]
	if ok {
		delete(o, key)
	}
	return v, ok
}

// takeString removes key and returns it as a string when it holds a JSON string.
func (o rawObject) takeString(key string) string {
	raw, ok := o.take(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// split separates the named keys, re-encoded as a JSON object, from every
// other key, decoded into a generic map.
func (o rawObject) split(known ...string) ([]byte, bson.M, error) {
	knownPart := rawObject{}
	for _, k := range known {
		if v, ok := o[k]; ok {
			knownPart[k] = v
		}
	}

	var extra bson.M
	for k, v := range o {
		if _, ok := knownPart[k]; ok {
			continue
		}
		var val interface{}
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, nil, err
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[k] = val
	}

	b, err := json.Marshal(knownPart)
	return b, extra, err
}

// encodeFlat encodes known and merges extra keys into the same JSON object.
// Keys already produced by known win.
func encodeFlat(known interface{}, extra bson.M) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	merged := map[string]interface{}{}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// objectIDFromString parses a hex identifier, returning the nil ObjectID on failure.
func objectIDFromString(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
