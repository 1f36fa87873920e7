package controllers

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stringifyID copies doc with _id converted to its external hex form.
func stringifyID(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	if id, ok := out["_id"].(primitive.ObjectID); ok {
		out["_id"] = id.Hex()
	}
	return out
}

func stringifyIDs(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, stringifyID(doc))
	}
	return out
}

// clampLimit parses a limit query value; unparsable or non-positive
// values fall back to def, values over max are clamped.
func clampLimit(raw string, def, max int64) int64 {
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
