// repository/store.go
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID reports a caller-supplied id that cannot be interpreted
// as a store identifier. Checked before any store call.
var ErrInvalidID = errors.New("invalid id format")

// Store is the document store adapter. All collections share it;
// absent documents surface as mongo.ErrNoDocuments.
type Store struct {
	DB *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{DB: db}
}

func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// Insert persists doc and returns the generated id in external string form.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.DB.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// Find returns documents matching filter, truncated to limit. The empty
// result is a non-nil slice so it serializes as [].
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	cursor, err := s.DB.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	if err := s.DB.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdatePartial sets only the given fields plus a server-set updated_at.
// Returns mongo.ErrNoDocuments when no document matches id.
func (s *Store) UpdatePartial(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.DB.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetFields sets the given fields without touching updated_at. Used for
// system-maintained fields such as the review rating average.
func (s *Store) SetFields(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) error {
	res, err := s.DB.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := s.DB.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
