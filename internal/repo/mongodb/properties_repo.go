package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuvrajghadi/thakkar-backend/internal/domain/property"
	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
)

type PropertiesRepo struct {
	col     *mongo.Collection
	metrics *observability.Prom
}

func NewPropertiesRepo(store *Store, metrics *observability.Prom) *PropertiesRepo {
	return &PropertiesRepo{
		col:     store.Database().Collection(collProperties),
		metrics: metrics,
	}
}

func (r *PropertiesRepo) Create(ctx context.Context, doc property.Document) (string, error) {
	var res *mongo.InsertOneResult

	err := observe(r.metrics, "properties.insert", func() error {
		var err error
		res, err = r.col.InsertOne(ctx, doc)
		return err
	})

	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)

	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

// List returns every property, newest first.
func (r *PropertiesRepo) List(ctx context.Context) ([]property.Document, error) {
	docs := make([]property.Document, 0)

	err := observe(r.metrics, "properties.list", func() error {
		cur, err := r.col.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: property.FieldCreatedAt, Value: -1}}))

		if err != nil {
			return err
		}

		return cur.All(ctx, &docs)
	})

	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *PropertiesRepo) GetByID(ctx context.Context, id string) (property.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return nil, property.ErrInvalidID
	}

	var doc property.Document

	err = observe(r.metrics, "properties.get", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, property.ErrNotFound
		}

		return nil, err
	}

	return doc, nil
}

// Update merges the given fields into the stored document.
func (r *PropertiesRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return property.ErrInvalidID
	}

	var res *mongo.UpdateResult

	err = observe(r.metrics, "properties.update", func() error {
		var err error
		res, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
		return err
	})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return property.ErrNotFound
	}

	return nil
}

func (r *PropertiesRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return property.ErrInvalidID
	}

	var res *mongo.DeleteResult

	err = observe(r.metrics, "properties.delete", func() error {
		var err error
		res, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
		return err
	})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return property.ErrNotFound
	}

	return nil
}
