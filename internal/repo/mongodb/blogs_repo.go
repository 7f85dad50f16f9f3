package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuvrajghadi/thakkar-backend/internal/domain/blog"
	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
)

type BlogsRepo struct {
	col     *mongo.Collection
	metrics *observability.Prom
}

func NewBlogsRepo(store *Store, metrics *observability.Prom) *BlogsRepo {
	return &BlogsRepo{
		col:     store.Database().Collection(collBlogs),
		metrics: metrics,
	}
}

func (r *BlogsRepo) Create(ctx context.Context, b blog.Blog) (string, error) {
	var res *mongo.InsertOneResult

	err := observe(r.metrics, "blogs.insert", func() error {
		var err error
		res, err = r.col.InsertOne(ctx, b)
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

// List returns every blog post, newest first.
func (r *BlogsRepo) List(ctx context.Context) ([]blog.Blog, error) {
	blogs := make([]blog.Blog, 0)

	err := observe(r.metrics, "blogs.list", func() error {
		cur, err := r.col.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))

		if err != nil {
			return err
		}

		return cur.All(ctx, &blogs)
	})

	if err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *BlogsRepo) GetByID(ctx context.Context, id string) (blog.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return blog.Blog{}, blog.ErrInvalidID
	}

	var b blog.Blog

	err = observe(r.metrics, "blogs.get", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return blog.Blog{}, blog.ErrNotFound
		}

		return blog.Blog{}, err
	}

	return b, nil
}
