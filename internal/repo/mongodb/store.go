package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
)

const (
	collProperties = "properties"
	collBlogs      = "blogs"
	collUsers      = "users"
)

// Store owns the single mongo client for the process. It is built once
// in main and injected into every repo; there is no package-level
// connection state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, url, dbName string) (*Store, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(url))

	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	err = client.Ping(cctx, readpref.Primary())

	if err != nil {
		_ = client.Disconnect(cctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

// observe funnels a repo call through the metrics observer when one is
// wired; tests construct repos without metrics.
func observe(m *observability.Prom, op string, fn func() error) error {
	if m == nil {
		return fn()
	}

	return m.ObserveStore(op, fn)
}
