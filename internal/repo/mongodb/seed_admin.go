package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuvrajghadi/thakkar-backend/internal/config"
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/user"
	"github.com/yuvrajghadi/thakkar-backend/internal/security"
)

// EnsureAdminUser seeds the bootstrap admin iff credentials are
// configured and no user with that email exists yet.
func EnsureAdminUser(ctx context.Context, store *Store, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	col := store.Database().Collection(collUsers)

	err := col.FindOne(ctx, bson.M{"email": cfg.AdminEmail}).Err()

	if err == nil {
		return nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := security.HashPassword(cfg.AdminPassword)

	if err != nil {
		return err
	}

	u := user.User{
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     user.RoleAdmin,
	}

	_, err = col.InsertOne(ctx, u)

	return err
}
