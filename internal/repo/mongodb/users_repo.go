package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuvrajghadi/thakkar-backend/internal/domain/user"
	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
)

var ErrUserNotFound = errors.New("user not found")

// UsersRepo is read-only: the API never creates or updates users, it
// only looks them up at login.
type UsersRepo struct {
	col     *mongo.Collection
	metrics *observability.Prom
}

func NewUsersRepo(store *Store, metrics *observability.Prom) *UsersRepo {
	return &UsersRepo{
		col:     store.Database().Collection(collUsers),
		metrics: metrics,
	}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := observe(r.metrics, "users.get_by_email", func() error {
		return r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}

	return u, nil
}
