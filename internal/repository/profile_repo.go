package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memorycompanion/internal/model"
)

// ProfileRepo maps identities to internal user keys
type ProfileRepo interface {
	Upsert(ctx context.Context, profile *model.Profile) error
	GetByAuthUserID(ctx context.Context, authUserID string) (*model.Profile, error)
	GetByUserKey(ctx context.Context, userKey int64) (*model.Profile, error)
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a profile repository over the users collection
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("users"),
	}
}

func (r *profileRepo) Upsert(ctx context.Context, profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = primitive.NewObjectID().Hex()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"auth_user_id": profile.AuthUserID}, profile, opts)
	return err
}

func (r *profileRepo) GetByAuthUserID(ctx context.Context, authUserID string) (*model.Profile, error) {
	return r.findOne(ctx, bson.M{"auth_user_id": authUserID})
}

func (r *profileRepo) GetByUserKey(ctx context.Context, userKey int64) (*model.Profile, error) {
	return r.findOne(ctx, bson.M{"user_key": userKey})
}

func (r *profileRepo) findOne(ctx context.Context, filter bson.M) (*model.Profile, error) {
	var profile model.Profile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil // Profile not found
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
