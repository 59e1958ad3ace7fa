package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poetiq/internal/model"
)

// ResponseRepo stores onboarding responses keyed uniquely by session id with
// last-write-wins semantics. The engine never deletes a response.
type ResponseRepo interface {
	Upsert(ctx context.Context, resp *model.OnboardingResponse) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.OnboardingResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("onboarding_responses"),
	}
}

func (r *responseRepo) Upsert(ctx context.Context, resp *model.OnboardingResponse) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": resp.SessionID}, resp, opts)
	return err
}

func (r *responseRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.OnboardingResponse, error) {
	var resp model.OnboardingResponse
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&resp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
