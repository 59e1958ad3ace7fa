package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"poetiq/internal/model"
)

// FacilityRepo reads the bulk facility dataset. The serving path never
// filters or pages here; baseline and scoring always work on the full set.
type FacilityRepo interface {
	List(ctx context.Context) ([]model.Facility, error)
	ReplaceAll(ctx context.Context, facilities []model.Facility) error
}

type facilityRepo struct {
	collection *mongo.Collection
}

func NewFacilityRepo(db *mongo.Database) FacilityRepo {
	return &facilityRepo{
		collection: db.Collection("facilities"),
	}
}

func (r *facilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var facilities []model.Facility
	if err = cursor.All(ctx, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

// ReplaceAll swaps in a fresh dataset. Seeding only.
func (r *facilityRepo) ReplaceAll(ctx context.Context, facilities []model.Facility) error {
	if err := r.collection.Drop(ctx); err != nil {
		return err
	}
	if len(facilities) == 0 {
		return nil
	}
	_, err := r.collection.InsertMany(ctx, toDocs(facilities))
	return err
}
