package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"poetiq/internal/model"
)

// QuestionnaireRepo supplies the immutable questionnaire reference data:
// questions, choices with drag weights, phases, and checklist items.
type QuestionnaireRepo interface {
	Questions(ctx context.Context) ([]model.Question, error)
	Choices(ctx context.Context) ([]model.Choice, error)
	Phases(ctx context.Context) ([]model.Phase, error)
	ChecklistItems(ctx context.Context, phaseID model.PhaseID) ([]model.ChecklistItem, error)
	SeedReference(ctx context.Context, ref *model.ReferenceData) error
}

type questionnaireRepo struct {
	questions *mongo.Collection
	choices   *mongo.Collection
	phases    *mongo.Collection
	checklist *mongo.Collection
}

func NewQuestionnaireRepo(db *mongo.Database) QuestionnaireRepo {
	return &questionnaireRepo{
		questions: db.Collection("questions"),
		choices:   db.Collection("choices"),
		phases:    db.Collection("phases"),
		checklist: db.Collection("checklist_items"),
	}
}

func (r *questionnaireRepo) Questions(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionnaireRepo) Choices(ctx context.Context) ([]model.Choice, error) {
	cursor, err := r.choices.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var choices []model.Choice
	if err = cursor.All(ctx, &choices); err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *questionnaireRepo) Phases(ctx context.Context) ([]model.Phase, error) {
	cursor, err := r.phases.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var phases []model.Phase
	if err = cursor.All(ctx, &phases); err != nil {
		return nil, err
	}
	return phases, nil
}

func (r *questionnaireRepo) ChecklistItems(ctx context.Context, phaseID model.PhaseID) ([]model.ChecklistItem, error) {
	cursor, err := r.checklist.Find(ctx, bson.M{"phaseId": phaseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []model.ChecklistItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SeedReference replaces the full reference set. Seeding only; never called
// by the serving path.
func (r *questionnaireRepo) SeedReference(ctx context.Context, ref *model.ReferenceData) error {
	collections := []struct {
		coll *mongo.Collection
		docs []interface{}
	}{
		{r.questions, toDocs(ref.Questions)},
		{r.choices, toDocs(ref.Choices)},
		{r.phases, toDocs(ref.Phases)},
		{r.checklist, toDocs(ref.ChecklistItems)},
	}

	for _, c := range collections {
		if err := c.coll.Drop(ctx); err != nil {
			return err
		}
		if len(c.docs) == 0 {
			continue
		}
		if _, err := c.coll.InsertMany(ctx, c.docs); err != nil {
			return err
		}
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	return docs
}
