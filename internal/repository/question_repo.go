package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memorycompanion/internal/model"
)

// QuestionRepo stores reflection prompts
type QuestionRepo interface {
	Upsert(ctx context.Context, question *model.Question) error
	GetByCategory(ctx context.Context, category string) ([]*model.Question, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) Upsert(ctx context.Context, question *model.Question) error {
	// IDs are stored as hex strings so responses can join on question_id
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": question.ID}, question, opts)
	return err
}

func (r *questionRepo) GetByCategory(ctx context.Context, category string) ([]*model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}
