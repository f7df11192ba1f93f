package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"memorycompanion/internal/model"
)

// ReflectionRepo reads submitted reflections joined with their questions
type ReflectionRepo interface {
	Create(ctx context.Context, reflection *model.Reflection, questionID string) error
	// ListSince returns non-draft reflections created at or after since, newest first
	ListSince(ctx context.Context, userKey int64, since time.Time) ([]model.Reflection, error)
}

type reflectionRepo struct {
	collection *mongo.Collection
}

// NewReflectionRepo creates a reflection repository over the responses collection
func NewReflectionRepo(db *mongo.Database) ReflectionRepo {
	return &reflectionRepo{
		collection: db.Collection("responses"),
	}
}

// responseDoc is the stored shape; category and question text live on the question
type responseDoc struct {
	ID           string    `bson:"_id"`
	UserKey      int64     `bson:"user_id"`
	QuestionID   string    `bson:"question_id,omitempty"`
	ResponseText string    `bson:"response_text"`
	WordCount    int       `bson:"word_count"`
	IsDraft      bool      `bson:"is_draft"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (r *reflectionRepo) Create(ctx context.Context, reflection *model.Reflection, questionID string) error {
	if reflection.ID == "" {
		reflection.ID = primitive.NewObjectID().Hex()
	}
	if reflection.CreatedAt.IsZero() {
		reflection.CreatedAt = time.Now().UTC()
	}
	if reflection.WordCount == 0 {
		reflection.WordCount = reflection.Words()
	}

	_, err := r.collection.InsertOne(ctx, responseDoc{
		ID:           reflection.ID,
		UserKey:      reflection.UserKey,
		QuestionID:   questionID,
		ResponseText: reflection.ResponseText,
		WordCount:    reflection.WordCount,
		IsDraft:      reflection.IsDraft,
		CreatedAt:    reflection.CreatedAt,
	})
	return err
}

func (r *reflectionRepo) ListSince(ctx context.Context, userKey int64, since time.Time) ([]model.Reflection, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id":    userKey,
			"is_draft":   false,
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "questions",
			"localField":   "question_id",
			"foreignField": "_id",
			"as":           "question",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$question",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"user_id":       1,
			"response_text": 1,
			"word_count":    1,
			"is_draft":      1,
			"created_at":    1,
			"category":      "$question.category",
			"question_text": "$question.question_text",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reflections := []model.Reflection{}
	if err = cursor.All(ctx, &reflections); err != nil {
		return nil, err
	}

	return reflections, nil
}
