package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/model"
)

// AssessmentRepo handles MongoDB operations for completed assessments
type AssessmentRepo interface {
	Upsert(ctx context.Context, assessment *model.Assessment) error
	GetByUserID(ctx context.Context, userID string) (*model.Assessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

// Upsert writes the assessment keyed by user id, last write wins. The
// operation is idempotent so the final persist step can be retried.
func (r *assessmentRepo) Upsert(ctx context.Context, assessment *model.Assessment) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": assessment.UserID}, assessment, opts)
	return err
}

func (r *assessmentRepo) GetByUserID(ctx context.Context, userID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
