// internal/repository/mongo/workout_plan_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutPlanCollectionName = "workout_plans"

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutPlanRepository creates a new WorkoutPlan repository.
func NewMongoWorkoutPlanRepository(db *mongo.Database) repository.WorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

// Upsert replaces the plan for (userId, weekOf), keeping the original id and createdAt.
func (r *mongoWorkoutPlanRepository) Upsert(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.UserID == primitive.NilObjectID || plan.WeekOf == "" {
		return errors.New("plan requires userId and weekOf")
	}
	now := time.Now().UTC()
	plan.UpdatedAt = now

	filter := bson.M{"userId": plan.UserID, "weekOf": plan.WeekOf}
	update := bson.M{
		"$set": bson.M{
			"plan":      plan.Plan,
			"updatedAt": now,
		},
		// A regenerated plan invalidates the previous export.
		"$unset": bson.M{"exportKey": ""},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored domain.WorkoutPlan
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return err
	}
	plan.ID = stored.ID
	plan.CreatedAt = stored.CreatedAt
	plan.ExportKey = ""
	return nil
}

// GetByUserAndWeek retrieves the plan generated for a user on a given date.
func (r *mongoWorkoutPlanRepository) GetByUserAndWeek(ctx context.Context, userID primitive.ObjectID, weekOf string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	filter := bson.M{"userId": userID, "weekOf": weekOf}
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetLatestBetween returns the newest plan with from <= weekOf <= to. YYYY-MM-DD strings
// order the same lexically and chronologically.
func (r *mongoWorkoutPlanRepository) GetLatestBetween(ctx context.Context, userID primitive.ObjectID, from, to string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	filter := bson.M{
		"userId": userID,
		"weekOf": bson.M{"$gte": from, "$lte": to},
	}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "weekOf", Value: -1}, {Key: "updatedAt", Value: -1}})
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// SetExportKey records the object key of the plan's latest export.
func (r *mongoWorkoutPlanRepository) SetExportKey(ctx context.Context, id primitive.ObjectID, key string) error {
	update := bson.M{"$set": bson.M{"exportKey": key, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutPlanIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// One plan per user and generation date; also serves the range lookup.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "weekOf", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
