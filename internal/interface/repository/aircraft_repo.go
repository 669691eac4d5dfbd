package repository

import (
	"context"
	"errors"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAircraftRepository implements AircraftRepository
type MongoAircraftRepository struct {
	collection *mongo.Collection
}

// NewMongoAircraftRepository creates a new aircraft repository
func NewMongoAircraftRepository(db *mongo.Database) repository.AircraftRepository {
	collection := db.Collection("aircrafts")

	// Create unique index on reg_number
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"reg_number": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoAircraftRepository{
		collection: collection,
	}
}

// Insert stores a new aircraft profile
func (r *MongoAircraftRepository) Insert(ctx context.Context, aircraft *entity.Aircraft) error {
	if aircraft.ID == "" {
		aircraft.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, aircraft)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("aircraft with the same registration already exists")
		}
		return apperrors.Unavailable("document store", err)
	}
	return nil
}

// GetByRegNumber finds an aircraft by registration number
func (r *MongoAircraftRepository) GetByRegNumber(ctx context.Context, regNumber string) (*entity.Aircraft, error) {
	var aircraft entity.Aircraft
	err := r.collection.FindOne(ctx, bson.M{"reg_number": regNumber}).Decode(&aircraft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("aircraft", regNumber)
		}
		return nil, apperrors.Unavailable("document store", err)
	}
	return &aircraft, nil
}

// Find lists aircraft matching the filter with pagination
func (r *MongoAircraftRepository) Find(ctx context.Context, filter entity.AircraftFilter) ([]entity.Aircraft, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}

	opts := options.Find().SetSkip(int64(filter.Offset)).SetLimit(int64(filter.Limit))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	defer cursor.Close(ctx)

	aircrafts := []entity.Aircraft{}
	if err := cursor.All(ctx, &aircrafts); err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	return aircrafts, nil
}

// Update applies a partial update and returns the matched count
func (r *MongoAircraftRepository) Update(ctx context.Context, regNumber string, update entity.AircraftUpdate) (int64, error) {
	set := bson.M{}
	if update.Model != nil {
		set["model"] = *update.Model
	}
	if update.Manufacturer != nil {
		set["manufacturer"] = *update.Manufacturer
	}
	if update.Capacity != nil {
		set["capacity"] = *update.Capacity
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.LastMaintenance != nil {
		set["last_maintenance"] = *update.LastMaintenance
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"reg_number": regNumber}, bson.M{"$set": set})
	if err != nil {
		return 0, apperrors.Unavailable("document store", err)
	}
	return result.MatchedCount, nil
}

// Delete removes an aircraft profile and returns the deleted count
func (r *MongoAircraftRepository) Delete(ctx context.Context, regNumber string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"reg_number": regNumber})
	if err != nil {
		return 0, apperrors.Unavailable("document store", err)
	}
	return result.DeletedCount, nil
}

// ManufacturerStats groups aircraft by manufacturer with capacity totals
func (r *MongoAircraftRepository) ManufacturerStats(ctx context.Context) ([]entity.ManufacturerStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":            "$manufacturer",
			"count":          bson.M{"$sum": 1},
			"total_capacity": bson.M{"$sum": "$capacity"},
		}},
		{"$project": bson.M{"manufacturer": "$_id", "count": 1, "total_capacity": 1, "_id": 0}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	defer cursor.Close(ctx)

	stats := []entity.ManufacturerStats{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	return stats, nil
}
