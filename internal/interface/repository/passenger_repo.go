package repository

import (
	"context"
	"errors"
	"time"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"
	"airdata-service/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPassengerRepository implements PassengerRepository
type MongoPassengerRepository struct {
	collection *mongo.Collection
}

// NewMongoPassengerRepository creates a new passenger repository
func NewMongoPassengerRepository(db *mongo.Database) repository.PassengerRepository {
	collection := db.Collection("passengers")

	// Create unique indexes on passenger_id and passport
	ctx := context.Background()
	idIndex := mongo.IndexModel{
		Keys:    bson.M{"passenger_id": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, idIndex)

	passportIndex := mongo.IndexModel{
		Keys:    bson.M{"passport": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, passportIndex)

	return &MongoPassengerRepository{
		collection: collection,
	}
}

// Insert stores a new passenger profile
func (r *MongoPassengerRepository) Insert(ctx context.Context, passenger *entity.Passenger) error {
	if passenger.ID == "" {
		passenger.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, passenger)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("passenger with the same id or passport already exists")
		}
		return apperrors.Unavailable("document store", err)
	}
	return nil
}

// GetByID finds a passenger by passenger id
func (r *MongoPassengerRepository) GetByID(ctx context.Context, passengerID string) (*entity.Passenger, error) {
	var passenger entity.Passenger
	err := r.collection.FindOne(ctx, bson.M{"passenger_id": passengerID}).Decode(&passenger)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("passenger", passengerID)
		}
		return nil, apperrors.Unavailable("document store", err)
	}
	return &passenger, nil
}

// Find lists passengers with pagination
func (r *MongoPassengerRepository) Find(ctx context.Context, limit, offset int) ([]entity.Passenger, error) {
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	defer cursor.Close(ctx)

	passengers := []entity.Passenger{}
	if err := cursor.All(ctx, &passengers); err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	return passengers, nil
}

// Update applies a partial update and returns the modified count
func (r *MongoPassengerRepository) Update(ctx context.Context, passengerID string, update entity.PassengerUpdate) (int64, error) {
	set := bson.M{}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.Passport != nil {
		set["passport"] = *update.Passport
	}
	if update.Nationality != nil {
		set["nationality"] = *update.Nationality
	}
	if update.Contact != nil {
		set["contact"] = *update.Contact
	}
	set["updated_at"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"passenger_id": passengerID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, apperrors.Conflict("passenger with the same passport already exists")
		}
		return 0, apperrors.Unavailable("document store", err)
	}
	return result.MatchedCount, nil
}

// Delete removes a passenger profile and returns the deleted count
func (r *MongoPassengerRepository) Delete(ctx context.Context, passengerID string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"passenger_id": passengerID})
	if err != nil {
		return 0, apperrors.Unavailable("document store", err)
	}
	return result.DeletedCount, nil
}

// CountByNationality groups passengers by nationality, most common first
func (r *MongoPassengerRepository) CountByNationality(ctx context.Context) ([]entity.CountryStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$nationality", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"country": "$_id", "count": 1, "_id": 0}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	defer cursor.Close(ctx)

	stats := []entity.CountryStats{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	return stats, nil
}
