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

// MongoAirportRepository implements AirportRepository
type MongoAirportRepository struct {
	collection *mongo.Collection
}

// NewMongoAirportRepository creates a new airport repository
func NewMongoAirportRepository(db *mongo.Database) repository.AirportRepository {
	collection := db.Collection("airports")

	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"code": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoAirportRepository{
		collection: collection,
	}
}

// Insert stores a new airport profile
func (r *MongoAirportRepository) Insert(ctx context.Context, airport *entity.Airport) error {
	if airport.ID == "" {
		airport.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, airport)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("airport with the same code already exists")
		}
		return apperrors.Unavailable("document store", err)
	}
	return nil
}

// GetByCode finds an airport by IATA code
func (r *MongoAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport entity.Airport
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&airport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("airport", code)
		}
		return nil, apperrors.Unavailable("document store", err)
	}
	return &airport, nil
}

// Find lists airports with pagination
func (r *MongoAirportRepository) Find(ctx context.Context, limit, offset int) ([]entity.Airport, error) {
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	defer cursor.Close(ctx)

	airports := []entity.Airport{}
	if err := cursor.All(ctx, &airports); err != nil {
		return nil, apperrors.Unavailable("document store", err)
	}
	return airports, nil
}
