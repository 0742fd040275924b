package driverRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pwnz15/backend-sld/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDriverRepo implements DriverRepository using MongoDB.
type MongoDriverRepo struct {
	coll *mongo.Collection
}

// NewMongoDriverRepo creates a new instance of DriverRepository using MongoDB.
func NewMongoDriverRepo(db *mongo.Database) DriverRepository {
	repo := &MongoDriverRepo{coll: db.Collection("drivers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create driver indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoDriverRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phoneNumber", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "licenses.number", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new driver document.
func (r *MongoDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, driver)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// GetByID retrieves a driver by its unique ID.
func (r *MongoDriverRepo) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var driver models.Driver
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&driver); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "driver", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch driver with id %s: %w", id, err)
	}
	return &driver, nil
}

// Paginate retrieves one page of drivers matching an optional search term.
func (r *MongoDriverRepo) Paginate(ctx context.Context, page, limit int64, search string) (*models.DriverPage, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	query := bson.M{}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		query = bson.M{"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"phoneNumber": regex},
			bson.M{"email": regex},
		}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count drivers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("failed to decode drivers: %w", err)
	}

	return &models.DriverPage{
		Drivers:     drivers,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// Update modifies an existing driver document.
func (r *MongoDriverRepo) Update(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	driver.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": driver.ID}, bson.M{"$set": driver})
	if err != nil {
		return fmt.Errorf("failed to update driver with id %s: %w", driver.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.NotFoundError{Entity: "driver", ID: driver.ID}
	}
	return nil
}

// Delete removes a driver document by its ID.
func (r *MongoDriverRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.NotFoundError{Entity: "driver", ID: id}
	}
	return nil
}
