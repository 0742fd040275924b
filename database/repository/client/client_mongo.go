package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo(db *mongo.Database) ClientRepository {
	repo := &MongoClientRepo{coll: db.Collection("clients")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create client indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates the unique CodeClient index plus lookup indexes.
func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "CodeClient", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "Societe", Value: 1}}},
		{Keys: bson.D{{Key: "Mail", Value: 1}}, Options: options.Index().SetSparse(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, client)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: client.CodeClient}
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its unique ID.
func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "client", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

// GetByCode retrieves a client by its CodeClient business code.
func (r *MongoClientRepo) GetByCode(ctx context.Context, code string) (*models.Client, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"CodeClient": code}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "client", ID: code}
		}
		return nil, fmt.Errorf("failed to fetch client with CodeClient %s: %w", code, err)
	}
	return &client, nil
}

// Paginate retrieves one page of clients matching an optional search term.
func (r *MongoClientRepo) Paginate(ctx context.Context, page, limit int64, search string) (*models.ClientPage, error) {
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
			bson.M{"CodeClient": regex},
			bson.M{"Intitule": regex},
			bson.M{"Societe": regex},
		}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "CodeClient", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}

	return &models.ClientPage{
		Clients:     clients,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// GetAll retrieves every client sorted by CodeClient.
func (r *MongoClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "CodeClient", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}

// Update modifies an existing client document.
func (r *MongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": client.ID}, bson.M{"$set": client})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: client.CodeClient}
		}
		return fmt.Errorf("failed to update client with id %s: %w", client.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.NotFoundError{Entity: "client", ID: client.ID}
	}
	return nil
}

// Delete removes a client document by its ID.
func (r *MongoClientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.NotFoundError{Entity: "client", ID: id}
	}
	return nil
}

// BulkUpsert submits one unordered bulk upsert keyed by CodeClient and returns
// the store-reported upserted+modified count.
func (r *MongoClientRepo) BulkUpsert(ctx context.Context, clients []models.Client) (int64, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	ops := make([]mongo.WriteModel, 0, len(clients))
	for i := range clients {
		c := clients[i]
		raw, err := bson.Marshal(c)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal client %s: %w", c.CodeClient, err)
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return 0, fmt.Errorf("failed to unmarshal client %s: %w", c.CodeClient, err)
		}
		// Keep the stored id stable across re-imports of the same CodeClient.
		delete(doc, "id")
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"CodeClient": c.CodeClient}).
			SetUpdate(bson.M{"$set": doc, "$setOnInsert": bson.M{"id": c.ID}}).
			SetUpsert(true))
	}

	result, err := r.coll.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("bulk upsert of %d clients failed: %w", len(clients), err)
	}
	return result.UpsertedCount + result.ModifiedCount, nil
}
