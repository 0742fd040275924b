package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pwnz15/backend-sld/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo(db *mongo.Database) InvoiceRepository {
	repo := &MongoInvoiceRepo{coll: db.Collection("invoices")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create invoice indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates the unique invoiceNumber index, the sole arbiter of
// concurrent number assignment, plus query indexes.
func (r *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "paymentStatus", Value: 1}}},
		{Keys: bson.D{{Key: "issueDate", Value: 1}}},
		{Keys: bson.D{{Key: "dueDate", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "totalTTC", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert persists a new invoice document.
func (r *MongoInvoiceRepo) Insert(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, invoice)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: invoice.InvoiceNumber}
		}
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "invoice", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &invoice, nil
}

// LatestInvoiceNumber returns the lexicographically greatest invoice number,
// or "" when the collection is empty.
func (r *MongoInvoiceRepo) LatestInvoiceNumber(ctx context.Context) (string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "invoiceNumber", Value: -1}}).
		SetProjection(bson.M{"invoiceNumber": 1})

	var doc struct {
		InvoiceNumber string `bson:"invoiceNumber"`
	}
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch latest invoice number: %w", err)
	}
	return doc.InvoiceNumber, nil
}

// Paginate retrieves one page of invoices matching the given filter, newest
// first.
func (r *MongoInvoiceRepo) Paginate(ctx context.Context, page, limit int64, filter bson.M) (*models.InvoicePage, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if filter == nil {
		filter = bson.M{}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}

	return &models.InvoicePage{
		Invoices:    invoices,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// Update replaces the mutable fields of an existing invoice document.
func (r *MongoInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	invoice.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": invoice.ID}, bson.M{"$set": invoice})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: invoice.InvoiceNumber}
		}
		return fmt.Errorf("failed to update invoice with id %s: %w", invoice.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.NotFoundError{Entity: "invoice", ID: invoice.ID}
	}
	return nil
}

// Delete removes an invoice document by its ID.
func (r *MongoInvoiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete invoice with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.NotFoundError{Entity: "invoice", ID: id}
	}
	return nil
}
