package articleRepo

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

// MongoArticleRepo implements ArticleRepository using MongoDB.
type MongoArticleRepo struct {
	coll *mongo.Collection
}

// NewMongoArticleRepo creates a new instance of ArticleRepository using MongoDB.
func NewMongoArticleRepo(db *mongo.Database) ArticleRepository {
	repo := &MongoArticleRepo{coll: db.Collection("articles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create article indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates the unique CodeBar index plus search indexes.
func (r *MongoArticleRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "CodeBar", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "Designation", Value: 1}}},
		{Keys: bson.D{{Key: "DateModification", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new article document.
func (r *MongoArticleRepo) Create(ctx context.Context, article *models.Article) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, article)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: article.CodeBar}
		}
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by its unique ID.
func (r *MongoArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var article models.Article
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "article", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch article with id %s: %w", id, err)
	}
	return &article, nil
}

// GetByCodeBar retrieves an article by its barcode business code.
func (r *MongoArticleRepo) GetByCodeBar(ctx context.Context, codeBar string) (*models.Article, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var article models.Article
	if err := r.coll.FindOne(ctx, bson.M{"CodeBar": codeBar}).Decode(&article); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Entity: "article", ID: codeBar}
		}
		return nil, fmt.Errorf("failed to fetch article with CodeBar %s: %w", codeBar, err)
	}
	return &article, nil
}

// Paginate retrieves one page of articles matching an optional search term.
func (r *MongoArticleRepo) Paginate(ctx context.Context, page, limit int64, search string) (*models.ArticlePage, error) {
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
			bson.M{"CodeBar": regex},
			bson.M{"Code": regex},
			bson.M{"Designation": regex},
			bson.M{"Marque": regex},
			bson.M{"Famille": regex},
		}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "DateModification", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	return &models.ArticlePage{
		Articles:    articles,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// GetAll retrieves every article sorted by CodeBar.
func (r *MongoArticleRepo) GetAll(ctx context.Context) ([]models.Article, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "CodeBar", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}

// Update modifies an existing article document.
func (r *MongoArticleRepo) Update(ctx context.Context, article *models.Article) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": article.ID}, bson.M{"$set": article})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.DuplicateKeyError{Key: article.CodeBar}
		}
		return fmt.Errorf("failed to update article with id %s: %w", article.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.NotFoundError{Entity: "article", ID: article.ID}
	}
	return nil
}

// Delete removes an article document by its ID.
func (r *MongoArticleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete article with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.NotFoundError{Entity: "article", ID: id}
	}
	return nil
}

// BulkUpsert submits one unordered bulk upsert keyed by CodeBar and returns
// the store-reported upserted+modified count.
func (r *MongoArticleRepo) BulkUpsert(ctx context.Context, articles []models.Article) (int64, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	ops := make([]mongo.WriteModel, 0, len(articles))
	for i := range articles {
		a := articles[i]
		raw, err := bson.Marshal(a)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal article %s: %w", a.CodeBar, err)
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return 0, fmt.Errorf("failed to unmarshal article %s: %w", a.CodeBar, err)
		}
		// Keep the stored id stable across re-imports of the same CodeBar.
		delete(doc, "id")
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"CodeBar": a.CodeBar}).
			SetUpdate(bson.M{"$set": doc, "$setOnInsert": bson.M{"id": a.ID}}).
			SetUpsert(true))
	}

	result, err := r.coll.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("bulk upsert of %d articles failed: %w", len(articles), err)
	}
	return result.UpsertedCount + result.ModifiedCount, nil
}
