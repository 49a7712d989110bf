package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeeper/internal/domain"
)

// itemDocument is the wire shape of an item in the items collection.
// IDs are application-assigned UUID strings so the memory fallback
// shares identity semantics with this store.
type itemDocument struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toItemDocument(item *domain.Item) itemDocument {
	return itemDocument{
		ID:        item.ID,
		Title:     item.Title,
		Content:   item.Content,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func (d itemDocument) toDomain() domain.Item {
	return domain.Item{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ItemRepository is the MongoDB ports.ItemRepository.
type ItemRepository struct {
	coll *mongo.Collection
}

// List returns all items, newest first.
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}
	defer cursor.Close(ctx)

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}

	items := make([]domain.Item, len(docs))
	for i, doc := range docs {
		items[i] = doc.toDomain()
	}

	return items, nil
}

// Get returns the item with the given id.
func (r *ItemRepository) Get(ctx context.Context, id string) (*domain.Item, error) {
	var doc itemDocument

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFoundError("item", id)
	}
	if err != nil {
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}

	item := doc.toDomain()

	return &item, nil
}

// Create inserts a new item.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	_, err := r.coll.InsertOne(ctx, toItemDocument(item))
	if mongo.IsDuplicateKeyError(err) {
		return domain.NewConflictError("item", "duplicate id "+item.ID)
	}
	if err != nil {
		return domain.NewUnavailableError("mongodb", err.Error())
	}

	return nil
}

// Update replaces the mutable fields of a stored item.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	update := bson.M{"$set": bson.M{
		"title":      item.Title,
		"content":    item.Content,
		"updated_at": item.UpdatedAt.UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return domain.NewUnavailableError("mongodb", err.Error())
	}

	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("item", item.ID)
	}

	return nil
}

// Delete removes a stored item.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewUnavailableError("mongodb", err.Error())
	}

	if result.DeletedCount == 0 {
		return domain.NewNotFoundError("item", id)
	}

	return nil
}
