package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeeper/internal/domain"
)

// feedbackDocument is the wire shape of a guestbook entry.
type feedbackDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

func toFeedbackDocument(fb *domain.Feedback) feedbackDocument {
	return feedbackDocument{
		ID:        fb.ID,
		Name:      fb.Name,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt.UTC(),
	}
}

func (d feedbackDocument) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:        d.ID,
		Name:      d.Name,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

// FeedbackRepository is the MongoDB ports.FeedbackRepository.
type FeedbackRepository struct {
	coll *mongo.Collection
}

// List returns all entries, newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}
	defer cursor.Close(ctx)

	var docs []feedbackDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.NewUnavailableError("mongodb", err.Error())
	}

	entries := make([]domain.Feedback, len(docs))
	for i, doc := range docs {
		entries[i] = doc.toDomain()
	}

	return entries, nil
}

// Create appends a new entry.
func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	_, err := r.coll.InsertOne(ctx, toFeedbackDocument(fb))
	if mongo.IsDuplicateKeyError(err) {
		return domain.NewConflictError("feedback", "duplicate id "+fb.ID)
	}
	if err != nil {
		return domain.NewUnavailableError("mongodb", err.Error())
	}

	return nil
}
