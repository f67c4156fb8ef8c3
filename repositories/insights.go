package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gaon-interior/models"
)

type InsightRepository struct {
	col *mongo.Collection
}

func NewInsightRepository(db *mongo.Database, collection string) *InsightRepository {
	return &InsightRepository{col: db.Collection(collection)}
}

// List returns insights sorted by date desc, optionally filtered by
// category, with the total count for pagination.
func (r *InsightRepository) List(ctx context.Context, category string, page, pageSize int) ([]models.Insight, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.Insight
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *InsightRepository) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	var in models.Insight
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *InsightRepository) Insert(ctx context.Context, in *models.Insight) error {
	now := time.Now()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	in.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, in)
	return err
}

func (r *InsightRepository) Update(ctx context.Context, in *models.Insight) error {
	in.UpdatedAt = time.Now()
	_, err := r.col.UpdateByID(ctx, in.ID, bson.M{"$set": bson.M{
		"updated_at": in.UpdatedAt,
		"title":      in.Title,
		"category":   in.Category,
		"body":       in.Body,
		"date":       in.Date,
		"thumbnail":  in.Thumbnail,
		"url":        in.URL,
	}})
	return err
}

func (r *InsightRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
