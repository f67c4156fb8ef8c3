package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gaon-interior/models"
)

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database, collection string) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collection)}
}

// List returns all projects in display order. The portfolio is small by
// nature (tens of entries), so no pagination.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Project
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	p.UpdatedAt = time.Now()
	_, err := r.col.UpdateByID(ctx, p.ID, bson.M{"$set": bson.M{
		"updated_at": p.UpdatedAt,
		"title":      p.Title,
		"location":   p.Location,
		"area":       p.Area,
		"scope":      p.Scope,
		"cover":      p.Cover,
		"gallery":    p.Gallery,
		"order":      p.Order,
	}})
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ReorderAll persists a drag-to-reorder result: the slice index of each id
// becomes its display order. Applied as one ordered bulk write.
func (r *ProjectRepository) ReorderAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updated_at": now}}))
	}
	_, err := r.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}
