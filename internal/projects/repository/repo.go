package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sftwrlab/hwlab-backend/internal/projects/domain"
)

const collectionName = "projects"

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(collectionName)}
}

// Create inserts a new project. The projectId comes from the client; the
// unique index on the collection turns a collision into ErrDuplicateID.
func (r *ProjectRepository) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.ProjectID == "" {
		return nil, fmt.Errorf("projectId required")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("name required")
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateID
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return &p, nil
}

// List returns every project, newest first. An empty collection yields an
// empty slice, never nil.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Project, 0, 16)
	for cur.Next(ctx) {
		var p domain.Project
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// GetByID returns the project with the given projectId.
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var p domain.Project
	err := r.coll.FindOne(ctx, bson.M{"projectId": projectID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}
