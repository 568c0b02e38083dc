package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sftwrlab/hwlab-backend/internal/resources/domain"
)

const collectionName = "resources"

// Default hardware sets seeded for every new project.
const (
	DefaultHWSet1Total = 15
	DefaultHWSet2Total = 10
)

// ResourceRepository provides persistence operations for hardware-set
// resources.
type ResourceRepository struct {
	coll *mongo.Collection
}

// NewResourceRepository creates a new resource repository.
func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{coll: db.Collection(collectionName)}
}

// SeedDefaults creates the two default hardware sets for a freshly created
// project. Zero or negative totals fall back to the defaults. A set that
// already exists (compound unique index on projectId+hwsetId) is returned
// as-is rather than treated as an error.
func (r *ResourceRepository) SeedDefaults(ctx context.Context, projectID string, hw1Total, hw2Total int) ([]domain.Resource, error) {
	if hw1Total <= 0 {
		hw1Total = DefaultHWSet1Total
	}
	if hw2Total <= 0 {
		hw2Total = DefaultHWSet2Total
	}

	defaults := []domain.Resource{
		{
			ProjectID: projectID,
			HWSetID:   "HWSet1",
			Name:      "Arduino Uno Kit",
			Total:     hw1Total,
			Allocated: 0,
			Available: hw1Total,
			Notes:     fmt.Sprintf("Default Arduino kits for %s", projectID),
		},
		{
			ProjectID: projectID,
			HWSetID:   "HWSet2",
			Name:      "Raspberry Pi Kit",
			Total:     hw2Total,
			Allocated: 0,
			Available: hw2Total,
			Notes:     fmt.Sprintf("Default Raspberry Pi kits for %s", projectID),
		},
	}

	out := make([]domain.Resource, 0, len(defaults))
	for _, res := range defaults {
		if _, err := r.coll.InsertOne(ctx, res); err != nil {
			if !mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("seed %s/%s: %w", res.ProjectID, res.HWSetID, err)
			}
			existing, err := r.get(ctx, res.ProjectID, res.HWSetID)
			if err != nil {
				return nil, err
			}
			out = append(out, *existing)
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// ListByProject returns every hardware set belonging to the project.
func (r *ResourceRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Resource, error) {
	opts := options.Find().SetSort(bson.D{{Key: "hwsetId", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Resource, 0, 4)
	for cur.Next(ctx) {
		var res domain.Resource
		if err := cur.Decode(&res); err != nil {
			return nil, fmt.Errorf("decode resource: %w", err)
		}
		out = append(out, res)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return out, nil
}

// Checkout moves qty units from available to allocated. The availability
// check is part of the update filter, so concurrent checkouts cannot
// oversell a set.
func (r *ResourceRepository) Checkout(ctx context.Context, projectID, hwsetID string, qty int) (*domain.Resource, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	filter := bson.M{
		"projectId": projectID,
		"hwsetId":   hwsetID,
		"available": bson.M{"$gte": qty},
	}
	update := bson.M{"$inc": bson.M{"available": -qty, "allocatedToProject": qty}}

	res, err := r.findAndApply(ctx, filter, update)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("checkout %s/%s: %w", projectID, hwsetID, err)
	}

	// No match: either the set does not exist or the stock is short.
	if _, err := r.get(ctx, projectID, hwsetID); err != nil {
		return nil, err
	}
	return nil, domain.ErrInsufficientStock
}

// Checkin returns qty units from allocated to available. Units never checked
// out cannot be checked in.
func (r *ResourceRepository) Checkin(ctx context.Context, projectID, hwsetID string, qty int) (*domain.Resource, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	filter := bson.M{
		"projectId":          projectID,
		"hwsetId":            hwsetID,
		"allocatedToProject": bson.M{"$gte": qty},
	}
	update := bson.M{"$inc": bson.M{"available": qty, "allocatedToProject": -qty}}

	res, err := r.findAndApply(ctx, filter, update)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("checkin %s/%s: %w", projectID, hwsetID, err)
	}

	if _, err := r.get(ctx, projectID, hwsetID); err != nil {
		return nil, err
	}
	return nil, domain.ErrExceedsAllocation
}

func (r *ResourceRepository) findAndApply(ctx context.Context, filter, update bson.M) (*domain.Resource, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res domain.Resource
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResourceRepository) get(ctx context.Context, projectID, hwsetID string) (*domain.Resource, error) {
	var res domain.Resource
	err := r.coll.FindOne(ctx, bson.M{"projectId": projectID, "hwsetId": hwsetID}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &res, nil
}
