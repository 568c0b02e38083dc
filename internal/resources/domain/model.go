package domain

import "errors"

// Resource tracks one hardware set's stock for a project. Total is the pool
// size, Allocated the units currently checked out to the project, Available
// the remainder. Allocated + Available == Total at all times.
type Resource struct {
	ProjectID string `bson:"projectId" json:"projectId"`
	HWSetID   string `bson:"hwsetId" json:"hwsetId"`
	Name      string `bson:"name" json:"name"`
	Total     int    `bson:"total" json:"total"`
	Allocated int    `bson:"allocatedToProject" json:"allocatedToProject"`
	Available int    `bson:"available" json:"available"`
	Notes     string `bson:"notes" json:"notes"`
}

var (
	ErrNotFound          = errors.New("hardware set not found")
	ErrInsufficientStock = errors.New("not enough units available")
	ErrExceedsAllocation = errors.New("more units than are checked out")
)
