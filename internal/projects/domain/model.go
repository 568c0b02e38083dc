package domain

import "time"

// Project is a single lab project document. The identifier is supplied by
// the client on creation and kept unique by an index on the collection.
type Project struct {
	ProjectID   string    `bson:"projectId" json:"projectId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
