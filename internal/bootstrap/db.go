package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOptions struct {
	URI       string
	Database  string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenMongo connects to the document database and fails fast when it is not
// reachable. The caller owns the client and must Disconnect it on shutdown.
func OpenMongo(ctx context.Context, opt MongoOptions) (*mongo.Client, *mongo.Database, error) {
	if opt.URI == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(opt.Database), nil
}

// MongoPinger adapts the Mongo client to the health handler's probe
// interface.
type MongoPinger struct {
	client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}

func Pinger(client *mongo.Client) MongoPinger {
	return MongoPinger{client: client}
}

// EnsureIndexes creates the unique indexes the API's status-code contract
// depends on: duplicate projectIds and duplicate hardware sets must surface
// as duplicate-key errors, not as silent second documents.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("projects").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("projects index: %w", err)
	}

	_, err = db.Collection("resources").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "hwsetId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("resources index: %w", err)
	}

	return nil
}
