// Package repository provides the data access layer for run history and audit logs.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	runsCollection = "optimization_runs"
	logsCollection = "logs"
	logsTTLIndex   = "timestamp_1"
	pingTimeout    = 2 * time.Second
)

var (
	runIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "source", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	}
	logIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
)

// MongoConfig tunes the client pool and its timeouts.
type MongoConfig struct {
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	// ConnectTimeout also bounds the initial ping and index creation.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how quickly an unreachable server surfaces as
	// an error, which is what trips the history circuit breaker.
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB holds the client and the run history and audit log collections.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Runs     *mongo.Collection
	Logs     *mongo.Collection
}

func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings the primary and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Runs:     db.Collection(runsCollection),
		Logs:     db.Collection(logsCollection),
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

// ensureIndexes creates the query indexes. The logs TTL index is owned by
// SetLogsTTL.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	if _, err := m.Runs.Indexes().CreateMany(ctx, runIndexes); err != nil {
		return fmt.Errorf("create %s indexes: %w", runsCollection, err)
	}
	if _, err := m.Logs.Indexes().CreateMany(ctx, logIndexes); err != nil {
		return fmt.Errorf("create %s indexes: %w", logsCollection, err)
	}
	return nil
}

// SetLogsTTL makes audit log entries expire ttlDays after their timestamp.
// An existing TTL index is changed in place with collMod.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	if ttlDays <= 0 {
		return fmt.Errorf("logs ttl must be positive, got %d days", ttlDays)
	}
	seconds := int64(ttlDays) * 24 * 60 * 60

	current, found, err := m.logsTTL(ctx)
	if err != nil {
		return err
	}

	switch {
	case !found:
		_, err = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "timestamp", Value: 1}},
			Options: options.Index().SetName(logsTTLIndex).SetExpireAfterSeconds(int32(seconds)),
		})
	case current != seconds:
		err = m.Database.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: logsCollection},
			{Key: "index", Value: bson.D{
				{Key: "name", Value: logsTTLIndex},
				{Key: "expireAfterSeconds", Value: seconds},
			}},
		}).Err()
	}
	if err != nil {
		return fmt.Errorf("set logs ttl to %d days: %w", ttlDays, err)
	}
	return nil
}

// logsTTL reports the expireAfterSeconds of the logs TTL index, if present.
func (m *MongoDB) logsTTL(ctx context.Context) (int64, bool, error) {
	cursor, err := m.Logs.Indexes().List(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("list %s indexes: %w", logsCollection, err)
	}
	var specs []bson.Raw
	if err := cursor.All(ctx, &specs); err != nil {
		return 0, false, fmt.Errorf("decode %s indexes: %w", logsCollection, err)
	}

	for _, spec := range specs {
		if name, _ := spec.Lookup("name").StringValueOK(); name != logsTTLIndex {
			continue
		}
		seconds, ok := spec.Lookup("expireAfterSeconds").AsInt64OK()
		return seconds, ok, nil
	}
	return 0, false, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}
