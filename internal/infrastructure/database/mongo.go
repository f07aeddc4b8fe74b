package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"library-catalog/internal/config"
)

// MongoDB wraps the client and the application database handle.
// One instance lives for the whole process, opened at startup and
// closed during shutdown.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

// Connect establishes the client connection with retry and verifies it
// with a ping before returning.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*MongoDB, error) {
	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		client, err = mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
		if err == nil {
			err = client.Ping(connectCtx, readpref.Primary())
		}
		cancel()

		if err == nil {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", cfg.MaxRetries).
			Msg("MongoDB connection failed, retrying")

		if attempt < cfg.MaxRetries {
			time.Sleep(cfg.RetryDelay)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", cfg.MaxRetries, err)
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
		Config:   cfg,
	}, nil
}

// Collection returns a handle to the named collection.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// Ping verifies the connection is still alive. Used by the health check.
func (db *MongoDB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	log.Info().Msg("MongoDB connection closed")
	return nil
}
