// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kinograph/kinograph/internal/metrics"
)

// ErrMissingMongoURI indicates that the MongoDB source was selected without
// a connection URI in the configuration.
var ErrMissingMongoURI = errors.New("mongo: missing connection URI")

// defaultMongoTimeout bounds connection and query time when the
// configuration does not set one.
const defaultMongoTimeout = 10 * time.Second

// MongoConfig carries the connection settings for a MongoSource.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

func (c MongoConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultMongoTimeout
	}
	return c.Timeout
}

// MongoSource loads catalog records from a MongoDB collection. Documents
// use the field names declared by the Movie bson tags (movieId, title,
// genre, rating, director).
type MongoSource struct {
	cfg    MongoConfig
	client *mongo.Client
}

// NewMongoSource connects to MongoDB and verifies the connection with a
// ping before returning. The caller owns the source and must Close it.
func NewMongoSource(ctx context.Context, cfg MongoConfig) (*MongoSource, error) {
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, ErrMissingMongoURI
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opt := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoSource{cfg: cfg, client: client}, nil
}

// Name implements Source.
func (m *MongoSource) Name() string { return "mongodb" }

// Load implements Source. It fetches the entire collection in one query,
// bounded by the configured timeout.
func (m *MongoSource) Load(ctx context.Context) ([]Movie, error) {
	start := time.Now()
	movies, err := m.load(ctx)
	metrics.RecordSourceFetch(m.Name(), time.Since(start), err)
	return movies, err
}

func (m *MongoSource) load(ctx context.Context) ([]Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.timeout())
	defer cancel()

	coll := m.client.Database(m.cfg.Database).Collection(m.cfg.Collection)
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}

	var movies []Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return movies, nil
}

// Close disconnects the underlying client.
func (m *MongoSource) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
