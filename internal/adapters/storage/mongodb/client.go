// Package mongodb provides the MongoDB-backed repositories.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	itemsCollection    = "items"
	feedbackCollection = "feedback"
)

// Config holds MongoDB connection settings.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Client wraps the driver client and the selected database.
type Client struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Connect establishes a connection and verifies it with a ping.
// The configured timeout bounds connection, server selection and the
// initial ping, so an unreachable database fails fast instead of
// hanging startup.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetSocketTimeout(timeout).
		SetMinPoolSize(1).
		SetMaxPoolSize(5)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Best effort; the connect context may already be done.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Client{
		client:  client,
		db:      client.Database(cfg.Database),
		timeout: timeout,
	}, nil
}

// Name identifies this component in health check output.
func (c *Client) Name() string {
	return "mongodb"
}

// Check implements ports.HealthChecker by pinging the server.
func (c *Client) Check(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.Ping(pingCtx, readpref.Primary())
}

// Disconnect closes the underlying connection pool.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Items returns the MongoDB-backed item repository.
func (c *Client) Items() *ItemRepository {
	return &ItemRepository{coll: c.db.Collection(itemsCollection)}
}

// Feedback returns the MongoDB-backed feedback repository.
func (c *Client) Feedback() *FeedbackRepository {
	return &FeedbackRepository{coll: c.db.Collection(feedbackCollection)}
}
