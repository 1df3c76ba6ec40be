package mongo

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	defaultDatabase        = "moodpulse"
	defaultMaxPoolSize     = 10
	defaultMinPoolSize     = 1
	defaultMaxConnIdleTime = 30 * time.Minute
	defaultConnectTimeout  = 10 * time.Second
	serverSelectionTimeout = 5 * time.Second
)

// Config holds the task store connection settings
// Required fields:
// - URI: MongoDB connection string
// Optional fields with defaults:
// - Database: database holding the tasks collection (default: "moodpulse")
// - MaxPoolSize / MinPoolSize: connection pool bounds (default: 10 / 1)
// - MaxConnIdleTime: idle connection lifetime (default: 30m)
// - ConnectTimeout: dial and initial ping budget (default: 10s)
type Config struct {
	URI             string
	Database        string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// Enabled reports whether a task store is configured
func (c Config) Enabled() bool {
	return c.URI != ""
}

// ValidateConfig validates the Config
func ValidateConfig(config Config) error {
	if config.URI == "" {
		return fmt.Errorf("MongoDB URI is required")
	}
	if config.MaxPoolSize != 0 && config.MinPoolSize > config.MaxPoolSize {
		return fmt.Errorf("min pool size %d exceeds max pool size %d", config.MinPoolSize, config.MaxPoolSize)
	}
	if config.MaxConnIdleTime < 0 || config.ConnectTimeout < 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

// withDefaults fills unset fields
func (c Config) withDefaults() Config {
	if c.Database == "" {
		c.Database = defaultDatabase
	}
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = defaultMaxPoolSize
	}
	if c.MinPoolSize == 0 {
		c.MinPoolSize = min(defaultMinPoolSize, c.MaxPoolSize)
	}
	if c.MaxConnIdleTime == 0 {
		c.MaxConnIdleTime = defaultMaxConnIdleTime
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	return c
}

func (c Config) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetConnectTimeout(c.ConnectTimeout)
}

// Client wraps the MongoDB client and the task database
type Client struct {
	*mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection with a ping
func NewClient(ctx context.Context, config Config, logger *zap.Logger) (*Client, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	config = config.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, config.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to task store",
		zap.String("database", config.Database),
		zap.Uint64("maxPoolSize", config.MaxPoolSize))

	return &Client{
		Client:   client,
		Database: client.Database(config.Database),
		logger:   logger,
	}, nil
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		c.logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		return err
	}
	c.logger.Info("Disconnected from MongoDB")
	return nil
}

// NewConfigFromEnv creates a new Config from environment variables
func NewConfigFromEnv() Config {
	config := Config{
		URI:      os.Getenv("MONGODB_URI"),
		Database: os.Getenv("MONGODB_DATABASE"),
	}

	if v, err := strconv.ParseUint(os.Getenv("MONGODB_MAX_POOL_SIZE"), 10, 64); err == nil {
		config.MaxPoolSize = v
	}
	if v, err := strconv.ParseUint(os.Getenv("MONGODB_MIN_POOL_SIZE"), 10, 64); err == nil {
		config.MinPoolSize = v
	}
	if d, err := time.ParseDuration(os.Getenv("MONGODB_MAX_CONN_IDLE_TIME")); err == nil && d > 0 {
		config.MaxConnIdleTime = d
	}
	if d, err := time.ParseDuration(os.Getenv("MONGODB_CONNECT_TIMEOUT")); err == nil && d > 0 {
		config.ConnectTimeout = d
	}

	if config.Database == "" {
		config.Database = defaultDatabase
	}

	return config
}
