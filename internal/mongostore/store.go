package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"savings-tracker/internal/config"
	"savings-tracker/internal/repositories"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	usersCollection             = "users"
	ledgerCollection            = "ledger_entries"
	salaryCollection            = "salary_records"
	categoryTotalsCollection    = "category_totals"
	blacklistedTokensCollection = "blacklisted_tokens"
)

var ErrMissingURI = errors.New("MONGO_URI environment variable not set")

// Store is the MongoDB backend. Ledger writes use multi-document
// transactions, so the server must run as a replica set.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Connect opens a client, verifies it with a ping and ensures the indexes
// the repositories rely on exist.
func Connect(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (*Store, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	store := New(client, cfg.Database, logger)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := store.Ping(pingCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("Connected to MongoDB", "database", cfg.Database)
	return store, nil
}

// New wraps an existing client
func New(client *mongo.Client, database string, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Error("Failed to disconnect from MongoDB", "error", err)
		return err
	}
	s.logger.Info("Disconnected from MongoDB")
	return nil
}

// EnsureIndexes creates the unique and lookup indexes. Creating an index
// that already exists is a no-op on the server.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_users_email")},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_users_username")},
		},
		ledgerCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "month", Value: 1}}, Options: options.Index().SetName("idx_ledger_user_month")},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "kind", Value: 1}}, Options: options.Index().SetName("idx_ledger_user_kind")},
		},
		salaryCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "effective_month", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_salary_user_month")},
		},
		categoryTotalsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "month", Value: 1}, {Key: "category", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_category_total_key")},
		},
		blacklistedTokensCollection: {
			{Keys: bson.D{{Key: "jti", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_blacklisted_tokens_jti")},
		},
	}

	for collection, models := range indexes {
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	return nil
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repositories.Store {
	return &repositories.Store{
		Users:             &userRepository{users: s.db.Collection(usersCollection)},
		Ledger:            newLedgerRepository(s.client, s.db),
		Salaries:          &salaryRepository{records: s.db.Collection(salaryCollection)},
		BlacklistedTokens: &blacklistedTokenRepository{tokens: s.db.Collection(blacklistedTokensCollection)},
		Health:            s,
	}
}
