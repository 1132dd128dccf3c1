package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-tracker/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var entryOrder = bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}}

type ledgerRepository struct {
	client  *mongo.Client
	entries *mongo.Collection
	totals  *mongo.Collection
}

func newLedgerRepository(client *mongo.Client, db *mongo.Database) *ledgerRepository {
	return &ledgerRepository{
		client:  client,
		entries: db.Collection(ledgerCollection),
		totals:  db.Collection(categoryTotalsCollection),
	}
}

func (r *ledgerRepository) withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx)
	})
	return err
}

// RecordEntry inserts the entry and increments its category total inside one
// transaction.
func (r *ledgerRepository) RecordEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}

	entry.PrepareForInsert()
	if err := entry.Validate(); err != nil {
		return err
	}

	doc, err := newLedgerDocument(entry)
	if err != nil {
		return err
	}

	return r.withTransaction(ctx, func(txCtx context.Context) error {
		if _, err := r.entries.InsertOne(txCtx, doc); err != nil {
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}

		if !entry.TracksCategory() {
			return nil
		}

		filter := bson.D{
			{Key: "user_id", Value: doc.UserID},
			{Key: "month", Value: doc.Month},
			{Key: "category", Value: doc.Category},
		}
		update := bson.D{
			{Key: "$inc", Value: bson.D{{Key: "total", Value: doc.Amount}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "_id", Value: uuid.NewString()}}},
		}
		if _, err := r.totals.UpdateOne(txCtx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to update category total: %w", err)
		}
		return nil
	})
}

func (r *ledgerRepository) GetEntriesByMonth(ctx context.Context, userID uuid.UUID, month string) ([]models.LedgerEntry, error) {
	filter := bson.D{{Key: "user_id", Value: userID.String()}, {Key: "month", Value: month}}
	return r.findEntries(ctx, filter, options.Find().SetSort(entryOrder))
}

func (r *ledgerRepository) GetExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	filter := bson.D{{Key: "user_id", Value: userID.String()}, {Key: "kind", Value: models.EntryKindExpense}}
	opts := options.Find().SetSort(entryOrder)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.findEntries(ctx, filter, opts)
}

func (r *ledgerRepository) findEntries(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]models.LedgerEntry, error) {
	cursor, err := r.entries.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	var docs []ledgerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode ledger entries: %w", err)
	}

	entries := make([]models.LedgerEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *ledgerRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	filter := bson.D{{Key: "user_id", Value: userID.String()}, {Key: "month", Value: month}}
	cursor, err := r.totals.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "category", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	var docs []categoryTotalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode category totals: %w", err)
	}

	totals := make([]models.CategoryTotal, 0, len(docs))
	for _, doc := range docs {
		total, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, nil
}

func (r *ledgerRepository) RebuildCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal

	err := r.withTransaction(ctx, func(txCtx context.Context) error {
		filter := bson.D{
			{Key: "user_id", Value: userID.String()},
			{Key: "month", Value: month},
			{Key: "kind", Value: models.EntryKindExpense},
		}
		entries, err := r.findEntries(txCtx, filter, options.Find().SetSort(entryOrder))
		if err != nil {
			return err
		}

		if _, err := r.totals.DeleteMany(txCtx, bson.D{
			{Key: "user_id", Value: userID.String()},
			{Key: "month", Value: month},
		}); err != nil {
			return fmt.Errorf("failed to clear category totals: %w", err)
		}

		totals = models.SumByCategory(userID, month, entries)
		if len(totals) == 0 {
			return nil
		}

		docs := make([]any, 0, len(totals))
		for i := range totals {
			totals[i].PrepareForInsert()
			doc, err := newCategoryTotalDocument(&totals[i])
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		if _, err := r.totals.InsertMany(txCtx, docs); err != nil {
			return fmt.Errorf("failed to store category totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}
