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

type salaryRepository struct {
	records *mongo.Collection
}

func (r *salaryRepository) Upsert(ctx context.Context, record *models.SalaryRecord) error {
	if record == nil {
		return errors.New("salary record cannot be nil")
	}

	record.PrepareForInsert()
	if err := record.Validate(); err != nil {
		return err
	}

	amount, err := toDecimal128(record.Amount)
	if err != nil {
		return err
	}

	filter := bson.D{
		{Key: "user_id", Value: record.UserID.String()},
		{Key: "effective_month", Value: record.EffectiveMonth},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "amount", Value: amount},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: record.ID.String()},
			{Key: "created_at", Value: record.CreatedAt},
		}},
	}

	if _, err := r.records.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save salary record: %w", err)
	}
	return nil
}

func (r *salaryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.SalaryRecord, error) {
	cursor, err := r.records.Find(ctx,
		bson.D{{Key: "user_id", Value: userID.String()}},
		options.Find().SetSort(bson.D{{Key: "effective_month", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary records: %w", err)
	}

	var docs []salaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode salary records: %w", err)
	}

	records := make([]models.SalaryRecord, 0, len(docs))
	for _, doc := range docs {
		record, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
