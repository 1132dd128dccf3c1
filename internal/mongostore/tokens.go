package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type blacklistedTokenRepository struct {
	tokens *mongo.Collection
}

func (r *blacklistedTokenRepository) Create(ctx context.Context, token *models.BlacklistedToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.BlacklistedAt = time.Now().UTC()

	doc := blacklistedTokenDocument{
		ID:            token.ID.String(),
		JTI:           token.JTI,
		UserID:        token.UserID.String(),
		ExpiresAt:     token.ExpiresAt,
		BlacklistedAt: token.BlacklistedAt,
	}
	if _, err := r.tokens.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *blacklistedTokenRepository) GetByJTI(ctx context.Context, jti string) (*models.BlacklistedToken, error) {
	var doc blacklistedTokenDocument
	if err := r.tokens.FindOne(ctx, bson.M{"jti": jti}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get blacklisted token: %w", err)
	}
	return doc.toModel()
}

func (r *blacklistedTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.tokens.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return result.DeletedCount, nil
}
