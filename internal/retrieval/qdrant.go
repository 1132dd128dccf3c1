package retrieval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"savings-tracker/internal/config"
	"savings-tracker/internal/models"

	"github.com/qdrant/go-client/qdrant"
)

const DefaultContentKey = "page_content"

var ErrInvalidLimit = errors.New("limit must be positive")

// PointQuerier is the part of the Qdrant client used for similarity lookups
type PointQuerier interface {
	Query(ctx context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
}

// QdrantIndex finds reference products by embedding the query and running a
// nearest-neighbour search against a Qdrant collection.
type QdrantIndex struct {
	points     PointQuerier
	embedder   Embedder
	collection string
	contentKey string
	logger     *slog.Logger
}

// NewQdrantClient opens a gRPC client for the configured Qdrant instance
func NewQdrantClient(cfg *config.QdrantConfig) (*qdrant.Client, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}
	return client, nil
}

func NewQdrantIndex(points PointQuerier, embedder Embedder, collection, contentKey string, logger *slog.Logger) *QdrantIndex {
	if contentKey == "" {
		contentKey = DefaultContentKey
	}
	return &QdrantIndex{
		points:     points,
		embedder:   embedder,
		collection: collection,
		contentKey: contentKey,
		logger:     logger,
	}
}

// TopK returns up to k products closest to query. Points without a text
// payload are skipped.
func (i *QdrantIndex) TopK(ctx context.Context, query string, k int) ([]models.ReferenceProduct, error) {
	if k <= 0 {
		return nil, ErrInvalidLimit
	}

	vector, err := i.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := i.points.Query(ctx, &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQueryDense(vector),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant query: %w", err)
	}

	products := make([]models.ReferenceProduct, 0, len(scored))
	for _, point := range scored {
		content := point.GetPayload()[i.contentKey].GetStringValue()
		if content == "" {
			i.logger.Debug("qdrant point without content payload",
				"collection", i.collection,
				"key", i.contentKey)
			continue
		}
		products = append(products, models.ReferenceProduct{
			Content: content,
			Score:   point.GetScore(),
		})
	}

	return products, nil
}
