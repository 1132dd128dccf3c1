package retrieval

import (
	"context"
	"errors"
	"fmt"

	"savings-tracker/internal/config"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyEmbedding = errors.New("embedding response contained no vectors")

// Embedder turns text into a dense vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbedder calls the OpenAI embeddings endpoint
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEmbedder builds an embedder from the advice configuration. An empty
// base URL keeps the public OpenAI endpoint.
func NewOpenAIEmbedder(cfg *config.AdviceConfig) *OpenAIEmbedder {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	model := openai.AdaEmbeddingV2
	if cfg.EmbeddingModel != "" {
		model = openai.EmbeddingModel(cfg.EmbeddingModel)
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	return resp.Data[0].Embedding, nil
}
