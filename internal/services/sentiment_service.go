// internal/services/sentiment_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/NipunRaj96/Vouch-IT/internal/config"
	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

const sentimentPrompt = `Analyze the sentiment of the following product review and respond with ONLY "positive", "negative", or "neutral".
Review: %q`

// SentimentClassifier labels review text. Implementations never fail outward;
// any classification trouble degrades to the neutral label.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) models.Sentiment
}

type SentimentService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewSentimentService builds the Gemini-backed classifier. The credential
// comes from config only; when it is missing or the client cannot be built
// the service still works and classifies everything as neutral.
func NewSentimentService(cfg config.GeminiConfig) *SentimentService {
	s := &SentimentService{
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	if cfg.APIKey == "" {
		logrus.Warn("Gemini API key not configured, sentiment classification degrades to neutral")
		return s
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create Gemini client, sentiment classification degrades to neutral")
		return s
	}

	s.client = client
	return s
}

// Classify sends the review text to the model and maps the response onto a
// sentiment label. One outbound call per invocation, no retry, no caching.
// The caller is responsible for rejecting empty text before invoking it.
// The remote endpoint mandates no timeout of its own, so the configured
// per-call deadline bounds the wait.
func (s *SentimentService) Classify(ctx context.Context, text string) models.Sentiment {
	if s.client == nil {
		return models.SentimentNeutral
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(fmt.Sprintf(sentimentPrompt, text)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)},
	)
	if err != nil {
		logrus.WithError(err).Warn("Sentiment classification failed, falling back to neutral")
		return models.SentimentNeutral
	}

	return models.ParseSentiment(resp.Text())
}
