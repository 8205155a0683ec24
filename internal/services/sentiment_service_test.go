// internal/services/sentiment_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NipunRaj96/Vouch-IT/internal/config"
	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

func fakeGeminiServer(reply string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + reply + `"}]}}]}`))
	}))
}

func newTestSentimentService(baseURL string) *SentimentService {
	return NewSentimentService(config.GeminiConfig{
		APIKey:         "test-key",
		Model:          "gemini-2.0-flash",
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	})
}

func TestClassifyMapsModelReply(t *testing.T) {
	tests := []struct {
		reply string
		want  models.Sentiment
	}{
		{"positive", models.SentimentPositive},
		{"Negative", models.SentimentNegative},
		{"NEUTRAL", models.SentimentNeutral},
		{"The sentiment is positive.", models.SentimentPositive},
		{"mostly negative", models.SentimentNegative},
		{"I cannot tell", models.SentimentNeutral},
	}

	for _, tt := range tests {
		server := fakeGeminiServer(tt.reply)
		svc := newTestSentimentService(server.URL)

		got := svc.Classify(context.Background(), "Great product!")

		assert.Equal(t, tt.want, got, "reply %q", tt.reply)
		server.Close()
	}
}

func TestClassifyServerErrorFallsBackToNeutral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestSentimentService(server.URL)

	got := svc.Classify(context.Background(), "Terrible.")

	assert.Equal(t, models.SentimentNeutral, got)
}

func TestClassifyUnreachableEndpointFallsBackToNeutral(t *testing.T) {
	server := fakeGeminiServer("positive")
	server.Close()

	svc := newTestSentimentService(server.URL)

	got := svc.Classify(context.Background(), "Loved it.")

	assert.Equal(t, models.SentimentNeutral, got)
}

func TestClassifyWithoutAPIKeyIsNeutral(t *testing.T) {
	svc := NewSentimentService(config.GeminiConfig{
		Model:          "gemini-2.0-flash",
		TimeoutSeconds: 5,
	})

	got := svc.Classify(context.Background(), "Loved it.")

	assert.Equal(t, models.SentimentNeutral, got)
}
