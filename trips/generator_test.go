package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RahimHoxha/travel-agency/config"
)

func testRequest() TripRequest {
	return TripRequest{
		Country:      "Japan",
		NumberOfDays: 5,
		TravelStyle:  "Luxury",
		Interests:    "food",
		Budget:       "High",
		GroupType:    "Solo",
		UserID:       "u1",
	}
}

func completionServer(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGenerator(config.Config{
		GroqAPIKey:  "test-key",
		GroqBaseURL: srv.URL,
		GroqModel:   "llama-3.1-8b-instant",
	})
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "llama-3.1-8b-instant",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestGenerateParsesDirectJSON(t *testing.T) {
	var captured map[string]any
	gen := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionBody(`{"name":"Tokyo Nights","duration":5}`))
	})

	out, err := gen.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Tokyo Nights","duration":5}`, string(out))

	require.Equal(t, "llama-3.1-8b-instant", captured["model"])
	require.InDelta(t, 0.7, captured["temperature"].(float64), 0.001)
	require.Len(t, captured["messages"], 2)
}

func TestGenerateRecoversFencedJSON(t *testing.T) {
	gen := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionBody("Here you go:\n```json\n{\"name\":\"Tokyo Nights\"}\n```"))
	})

	out, err := gen.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Tokyo Nights"}`, string(out))
}

func TestGenerateNonJSONContent(t *testing.T) {
	gen := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionBody("I am unable to produce an itinerary."))
	})

	_, err := gen.Generate(context.Background(), testRequest())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	gen := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := gen.Generate(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	gen := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens"}}`))
	})

	_, err := gen.Generate(context.Background(), testRequest())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusTooManyRequests, upstream.Status)
	require.Equal(t, MsgRateLimited, UserMessage(err))
}
