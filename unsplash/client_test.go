package unsplash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func searchServer(t *testing.T, requests *int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		require.Equal(t, "/search/photos", r.URL.Path)
		require.Equal(t, "secret", r.URL.Query().Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient("secret", srv.URL)
}

func TestSearchPhotoURLsMapsRegularURLs(t *testing.T) {
	var requests int
	client := searchServer(t, &requests, `{"results":[
		{"urls":{"regular":"https://img/1"}},
		{"urls":{"regular":"https://img/2"}},
		{"urls":{}},
		{"urls":{"regular":"https://img/4"}}
	]}`)

	urls, err := client.SearchPhotoURLs(context.Background(), "Japan food Luxury", 3)
	require.NoError(t, err)

	require.Len(t, urls, 3)
	require.Equal(t, "https://img/1", *urls[0])
	require.Equal(t, "https://img/2", *urls[1])
	require.Nil(t, urls[2])
}

func TestSearchPhotoURLsShortResults(t *testing.T) {
	var requests int
	client := searchServer(t, &requests, `{"results":[{"urls":{"regular":"https://img/1"}}]}`)

	urls, err := client.SearchPhotoURLs(context.Background(), "Japan", 3)
	require.NoError(t, err)
	require.Len(t, urls, 1)
}

func TestSearchPhotoURLsNoResults(t *testing.T) {
	var requests int
	client := searchServer(t, &requests, `{"results":[]}`)

	urls, err := client.SearchPhotoURLs(context.Background(), "Japan", 3)
	require.NoError(t, err)
	require.Empty(t, urls)
}

func TestSearchPhotoURLsCachesIdenticalQueries(t *testing.T) {
	var requests int
	client := searchServer(t, &requests, `{"results":[{"urls":{"regular":"https://img/1"}}]}`)

	_, err := client.SearchPhotoURLs(context.Background(), "Japan food Luxury", 3)
	require.NoError(t, err)

	// Case and spacing variations hit the same entry.
	urls, err := client.SearchPhotoURLs(context.Background(), "  japan   FOOD luxury ", 3)
	require.NoError(t, err)

	require.Equal(t, 1, requests)
	require.Len(t, urls, 1)
}

func TestSearchPhotoURLsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Rate Limit Exceeded"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient("secret", srv.URL)

	_, err := client.SearchPhotoURLs(context.Background(), "Japan", 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsplash search failed")
	require.Contains(t, err.Error(), "403")
}
