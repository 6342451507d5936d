package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*NominatimClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewNominatimClient(server.URL, 2*time.Second, nil)
	return client, server
}

func TestNominatimClient_Resolve(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"52.5170365","lon":"13.3888599"},{"lat":"1.0","lon":"2.0"}]`))
	})
	defer server.Close()

	coords, err := client.Resolve(context.Background(), "Berlin, Germany")

	assert.NoError(t, err)
	assert.Equal(t, "Berlin, Germany", gotQuery)
	// Only the first candidate is used.
	assert.Equal(t, 52.5170365, coords.Lat)
	assert.Equal(t, 13.3888599, coords.Lng)
}

func TestNominatimClient_Resolve_EmptyResultSet(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	_, err := client.Resolve(context.Background(), "nowhere in particular")
	assert.Error(t, err)
}

func TestNominatimClient_Resolve_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>busy</html>`},
		{name: "unparseable latitude", body: `[{"lat":"not-a-number","lon":"13.38"}]`},
		{name: "unparseable longitude", body: `[{"lat":"52.51","lon":""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			_, err := client.Resolve(context.Background(), "Berlin")
			assert.Error(t, err)
		})
	}
}

func TestNominatimClient_Resolve_UpstreamErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		defer server.Close()

		_, err := client.Resolve(context.Background(), "Berlin")
		assert.Error(t, err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := NewNominatimClient(server.URL, time.Second, nil)
		_, err := client.Resolve(context.Background(), "Berlin")
		assert.Error(t, err)
	})
}
