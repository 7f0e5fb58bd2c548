package discourse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at the given endpoint with admin
// credentials set.
func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	client, err := NewClient(&Config{
		Endpoint: endpoint,
		Username: "system",
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
		Logger:   hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(&Config{
		Endpoint: "https://forum.example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.logger)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid discourse client config")
}

func TestClient_UnreachableEndpoint_AllOperations(t *testing.T) {
	// Reserve a port then close it so every request fails at the
	// transport level.
	mockServer := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := mockServer.URL
	mockServer.Close()

	client := newTestClient(t, endpoint)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"LookupUserID", func() error {
			_, err := client.LookupUserID(ctx, "jdoe")
			return err
		}},
		{"LookupUser", func() error {
			_, err := client.LookupUser(ctx, "jdoe")
			return err
		}},
		{"CreateUser", func() error {
			_, err := client.CreateUser(ctx, "jdoe", "j@example.com", "password1234")
			return err
		}},
		{"DeactivateUser", func() error {
			_, err := client.DeactivateUser(ctx, "jdoe")
			return err
		}},
		{"ReactivateUser", func() error {
			_, err := client.ReactivateUser(ctx, "jdoe")
			return err
		}},
		{"GenerateUserAPIKey", func() error {
			_, err := client.GenerateUserAPIKey(ctx, 42)
			return err
		}},
		{"RevokeUserAPIKey", func() error {
			_, err := client.RevokeUserAPIKey(ctx, 42)
			return err
		}},
		{"CreateCommunityTopic", func() error {
			_, err := client.CreateCommunityTopic(ctx, "general", "0088CC")
			return err
		}},
		{"CreateCategory", func() error {
			_, err := client.CreateCategory(ctx, "general", "0088CC", 0, "", "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr),
				"expected *RequestError, got %T: %v", err, err)
			assert.NotEmpty(t, reqErr.Op)
			assert.NotNil(t, reqErr.Err)
		})
	}
}

func TestClient_MissingCredentials_PrivilegedOperations(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the server without credentials")
		}))
	defer mockServer.Close()

	client, err := NewClient(&Config{
		Endpoint: mockServer.URL,
		Logger:   hclog.NewNullLogger(),
	})
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"CreateUser", func() error {
			_, err := client.CreateUser(ctx, "jdoe", "j@example.com", "password1234")
			return err
		}},
		{"DeactivateUser", func() error {
			_, err := client.DeactivateUser(ctx, "jdoe")
			return err
		}},
		{"GenerateUserAPIKey", func() error {
			_, err := client.GenerateUserAPIKey(ctx, 42)
			return err
		}},
		{"RevokeUserAPIKey", func() error {
			_, err := client.RevokeUserAPIKey(ctx, 42)
			return err
		}},
		{"CreateCategory", func() error {
			_, err := client.CreateCategory(ctx, "general", "0088CC", 0, "", "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestClient_LookupWithoutCredentials(t *testing.T) {
	// Unauthenticated lookups only need the endpoint; no credentials are
	// sent when none are configured.
	mockServer := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("api_key"))
			assert.Empty(t, r.URL.Query().Get("api_username"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"user": {"id": 1, "username": "jdoe"}}`))
		}))
	defer mockServer.Close()

	client, err := NewClient(&Config{
		Endpoint: mockServer.URL,
		Logger:   hclog.NewNullLogger(),
	})
	require.NoError(t, err)

	lookup, err := client.LookupUser(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.True(t, lookup.Found)
}

func TestClient_TrailingSlashEndpoint(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/jdoe.json", r.URL.Path)
			w.Write([]byte(`{"user": {"id": 1}}`))
		}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL+"/")

	_, err := client.LookupUser(context.Background(), "jdoe")
	require.NoError(t, err)
}
