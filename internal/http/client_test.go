package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dixahttp "github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/conversations/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer tok_123", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"data": map[string]interface{}{"id": 42, "state": "Open"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123")

		req := &dixahttp.Request{
			Method: "GET",
			Path:   "/v1/conversations/42",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result struct {
			Data struct {
				ID    int64  `json:"id"`
				State string `json:"state"`
			} `json:"data"`
		}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.Data.ID)
		assert.Equal(t, "Open", result.Data.State)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/endusers", request.URL.Path)
			assert.Equal(t, "email=jane%40example.com", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123")

		req := &dixahttp.Request{
			Method: "GET",
			Path:   "/v1/endusers",
			Query:  url.Values{"email": []string{"jane@example.com"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Jane Doe", body["displayName"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123")

		req := &dixahttp.Request{
			Method: "POST",
			Path:   "/v1/endusers",
			Body:   map[string]string{"displayName": "Jane Doe"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Conversation not found"}`))
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123")

		req := &dixahttp.Request{
			Method: "GET",
			Path:   "/v1/conversations/999999",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &dixa.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Conversation not found", apiErr.Message)
		assert.JSONEq(t, `{"message":"Conversation not found"}`, string(apiErr.Body))
		assert.True(t, dixa.IsNotFound(err))
	})

	t.Run("transport failure is not an API error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close() // Connection refused from here on.

		client := dixahttp.NewClient(server.URL, "tok_123",
			dixahttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

		_, err := client.Get(context.Background(), "/v1/agents", nil)
		require.Error(t, err)

		apiErr := &dixa.APIError{}
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123")

		req := &dixahttp.Request{
			Method: "GET",
			Path:   "/v1/agents",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dixahttp.NewClient(server.URL, "tok_123", dixahttp.WithLogger(logger), dixahttp.WithDebug(true))

		req := &dixahttp.Request{
			Method: "GET",
			Path:   "/v1/agents",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_CredentialOnEveryRequest(t *testing.T) {
	t.Parallel()

	var seen []string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = append(seen, request.Header.Get("Authorization"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := dixahttp.NewClient(server.URL, "tok_123")
	ctx := context.Background()

	_, err := client.Get(ctx, "/v1/agents", nil)
	require.NoError(t, err)
	_, err = client.Post(ctx, "/v1/endusers", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	_, err = client.Delete(ctx, "/v1/teams/t1", nil)
	require.NoError(t, err)

	require.Len(t, seen, 3)

	for _, header := range seen {
		assert.Equal(t, "Bearer tok_123", header)
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*dixahttp.Client, context.Context) (*dixahttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *dixahttp.Client, ctx context.Context) (*dixahttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *dixahttp.Client, ctx context.Context) (*dixahttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *dixahttp.Client, ctx context.Context) (*dixahttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *dixahttp.Client, ctx context.Context) (*dixahttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *dixahttp.Client, ctx context.Context) (*dixahttp.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := dixahttp.NewClient(server.URL, "tok_123")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123", dixahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123", dixahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("returns API error when retries are exhausted", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message": "boom"}`))
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123", dixahttp.WithRetryConfig(1, time.Millisecond, 2*time.Millisecond))

		resp, err := client.Get(context.Background(), "/v1/agents", nil)
		require.Error(t, err)

		// The last attempt's status and body must survive retry exhaustion.
		require.NotNil(t, resp)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 2, attempts)

		var apiErr *dixa.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Message)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := dixahttp.NewClient(server.URL, "tok_123", dixahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})
}

func TestClient_HTTPTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := dixahttp.NewClient(server.URL, "tok_123",
		dixahttp.WithHTTPTimeout(20*time.Millisecond),
		dixahttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	resp, err := client.Get(context.Background(), "/v1/agents", nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	// A timed-out exchange is a transport failure, not an API error.
	var apiErr *dixa.APIError
	assert.False(t, errors.As(err, &apiErr))
}
