package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/fivetwenty-io/cdg-client/internal/client"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func newClient(t *testing.T, server *httptest.Server, mutate func(*cdg.Config)) *Client {
	t.Helper()

	config := &cdg.Config{APIKey: "KEY", BaseURL: server.URL + "/v3/"}
	if mutate != nil {
		mutate(config)
	}

	client, err := New(config)
	require.NoError(t, err)

	return client
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, cdg.ErrConfigRequired)
	})

	t.Run("requires a credential", func(t *testing.T) {
		t.Parallel()

		_, err := New(&cdg.Config{})
		require.ErrorIs(t, err, cdg.ErrMissingCredential)
	})

	t.Run("empty environment value is missing", func(t *testing.T) {
		t.Parallel()

		_, err := New(&cdg.Config{CredentialLookup: func(string) (string, bool) { return "", true }})
		require.ErrorIs(t, err, cdg.ErrMissingCredential)
	})

	t.Run("creates client with explicit key", func(t *testing.T) {
		t.Parallel()

		client, err := New(&cdg.Config{APIKey: "KEY"})
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Nil(t, client.RateLimiter())
	})

	t.Run("creates client with looked up key", func(t *testing.T) {
		t.Parallel()

		client, err := New(&cdg.Config{CredentialLookup: func(name string) (string, bool) {
			assert.Equal(t, cdg.CredentialEnvVar, name)

			return "ENV", true
		}})
		require.NoError(t, err)

		built, err := client.URL(cdg.CongressCurrent(cdg.NewDetailParams()))
		require.NoError(t, err)
		assert.Equal(t, "https://api.congress.gov/v3/congress/current?format=json&api_key=ENV", built)
	})

	t.Run("rejects an unusable base URL", func(t *testing.T) {
		t.Parallel()

		_, err := New(&cdg.Config{APIKey: "KEY", BaseURL: "ftp://example.com"})
		require.ErrorIs(t, err, cdg.ErrURLConstruction)
	})

	t.Run("creates a rate limiter", func(t *testing.T) {
		t.Parallel()

		client, err := New(&cdg.Config{APIKey: "KEY", RequestsPerHour: 10})
		require.NoError(t, err)
		require.NotNil(t, client.RateLimiter())
		assert.Equal(t, 10, client.RateLimiter().Remaining())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Fetch(t *testing.T) {
	t.Parallel()
	t.Run("member list query order", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v3/member", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "format=json&limit=10&currentMember=true&api_key=KEY", request.URL.RawQuery)

			_, _ = writer.Write([]byte(`{"members":[{"bioguideId":"L000174","name":"Leahy, Patrick J."}],"pagination":{"count":1}}`))
		})

		client := newClient(t, server, nil)
		endpoint := cdg.MemberList(cdg.NewMemberListParams().WithLimit(10).WithCurrentMember(true))

		structural, err := client.Fetch(context.Background(), endpoint)
		require.NoError(t, err)
		assert.Equal(t, []string{"members", "pagination"}, structural.Keys())

		id, ok := structural.Lookup("members.0.bioguideId")
		require.True(t, ok)

		text, _ := id.Str()
		assert.Equal(t, "L000174", text)
	})

	t.Run("requests the URL it reports", func(t *testing.T) {
		t.Parallel()

		var requested atomic.Value

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			requested.Store(request.URL.RequestURI())
			_, _ = writer.Write([]byte(`{"bill":{"number":"3076"}}`))
		})

		client := newClient(t, server, nil)
		endpoint := cdg.BillDetails(117, cdg.BillTypeHR, 3076, cdg.NewDetailParams())

		_, err := client.Fetch(context.Background(), endpoint)
		require.NoError(t, err)

		built, err := client.URL(endpoint)
		require.NoError(t, err)
		assert.Equal(t, server.URL+requested.Load().(string), built)
	})

	t.Run("non-2xx status is a transport error", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":"Unknown resource"}`))
		})

		client := newClient(t, server, nil)

		_, err := client.Fetch(context.Background(), cdg.BillDetails(118, cdg.BillTypeHR, 999999, cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrTransport)
		assert.True(t, cdg.IsNotFound(err))
		assert.NotContains(t, err.Error(), "KEY")
	})

	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		})

		client := newClient(t, server, nil)

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrTransport)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`<html>maintenance</html>`))
		})

		client := newClient(t, server, nil)

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrMalformedBody)
	})

	t.Run("top-level array is malformed", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[1,2,3]`))
		})

		client := newClient(t, server, nil)

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrMalformedBody)
		require.ErrorIs(t, err, cdg.ErrNotAnObject)
	})

	t.Run("invalid identifier never reaches the network", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
		})

		client := newClient(t, server, nil)

		_, err := client.Fetch(context.Background(), cdg.BillDetails(-1, cdg.BillTypeHR, 1, cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrURLConstruction)
		assert.Zero(t, attempts.Load())
	})

	t.Run("credential is resolved once per client", func(t *testing.T) {
		t.Parallel()

		var (
			lookups   atomic.Int32
			requested atomic.Value
		)

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			requested.Store(request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{}`))
		})

		client := newClient(t, server, func(config *cdg.Config) {
			config.APIKey = ""
			config.CredentialLookup = func(string) (string, bool) {
				return fmt.Sprintf("K%d", lookups.Add(1)), true
			}
		})
		assert.Equal(t, int32(1), lookups.Load())

		endpoint := cdg.CongressCurrent(cdg.NewDetailParams())

		built, err := client.URL(endpoint)
		require.NoError(t, err)

		for range 2 {
			_, err = client.Fetch(context.Background(), endpoint)
			require.NoError(t, err)
		}

		assert.Equal(t, int32(1), lookups.Load())
		assert.Equal(t, server.URL+"/v3/congress/current?format=json&api_key=K1", built)
		assert.Equal(t, "format=json&api_key=K1", requested.Load())
	})
}

func TestClient_FetchAs(t *testing.T) {
	t.Parallel()
	t.Run("materializes the bill example", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"bill":{"number":"1234","title":"Example Act"}}`))
		})

		client := newClient(t, server, nil)

		details, _, err := cdg.FetchAs[cdg.BillDetailsResponse](context.Background(), client,
			cdg.BillDetails(118, cdg.BillTypeHR, 1234, cdg.NewDetailParams()))
		require.NoError(t, err)
		require.NotNil(t, details.Bill.Title)
		assert.Equal(t, "Example Act", *details.Bill.Title)
		assert.Nil(t, details.Bill.Summaries)
	})

	t.Run("shape mismatch keeps the structural form", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"bills":"not a list","pagination":{"count":0}}`))
		})

		client := newClient(t, server, nil)

		shape, structural, err := cdg.FetchShape(context.Background(), client, cdg.BillList(cdg.NewListParams()))
		require.Error(t, err)
		assert.True(t, cdg.IsShapeMismatch(err))
		assert.Nil(t, shape)
		require.NotNil(t, structural)
		assert.Contains(t, structural.Render(true), `"bills": "not a list"`)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Interceptors(t *testing.T) {
	t.Parallel()
	t.Run("client-side rate limit", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			_, _ = writer.Write([]byte(`{}`))
		})

		client := newClient(t, server, func(config *cdg.Config) { config.RequestsPerHour = 1 })

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.ErrorIs(t, err, cdg.ErrRateLimitExceeded)
		assert.True(t, cdg.IsRateLimited(err))
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("configured interceptors run", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "trace-1", request.Header.Get("X-Trace"))

			if request.URL.Path == "/v3/bill/118/hr/1" {
				writer.WriteHeader(http.StatusNotFound)

				return
			}

			_, _ = writer.Write([]byte(`{}`))
		})

		collector := cdg.NewMetricsCollector()
		chain := cdg.NewInterceptorChain()
		chain.AddRequestInterceptor(cdg.HeaderInterceptor(map[string]string{"X-Trace": "trace-1"}))
		chain.AddRequestInterceptor(cdg.MetricsRequestInterceptor(collector))
		chain.AddResponseInterceptor(cdg.MetricsResponseInterceptor(collector))

		client := newClient(t, server, func(config *cdg.Config) { config.Interceptors = chain })

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), cdg.BillDetails(118, cdg.BillTypeHR, 1, cdg.NewDetailParams()))
		require.Error(t, err)

		metrics, ok := collector.GetMetrics(cdg.KindCongressCurrent)
		require.True(t, ok)
		assert.Equal(t, int64(1), metrics.TotalRequests)
		assert.Zero(t, metrics.TotalErrors)

		metrics, ok = collector.GetMetrics(cdg.KindBillDetails)
		require.True(t, ok)
		assert.Equal(t, int64(1), metrics.TotalErrors)
	})
}

func TestClient_BuiltInInterceptors(t *testing.T) {
	t.Parallel()
	t.Run("user agent from config", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "cdg-test/2.0", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte(`{}`))
		})

		client := newClient(t, server, func(config *cdg.Config) { config.UserAgent = "cdg-test/2.0" })

		_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
		require.NoError(t, err)
	})

	t.Run("request logging only in debug mode", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		})

		for _, debug := range []bool{false, true} {
			logger := &recordingLogger{}
			client := newClient(t, server, func(config *cdg.Config) {
				config.Logger = logger
				config.Debug = debug
			})

			_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
			require.NoError(t, err)

			if debug {
				assert.Contains(t, logger.messages, "API Request")
			} else {
				assert.NotContains(t, logger.messages, "API Request")
			}

			assert.Contains(t, logger.messages, "API Response")
		}
	})
}

func TestNewTestClient(t *testing.T) {
	t.Parallel()

	server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, TestAPIKey, request.URL.Query().Get("api_key"))
		writer.WriteHeader(http.StatusTooManyRequests)
	})

	client := NewTestClient(server.URL + "/v3/")
	assert.Nil(t, client.RateLimiter())

	_, err := client.Fetch(context.Background(), cdg.CongressCurrent(cdg.NewDetailParams()))
	require.Error(t, err)
	assert.True(t, cdg.IsRateLimited(err))
	assert.False(t, cdg.IsNotFound(err))
}

func TestErrorTypeChecks(t *testing.T) {
	t.Parallel()

	RunErrorTypeTests(t, "IsNotFound", http.StatusNotFound, cdg.IsNotFound)
	RunErrorTypeTests(t, "IsRateLimited", http.StatusTooManyRequests, cdg.IsRateLimited)
}
