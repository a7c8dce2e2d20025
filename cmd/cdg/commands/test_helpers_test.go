package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// apiServer is a fake Congress.gov API recording every request it receives.
type apiServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
}

func (s *apiServer) recorded() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*url.URL(nil), s.requests...)
}

func (s *apiServer) last() *url.URL {
	requests := s.recorded()
	if len(requests) == 0 {
		return nil
	}

	return requests[len(requests)-1]
}

// newAPIServer serves handler below /v3/ and points the CLI configuration at it.
func newAPIServer(t *testing.T, handler http.HandlerFunc) *apiServer {
	t.Helper()

	server := &apiServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.mu.Lock()
		copied := *r.URL
		server.requests = append(server.requests, &copied)
		server.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(server.Close)

	resetViper(t)
	viper.Set(KeyAPIKey, "TESTKEY")
	viper.Set(KeyBaseURL, server.URL+"/v3/")

	return server
}

// routes answers each API path (without the /v3/ prefix) with a canned body.
func routes(bodies map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[strings.TrimPrefix(r.URL.Path, "/v3/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Unknown resource"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	viper.Set(KeyOutput, "table")
	t.Cleanup(viper.Reset)
}

// execute runs cmd as a root command and captures its output.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}
