package commands

import (
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const congressBody = `{"congress":{"endYear":"2024","name":"118th Congress","number":118,"sessions":[{"chamber":"House of Representatives","number":1,"startDate":"2023-01-03","endDate":"2024-01-03","type":"R"},{"chamber":"Senate","number":1,"startDate":"2023-01-03","endDate":"2024-01-03","type":"R"},{"chamber":"House of Representatives","number":2,"startDate":"2024-01-03","type":"R"}],"startYear":"2023"}}`

func TestNewCongressCommand(t *testing.T) {
	cmd := NewCongressCommand()
	assert.Equal(t, "congress", cmd.Use)
	assert.ElementsMatch(t, []string{"current", "list", "get"}, subcommandNames(cmd))

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.Equal(t, "get CONGRESS", get.Use)
	assert.Equal(t, "Get congress details", get.Short)
}

func TestCongressCurrent(t *testing.T) {
	server := newAPIServer(t, routes(map[string]string{"congress/current": congressBody}))

	stdout, _, err := execute(NewCongressCommand(), "current")
	require.NoError(t, err)

	assert.Equal(t, "/v3/congress/current", server.last().Path)
	assert.Contains(t, stdout, "Congress Details:")
	assert.Contains(t, stdout, "118th Congress")
	assert.Contains(t, stdout, "Sessions:")
	assert.Contains(t, stdout, "House Of Representatives")
	assert.Contains(t, stdout, constants.NotAvailable)
}

func TestCongressGet(t *testing.T) {
	server := newAPIServer(t, routes(map[string]string{"congress/117": `{"congress":{"name":"117th Congress","number":117}}`}))
	viper.Set(KeyOutput, constants.FormatJSON)
	viper.Set(KeyPretty, true)

	stdout, _, err := execute(NewCongressCommand(), "get", "117")
	require.NoError(t, err)

	assert.Equal(t, "/v3/congress/117", server.last().Path)
	assert.Equal(t, "{\n  \"congress\": {\n    \"name\": \"117th Congress\",\n    \"number\": 117\n  }\n}\n", stdout)

	_, _, err = execute(NewCongressCommand(), "get", "0")
	require.ErrorIs(t, err, constants.ErrInvalidNumber)
}

func TestCongressList(t *testing.T) {
	body := `{"congresses":[{"name":"118th Congress","startYear":"2023","endYear":"2024","sessions":[{"chamber":"House of Representatives","number":1},{"chamber":"Senate","number":1},{"chamber":"House of Representatives","number":2}]}],"pagination":{"count":118}}`
	server := newAPIServer(t, routes(map[string]string{"congress": body}))

	stdout, stderr, err := execute(NewCongressCommand(), "list", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "House Of Representatives 1, 2; Senate 1")
	assert.Contains(t, stderr, "Showing 1-1 of 118")
	assert.Equal(t, "1", server.last().Query().Get("limit"))
}

func TestSessionSummary(t *testing.T) {
	one, two := 1, 2
	house, senate := "House of Representatives", "Senate"

	sessions := []cdg.Session{
		{Chamber: &senate, Number: &one},
		{Chamber: &house, Number: &one},
		{Chamber: &senate, Number: &two},
	}

	assert.Equal(t, "Senate 1, 2; House Of Representatives 1", sessionSummary(sessions))
	assert.Empty(t, sessionSummary(nil))
}
