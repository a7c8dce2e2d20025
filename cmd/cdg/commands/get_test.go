package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand(t *testing.T) {
	cmd := NewGetCommand()
	assert.Equal(t, "get PATH", cmd.Use)
	assert.Equal(t, "Fetch any API path", cmd.Short)

	for _, flag := range []string{"limit", "offset", "from", "to", "sort", "chamber", "year", "month", "day", "current-member", "conference", "shape"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "Flag %s should exist", flag)
	}

	t.Run("only given parameters are sent", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"congressional-record": `{"Results":{"Issues":[]}}`}))

		stdout, _, err := execute(NewGetCommand(), "/congressional-record/", "--year", "2022", "--month", "6", "--day", "28", "--limit", "5")
		require.NoError(t, err)

		request := server.last()
		assert.Equal(t, "/v3/congressional-record", request.Path)
		assert.Equal(t, "format=json&year=2022&month=6&day=28&limit=5&api_key=TESTKEY", request.RawQuery)
		assert.Contains(t, stdout, `"Issues": []`)
	})

	t.Run("chamber and booleans", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"committee-report": `{"reports":[]}`}))

		_, _, err := execute(NewGetCommand(), "committee-report", "--conference", "--current-member=false", "--chamber", "House")
		require.NoError(t, err)

		query := server.last().Query()
		assert.Equal(t, "true", query.Get("conference"))
		assert.Equal(t, "false", query.Get("currentMember"))
		assert.Equal(t, "house", query.Get("chamber"))
	})

	t.Run("invalid path", func(t *testing.T) {
		server := newAPIServer(t, routes(nil))

		_, _, err := execute(NewGetCommand(), "bill/../member")
		require.ErrorIs(t, err, cdg.ErrURLConstruction)
		assert.Empty(t, server.recorded())
	})

	t.Run("invalid limit", func(t *testing.T) {
		newAPIServer(t, routes(nil))

		_, _, err := execute(NewGetCommand(), "bill", "--limit", "1000")
		require.ErrorIs(t, err, constants.ErrLimitOutOfRange)
	})

	t.Run("shape check passes quietly", func(t *testing.T) {
		newAPIServer(t, routes(map[string]string{"committee/house": `{"committees":[{"systemCode":"hsag00"}]}`}))

		stdout, stderr, err := execute(NewGetCommand(), "committee/house", "--shape", "committees")
		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, "hsag00")
	})

	t.Run("shape mismatch warns", func(t *testing.T) {
		newAPIServer(t, routes(map[string]string{"committee/house": `{"committees":{"count":0}}`}))

		stdout, stderr, err := execute(NewGetCommand(), "committee/house", "--shape", "committees")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Warning:")
		assert.Contains(t, stdout, `"count": 0`)
	})

	t.Run("unknown shape", func(t *testing.T) {
		server := newAPIServer(t, routes(nil))

		_, _, err := execute(NewGetCommand(), "bill", "--shape", "everything")
		require.ErrorIs(t, err, cdg.ErrUnknownShape)
		assert.Empty(t, server.recorded())
	})
}

func TestPathsCommand(t *testing.T) {
	t.Run("json lists every kind", func(t *testing.T) {
		resetViper(t)
		viper.Set(KeyOutput, constants.FormatJSON)

		stdout, _, err := execute(NewPathsCommand())
		require.NoError(t, err)

		var entries []pathEntry
		require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
		require.Len(t, entries, len(cdg.Kinds()))

		assert.Equal(t, pathEntry{Kind: "bill-list", Shape: "bills", Path: "bill"}, entries[0])
	})

	t.Run("filter", func(t *testing.T) {
		resetViper(t)

		stdout, _, err := execute(NewPathsCommand(), "--filter", "TREATY")
		require.NoError(t, err)

		assert.Contains(t, stdout, "treaty-list")
		assert.Contains(t, stdout, "treaty/114/13/A/actions")
		assert.NotContains(t, stdout, "bill-list")
		assert.Positive(t, strings.Count(stdout, "treaty-"))
	})
}
