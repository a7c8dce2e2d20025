package commands

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membersBody = `{"members":[{"bioguideId":"L000174","district":null,"name":"Leahy, Patrick J.","partyName":"Democratic","state":"Vermont","terms":{"item":[{"chamber":"Senate","startYear":1975}]}},{"bioguideId":"M001157","district":10,"name":"McCaul, Michael T.","partyName":"Republican","state":"Texas","terms":{"item":[{"chamber":"House of Representatives","startYear":2005}]}}],"pagination":{"count":2}}`

const memberDetailsBody = `{"member":{"bioguideId":"L000174","birthYear":"1940","currentMember":false,"directOrderName":"Patrick J. Leahy","partyHistory":[{"partyName":"Democratic","startYear":1975,"endYear":2023}],"state":"Vermont","terms":[{"chamber":"Senate","congress":117,"partyName":"Democratic","stateCode":"VT","startYear":2021,"endYear":2023}]}}`

func TestNewMembersCommand(t *testing.T) {
	cmd := NewMembersCommand()
	assert.Equal(t, "members", cmd.Use)
	assert.Equal(t, []string{"member"}, cmd.Aliases)
	assert.ElementsMatch(t, []string{"list", "get", "current", "sponsored", "cosponsored"}, subcommandNames(cmd))

	current := findSubcommand(cmd, "current")
	require.NotNil(t, current)
	assert.Equal(t, strconv.Itoa(constants.MaxPageLimit), current.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "false", current.Flags().Lookup("all").DefValue)
	assert.Equal(t, "1000", current.Flags().Lookup("max").DefValue)
}

func TestMembersList(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"member": membersBody}))

		stdout, _, err := execute(NewMembersCommand(), "list", "--current")
		require.NoError(t, err)

		assert.Contains(t, stdout, "L000174")
		assert.Contains(t, stdout, "McCaul, Michael T.")
		assert.Contains(t, stdout, "House of Representatives")
		assert.Equal(t, "true", server.last().Query().Get("currentMember"))
	})

	t.Run("current filter is only sent when given", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"member": membersBody}))

		_, _, err := execute(NewMembersCommand(), "list")
		require.NoError(t, err)
		assert.False(t, server.last().Query().Has("currentMember"))
	})

	tests := []struct {
		name string
		args []string
		path string
	}{
		{"by congress", []string{"list", "--congress", "118"}, "/v3/member/congress/118"},
		{"by state", []string{"list", "--state", "mi"}, "/v3/member/MI"},
		{"by district", []string{"list", "--state", "TX", "--district", "10"}, "/v3/member/TX/10"},
		{"by congress and district", []string{"list", "--congress", "97", "--state", "TX", "--district", "10"}, "/v3/member/congress/97/TX/10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(membersBody))
			})

			_, _, err := execute(NewMembersCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.path, server.last().Path)
		})
	}

	t.Run("district needs state", func(t *testing.T) {
		server := newAPIServer(t, routes(nil))

		_, _, err := execute(NewMembersCommand(), "list", "--district", "3")
		require.ErrorIs(t, err, ErrDistrictNeedsState)
		assert.Empty(t, server.recorded())
	})
}

func TestMembersGet(t *testing.T) {
	server := newAPIServer(t, routes(map[string]string{"member/L000174": memberDetailsBody}))

	stdout, _, err := execute(NewMembersCommand(), "get", "l000174")
	require.NoError(t, err)

	assert.Equal(t, "/v3/member/L000174", server.last().Path)
	assert.Contains(t, stdout, "Patrick J. Leahy")
	assert.Contains(t, stdout, "Democratic (1975-2023)")
	assert.Contains(t, stdout, "Terms:")
	assert.Contains(t, stdout, "2021-2023")
}

// pagedMembers serves total current members in pages honoring offset and limit.
func pagedMembers(total int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		items := make([]string, 0, limit)
		for i := offset; i < offset+limit && i < total; i++ {
			items = append(items, fmt.Sprintf(`{"bioguideId":"A%06d","name":"Member %d"}`, i, i))
		}

		_, _ = fmt.Fprintf(w, `{"members":[%s],"pagination":{"count":%d}}`, strings.Join(items, ","), total)
	}
}

func TestMembersCurrent(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		server := newAPIServer(t, pagedMembers(5))

		stdout, stderr, err := execute(NewMembersCommand(), "current", "--limit", "2")
		require.NoError(t, err)

		assert.Contains(t, stdout, "A000001")
		assert.NotContains(t, stdout, "A000002")
		assert.Contains(t, stderr, "Use --offset 2 for the next page")
		require.Len(t, server.recorded(), 1)
		assert.Equal(t, "true", server.last().Query().Get("currentMember"))
	})

	t.Run("all pages", func(t *testing.T) {
		server := newAPIServer(t, pagedMembers(5))
		viper.Set(KeyOutput, constants.FormatYAML)

		stdout, _, err := execute(NewMembersCommand(), "current", "--all", "--limit", "2")
		require.NoError(t, err)

		requests := server.recorded()
		require.Len(t, requests, 3)

		for i, request := range requests {
			assert.Equal(t, strconv.Itoa(i*2), request.Query().Get("offset"))
		}

		assert.Contains(t, stdout, "A000000")
		assert.Contains(t, stdout, "A000004")
		assert.Contains(t, stdout, "count: 5")
	})

	t.Run("max stops early", func(t *testing.T) {
		server := newAPIServer(t, pagedMembers(50))

		stdout, stderr, err := execute(NewMembersCommand(), "current", "--all", "--limit", "2", "--max", "3")
		require.NoError(t, err)

		requests := server.recorded()
		require.Len(t, requests, 2)
		assert.Equal(t, "1", requests[1].Query().Get("limit"))
		assert.Contains(t, stdout, "A000002")
		assert.NotContains(t, stdout, "A000003")
		assert.Contains(t, stderr, "Fetched 3 of 50 current members.")
	})
}

func TestMembersLegislation(t *testing.T) {
	body := `{"sponsoredLegislation":[{"congress":117,"number":"5544"}],"pagination":{"count":1}}`
	server := newAPIServer(t, routes(map[string]string{"member/L000174/sponsored-legislation": body}))

	stdout, _, err := execute(NewMembersCommand(), "sponsored", "L000174")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"number": "5544"`)
	assert.Equal(t, "/v3/member/L000174/sponsored-legislation", server.last().Path)
}
