package commands

import (
	"testing"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommandGroups(t *testing.T) {
	groups := map[string][]string{
		NewNominationsCommand().Name(): subcommandNames(NewNominationsCommand()),
		NewTreatiesCommand().Name():    subcommandNames(NewTreatiesCommand()),
		NewCommitteesCommand().Name():  subcommandNames(NewCommitteesCommand()),
		NewLawsCommand().Name():        subcommandNames(NewLawsCommand()),
		NewAmendmentsCommand().Name():  subcommandNames(NewAmendmentsCommand()),
	}

	assert.ElementsMatch(t, []string{"list", "get"}, groups["nominations"])
	assert.ElementsMatch(t, []string{"list", "get"}, groups["treaties"])
	assert.ElementsMatch(t, []string{"list", "get"}, groups["committees"])
	assert.ElementsMatch(t, []string{"list"}, groups["laws"])
	assert.ElementsMatch(t, []string{"list", "get"}, groups["amendments"])
}

func TestNominationsList(t *testing.T) {
	body := `{"nominations":[{"citation":"PN2467","congress":117,"description":"Jane Doe, of Ohio, to be an Assistant Secretary","latestAction":{"actionDate":"2022-08-03","text":"Received in the Senate."},"number":2467,"receivedDate":"2022-08-03"}],"pagination":{"count":1}}`

	t.Run("all congresses", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"nomination": body}))

		stdout, _, err := execute(NewNominationsCommand(), "list", "--sort", "desc")
		require.NoError(t, err)

		assert.Contains(t, stdout, "PN2467")
		assert.Contains(t, stdout, "Received in the Senate.")
		assert.Equal(t, "updateDate desc", server.last().Query().Get("sort"))
	})

	t.Run("one congress", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"nomination/117": body}))

		_, _, err := execute(NewNominationsCommand(), "list", "--congress", "117")
		require.NoError(t, err)
		assert.Equal(t, "/v3/nomination/117", server.last().Path)
	})
}

func TestNominationsGet(t *testing.T) {
	server := newAPIServer(t, routes(map[string]string{"nomination/117/2467-1": `{"nomination":{"citation":"PN2467-1"}}`}))

	stdout, _, err := execute(NewNominationsCommand(), "get", "117", "2467-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PN2467-1")
	assert.Equal(t, "/v3/nomination/117/2467-1", server.last().Path)
}

func TestTreaties(t *testing.T) {
	body := `{"treaties":[{"congressReceived":114,"number":13,"suffix":"A","topic":"Extradition","transmittedDate":"2016-09-06T00:00:00Z"},{"congressReceived":117,"number":3,"suffix":"","topic":"Law Enforcement"}],"pagination":{"count":2}}`

	t.Run("list", func(t *testing.T) {
		newAPIServer(t, routes(map[string]string{"treaty": body}))

		stdout, _, err := execute(NewTreatiesCommand(), "list")
		require.NoError(t, err)

		assert.Contains(t, stdout, "13A")
		assert.Contains(t, stdout, "Extradition")
		assert.Contains(t, stdout, "N/A")
	})

	t.Run("partitioned details", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"treaty/114/13/A": `{"treaty":{"number":13,"suffix":"A"}}`}))

		_, _, err := execute(NewTreatiesCommand(), "get", "114", "13", "--suffix", "A")
		require.NoError(t, err)
		assert.Equal(t, "/v3/treaty/114/13/A", server.last().Path)
	})
}

func TestCommitteesList(t *testing.T) {
	body := `{"committees":[{"chamber":"Senate","committeeTypeCode":"Standing","name":"Finance Committee","systemCode":"ssfi00","subcommittees":[{"name":"Taxation","systemCode":"ssfi11"}]}]}`

	tests := []struct {
		name string
		args []string
		path string
	}{
		{"all", []string{"list"}, "/v3/committee"},
		{"chamber", []string{"list", "--chamber", "Senate"}, "/v3/committee/senate"},
		{"congress", []string{"list", "--congress", "118"}, "/v3/committee/118"},
		{"congress and chamber", []string{"list", "--congress", "118", "--chamber", "senate"}, "/v3/committee/118/senate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newAPIServer(t, routes(map[string]string{tt.path[len("/v3/"):]: body}))

			stdout, _, err := execute(NewCommitteesCommand(), tt.args...)
			require.NoError(t, err)

			assert.Equal(t, tt.path, server.last().Path)
			assert.Contains(t, stdout, "ssfi00")
			assert.Contains(t, stdout, "Finance Committee")
		})
	}

	t.Run("unknown chamber", func(t *testing.T) {
		server := newAPIServer(t, routes(nil))

		_, _, err := execute(NewCommitteesCommand(), "list", "--chamber", "upper")
		require.ErrorIs(t, err, cdg.ErrUnknownEnumValue)
		assert.Empty(t, server.recorded())
	})
}

func TestCommitteesGet(t *testing.T) {
	server := newAPIServer(t, routes(map[string]string{"committee/house/hspw00": `{"committee":{"systemCode":"hspw00"}}`}))

	_, _, err := execute(NewCommitteesCommand(), "get", "house", "HSPW00")
	require.NoError(t, err)
	assert.Equal(t, "/v3/committee/house/hspw00", server.last().Path)
}

func TestLawsList(t *testing.T) {
	body := `{"bills":[{"congress":117,"laws":[{"number":"117-108","type":"Public Law"}],"number":"3076","title":"Postal Service Reform Act of 2022","type":"HR"}],"pagination":{"count":1}}`

	t.Run("by type", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"law/117/pub": body}))

		stdout, _, err := execute(NewLawsCommand(), "list", "117", "--type", "PUB")
		require.NoError(t, err)

		assert.Equal(t, "/v3/law/117/pub", server.last().Path)
		assert.Contains(t, stdout, "Public Law 117-108")
		assert.Contains(t, stdout, "HR 3076")
	})

	t.Run("congress is required", func(t *testing.T) {
		newAPIServer(t, routes(nil))

		_, _, err := execute(NewLawsCommand(), "list")
		require.Error(t, err)
	})
}

func TestAmendments(t *testing.T) {
	body := `{"amendments":[{"congress":117,"number":"2137","purpose":"In the nature of a substitute.","type":"SAMDT","latestAction":{"actionDate":"2021-08-08"}}]}`

	t.Run("list by type", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"amendment/117/samdt": body}))

		stdout, _, err := execute(NewAmendmentsCommand(), "list", "--congress", "117", "--type", "samdt")
		require.NoError(t, err)

		assert.Equal(t, "/v3/amendment/117/samdt", server.last().Path)
		assert.Contains(t, stdout, "SAMDT 2137")
		assert.Contains(t, stdout, "In the nature of a substitute.")
	})

	t.Run("type needs congress", func(t *testing.T) {
		newAPIServer(t, routes(nil))

		_, _, err := execute(NewAmendmentsCommand(), "list", "--type", "hamdt")
		require.ErrorIs(t, err, ErrTypeNeedsCongress)
	})

	t.Run("details", func(t *testing.T) {
		server := newAPIServer(t, routes(map[string]string{"amendment/117/samdt/2137": `{"amendment":{"number":"2137"}}`}))

		_, _, err := execute(NewAmendmentsCommand(), "get", "117", "SAMDT", "2137")
		require.NoError(t, err)
		assert.Equal(t, "/v3/amendment/117/samdt/2137", server.last().Path)
	})
}
