package cdg_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL_MemberList(t *testing.T) {
	t.Parallel()

	endpoint := cdg.MemberList(cdg.NewMemberListParams().WithCurrentMember(true).WithLimit(10))

	built, err := cdg.BuildURL("", endpoint, "KEY")
	require.NoError(t, err)
	assert.Equal(t, "https://api.congress.gov/v3/member?format=json&limit=10&currentMember=true&api_key=KEY", built)
}

func TestBuildURL_ParameterFamilies(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	titles, err := cdg.BuildURL("", cdg.BillTitles(117, cdg.BillTypeHR, 3076, cdg.NewWindowParams().WithFromDateTime(from)), "KEY")
	require.NoError(t, err)
	assert.Equal(t, "https://api.congress.gov/v3/bill/117/hr/3076/titles?format=json&fromDateTime=2024-01-02T03%3A04%3A05Z&api_key=KEY", titles)

	reports, err := cdg.BuildURL("", cdg.CommitteeReports(cdg.ChamberHouse, "hspw00", cdg.NewPageParams().WithOffset(20).WithLimit(5)), "KEY")
	require.NoError(t, err)
	assert.Equal(t, "https://api.congress.gov/v3/committee/house/hspw00/reports?format=json&offset=20&limit=5&api_key=KEY", reports)
}

func TestBuildURL_Deterministic(t *testing.T) {
	t.Parallel()

	for _, endpoint := range cdg.ExampleEndpoints() {
		first, err := cdg.BuildURL(cdg.DefaultBaseURL, endpoint, "KEY")
		require.NoError(t, err, endpoint.Kind().String())

		second, err := cdg.BuildURL(cdg.DefaultBaseURL, endpoint, "KEY")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, strings.HasSuffix(first, "api_key=KEY"), first)
		assert.Equal(t, 1, strings.Count(first, "api_key="), first)
	}
}

func TestBuildURL_Credential(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := cdg.BuildURL("", cdg.BillList(cdg.NewListParams()), "")
		require.ErrorIs(t, err, cdg.ErrMissingCredential)
	})

	t.Run("escaped", func(t *testing.T) {
		t.Parallel()

		built, err := cdg.BuildURL("", cdg.BillList(cdg.NewListParams()), "a&b=c")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(built, "?format=json&api_key=a%26b%3Dc"), built)
	})

	t.Run("only parameter", func(t *testing.T) {
		t.Parallel()

		built, err := cdg.BuildURL("", cdg.BillList(cdg.NewListParams().Without(cdg.OptionFormat)), "KEY")
		require.NoError(t, err)
		assert.Equal(t, "https://api.congress.gov/v3/bill?api_key=KEY", built)
	})
}

func TestBuildURL_BaseURL(t *testing.T) {
	t.Parallel()

	built, err := cdg.BuildURL("http://localhost:8080/api/", cdg.CongressCurrent(cdg.NewDetailParams()), "KEY")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/congress/current?format=json&api_key=KEY", built)

	built, err = cdg.BuildURL("http://localhost:8080/api", cdg.CongressCurrent(cdg.NewDetailParams()), "KEY")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/congress/current?format=json&api_key=KEY", built)

	for _, base := range []string{"ftp://example.com", "api.congress.gov/v3", "://"} {
		_, err := cdg.BuildURL(base, cdg.CongressCurrent(cdg.NewDetailParams()), "KEY")
		require.ErrorIs(t, err, cdg.ErrURLConstruction, base)
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEndpoint_Path(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint cdg.Endpoint
		expected string
	}{
		{name: "bill details", endpoint: cdg.BillDetails(118, cdg.BillTypeHR, 3076, cdg.NewDetailParams()), expected: "bill/118/hr/3076"},
		{name: "bill sub-resource", endpoint: cdg.BillSummaries(117, cdg.BillTypeSJRes, 7, cdg.NewPageParams()), expected: "bill/117/sjres/7/summaries"},
		{name: "absent number", endpoint: cdg.BillDetails(118, cdg.BillTypeHR, 0, cdg.NewDetailParams()), expected: "bill/118/hr"},
		{name: "absent type and number", endpoint: cdg.BillDetails(118, "", 0, cdg.NewDetailParams()), expected: "bill/118"},
		{name: "absent type keeps number", endpoint: cdg.BillDetails(118, "", 5, cdg.NewDetailParams()), expected: "bill/118/5"},
		{name: "law", endpoint: cdg.LawDetails(118, cdg.LawTypePublic, 108, cdg.NewDetailParams()), expected: "law/118/pub/108"},
		{name: "current congress", endpoint: cdg.CongressCurrent(cdg.NewDetailParams()), expected: "congress/current"},
		{name: "members by congress", endpoint: cdg.MemberByCongress(118, cdg.NewMemberParams()), expected: "member/congress/118"},
		{name: "members by district", endpoint: cdg.MemberByCongressStateDistrict(97, "TX", 10, cdg.NewMemberParams()), expected: "member/congress/97/TX/10"},
		{name: "state without district", endpoint: cdg.MemberByStateDistrict("MI", 0, cdg.NewMemberParams()), expected: "member/MI"},
		{name: "sponsored legislation", endpoint: cdg.MemberSponsoredLegislation("L000174", cdg.NewPageParams()), expected: "member/L000174/sponsored-legislation"},
		{name: "escaped identifier", endpoint: cdg.MemberDetails("A B/C", cdg.NewDetailParams()), expected: "member/A%20B%2FC"},
		{name: "committee", endpoint: cdg.CommitteeDetails(cdg.ChamberHouse, "hspw00", cdg.NewDetailParams()), expected: "committee/house/hspw00"},
		{name: "committee bills", endpoint: cdg.CommitteeBills(cdg.ChamberHouse, "hspw00", cdg.NewPageParams()), expected: "committee/house/hspw00/bills"},
		{name: "committee print", endpoint: cdg.CommitteePrintText(117, cdg.ChamberHouse, 48144, cdg.NewPageParams()), expected: "committee-print/117/house/48144/text"},
		{name: "committee meeting", endpoint: cdg.CommitteeMeetingDetails(118, cdg.ChamberHouse, "115538", cdg.NewDetailParams()), expected: "committee-meeting/118/house/115538"},
		{name: "bound record", endpoint: cdg.BoundRecordByDay(1948, 5, 19, cdg.NewPageParams()), expected: "bound-congressional-record/1948/5/19"},
		{name: "daily articles", endpoint: cdg.DailyRecordArticles(168, 153, cdg.NewPageParams()), expected: "daily-congressional-record/168/153/articles"},
		{name: "house requirement matching", endpoint: cdg.HouseRequirementMatching(8070, cdg.NewPageParams()), expected: "house-requirement/8070/matching"},
		{name: "nominees", endpoint: cdg.NominationNominees(117, "2467", 1, cdg.NewPageParams()), expected: "nomination/117/2467/1"},
		{name: "partitioned nomination", endpoint: cdg.NominationDetails(117, "2467-1", cdg.NewDetailParams()), expected: "nomination/117/2467-1"},
		{name: "partitioned treaty actions", endpoint: cdg.TreatyPartitionedActions(114, 13, "A", cdg.NewPageParams()), expected: "treaty/114/13/A/actions"},
		{name: "custom", endpoint: cdg.Custom("/bill/118/hr/1/text/", cdg.NewGenericParams()), expected: "bill/118/hr/1/text"},
		{name: "custom collapses slashes", endpoint: cdg.Custom("bill//118", cdg.NewGenericParams()), expected: "bill/118"},
		{name: "custom escapes pieces", endpoint: cdg.Custom("summaries/118/hr?x=1", cdg.NewGenericParams()), expected: "summaries/118/hr%3Fx=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := tt.endpoint.Path()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestEndpoint_PathErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint cdg.Endpoint
		segment  string
	}{
		{name: "negative congress", endpoint: cdg.BillDetails(-1, cdg.BillTypeHR, 1, cdg.NewDetailParams()), segment: "congress=-1"},
		{name: "unknown bill type", endpoint: cdg.BillByType(118, cdg.BillType("zz"), cdg.NewListParams()), segment: "billType=zz"},
		{name: "control character", endpoint: cdg.MemberDetails("A\x00", cdg.NewDetailParams()), segment: "bioguideId=A\x00"},
		{name: "invalid UTF-8", endpoint: cdg.MemberDetails("\xff", cdg.NewDetailParams()), segment: "bioguideId=\xff"},
		{name: "empty custom path", endpoint: cdg.Custom("", cdg.NewGenericParams()), segment: "path="},
		{name: "slash-only custom path", endpoint: cdg.Custom("///", cdg.NewGenericParams()), segment: "path=///"},
		{name: "dot segment", endpoint: cdg.Custom("bill/../member", cdg.NewGenericParams()), segment: "path=bill/../member"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.endpoint.Path()
			require.ErrorIs(t, err, cdg.ErrURLConstruction)

			urlErr := &cdg.URLConstructionError{}
			require.True(t, errors.As(err, &urlErr))
			assert.Equal(t, tt.endpoint.Kind(), urlErr.Kind)
			assert.Equal(t, tt.segment, urlErr.Segment)
			assert.NotEmpty(t, urlErr.Reason)

			_, err = cdg.BuildURL("", tt.endpoint, "KEY")
			require.ErrorIs(t, err, cdg.ErrURLConstruction)
		})
	}

	t.Run("zero endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := cdg.Endpoint{}.Path()
		require.ErrorIs(t, err, cdg.ErrURLConstruction)
	})
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://x/bill?format=json&api_key=***", cdg.RedactURL("https://x/bill?format=json&api_key=SECRET"))
	assert.Equal(t, "https://x/bill?api_key=***&format=json", cdg.RedactURL("https://x/bill?api_key=SECRET&format=json"))
	assert.Equal(t, "https://x/bill", cdg.RedactURL("https://x/bill"))
	assert.Equal(t, "https://x/bill?format=json", cdg.RedactURL("https://x/bill?format=json"))

	t.Run("custom path naming the credential", func(t *testing.T) {
		t.Parallel()

		built, err := cdg.BuildURL("https://x/v3", cdg.Custom("x/api_key=a", cdg.NewGenericParams()), "SECRET")
		require.NoError(t, err)

		redacted := cdg.RedactURL(built)
		assert.NotContains(t, redacted, "SECRET")
		assert.Equal(t, "https://x/v3/x/api_key=a?format=json&api_key=***", redacted)
	})
}

func TestExamplePaths(t *testing.T) {
	t.Parallel()

	paths, err := cdg.ExamplePaths()
	require.NoError(t, err)

	kinds := cdg.Kinds()
	require.Len(t, paths, len(kinds))

	for i, example := range paths {
		assert.Equal(t, kinds[i], example.Kind)
		assert.Equal(t, example.Kind.Shape(), example.Shape)
		assert.NotEmpty(t, example.Path)
		assert.NotContains(t, example.Path, "//")
	}
}
