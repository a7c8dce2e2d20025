package cdg_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
)

func TestParams_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params cdg.Params
	}{
		{name: "list", params: cdg.NewListParams()},
		{name: "window", params: cdg.NewWindowParams()},
		{name: "page", params: cdg.NewPageParams()},
		{name: "detail", params: cdg.NewDetailParams()},
		{name: "member list", params: cdg.NewMemberListParams()},
		{name: "member", params: cdg.NewMemberParams()},
		{name: "report", params: cdg.NewReportParams()},
		{name: "record", params: cdg.NewRecordParams()},
		{name: "generic", params: cdg.NewGenericParams()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, "format=json", tt.params.Encode())
			assert.Equal(t, []cdg.QueryPair{{Key: "format", Value: "json"}}, tt.params.Pairs())
		})
	}
}

func TestParams_CanonicalOrder(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	to := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	// Setters are called in reverse order on purpose.
	params := cdg.NewGenericParams().
		WithSort(cdg.SortUpdateDateDesc).
		WithChamber(cdg.ChamberSenate).
		WithCurrentMember(false).
		WithToDateTime(to).
		WithFromDateTime(from).
		WithLimit(250).
		WithOffset(20).
		WithDay(19).
		WithMonth(5).
		WithYear(1948).
		WithConference(true).
		WithFormat(cdg.FormatXML)

	keys := make([]string, 0, len(params.Pairs()))
	for _, pair := range params.Pairs() {
		keys = append(keys, pair.Key)
	}

	assert.Equal(t, []string{
		"format", "conference", "year", "month", "day", "offset", "limit",
		"fromDateTime", "toDateTime", "currentMember", "chamber", "sort",
	}, keys)

	assert.Equal(t,
		"format=xml&conference=true&year=1948&month=5&day=19&offset=20&limit=250"+
			"&fromDateTime=2024-01-02T03%3A04%3A05Z&toDateTime=2024-02-03T04%3A05%3A06Z"+
			"&currentMember=false&chamber=senate&sort=updateDate+desc",
		params.Encode())
}

func TestParams_DatesAreUTC(t *testing.T) {
	t.Parallel()

	eastern := time.FixedZone("EST", -5*60*60)
	params := cdg.NewListParams().WithFromDateTime(time.Date(2024, 1, 1, 22, 0, 0, 0, eastern))

	assert.Equal(t, []cdg.QueryPair{
		{Key: "format", Value: "json"},
		{Key: "fromDateTime", Value: "2024-01-02T03:00:00Z"},
	}, params.Pairs())
}

func TestParams_SetThenClear(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		cleared := cdg.NewListParams().WithLimit(5).WithSort(cdg.SortUpdateDateAsc).Without(cdg.OptionLimit).Without(cdg.OptionSort)
		assert.Equal(t, cdg.NewListParams(), cleared)
		assert.Equal(t, cdg.NewListParams().Encode(), cleared.Encode())
	})

	t.Run("member list", func(t *testing.T) {
		t.Parallel()

		cleared := cdg.NewMemberListParams().WithCurrentMember(true).Without(cdg.OptionCurrentMember)
		assert.Equal(t, cdg.NewMemberListParams(), cleared)
	})

	t.Run("record", func(t *testing.T) {
		t.Parallel()

		cleared := cdg.NewRecordParams().WithYear(2022).WithMonth(6).Without(cdg.OptionYear)
		assert.Equal(t, "format=json&month=6", cleared.Encode())
	})

	t.Run("format can be dropped", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cdg.NewPageParams().Without(cdg.OptionFormat).Encode())
	})

	t.Run("clearing an option the family lacks is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, cdg.NewDetailParams(), cdg.NewDetailParams().Without(cdg.OptionChamber))
	})
}

func TestParams_ValueSemantics(t *testing.T) {
	t.Parallel()

	base := cdg.NewPageParams()
	limited := base.WithLimit(5)

	assert.Equal(t, "format=json", base.Encode())
	assert.Equal(t, "format=json&limit=5", limited.Encode())
}

func TestParams_ReportConference(t *testing.T) {
	t.Parallel()

	params := cdg.NewReportParams().WithLimit(10).WithConference(true)
	assert.Equal(t, "format=json&conference=true&limit=10", params.Encode())
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "currentMember", cdg.OptionCurrentMember.String())
	assert.Equal(t, "fromDateTime", cdg.OptionFromDateTime.String())
	assert.Equal(t, "option(99)", cdg.Option(99).String())
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	billType, err := cdg.ParseBillType(" HR ")
	assert.NoError(t, err)
	assert.Equal(t, cdg.BillTypeHR, billType)

	sortType, err := cdg.ParseSortType("updateDate+desc")
	assert.NoError(t, err)
	assert.Equal(t, cdg.SortUpdateDateDesc, sortType)

	chamber, err := cdg.ParseChamberType("Senate")
	assert.NoError(t, err)
	assert.Equal(t, cdg.ChamberSenate, chamber)

	_, err = cdg.ParseBillType("bogus")
	assert.ErrorIs(t, err, cdg.ErrUnknownEnumValue)

	_, err = cdg.ParseSortType("sideways")
	assert.ErrorIs(t, err, cdg.ErrUnknownEnumValue)

	assert.False(t, cdg.LawType("pl").Valid())
	assert.True(t, cdg.CommunicationExecutive.Valid())
}
