package cdg

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the wire layout of fromDateTime/toDateTime values.
const DateTimeLayout = "2006-01-02T15:04:05Z"

// Option names one query option. The zero value is OptionFormat.
type Option int

// Options in canonical query order.
const (
	OptionFormat Option = iota
	OptionConference
	OptionYear
	OptionMonth
	OptionDay
	OptionOffset
	OptionLimit
	OptionFromDateTime
	OptionToDateTime
	OptionCurrentMember
	OptionChamber
	OptionSort
)

var optionKeys = [...]string{
	OptionFormat:        "format",
	OptionConference:    "conference",
	OptionYear:          "year",
	OptionMonth:         "month",
	OptionDay:           "day",
	OptionOffset:        "offset",
	OptionLimit:         "limit",
	OptionFromDateTime:  "fromDateTime",
	OptionToDateTime:    "toDateTime",
	OptionCurrentMember: "currentMember",
	OptionChamber:       "chamber",
	OptionSort:          "sort",
}

// String returns the query key of the option.
func (o Option) String() string {
	if o < 0 || int(o) >= len(optionKeys) {
		return "option(" + strconv.Itoa(int(o)) + ")"
	}

	return optionKeys[o]
}

// QueryPair is one encoded query parameter.
type QueryPair struct {
	Key   string
	Value string
}

// Params is implemented by every parameter family.
type Params interface {
	// Pairs returns the present options in canonical order, unescaped.
	Pairs() []QueryPair
	// Encode returns the escaped query string without the credential.
	Encode() string
}

var (
	_ Params = ListParams{}
	_ Params = WindowParams{}
	_ Params = PageParams{}
	_ Params = DetailParams{}
	_ Params = MemberListParams{}
	_ Params = MemberParams{}
	_ Params = ReportParams{}
	_ Params = RecordParams{}
	_ Params = GenericParams{}
)

// options is the shared backing store of all families; nil means absent.
type options struct {
	format        *FormatType
	conference    *bool
	year          *int
	month         *int
	day           *int
	offset        *int
	limit         *int
	fromDateTime  *time.Time
	toDateTime    *time.Time
	currentMember *bool
	chamber       *ChamberType
	sort          *SortType
}

func defaultOptions() options {
	format := FormatJSON

	return options{format: &format}
}

func (o options) without(opt Option) options {
	switch opt {
	case OptionFormat:
		o.format = nil
	case OptionConference:
		o.conference = nil
	case OptionYear:
		o.year = nil
	case OptionMonth:
		o.month = nil
	case OptionDay:
		o.day = nil
	case OptionOffset:
		o.offset = nil
	case OptionLimit:
		o.limit = nil
	case OptionFromDateTime:
		o.fromDateTime = nil
	case OptionToDateTime:
		o.toDateTime = nil
	case OptionCurrentMember:
		o.currentMember = nil
	case OptionChamber:
		o.chamber = nil
	case OptionSort:
		o.sort = nil
	}

	return o
}

func (o options) pairs() []QueryPair {
	var pairs []QueryPair

	add := func(opt Option, value string) {
		pairs = append(pairs, QueryPair{Key: opt.String(), Value: value})
	}

	if o.format != nil {
		add(OptionFormat, string(*o.format))
	}

	if o.conference != nil {
		add(OptionConference, strconv.FormatBool(*o.conference))
	}

	if o.year != nil {
		add(OptionYear, strconv.Itoa(*o.year))
	}

	if o.month != nil {
		add(OptionMonth, strconv.Itoa(*o.month))
	}

	if o.day != nil {
		add(OptionDay, strconv.Itoa(*o.day))
	}

	if o.offset != nil {
		add(OptionOffset, strconv.Itoa(*o.offset))
	}

	if o.limit != nil {
		add(OptionLimit, strconv.Itoa(*o.limit))
	}

	if o.fromDateTime != nil {
		add(OptionFromDateTime, o.fromDateTime.UTC().Format(DateTimeLayout))
	}

	if o.toDateTime != nil {
		add(OptionToDateTime, o.toDateTime.UTC().Format(DateTimeLayout))
	}

	if o.currentMember != nil {
		add(OptionCurrentMember, strconv.FormatBool(*o.currentMember))
	}

	if o.chamber != nil {
		add(OptionChamber, string(*o.chamber))
	}

	if o.sort != nil {
		add(OptionSort, string(*o.sort))
	}

	return pairs
}

func encodePairs(pairs []QueryPair) string {
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, url.QueryEscape(pair.Key)+"="+url.QueryEscape(pair.Value))
	}

	return strings.Join(parts, "&")
}

// ListParams covers paged, date-bounded, sortable collections such as bill, amendment,
// nomination, treaty and summary lists.
type ListParams struct{ o options }

// NewListParams returns list parameters with format=json.
func NewListParams() ListParams { return ListParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p ListParams) WithFormat(f FormatType) ListParams {
	p.o.format = &f

	return p
}

// WithOffset sets the starting record.
func (p ListParams) WithOffset(n int) ListParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p ListParams) WithLimit(n int) ListParams {
	p.o.limit = &n

	return p
}

// WithFromDateTime sets the lower update-date bound.
func (p ListParams) WithFromDateTime(t time.Time) ListParams {
	p.o.fromDateTime = &t

	return p
}

// WithToDateTime sets the upper update-date bound.
func (p ListParams) WithToDateTime(t time.Time) ListParams {
	p.o.toDateTime = &t

	return p
}

// WithSort sets the sort order.
func (p ListParams) WithSort(s SortType) ListParams {
	p.o.sort = &s

	return p
}

// Without clears an option.
func (p ListParams) Without(opt Option) ListParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p ListParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p ListParams) Encode() string { return encodePairs(p.Pairs()) }

// WindowParams covers paged, date-bounded collections without a sort option
// (committee lists, committee prints, bill subjects and titles).
type WindowParams struct{ o options }

// NewWindowParams returns window parameters with format=json.
func NewWindowParams() WindowParams { return WindowParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p WindowParams) WithFormat(f FormatType) WindowParams {
	p.o.format = &f

	return p
}

// WithOffset sets the starting record.
func (p WindowParams) WithOffset(n int) WindowParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p WindowParams) WithLimit(n int) WindowParams {
	p.o.limit = &n

	return p
}

// WithFromDateTime sets the lower update-date bound.
func (p WindowParams) WithFromDateTime(t time.Time) WindowParams {
	p.o.fromDateTime = &t

	return p
}

// WithToDateTime sets the upper update-date bound.
func (p WindowParams) WithToDateTime(t time.Time) WindowParams {
	p.o.toDateTime = &t

	return p
}

// Without clears an option.
func (p WindowParams) Without(opt Option) WindowParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p WindowParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p WindowParams) Encode() string { return encodePairs(p.Pairs()) }

// PageParams covers paged sub-resources (actions, cosponsors, text versions...).
type PageParams struct{ o options }

// NewPageParams returns page parameters with format=json.
func NewPageParams() PageParams { return PageParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p PageParams) WithFormat(f FormatType) PageParams {
	p.o.format = &f

	return p
}

// WithOffset sets the starting record.
func (p PageParams) WithOffset(n int) PageParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p PageParams) WithLimit(n int) PageParams {
	p.o.limit = &n

	return p
}

// Without clears an option.
func (p PageParams) Without(opt Option) PageParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p PageParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p PageParams) Encode() string { return encodePairs(p.Pairs()) }

// DetailParams covers single-item endpoints; only the format is negotiable.
type DetailParams struct{ o options }

// NewDetailParams returns detail parameters with format=json.
func NewDetailParams() DetailParams { return DetailParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p DetailParams) WithFormat(f FormatType) DetailParams {
	p.o.format = &f

	return p
}

// Without clears an option.
func (p DetailParams) Without(opt Option) DetailParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p DetailParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p DetailParams) Encode() string { return encodePairs(p.Pairs()) }

// MemberListParams is used by the top-level member list.
type MemberListParams struct{ o options }

// NewMemberListParams returns member list parameters with format=json.
func NewMemberListParams() MemberListParams { return MemberListParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p MemberListParams) WithFormat(f FormatType) MemberListParams {
	p.o.format = &f

	return p
}

// WithOffset sets the starting record.
func (p MemberListParams) WithOffset(n int) MemberListParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p MemberListParams) WithLimit(n int) MemberListParams {
	p.o.limit = &n

	return p
}

// WithFromDateTime sets the lower update-date bound.
func (p MemberListParams) WithFromDateTime(t time.Time) MemberListParams {
	p.o.fromDateTime = &t

	return p
}

// WithToDateTime sets the upper update-date bound.
func (p MemberListParams) WithToDateTime(t time.Time) MemberListParams {
	p.o.toDateTime = &t

	return p
}

// WithCurrentMember restricts results to sitting members.
func (p MemberListParams) WithCurrentMember(current bool) MemberListParams {
	p.o.currentMember = &current

	return p
}

// Without clears an option.
func (p MemberListParams) Without(opt Option) MemberListParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p MemberListParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p MemberListParams) Encode() string { return encodePairs(p.Pairs()) }

// MemberParams is used by member lists filtered by congress, state or district.
type MemberParams struct{ o options }

// NewMemberParams returns member parameters with format=json.
func NewMemberParams() MemberParams { return MemberParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p MemberParams) WithFormat(f FormatType) MemberParams {
	p.o.format = &f

	return p
}

// WithOffset sets the starting record.
func (p MemberParams) WithOffset(n int) MemberParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p MemberParams) WithLimit(n int) MemberParams {
	p.o.limit = &n

	return p
}

// WithCurrentMember restricts results to sitting members.
func (p MemberParams) WithCurrentMember(current bool) MemberParams {
	p.o.currentMember = &current

	return p
}

// Without clears an option.
func (p MemberParams) Without(opt Option) MemberParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p MemberParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p MemberParams) Encode() string { return encodePairs(p.Pairs()) }

// ReportParams is used by committee report lists.
type ReportParams struct{ o options }

// NewReportParams returns committee report parameters with format=json.
func NewReportParams() ReportParams { return ReportParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p ReportParams) WithFormat(f FormatType) ReportParams {
	p.o.format = &f

	return p
}

// WithConference restricts results to conference reports.
func (p ReportParams) WithConference(conference bool) ReportParams {
	p.o.conference = &conference

	return p
}

// WithOffset sets the starting record.
func (p ReportParams) WithOffset(n int) ReportParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p ReportParams) WithLimit(n int) ReportParams {
	p.o.limit = &n

	return p
}

// WithFromDateTime sets the lower update-date bound.
func (p ReportParams) WithFromDateTime(t time.Time) ReportParams {
	p.o.fromDateTime = &t

	return p
}

// WithToDateTime sets the upper update-date bound.
func (p ReportParams) WithToDateTime(t time.Time) ReportParams {
	p.o.toDateTime = &t

	return p
}

// Without clears an option.
func (p ReportParams) Without(opt Option) ReportParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p ReportParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p ReportParams) Encode() string { return encodePairs(p.Pairs()) }

// RecordParams is used by the congressional record list.
type RecordParams struct{ o options }

// NewRecordParams returns congressional record parameters with format=json.
func NewRecordParams() RecordParams { return RecordParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p RecordParams) WithFormat(f FormatType) RecordParams {
	p.o.format = &f

	return p
}

// WithYear filters by publication year.
func (p RecordParams) WithYear(year int) RecordParams {
	p.o.year = &year

	return p
}

// WithMonth filters by publication month.
func (p RecordParams) WithMonth(month int) RecordParams {
	p.o.month = &month

	return p
}

// WithDay filters by publication day.
func (p RecordParams) WithDay(day int) RecordParams {
	p.o.day = &day

	return p
}

// WithOffset sets the starting record.
func (p RecordParams) WithOffset(n int) RecordParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p RecordParams) WithLimit(n int) RecordParams {
	p.o.limit = &n

	return p
}

// Without clears an option.
func (p RecordParams) Without(opt Option) RecordParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p RecordParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p RecordParams) Encode() string { return encodePairs(p.Pairs()) }

// GenericParams accepts every option. It is paired with custom endpoints, where the
// catalog cannot know which options the remote resource honours.
type GenericParams struct{ o options }

// NewGenericParams returns generic parameters with format=json.
func NewGenericParams() GenericParams { return GenericParams{o: defaultOptions()} }

// WithFormat sets the response format.
func (p GenericParams) WithFormat(f FormatType) GenericParams {
	p.o.format = &f

	return p
}

// WithConference restricts results to conference reports.
func (p GenericParams) WithConference(conference bool) GenericParams {
	p.o.conference = &conference

	return p
}

// WithYear filters by year.
func (p GenericParams) WithYear(year int) GenericParams {
	p.o.year = &year

	return p
}

// WithMonth filters by month.
func (p GenericParams) WithMonth(month int) GenericParams {
	p.o.month = &month

	return p
}

// WithDay filters by day.
func (p GenericParams) WithDay(day int) GenericParams {
	p.o.day = &day

	return p
}

// WithOffset sets the starting record.
func (p GenericParams) WithOffset(n int) GenericParams {
	p.o.offset = &n

	return p
}

// WithLimit sets the page size.
func (p GenericParams) WithLimit(n int) GenericParams {
	p.o.limit = &n

	return p
}

// WithFromDateTime sets the lower update-date bound.
func (p GenericParams) WithFromDateTime(t time.Time) GenericParams {
	p.o.fromDateTime = &t

	return p
}

// WithToDateTime sets the upper update-date bound.
func (p GenericParams) WithToDateTime(t time.Time) GenericParams {
	p.o.toDateTime = &t

	return p
}

// WithCurrentMember restricts results to sitting members.
func (p GenericParams) WithCurrentMember(current bool) GenericParams {
	p.o.currentMember = &current

	return p
}

// WithChamber filters by chamber.
func (p GenericParams) WithChamber(c ChamberType) GenericParams {
	p.o.chamber = &c

	return p
}

// WithSort sets the sort order.
func (p GenericParams) WithSort(s SortType) GenericParams {
	p.o.sort = &s

	return p
}

// Without clears an option.
func (p GenericParams) Without(opt Option) GenericParams {
	p.o = p.o.without(opt)

	return p
}

// Pairs implements Params.
func (p GenericParams) Pairs() []QueryPair { return p.o.pairs() }

// Encode implements Params.
func (p GenericParams) Encode() string { return encodePairs(p.Pairs()) }
