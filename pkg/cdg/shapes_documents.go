package cdg

// CommitteeReportsResponse is the body of the committee report list endpoints.
type CommitteeReportsResponse struct {
	Reports    []CommitteeReportSummary `json:"reports"              yaml:"reports"              cdg:"required"`
	Pagination *Pagination              `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural              `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural              `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeReportSummary struct {
	Chamber    *string     `json:"chamber,omitempty"    yaml:"chamber,omitempty"`
	Citation   *string     `json:"citation,omitempty"   yaml:"citation,omitempty"`
	Congress   *int        `json:"congress,omitempty"   yaml:"congress,omitempty"`
	Number     *int        `json:"number,omitempty"     yaml:"number,omitempty"`
	Part       *int        `json:"part,omitempty"       yaml:"part,omitempty"`
	Type       *string     `json:"type,omitempty"       yaml:"type,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// CommitteeReportDetailsResponse holds every part of one report.
type CommitteeReportDetailsResponse struct {
	CommitteeReports []CommitteeReport `json:"committeeReports"     yaml:"committeeReports"     cdg:"required"`
	Pagination       *Pagination       `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request          *Structural       `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra            *Structural       `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeReport struct {
	AssociatedBill     []AssociatedBill     `json:"associatedBill,omitempty"     yaml:"associatedBill,omitempty"`
	AssociatedTreaties []AssociatedTreaty   `json:"associatedTreaties,omitempty" yaml:"associatedTreaties,omitempty"`
	Chamber            *string              `json:"chamber,omitempty"            yaml:"chamber,omitempty"`
	Citation           *string              `json:"citation,omitempty"           yaml:"citation,omitempty"`
	Committees         []CommitteeReference `json:"committees,omitempty"         yaml:"committees,omitempty"`
	Congress           *int                 `json:"congress,omitempty"           yaml:"congress,omitempty"`
	IsConferenceReport *bool                `json:"isConferenceReport,omitempty" yaml:"isConferenceReport,omitempty"`
	IssueDate          *string              `json:"issueDate,omitempty"          yaml:"issueDate,omitempty"`
	Number             *int                 `json:"number,omitempty"             yaml:"number,omitempty"`
	Part               *int                 `json:"part,omitempty"               yaml:"part,omitempty"`
	ReportType         *string              `json:"reportType,omitempty"         yaml:"reportType,omitempty"`
	SessionNumber      *int                 `json:"sessionNumber,omitempty"      yaml:"sessionNumber,omitempty"`
	Text               *ResourceReference   `json:"text,omitempty"               yaml:"text,omitempty"`
	Title              *string              `json:"title,omitempty"              yaml:"title,omitempty"`
	Type               *string              `json:"type,omitempty"               yaml:"type,omitempty"`
	UpdateDate         *string              `json:"updateDate,omitempty"         yaml:"updateDate,omitempty"`
	Extra              *Structural          `json:"-"                            yaml:"-"                            cdg:"extra"`
}

type AssociatedBill struct {
	Congress *int        `json:"congress,omitempty" yaml:"congress,omitempty"`
	Number   *string     `json:"number,omitempty"   yaml:"number,omitempty"`
	Type     *string     `json:"type,omitempty"     yaml:"type,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

type AssociatedTreaty struct {
	Congress *int        `json:"congress,omitempty" yaml:"congress,omitempty"`
	Number   *int        `json:"number,omitempty"   yaml:"number,omitempty"`
	Part     *string     `json:"part,omitempty"     yaml:"part,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

type CommitteeReportTextResponse struct {
	Text       []TextFormat `json:"text"                 yaml:"text"                 cdg:"required"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural  `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural  `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// CommitteePrintsResponse is the body of the committee print list endpoints.
type CommitteePrintsResponse struct {
	CommitteePrints []CommitteePrintSummary `json:"committeePrints"      yaml:"committeePrints"      cdg:"required"`
	Pagination      *Pagination             `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request         *Structural             `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra           *Structural             `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteePrintSummary struct {
	Chamber      *string     `json:"chamber,omitempty"      yaml:"chamber,omitempty"`
	Congress     *int        `json:"congress,omitempty"     yaml:"congress,omitempty"`
	JacketNumber *int        `json:"jacketNumber,omitempty" yaml:"jacketNumber,omitempty"`
	UpdateDate   *string     `json:"updateDate,omitempty"   yaml:"updateDate,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type CommitteePrintDetailsResponse struct {
	CommitteePrint []CommitteePrint `json:"committeePrint"       yaml:"committeePrint"       cdg:"required"`
	Pagination     *Pagination      `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request        *Structural      `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra          *Structural      `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteePrint struct {
	AssociatedBills []AssociatedBill     `json:"associatedBills,omitempty" yaml:"associatedBills,omitempty"`
	Chamber         *string              `json:"chamber,omitempty"         yaml:"chamber,omitempty"`
	Citation        *string              `json:"citation,omitempty"        yaml:"citation,omitempty"`
	Committees      []CommitteeReference `json:"committees,omitempty"      yaml:"committees,omitempty"`
	Congress        *int                 `json:"congress,omitempty"        yaml:"congress,omitempty"`
	JacketNumber    int                  `json:"jacketNumber"              yaml:"jacketNumber"              cdg:"required"`
	Number          *string              `json:"number,omitempty"          yaml:"number,omitempty"`
	Text            *ResourceReference   `json:"text,omitempty"            yaml:"text,omitempty"`
	Title           *string              `json:"title,omitempty"           yaml:"title,omitempty"`
	UpdateDate      *string              `json:"updateDate,omitempty"      yaml:"updateDate,omitempty"`
	Extra           *Structural          `json:"-"                         yaml:"-"                         cdg:"extra"`
}

type CommitteePrintTextResponse struct {
	Text       []TextFormat `json:"text"                 yaml:"text"                 cdg:"required"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural  `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural  `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// CommitteeMeetingsResponse is the body of the committee meeting list endpoints.
type CommitteeMeetingsResponse struct {
	CommitteeMeetings []CommitteeMeetingSummary `json:"committeeMeetings"    yaml:"committeeMeetings"    cdg:"required"`
	Pagination        *Pagination               `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request           *Structural               `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra             *Structural               `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeMeetingSummary struct {
	Chamber    *string     `json:"chamber,omitempty"    yaml:"chamber,omitempty"`
	Congress   *int        `json:"congress,omitempty"   yaml:"congress,omitempty"`
	EventID    *string     `json:"eventId,omitempty"    yaml:"eventId,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeMeetingDetailsResponse struct {
	CommitteeMeeting CommitteeMeeting `json:"committeeMeeting"     yaml:"committeeMeeting"     cdg:"required"`
	Pagination       *Pagination      `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request          *Structural      `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra            *Structural      `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// CommitteeMeeting holds the schedule, witnesses and documents of one meeting.
type CommitteeMeeting struct {
	Chamber           *string              `json:"chamber,omitempty"           yaml:"chamber,omitempty"`
	Committees        []CommitteeReference `json:"committees,omitempty"        yaml:"committees,omitempty"`
	Congress          *int                 `json:"congress,omitempty"          yaml:"congress,omitempty"`
	Date              *string              `json:"date,omitempty"              yaml:"date,omitempty"`
	EventID           string               `json:"eventId"                     yaml:"eventId"                     cdg:"required"`
	HearingTranscript []HearingTranscript  `json:"hearingTranscript,omitempty" yaml:"hearingTranscript,omitempty"`
	Location          *MeetingLocation     `json:"location,omitempty"          yaml:"location,omitempty"`
	MeetingDocuments  []MeetingDocument    `json:"meetingDocuments,omitempty"  yaml:"meetingDocuments,omitempty"`
	MeetingStatus     *string              `json:"meetingStatus,omitempty"     yaml:"meetingStatus,omitempty"`
	RelatedItems      *RelatedItems        `json:"relatedItems,omitempty"      yaml:"relatedItems,omitempty"`
	Title             *string              `json:"title,omitempty"             yaml:"title,omitempty"`
	Type              *string              `json:"type,omitempty"              yaml:"type,omitempty"`
	UpdateDate        *string              `json:"updateDate,omitempty"        yaml:"updateDate,omitempty"`
	Videos            []Video              `json:"videos,omitempty"            yaml:"videos,omitempty"`
	WitnessDocuments  []WitnessDocument    `json:"witnessDocuments,omitempty"  yaml:"witnessDocuments,omitempty"`
	Witnesses         []Witness            `json:"witnesses,omitempty"         yaml:"witnesses,omitempty"`
	Extra             *Structural          `json:"-"                           yaml:"-"                           cdg:"extra"`
}

type MeetingLocation struct {
	Address  *string     `json:"address,omitempty"  yaml:"address,omitempty"`
	Building *string     `json:"building,omitempty" yaml:"building,omitempty"`
	Room     *string     `json:"room,omitempty"     yaml:"room,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

type Video struct {
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	URL   *string     `json:"url,omitempty"  yaml:"url,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

type Witness struct {
	Name         *string     `json:"name,omitempty"         yaml:"name,omitempty"`
	Organization *string     `json:"organization,omitempty" yaml:"organization,omitempty"`
	Position     *string     `json:"position,omitempty"     yaml:"position,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type WitnessDocument struct {
	DocumentType *string     `json:"documentType,omitempty" yaml:"documentType,omitempty"`
	Format       *string     `json:"format,omitempty"       yaml:"format,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type MeetingDocument struct {
	Description  *string     `json:"description,omitempty"  yaml:"description,omitempty"`
	DocumentType *string     `json:"documentType,omitempty" yaml:"documentType,omitempty"`
	Format       *string     `json:"format,omitempty"       yaml:"format,omitempty"`
	Name         *string     `json:"name,omitempty"         yaml:"name,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type HearingTranscript struct {
	JacketNumber *int        `json:"jacketNumber,omitempty" yaml:"jacketNumber,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

// RelatedItems lists the legislation and nominations considered at a meeting.
type RelatedItems struct {
	Bills       []RelatedItem `json:"bills,omitempty"       yaml:"bills,omitempty"`
	Nominations []RelatedItem `json:"nominations,omitempty" yaml:"nominations,omitempty"`
	Treaties    []RelatedItem `json:"treaties,omitempty"    yaml:"treaties,omitempty"`
	Extra       *Structural   `json:"-"                     yaml:"-"                     cdg:"extra"`
}

type RelatedItem struct {
	Congress *int        `json:"congress,omitempty" yaml:"congress,omitempty"`
	Number   *string     `json:"number,omitempty"   yaml:"number,omitempty"`
	Part     *string     `json:"part,omitempty"     yaml:"part,omitempty"`
	Type     *string     `json:"type,omitempty"     yaml:"type,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}
