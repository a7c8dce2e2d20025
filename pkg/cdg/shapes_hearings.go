package cdg

// HearingsResponse is the body of the hearing list endpoints.
type HearingsResponse struct {
	Hearings   []HearingSummary `json:"hearings"             yaml:"hearings"             cdg:"required"`
	Pagination *Pagination      `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural      `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural      `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type HearingSummary struct {
	Chamber      *string     `json:"chamber,omitempty"      yaml:"chamber,omitempty"`
	Congress     *int        `json:"congress,omitempty"     yaml:"congress,omitempty"`
	JacketNumber *int        `json:"jacketNumber,omitempty" yaml:"jacketNumber,omitempty"`
	Number       *int        `json:"number,omitempty"       yaml:"number,omitempty"`
	Part         *int        `json:"part,omitempty"         yaml:"part,omitempty"`
	UpdateDate   *string     `json:"updateDate,omitempty"   yaml:"updateDate,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type HearingDetailsResponse struct {
	Hearing    Hearing     `json:"hearing"              yaml:"hearing"              cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type Hearing struct {
	AssociatedMeeting           *AssociatedMeeting   `json:"associatedMeeting,omitempty"           yaml:"associatedMeeting,omitempty"`
	Chamber                     *string              `json:"chamber,omitempty"                     yaml:"chamber,omitempty"`
	Citation                    *string              `json:"citation,omitempty"                    yaml:"citation,omitempty"`
	Committees                  []CommitteeReference `json:"committees,omitempty"                  yaml:"committees,omitempty"`
	Congress                    *int                 `json:"congress,omitempty"                    yaml:"congress,omitempty"`
	Dates                       []HearingDate        `json:"dates,omitempty"                       yaml:"dates,omitempty"`
	Formats                     []TextFormat         `json:"formats,omitempty"                     yaml:"formats,omitempty"`
	JacketNumber                *int                 `json:"jacketNumber,omitempty"                yaml:"jacketNumber,omitempty"`
	LibraryOfCongressIdentifier *string              `json:"libraryOfCongressIdentifier,omitempty" yaml:"libraryOfCongressIdentifier,omitempty"`
	Number                      *int                 `json:"number,omitempty"                      yaml:"number,omitempty"`
	Part                        *int                 `json:"part,omitempty"                        yaml:"part,omitempty"`
	Title                       *string              `json:"title,omitempty"                       yaml:"title,omitempty"`
	UpdateDate                  *string              `json:"updateDate,omitempty"                  yaml:"updateDate,omitempty"`
	Extra                       *Structural          `json:"-"                                     yaml:"-"                                     cdg:"extra"`
}

type HearingDate struct {
	Date  *string     `json:"date,omitempty" yaml:"date,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

// AssociatedMeeting links a hearing to the committee meeting it transcribes.
type AssociatedMeeting struct {
	EventID *string     `json:"eventId,omitempty" yaml:"eventId,omitempty"`
	URL     *string     `json:"url,omitempty"     yaml:"url,omitempty"`
	Extra   *Structural `json:"-"                 yaml:"-"                 cdg:"extra"`
}
