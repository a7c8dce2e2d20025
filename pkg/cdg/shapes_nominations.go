package cdg

// NominationsResponse is the body of the nomination list endpoints.
type NominationsResponse struct {
	Nominations []NominationSummary `json:"nominations"          yaml:"nominations"          cdg:"required"`
	Pagination  *Pagination         `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request     *Structural         `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra       *Structural         `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationSummary struct {
	Citation       *string         `json:"citation,omitempty"       yaml:"citation,omitempty"`
	Congress       *int            `json:"congress,omitempty"       yaml:"congress,omitempty"`
	Description    *string         `json:"description,omitempty"    yaml:"description,omitempty"`
	LatestAction   *LatestAction   `json:"latestAction,omitempty"   yaml:"latestAction,omitempty"`
	NominationType *NominationType `json:"nominationType,omitempty" yaml:"nominationType,omitempty"`
	Number         *int            `json:"number,omitempty"         yaml:"number,omitempty"`
	Organization   *string         `json:"organization,omitempty"   yaml:"organization,omitempty"`
	PartNumber     *string         `json:"partNumber,omitempty"     yaml:"partNumber,omitempty"`
	ReceivedDate   *string         `json:"receivedDate,omitempty"   yaml:"receivedDate,omitempty"`
	UpdateDate     *string         `json:"updateDate,omitempty"     yaml:"updateDate,omitempty"`
	URL            *string         `json:"url,omitempty"            yaml:"url,omitempty"`
	Extra          *Structural     `json:"-"                        yaml:"-"                        cdg:"extra"`
}

type NominationType struct {
	IsCivilian *bool       `json:"isCivilian,omitempty" yaml:"isCivilian,omitempty"`
	IsMilitary *bool       `json:"isMilitary,omitempty" yaml:"isMilitary,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationDetailsResponse struct {
	Nomination Nomination  `json:"nomination"           yaml:"nomination"           cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Nomination holds the details of one nomination.
type Nomination struct {
	Actions                 *ResourceReference `json:"actions,omitempty"                 yaml:"actions,omitempty"`
	AuthorityDate           *string            `json:"authorityDate,omitempty"           yaml:"authorityDate,omitempty"`
	Citation                *string            `json:"citation,omitempty"                yaml:"citation,omitempty"`
	Committees              *ResourceReference `json:"committees,omitempty"              yaml:"committees,omitempty"`
	Congress                *int               `json:"congress,omitempty"                yaml:"congress,omitempty"`
	Description             *string            `json:"description,omitempty"             yaml:"description,omitempty"`
	ExecutiveCalendarNumber *string            `json:"executiveCalendarNumber,omitempty" yaml:"executiveCalendarNumber,omitempty"`
	Hearings                *ResourceReference `json:"hearings,omitempty"                yaml:"hearings,omitempty"`
	IsList                  *bool              `json:"isList,omitempty"                  yaml:"isList,omitempty"`
	IsPrivileged            *bool              `json:"isPrivileged,omitempty"            yaml:"isPrivileged,omitempty"`
	LatestAction            *LatestAction      `json:"latestAction,omitempty"            yaml:"latestAction,omitempty"`
	NominationType          *NominationType    `json:"nominationType,omitempty"          yaml:"nominationType,omitempty"`
	Nominees                []NomineePosition  `json:"nominees,omitempty"                yaml:"nominees,omitempty"`
	Number                  *int               `json:"number,omitempty"                  yaml:"number,omitempty"`
	PartNumber              *string            `json:"partNumber,omitempty"              yaml:"partNumber,omitempty"`
	ReceivedDate            *string            `json:"receivedDate,omitempty"            yaml:"receivedDate,omitempty"`
	UpdateDate              *string            `json:"updateDate,omitempty"              yaml:"updateDate,omitempty"`
	Extra                   *Structural        `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

// NomineePosition is one position within a nomination.
type NomineePosition struct {
	Division      *string     `json:"division,omitempty"      yaml:"division,omitempty"`
	IntroText     *string     `json:"introText,omitempty"     yaml:"introText,omitempty"`
	NomineeCount  *int        `json:"nomineeCount,omitempty"  yaml:"nomineeCount,omitempty"`
	Ordinal       *int        `json:"ordinal,omitempty"       yaml:"ordinal,omitempty"`
	Organization  *string     `json:"organization,omitempty"  yaml:"organization,omitempty"`
	PositionTitle *string     `json:"positionTitle,omitempty" yaml:"positionTitle,omitempty"`
	URL           *string     `json:"url,omitempty"           yaml:"url,omitempty"`
	Extra         *Structural `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type NomineesResponse struct {
	Nominees   []Nominee   `json:"nominees"             yaml:"nominees"             cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type Nominee struct {
	FirstName       *string     `json:"firstName,omitempty"       yaml:"firstName,omitempty"`
	LastName        *string     `json:"lastName,omitempty"        yaml:"lastName,omitempty"`
	MiddleName      *string     `json:"middleName,omitempty"      yaml:"middleName,omitempty"`
	Ordinal         *int        `json:"ordinal,omitempty"         yaml:"ordinal,omitempty"`
	PredecessorName *string     `json:"predecessorName,omitempty" yaml:"predecessorName,omitempty"`
	State           *string     `json:"state,omitempty"           yaml:"state,omitempty"`
	Extra           *Structural `json:"-"                         yaml:"-"                         cdg:"extra"`
}

type NominationActionsResponse struct {
	Actions    []NominationAction `json:"actions"              yaml:"actions"              cdg:"required"`
	Pagination *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationAction struct {
	ActionCode *string              `json:"actionCode,omitempty" yaml:"actionCode,omitempty"`
	ActionDate *string              `json:"actionDate,omitempty" yaml:"actionDate,omitempty"`
	Committees []CommitteeReference `json:"committees,omitempty" yaml:"committees,omitempty"`
	Text       *string              `json:"text,omitempty"       yaml:"text,omitempty"`
	Type       *string              `json:"type,omitempty"       yaml:"type,omitempty"`
	Extra      *Structural          `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationCommitteesResponse struct {
	Committees []BillCommittee `json:"committees"           yaml:"committees"           cdg:"required"`
	Pagination *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationHearingsResponse struct {
	Hearings   []NominationHearing `json:"hearings"             yaml:"hearings"             cdg:"required"`
	Pagination *Pagination         `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural         `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural         `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type NominationHearing struct {
	Chamber      *string     `json:"chamber,omitempty"      yaml:"chamber,omitempty"`
	Citation     *string     `json:"citation,omitempty"     yaml:"citation,omitempty"`
	Date         *string     `json:"date,omitempty"         yaml:"date,omitempty"`
	ErrataNumber *string     `json:"errataNumber,omitempty" yaml:"errataNumber,omitempty"`
	JacketNumber *int        `json:"jacketNumber,omitempty" yaml:"jacketNumber,omitempty"`
	Number       *int        `json:"number,omitempty"       yaml:"number,omitempty"`
	Part         *int        `json:"part,omitempty"         yaml:"part,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}
