package cdg

// CommitteesResponse is the body of the committee list endpoints.
type CommitteesResponse struct {
	Committees []CommitteeSummary `json:"committees"           yaml:"committees"           cdg:"required"`
	Pagination *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeSummary struct {
	Chamber           *string              `json:"chamber,omitempty"           yaml:"chamber,omitempty"`
	CommitteeTypeCode *string              `json:"committeeTypeCode,omitempty" yaml:"committeeTypeCode,omitempty"`
	Name              *string              `json:"name,omitempty"              yaml:"name,omitempty"`
	Parent            *CommitteeReference  `json:"parent,omitempty"            yaml:"parent,omitempty"`
	Subcommittees     []CommitteeReference `json:"subcommittees,omitempty"     yaml:"subcommittees,omitempty"`
	SystemCode        *string              `json:"systemCode,omitempty"        yaml:"systemCode,omitempty"`
	UpdateDate        *string              `json:"updateDate,omitempty"        yaml:"updateDate,omitempty"`
	URL               *string              `json:"url,omitempty"               yaml:"url,omitempty"`
	Extra             *Structural          `json:"-"                           yaml:"-"                           cdg:"extra"`
}

type CommitteeDetailsResponse struct {
	Committee  Committee   `json:"committee"            yaml:"committee"            cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Committee holds the details and history of one committee.
type Committee struct {
	Bills          *ResourceReference   `json:"bills,omitempty"          yaml:"bills,omitempty"`
	Communications *ResourceReference   `json:"communications,omitempty" yaml:"communications,omitempty"`
	History        []CommitteeHistory   `json:"history,omitempty"        yaml:"history,omitempty"`
	IsCurrent      *bool                `json:"isCurrent,omitempty"      yaml:"isCurrent,omitempty"`
	Nominations    *ResourceReference   `json:"nominations,omitempty"    yaml:"nominations,omitempty"`
	Parent         *CommitteeReference  `json:"parent,omitempty"         yaml:"parent,omitempty"`
	Reports        *ResourceReference   `json:"reports,omitempty"        yaml:"reports,omitempty"`
	Subcommittees  []CommitteeReference `json:"subcommittees,omitempty"  yaml:"subcommittees,omitempty"`
	SystemCode     *string              `json:"systemCode,omitempty"     yaml:"systemCode,omitempty"`
	Type           *string              `json:"type,omitempty"           yaml:"type,omitempty"`
	UpdateDate     *string              `json:"updateDate,omitempty"     yaml:"updateDate,omitempty"`
	Extra          *Structural          `json:"-"                        yaml:"-"                        cdg:"extra"`
}

type CommitteeHistory struct {
	CommitteeTypeCode            *string     `json:"committeeTypeCode,omitempty"            yaml:"committeeTypeCode,omitempty"`
	EndDate                      *string     `json:"endDate,omitempty"                      yaml:"endDate,omitempty"`
	EstablishingAuthority        *string     `json:"establishingAuthority,omitempty"        yaml:"establishingAuthority,omitempty"`
	LibraryOfCongressName        *string     `json:"libraryOfCongressName,omitempty"        yaml:"libraryOfCongressName,omitempty"`
	LocLinkedDataID              *string     `json:"locLinkedDataId,omitempty"              yaml:"locLinkedDataId,omitempty"`
	NaraID                       *string     `json:"naraId,omitempty"                       yaml:"naraId,omitempty"`
	OfficialName                 *string     `json:"officialName,omitempty"                 yaml:"officialName,omitempty"`
	StartDate                    *string     `json:"startDate,omitempty"                    yaml:"startDate,omitempty"`
	SuperintendentDocumentNumber *string     `json:"superintendentDocumentNumber,omitempty" yaml:"superintendentDocumentNumber,omitempty"`
	UpdateDate                   *string     `json:"updateDate,omitempty"                   yaml:"updateDate,omitempty"`
	Extra                        *Structural `json:"-"                                      yaml:"-"                                      cdg:"extra"`
}

// CommitteeBillsResponse wraps its list under the "committee-bills" key.
type CommitteeBillsResponse struct {
	CommitteeBills CommitteeBillList `json:"committee-bills"      yaml:"committee-bills"      cdg:"required"`
	Pagination     *Pagination       `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request        *Structural       `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra          *Structural       `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommitteeBillList struct {
	Bills []CommitteeBill `json:"bills,omitempty" yaml:"bills,omitempty"`
	Count *int            `json:"count,omitempty" yaml:"count,omitempty"`
	URL   *string         `json:"url,omitempty"   yaml:"url,omitempty"`
	Extra *Structural     `json:"-"               yaml:"-"               cdg:"extra"`
}

type CommitteeBill struct {
	ActionDate       *string     `json:"actionDate,omitempty"       yaml:"actionDate,omitempty"`
	BillType         *string     `json:"billType,omitempty"         yaml:"billType,omitempty"`
	Congress         *int        `json:"congress,omitempty"         yaml:"congress,omitempty"`
	Number           *string     `json:"number,omitempty"           yaml:"number,omitempty"`
	RelationshipType *string     `json:"relationshipType,omitempty" yaml:"relationshipType,omitempty"`
	UpdateDate       *string     `json:"updateDate,omitempty"       yaml:"updateDate,omitempty"`
	URL              *string     `json:"url,omitempty"              yaml:"url,omitempty"`
	Extra            *Structural `json:"-"                          yaml:"-"                          cdg:"extra"`
}
