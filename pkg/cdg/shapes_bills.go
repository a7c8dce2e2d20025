package cdg

// BillsResponse is the body of the bill list endpoints.
type BillsResponse struct {
	Bills      []BillSummary `json:"bills"                yaml:"bills"                cdg:"required"`
	Pagination *Pagination   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural   `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// BillSummary is one entry of a bill list.
type BillSummary struct {
	Congress                *int          `json:"congress,omitempty"                yaml:"congress,omitempty"`
	LatestAction            *LatestAction `json:"latestAction,omitempty"            yaml:"latestAction,omitempty"`
	Number                  *string       `json:"number,omitempty"                  yaml:"number,omitempty"`
	OriginChamber           *string       `json:"originChamber,omitempty"           yaml:"originChamber,omitempty"`
	OriginChamberCode       *string       `json:"originChamberCode,omitempty"       yaml:"originChamberCode,omitempty"`
	Title                   *string       `json:"title,omitempty"                   yaml:"title,omitempty"`
	Type                    *string       `json:"type,omitempty"                    yaml:"type,omitempty"`
	UpdateDate              *string       `json:"updateDate,omitempty"              yaml:"updateDate,omitempty"`
	UpdateDateIncludingText *string       `json:"updateDateIncludingText,omitempty" yaml:"updateDateIncludingText,omitempty"`
	URL                     *string       `json:"url,omitempty"                     yaml:"url,omitempty"`
	Extra                   *Structural   `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

// BillDetailsResponse is the body of the bill details endpoint.
type BillDetailsResponse struct {
	Bill       Bill        `json:"bill"                 yaml:"bill"                 cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Bill holds the details of a single bill or resolution.
type Bill struct {
	Actions                              *ResourceReference   `json:"actions,omitempty"                              yaml:"actions,omitempty"`
	Amendments                           *ResourceReference   `json:"amendments,omitempty"                           yaml:"amendments,omitempty"`
	CBOCostEstimates                     []CBOCostEstimate    `json:"cboCostEstimates,omitempty"                     yaml:"cboCostEstimates,omitempty"`
	CommitteeReports                     []ReportCitation     `json:"committeeReports,omitempty"                     yaml:"committeeReports,omitempty"`
	Committees                           *ResourceReference   `json:"committees,omitempty"                           yaml:"committees,omitempty"`
	Congress                             *int                 `json:"congress,omitempty"                             yaml:"congress,omitempty"`
	ConstitutionalAuthorityStatementText *string              `json:"constitutionalAuthorityStatementText,omitempty" yaml:"constitutionalAuthorityStatementText,omitempty"`
	Cosponsors                           *CosponsorsReference `json:"cosponsors,omitempty"                           yaml:"cosponsors,omitempty"`
	IntroducedDate                       *string              `json:"introducedDate,omitempty"                       yaml:"introducedDate,omitempty"`
	LatestAction                         *LatestAction        `json:"latestAction,omitempty"                         yaml:"latestAction,omitempty"`
	Laws                                 []LawReference       `json:"laws,omitempty"                                 yaml:"laws,omitempty"`
	Number                               *string              `json:"number,omitempty"                               yaml:"number,omitempty"`
	OriginChamber                        *string              `json:"originChamber,omitempty"                        yaml:"originChamber,omitempty"`
	OriginChamberCode                    *string              `json:"originChamberCode,omitempty"                    yaml:"originChamberCode,omitempty"`
	PolicyArea                           *PolicyArea          `json:"policyArea,omitempty"                           yaml:"policyArea,omitempty"`
	RelatedBills                         *ResourceReference   `json:"relatedBills,omitempty"                         yaml:"relatedBills,omitempty"`
	Sponsors                             []MemberReference    `json:"sponsors,omitempty"                             yaml:"sponsors,omitempty"`
	Subjects                             *ResourceReference   `json:"subjects,omitempty"                             yaml:"subjects,omitempty"`
	Summaries                            *ResourceReference   `json:"summaries,omitempty"                            yaml:"summaries,omitempty"`
	TextVersions                         *ResourceReference   `json:"textVersions,omitempty"                         yaml:"textVersions,omitempty"`
	Title                                *string              `json:"title,omitempty"                                yaml:"title,omitempty"`
	Titles                               *ResourceReference   `json:"titles,omitempty"                               yaml:"titles,omitempty"`
	Type                                 *string              `json:"type,omitempty"                                 yaml:"type,omitempty"`
	UpdateDate                           *string              `json:"updateDate,omitempty"                           yaml:"updateDate,omitempty"`
	UpdateDateIncludingText              *string              `json:"updateDateIncludingText,omitempty"              yaml:"updateDateIncludingText,omitempty"`
	Extra                                *Structural          `json:"-"                                              yaml:"-"                                              cdg:"extra"`
}

// CBOCostEstimate is a Congressional Budget Office cost estimate.
type CBOCostEstimate struct {
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	PubDate     *string     `json:"pubDate,omitempty"     yaml:"pubDate,omitempty"`
	Title       *string     `json:"title,omitempty"       yaml:"title,omitempty"`
	URL         *string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Extra       *Structural `json:"-"                     yaml:"-"                     cdg:"extra"`
}

type ReportCitation struct {
	Citation *string     `json:"citation,omitempty" yaml:"citation,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

type LawReference struct {
	Number *string     `json:"number,omitempty" yaml:"number,omitempty"`
	Type   *string     `json:"type,omitempty"   yaml:"type,omitempty"`
	Extra  *Structural `json:"-"                yaml:"-"                cdg:"extra"`
}

type BillActionsResponse struct {
	Actions    []BillAction `json:"actions"              yaml:"actions"              cdg:"required"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural  `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural  `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// BillAction is one step in a bill's legislative history.
type BillAction struct {
	ActionCode    *string              `json:"actionCode,omitempty"    yaml:"actionCode,omitempty"`
	ActionDate    *string              `json:"actionDate,omitempty"    yaml:"actionDate,omitempty"`
	ActionTime    *string              `json:"actionTime,omitempty"    yaml:"actionTime,omitempty"`
	Committees    []CommitteeReference `json:"committees,omitempty"    yaml:"committees,omitempty"`
	RecordedVotes []RecordedVote       `json:"recordedVotes,omitempty" yaml:"recordedVotes,omitempty"`
	SourceSystem  *SourceSystem        `json:"sourceSystem,omitempty"  yaml:"sourceSystem,omitempty"`
	Text          *string              `json:"text,omitempty"          yaml:"text,omitempty"`
	Type          *string              `json:"type,omitempty"          yaml:"type,omitempty"`
	Extra         *Structural          `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type BillAmendmentsResponse struct {
	Amendments []AmendmentSummary `json:"amendments"           yaml:"amendments"           cdg:"required"`
	Pagination *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type BillCommitteesResponse struct {
	Committees []BillCommittee `json:"committees"           yaml:"committees"           cdg:"required"`
	Pagination *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// BillCommittee is a committee a bill was referred to, with its activity.
type BillCommittee struct {
	Activities    []CommitteeActivity `json:"activities,omitempty"    yaml:"activities,omitempty"`
	Chamber       *string             `json:"chamber,omitempty"       yaml:"chamber,omitempty"`
	Name          *string             `json:"name,omitempty"          yaml:"name,omitempty"`
	Subcommittees []BillCommittee     `json:"subcommittees,omitempty" yaml:"subcommittees,omitempty"`
	SystemCode    *string             `json:"systemCode,omitempty"    yaml:"systemCode,omitempty"`
	Type          *string             `json:"type,omitempty"          yaml:"type,omitempty"`
	URL           *string             `json:"url,omitempty"           yaml:"url,omitempty"`
	Extra         *Structural         `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type CommitteeActivity struct {
	Date  *string     `json:"date,omitempty" yaml:"date,omitempty"`
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

type BillCosponsorsResponse struct {
	Cosponsors []BillCosponsor `json:"cosponsors"           yaml:"cosponsors"           cdg:"required"`
	Pagination *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type BillCosponsor struct {
	BioguideID               *string     `json:"bioguideId,omitempty"               yaml:"bioguideId,omitempty"`
	District                 *int        `json:"district,omitempty"                 yaml:"district,omitempty"`
	FirstName                *string     `json:"firstName,omitempty"                yaml:"firstName,omitempty"`
	FullName                 *string     `json:"fullName,omitempty"                 yaml:"fullName,omitempty"`
	IsOriginalCosponsor      *bool       `json:"isOriginalCosponsor,omitempty"      yaml:"isOriginalCosponsor,omitempty"`
	LastName                 *string     `json:"lastName,omitempty"                 yaml:"lastName,omitempty"`
	MiddleName               *string     `json:"middleName,omitempty"               yaml:"middleName,omitempty"`
	Party                    *string     `json:"party,omitempty"                    yaml:"party,omitempty"`
	SponsorshipDate          *string     `json:"sponsorshipDate,omitempty"          yaml:"sponsorshipDate,omitempty"`
	SponsorshipWithdrawnDate *string     `json:"sponsorshipWithdrawnDate,omitempty" yaml:"sponsorshipWithdrawnDate,omitempty"`
	State                    *string     `json:"state,omitempty"                    yaml:"state,omitempty"`
	URL                      *string     `json:"url,omitempty"                      yaml:"url,omitempty"`
	Extra                    *Structural `json:"-"                                  yaml:"-"                                  cdg:"extra"`
}

type BillRelatedBillsResponse struct {
	RelatedBills []RelatedBill `json:"relatedBills"         yaml:"relatedBills"         cdg:"required"`
	Pagination   *Pagination   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request      *Structural   `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra        *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type RelatedBill struct {
	Congress            *int                 `json:"congress,omitempty"            yaml:"congress,omitempty"`
	LatestAction        *LatestAction        `json:"latestAction,omitempty"        yaml:"latestAction,omitempty"`
	Number              *int                 `json:"number,omitempty"              yaml:"number,omitempty"`
	RelationshipDetails []RelationshipDetail `json:"relationshipDetails,omitempty" yaml:"relationshipDetails,omitempty"`
	Title               *string              `json:"title,omitempty"               yaml:"title,omitempty"`
	Type                *string              `json:"type,omitempty"                yaml:"type,omitempty"`
	URL                 *string              `json:"url,omitempty"                 yaml:"url,omitempty"`
	Extra               *Structural          `json:"-"                             yaml:"-"                             cdg:"extra"`
}

// RelationshipDetail says who identified a relationship between two bills.
type RelationshipDetail struct {
	IdentifiedBy *string     `json:"identifiedBy,omitempty" yaml:"identifiedBy,omitempty"`
	Type         *string     `json:"type,omitempty"         yaml:"type,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type BillSubjectsResponse struct {
	Subjects   Subjects    `json:"subjects"             yaml:"subjects"             cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type Subjects struct {
	LegislativeSubjects []LegislativeSubject `json:"legislativeSubjects,omitempty" yaml:"legislativeSubjects,omitempty"`
	PolicyArea          *PolicyArea          `json:"policyArea,omitempty"          yaml:"policyArea,omitempty"`
	Extra               *Structural          `json:"-"                             yaml:"-"                             cdg:"extra"`
}

type LegislativeSubject struct {
	Name       *string     `json:"name,omitempty"       yaml:"name,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// BillSummariesResponse lists the CRS summaries written for one bill.
type BillSummariesResponse struct {
	Summaries  []BillSummaryVersion `json:"summaries"            yaml:"summaries"            cdg:"required"`
	Pagination *Pagination          `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural          `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural          `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type BillSummaryVersion struct {
	ActionDate  *string     `json:"actionDate,omitempty"  yaml:"actionDate,omitempty"`
	ActionDesc  *string     `json:"actionDesc,omitempty"  yaml:"actionDesc,omitempty"`
	Text        *string     `json:"text,omitempty"        yaml:"text,omitempty"`
	UpdateDate  *string     `json:"updateDate,omitempty"  yaml:"updateDate,omitempty"`
	VersionCode *string     `json:"versionCode,omitempty" yaml:"versionCode,omitempty"`
	Extra       *Structural `json:"-"                     yaml:"-"                     cdg:"extra"`
}

type BillTextResponse struct {
	TextVersions []TextVersion `json:"textVersions"         yaml:"textVersions"         cdg:"required"`
	Pagination   *Pagination   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request      *Structural   `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra        *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type BillTitlesResponse struct {
	Titles     []BillTitle `json:"titles"               yaml:"titles"               cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type BillTitle struct {
	BillTextVersionCode *string     `json:"billTextVersionCode,omitempty" yaml:"billTextVersionCode,omitempty"`
	BillTextVersionName *string     `json:"billTextVersionName,omitempty" yaml:"billTextVersionName,omitempty"`
	ChamberCode         *string     `json:"chamberCode,omitempty"         yaml:"chamberCode,omitempty"`
	ChamberName         *string     `json:"chamberName,omitempty"         yaml:"chamberName,omitempty"`
	Title               *string     `json:"title,omitempty"               yaml:"title,omitempty"`
	TitleType           *string     `json:"titleType,omitempty"           yaml:"titleType,omitempty"`
	TitleTypeCode       *int        `json:"titleTypeCode,omitempty"       yaml:"titleTypeCode,omitempty"`
	UpdateDate          *string     `json:"updateDate,omitempty"          yaml:"updateDate,omitempty"`
	Extra               *Structural `json:"-"                             yaml:"-"                             cdg:"extra"`
}

// SummariesResponse is the body of the summaries endpoints.
type SummariesResponse struct {
	Summaries  []Summary   `json:"summaries"            yaml:"summaries"            cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type Summary struct {
	ActionDate            *string        `json:"actionDate,omitempty"            yaml:"actionDate,omitempty"`
	ActionDesc            *string        `json:"actionDesc,omitempty"            yaml:"actionDesc,omitempty"`
	Bill                  *BillReference `json:"bill,omitempty"                  yaml:"bill,omitempty"`
	CurrentChamber        *string        `json:"currentChamber,omitempty"        yaml:"currentChamber,omitempty"`
	CurrentChamberCode    *string        `json:"currentChamberCode,omitempty"    yaml:"currentChamberCode,omitempty"`
	LastSummaryUpdateDate *string        `json:"lastSummaryUpdateDate,omitempty" yaml:"lastSummaryUpdateDate,omitempty"`
	Text                  *string        `json:"text,omitempty"                  yaml:"text,omitempty"`
	UpdateDate            *string        `json:"updateDate,omitempty"            yaml:"updateDate,omitempty"`
	VersionCode           *string        `json:"versionCode,omitempty"           yaml:"versionCode,omitempty"`
	Extra                 *Structural    `json:"-"                               yaml:"-"                               cdg:"extra"`
}

// BillReference identifies the bill a summary belongs to.
type BillReference struct {
	Congress                *int        `json:"congress,omitempty"                yaml:"congress,omitempty"`
	Number                  *string     `json:"number,omitempty"                  yaml:"number,omitempty"`
	OriginChamber           *string     `json:"originChamber,omitempty"           yaml:"originChamber,omitempty"`
	OriginChamberCode       *string     `json:"originChamberCode,omitempty"       yaml:"originChamberCode,omitempty"`
	Title                   *string     `json:"title,omitempty"                   yaml:"title,omitempty"`
	Type                    *string     `json:"type,omitempty"                    yaml:"type,omitempty"`
	UpdateDateIncludingText *string     `json:"updateDateIncludingText,omitempty" yaml:"updateDateIncludingText,omitempty"`
	URL                     *string     `json:"url,omitempty"                     yaml:"url,omitempty"`
	Extra                   *Structural `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

// LawsResponse lists the bills that became law. The API reuses the "bills" key.
type LawsResponse struct {
	Bills      []LawSummary `json:"bills"                yaml:"bills"                cdg:"required"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural  `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural  `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type LawSummary struct {
	Congress                *int           `json:"congress,omitempty"                yaml:"congress,omitempty"`
	LatestAction            *LatestAction  `json:"latestAction,omitempty"            yaml:"latestAction,omitempty"`
	Laws                    []LawReference `json:"laws,omitempty"                    yaml:"laws,omitempty"`
	Number                  *string        `json:"number,omitempty"                  yaml:"number,omitempty"`
	OriginChamber           *string        `json:"originChamber,omitempty"           yaml:"originChamber,omitempty"`
	OriginChamberCode       *string        `json:"originChamberCode,omitempty"       yaml:"originChamberCode,omitempty"`
	Title                   *string        `json:"title,omitempty"                   yaml:"title,omitempty"`
	Type                    *string        `json:"type,omitempty"                    yaml:"type,omitempty"`
	UpdateDate              *string        `json:"updateDate,omitempty"              yaml:"updateDate,omitempty"`
	UpdateDateIncludingText *string        `json:"updateDateIncludingText,omitempty" yaml:"updateDateIncludingText,omitempty"`
	URL                     *string        `json:"url,omitempty"                     yaml:"url,omitempty"`
	Extra                   *Structural    `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

type LawDetailsResponse struct {
	Bill       Bill        `json:"bill"                 yaml:"bill"                 cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}
