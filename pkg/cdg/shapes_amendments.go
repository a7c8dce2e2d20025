package cdg

// AmendmentsResponse is the body of the amendment list endpoints.
type AmendmentsResponse struct {
	Amendments []AmendmentSummary `json:"amendments"           yaml:"amendments"           cdg:"required"`
	Pagination *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type AmendmentSummary struct {
	Congress     *int          `json:"congress,omitempty"     yaml:"congress,omitempty"`
	Description  *string       `json:"description,omitempty"  yaml:"description,omitempty"`
	LatestAction *LatestAction `json:"latestAction,omitempty" yaml:"latestAction,omitempty"`
	Number       *string       `json:"number,omitempty"       yaml:"number,omitempty"`
	Purpose      *string       `json:"purpose,omitempty"      yaml:"purpose,omitempty"`
	Type         *string       `json:"type,omitempty"         yaml:"type,omitempty"`
	UpdateDate   *string       `json:"updateDate,omitempty"   yaml:"updateDate,omitempty"`
	URL          *string       `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural   `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type AmendmentDetailsResponse struct {
	Amendment  Amendment   `json:"amendment"            yaml:"amendment"            cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Amendment holds the details of a single amendment.
type Amendment struct {
	Actions               *ResourceReference   `json:"actions,omitempty"               yaml:"actions,omitempty"`
	AmendedAmendment      *AmendmentSummary    `json:"amendedAmendment,omitempty"      yaml:"amendedAmendment,omitempty"`
	AmendedBill           *AmendedBill         `json:"amendedBill,omitempty"           yaml:"amendedBill,omitempty"`
	AmendmentsToAmendment *ResourceReference   `json:"amendmentsToAmendment,omitempty" yaml:"amendmentsToAmendment,omitempty"`
	Chamber               *string              `json:"chamber,omitempty"               yaml:"chamber,omitempty"`
	Congress              *int                 `json:"congress,omitempty"              yaml:"congress,omitempty"`
	Cosponsors            *CosponsorsReference `json:"cosponsors,omitempty"            yaml:"cosponsors,omitempty"`
	Description           *string              `json:"description,omitempty"           yaml:"description,omitempty"`
	LatestAction          *LatestAction        `json:"latestAction,omitempty"          yaml:"latestAction,omitempty"`
	Number                *string              `json:"number,omitempty"                yaml:"number,omitempty"`
	ProposedDate          *string              `json:"proposedDate,omitempty"          yaml:"proposedDate,omitempty"`
	Purpose               *string              `json:"purpose,omitempty"               yaml:"purpose,omitempty"`
	Sponsors              []MemberReference    `json:"sponsors,omitempty"              yaml:"sponsors,omitempty"`
	SubmittedDate         *string              `json:"submittedDate,omitempty"         yaml:"submittedDate,omitempty"`
	TextVersions          *ResourceReference   `json:"textVersions,omitempty"          yaml:"textVersions,omitempty"`
	Type                  *string              `json:"type,omitempty"                  yaml:"type,omitempty"`
	UpdateDate            *string              `json:"updateDate,omitempty"            yaml:"updateDate,omitempty"`
	Extra                 *Structural          `json:"-"                               yaml:"-"                               cdg:"extra"`
}

type AmendedBill struct {
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

type AmendmentActionsResponse struct {
	Actions    []AmendmentAction `json:"actions"              yaml:"actions"              cdg:"required"`
	Pagination *Pagination       `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural       `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural       `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type AmendmentAction struct {
	ActionCode    *string        `json:"actionCode,omitempty"    yaml:"actionCode,omitempty"`
	ActionDate    *string        `json:"actionDate,omitempty"    yaml:"actionDate,omitempty"`
	RecordedVotes []RecordedVote `json:"recordedVotes,omitempty" yaml:"recordedVotes,omitempty"`
	SourceSystem  *SourceSystem  `json:"sourceSystem,omitempty"  yaml:"sourceSystem,omitempty"`
	Text          *string        `json:"text,omitempty"          yaml:"text,omitempty"`
	Type          *string        `json:"type,omitempty"          yaml:"type,omitempty"`
	Extra         *Structural    `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type AmendmentCosponsorsResponse struct {
	Cosponsors []AmendmentCosponsor `json:"cosponsors"           yaml:"cosponsors"           cdg:"required"`
	Pagination *Pagination          `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural          `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural          `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type AmendmentCosponsor struct {
	BioguideID          *string     `json:"bioguideId,omitempty"          yaml:"bioguideId,omitempty"`
	FirstName           *string     `json:"firstName,omitempty"           yaml:"firstName,omitempty"`
	FullName            *string     `json:"fullName,omitempty"            yaml:"fullName,omitempty"`
	IsOriginalCosponsor *bool       `json:"isOriginalCosponsor,omitempty" yaml:"isOriginalCosponsor,omitempty"`
	LastName            *string     `json:"lastName,omitempty"            yaml:"lastName,omitempty"`
	MiddleName          *string     `json:"middleName,omitempty"          yaml:"middleName,omitempty"`
	Party               *string     `json:"party,omitempty"               yaml:"party,omitempty"`
	SponsorshipDate     *string     `json:"sponsorshipDate,omitempty"     yaml:"sponsorshipDate,omitempty"`
	State               *string     `json:"state,omitempty"               yaml:"state,omitempty"`
	URL                 *string     `json:"url,omitempty"                 yaml:"url,omitempty"`
	Extra               *Structural `json:"-"                             yaml:"-"                             cdg:"extra"`
}

type AmendmentAmendmentsResponse struct {
	Amendments []AmendmentSummary `json:"amendments"           yaml:"amendments"           cdg:"required"`
	Pagination *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type AmendmentTextResponse struct {
	TextVersions []TextVersion `json:"textVersions"         yaml:"textVersions"         cdg:"required"`
	Pagination   *Pagination   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request      *Structural   `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra        *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}
