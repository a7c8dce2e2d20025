package cdg

// TreatiesResponse is the body of the treaty list endpoints.
type TreatiesResponse struct {
	Treaties   []TreatySummary `json:"treaties"             yaml:"treaties"             cdg:"required"`
	Pagination *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type TreatySummary struct {
	CongressConsidered *int         `json:"congressConsidered,omitempty" yaml:"congressConsidered,omitempty"`
	CongressReceived   *int         `json:"congressReceived,omitempty"   yaml:"congressReceived,omitempty"`
	Number             *int         `json:"number,omitempty"             yaml:"number,omitempty"`
	Parts              *TreatyParts `json:"parts,omitempty"              yaml:"parts,omitempty"`
	Suffix             *string      `json:"suffix,omitempty"             yaml:"suffix,omitempty"`
	Topic              *string      `json:"topic,omitempty"              yaml:"topic,omitempty"`
	TransmittedDate    *string      `json:"transmittedDate,omitempty"    yaml:"transmittedDate,omitempty"`
	UpdateDate         *string      `json:"updateDate,omitempty"         yaml:"updateDate,omitempty"`
	URL                *string      `json:"url,omitempty"                yaml:"url,omitempty"`
	Extra              *Structural  `json:"-"                            yaml:"-"                            cdg:"extra"`
}

type TreatyParts struct {
	Count *int        `json:"count,omitempty" yaml:"count,omitempty"`
	Urls  []string    `json:"urls,omitempty"  yaml:"urls,omitempty"`
	Extra *Structural `json:"-"               yaml:"-"               cdg:"extra"`
}

type TreatyDetailsResponse struct {
	Treaty     Treaty      `json:"treaty"               yaml:"treaty"               cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Treaty holds the details of one treaty document.
type Treaty struct {
	Actions              *ResourceReference `json:"actions,omitempty"              yaml:"actions,omitempty"`
	CongressConsidered   *int               `json:"congressConsidered,omitempty"   yaml:"congressConsidered,omitempty"`
	CongressReceived     *int               `json:"congressReceived,omitempty"     yaml:"congressReceived,omitempty"`
	CountriesParties     []CountryParty     `json:"countriesParties,omitempty"     yaml:"countriesParties,omitempty"`
	InForceDate          *string            `json:"inForceDate,omitempty"          yaml:"inForceDate,omitempty"`
	IndexTerms           []IndexTerm        `json:"indexTerms,omitempty"           yaml:"indexTerms,omitempty"`
	Number               *int               `json:"number,omitempty"               yaml:"number,omitempty"`
	OldNumber            *string            `json:"oldNumber,omitempty"            yaml:"oldNumber,omitempty"`
	OldNumberDisplayName *string            `json:"oldNumberDisplayName,omitempty" yaml:"oldNumberDisplayName,omitempty"`
	Parts                *TreatyParts       `json:"parts,omitempty"                yaml:"parts,omitempty"`
	RelatedDocs          []RelatedDocument  `json:"relatedDocs,omitempty"          yaml:"relatedDocs,omitempty"`
	ResolutionText       *string            `json:"resolutionText,omitempty"       yaml:"resolutionText,omitempty"`
	Suffix               *string            `json:"suffix,omitempty"               yaml:"suffix,omitempty"`
	Titles               []TreatyTitle      `json:"titles,omitempty"               yaml:"titles,omitempty"`
	Topic                *string            `json:"topic,omitempty"                yaml:"topic,omitempty"`
	TransmittedDate      *string            `json:"transmittedDate,omitempty"      yaml:"transmittedDate,omitempty"`
	UpdateDate           *string            `json:"updateDate,omitempty"           yaml:"updateDate,omitempty"`
	Extra                *Structural        `json:"-"                              yaml:"-"                              cdg:"extra"`
}

type CountryParty struct {
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

type IndexTerm struct {
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

type RelatedDocument struct {
	Citation *string     `json:"citation,omitempty" yaml:"citation,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

type TreatyTitle struct {
	Title     *string     `json:"title,omitempty"     yaml:"title,omitempty"`
	TitleType *string     `json:"titleType,omitempty" yaml:"titleType,omitempty"`
	Extra     *Structural `json:"-"                   yaml:"-"                   cdg:"extra"`
}

type TreatyCommitteesResponse struct {
	TreatyCommittees []BillCommittee `json:"treatyCommittees"     yaml:"treatyCommittees"     cdg:"required"`
	Pagination       *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request          *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra            *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type TreatyActionsResponse struct {
	Actions    []TreatyAction `json:"actions"              yaml:"actions"              cdg:"required"`
	Pagination *Pagination    `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural    `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural    `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type TreatyAction struct {
	ActionCode *string              `json:"actionCode,omitempty" yaml:"actionCode,omitempty"`
	ActionDate *string              `json:"actionDate,omitempty" yaml:"actionDate,omitempty"`
	Committees []CommitteeReference `json:"committees,omitempty" yaml:"committees,omitempty"`
	Text       *string              `json:"text,omitempty"       yaml:"text,omitempty"`
	Type       *string              `json:"type,omitempty"       yaml:"type,omitempty"`
	Extra      *Structural          `json:"-"                    yaml:"-"                    cdg:"extra"`
}
