package cdg

// HouseCommunicationsResponse is the body of the house-communication list endpoints.
type HouseCommunicationsResponse struct {
	HouseCommunications []CommunicationSummary `json:"houseCommunications"  yaml:"houseCommunications"  cdg:"required"`
	Pagination          *Pagination            `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request             *Structural            `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra               *Structural            `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type SenateCommunicationsResponse struct {
	SenateCommunications []CommunicationSummary `json:"senateCommunications" yaml:"senateCommunications" cdg:"required"`
	Pagination           *Pagination            `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request              *Structural            `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra                *Structural            `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CommunicationSummary struct {
	Chamber            *string                `json:"chamber,omitempty"            yaml:"chamber,omitempty"`
	CommunicationType  *CommunicationTypeInfo `json:"communicationType,omitempty"  yaml:"communicationType,omitempty"`
	CongressNumber     *int                   `json:"congressNumber,omitempty"     yaml:"congressNumber,omitempty"`
	Number             *int                   `json:"number,omitempty"             yaml:"number,omitempty"`
	ReportNature       *string                `json:"reportNature,omitempty"       yaml:"reportNature,omitempty"`
	SubmittingAgency   *string                `json:"submittingAgency,omitempty"   yaml:"submittingAgency,omitempty"`
	SubmittingOfficial *string                `json:"submittingOfficial,omitempty" yaml:"submittingOfficial,omitempty"`
	UpdateDate         *string                `json:"updateDate,omitempty"         yaml:"updateDate,omitempty"`
	URL                *string                `json:"url,omitempty"                yaml:"url,omitempty"`
	Extra              *Structural            `json:"-"                            yaml:"-"                            cdg:"extra"`
}

type CommunicationTypeInfo struct {
	Code  *string     `json:"code,omitempty" yaml:"code,omitempty"`
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

// HouseCommunicationDetailsResponse uses the hyphenated "house-communication" key.
type HouseCommunicationDetailsResponse struct {
	HouseCommunication HouseCommunication `json:"house-communication"  yaml:"house-communication"  cdg:"required"`
	Pagination         *Pagination        `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request            *Structural        `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra              *Structural        `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type HouseCommunication struct {
	Abstract                *string                  `json:"abstract,omitempty"                yaml:"abstract,omitempty"`
	Chamber                 *string                  `json:"chamber,omitempty"                 yaml:"chamber,omitempty"`
	Committees              []CommunicationCommittee `json:"committees,omitempty"              yaml:"committees,omitempty"`
	CommunicationType       *CommunicationTypeInfo   `json:"communicationType,omitempty"       yaml:"communicationType,omitempty"`
	Congress                *int                     `json:"congress,omitempty"                yaml:"congress,omitempty"`
	CongressionalRecordDate *string                  `json:"congressionalRecordDate,omitempty" yaml:"congressionalRecordDate,omitempty"`
	HouseDocument           []HouseDocument          `json:"houseDocument,omitempty"           yaml:"houseDocument,omitempty"`
	IsRulemaking            *string                  `json:"isRulemaking,omitempty"            yaml:"isRulemaking,omitempty"`
	MatchingRequirements    []MatchingRequirement    `json:"matchingRequirements,omitempty"    yaml:"matchingRequirements,omitempty"`
	Number                  *int                     `json:"number,omitempty"                  yaml:"number,omitempty"`
	ReportNature            *string                  `json:"reportNature,omitempty"            yaml:"reportNature,omitempty"`
	SessionNumber           *int                     `json:"sessionNumber,omitempty"           yaml:"sessionNumber,omitempty"`
	SubmittingAgency        *string                  `json:"submittingAgency,omitempty"        yaml:"submittingAgency,omitempty"`
	SubmittingOfficial      *string                  `json:"submittingOfficial,omitempty"      yaml:"submittingOfficial,omitempty"`
	UpdateDate              *string                  `json:"updateDate,omitempty"              yaml:"updateDate,omitempty"`
	Extra                   *Structural              `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

type SenateCommunicationDetailsResponse struct {
	SenateCommunication SenateCommunication `json:"senateCommunication"  yaml:"senateCommunication"  cdg:"required"`
	Pagination          *Pagination         `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request             *Structural         `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra               *Structural         `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type SenateCommunication struct {
	Abstract                *string                  `json:"abstract,omitempty"                yaml:"abstract,omitempty"`
	Chamber                 *string                  `json:"chamber,omitempty"                 yaml:"chamber,omitempty"`
	Committees              []CommunicationCommittee `json:"committees,omitempty"              yaml:"committees,omitempty"`
	CommunicationType       *CommunicationTypeInfo   `json:"communicationType,omitempty"       yaml:"communicationType,omitempty"`
	Congress                *int                     `json:"congress,omitempty"                yaml:"congress,omitempty"`
	CongressionalRecordDate *string                  `json:"congressionalRecordDate,omitempty" yaml:"congressionalRecordDate,omitempty"`
	Number                  *int                     `json:"number,omitempty"                  yaml:"number,omitempty"`
	SessionNumber           *int                     `json:"sessionNumber,omitempty"           yaml:"sessionNumber,omitempty"`
	UpdateDate              *string                  `json:"updateDate,omitempty"              yaml:"updateDate,omitempty"`
	Extra                   *Structural              `json:"-"                                 yaml:"-"                                 cdg:"extra"`
}

type CommunicationCommittee struct {
	Name         *string     `json:"name,omitempty"         yaml:"name,omitempty"`
	ReferralDate *string     `json:"referralDate,omitempty" yaml:"referralDate,omitempty"`
	SystemCode   *string     `json:"systemCode,omitempty"   yaml:"systemCode,omitempty"`
	URL          *string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Extra        *Structural `json:"-"                      yaml:"-"                      cdg:"extra"`
}

type MatchingRequirement struct {
	Number *string     `json:"number,omitempty" yaml:"number,omitempty"`
	URL    *string     `json:"url,omitempty"    yaml:"url,omitempty"`
	Extra  *Structural `json:"-"                yaml:"-"                cdg:"extra"`
}

type HouseDocument struct {
	Citation *string     `json:"citation,omitempty" yaml:"citation,omitempty"`
	Title    *string     `json:"title,omitempty"    yaml:"title,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

// HouseRequirementsResponse is the body of the house-requirement list endpoint.
type HouseRequirementsResponse struct {
	HouseRequirements []HouseRequirementSummary `json:"houseRequirements"    yaml:"houseRequirements"    cdg:"required"`
	Pagination        *Pagination               `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request           *Structural               `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra             *Structural               `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type HouseRequirementSummary struct {
	Number     *int        `json:"number,omitempty"     yaml:"number,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type HouseRequirementDetailsResponse struct {
	HouseRequirement HouseRequirement `json:"houseRequirement"     yaml:"houseRequirement"     cdg:"required"`
	Pagination       *Pagination      `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request          *Structural      `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra            *Structural      `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type HouseRequirement struct {
	ActiveRecord           *bool              `json:"activeRecord,omitempty"           yaml:"activeRecord,omitempty"`
	Frequency              *string            `json:"frequency,omitempty"              yaml:"frequency,omitempty"`
	LegalAuthority         *string            `json:"legalAuthority,omitempty"         yaml:"legalAuthority,omitempty"`
	MatchingCommunications *ResourceReference `json:"matchingCommunications,omitempty" yaml:"matchingCommunications,omitempty"`
	Nature                 *string            `json:"nature,omitempty"                 yaml:"nature,omitempty"`
	Number                 *int               `json:"number,omitempty"                 yaml:"number,omitempty"`
	ParentAgency           *string            `json:"parentAgency,omitempty"           yaml:"parentAgency,omitempty"`
	SubmittingAgency       *string            `json:"submittingAgency,omitempty"       yaml:"submittingAgency,omitempty"`
	SubmittingOfficial     *string            `json:"submittingOfficial,omitempty"     yaml:"submittingOfficial,omitempty"`
	UpdateDate             *string            `json:"updateDate,omitempty"             yaml:"updateDate,omitempty"`
	Extra                  *Structural        `json:"-"                                yaml:"-"                                cdg:"extra"`
}

type HouseRequirementMatchingResponse struct {
	MatchingCommunications []CommunicationSummary `json:"matchingCommunications" yaml:"matchingCommunications" cdg:"required"`
	Pagination             *Pagination            `json:"pagination,omitempty"   yaml:"pagination,omitempty"`
	Request                *Structural            `json:"request,omitempty"      yaml:"request,omitempty"`
	Extra                  *Structural            `json:"-"                      yaml:"-"                      cdg:"extra"`
}
