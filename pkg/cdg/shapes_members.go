package cdg

// MembersResponse is the body of the member list endpoints.
type MembersResponse struct {
	Members    []MemberSummary `json:"members"              yaml:"members"              cdg:"required"`
	Pagination *Pagination     `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural     `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural     `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type MemberSummary struct {
	BioguideID *string     `json:"bioguideId,omitempty" yaml:"bioguideId,omitempty"`
	Depiction  *Depiction  `json:"depiction,omitempty"  yaml:"depiction,omitempty"`
	District   *int        `json:"district,omitempty"   yaml:"district,omitempty"`
	Name       *string     `json:"name,omitempty"       yaml:"name,omitempty"`
	PartyName  *string     `json:"partyName,omitempty"  yaml:"partyName,omitempty"`
	State      *string     `json:"state,omitempty"      yaml:"state,omitempty"`
	Terms      *TermList   `json:"terms,omitempty"      yaml:"terms,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// TermList wraps the terms of a member list entry.
type TermList struct {
	Item  []TermSummary `json:"item,omitempty" yaml:"item,omitempty"`
	Extra *Structural   `json:"-"              yaml:"-"              cdg:"extra"`
}

type TermSummary struct {
	Chamber   *string     `json:"chamber,omitempty"   yaml:"chamber,omitempty"`
	EndYear   *int        `json:"endYear,omitempty"   yaml:"endYear,omitempty"`
	StartYear *int        `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	Extra     *Structural `json:"-"                   yaml:"-"                   cdg:"extra"`
}

// Depiction is a member's official portrait.
type Depiction struct {
	Attribution *string     `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"    yaml:"imageUrl,omitempty"`
	Extra       *Structural `json:"-"                     yaml:"-"                     cdg:"extra"`
}

type MemberDetailsResponse struct {
	Member     Member      `json:"member"               yaml:"member"               cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// Member holds the biography and service record of one member.
type Member struct {
	AddressInformation     *AddressInformation  `json:"addressInformation,omitempty"     yaml:"addressInformation,omitempty"`
	BioguideID             *string              `json:"bioguideId,omitempty"             yaml:"bioguideId,omitempty"`
	BirthYear              *string              `json:"birthYear,omitempty"              yaml:"birthYear,omitempty"`
	CosponsoredLegislation *ResourceReference   `json:"cosponsoredLegislation,omitempty" yaml:"cosponsoredLegislation,omitempty"`
	CurrentMember          *bool                `json:"currentMember,omitempty"          yaml:"currentMember,omitempty"`
	DeathYear              *string              `json:"deathYear,omitempty"              yaml:"deathYear,omitempty"`
	Depiction              *Depiction           `json:"depiction,omitempty"              yaml:"depiction,omitempty"`
	DirectOrderName        *string              `json:"directOrderName,omitempty"        yaml:"directOrderName,omitempty"`
	District               *int                 `json:"district,omitempty"               yaml:"district,omitempty"`
	FirstName              *string              `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	HonorificName          *string              `json:"honorificName,omitempty"          yaml:"honorificName,omitempty"`
	InvertedOrderName      *string              `json:"invertedOrderName,omitempty"      yaml:"invertedOrderName,omitempty"`
	LastName               *string              `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	Leadership             []LeadershipPosition `json:"leadership,omitempty"             yaml:"leadership,omitempty"`
	MiddleName             *string              `json:"middleName,omitempty"             yaml:"middleName,omitempty"`
	NickName               *string              `json:"nickName,omitempty"               yaml:"nickName,omitempty"`
	OfficialWebsiteURL     *string              `json:"officialWebsiteUrl,omitempty"     yaml:"officialWebsiteUrl,omitempty"`
	PartyHistory           []PartyHistory       `json:"partyHistory,omitempty"           yaml:"partyHistory,omitempty"`
	SponsoredLegislation   *ResourceReference   `json:"sponsoredLegislation,omitempty"   yaml:"sponsoredLegislation,omitempty"`
	State                  *string              `json:"state,omitempty"                  yaml:"state,omitempty"`
	SuffixName             *string              `json:"suffixName,omitempty"             yaml:"suffixName,omitempty"`
	Terms                  []MemberTerm         `json:"terms,omitempty"                  yaml:"terms,omitempty"`
	UpdateDate             *string              `json:"updateDate,omitempty"             yaml:"updateDate,omitempty"`
	Extra                  *Structural          `json:"-"                                yaml:"-"                                cdg:"extra"`
}

type PartyHistory struct {
	EndYear           *int        `json:"endYear,omitempty"           yaml:"endYear,omitempty"`
	PartyAbbreviation *string     `json:"partyAbbreviation,omitempty" yaml:"partyAbbreviation,omitempty"`
	PartyName         *string     `json:"partyName,omitempty"         yaml:"partyName,omitempty"`
	StartYear         *int        `json:"startYear,omitempty"         yaml:"startYear,omitempty"`
	Extra             *Structural `json:"-"                           yaml:"-"                           cdg:"extra"`
}

type MemberTerm struct {
	Chamber    *string     `json:"chamber,omitempty"    yaml:"chamber,omitempty"`
	Congress   *int        `json:"congress,omitempty"   yaml:"congress,omitempty"`
	District   *int        `json:"district,omitempty"   yaml:"district,omitempty"`
	EndYear    *int        `json:"endYear,omitempty"    yaml:"endYear,omitempty"`
	MemberType *string     `json:"memberType,omitempty" yaml:"memberType,omitempty"`
	PartyCode  *string     `json:"partyCode,omitempty"  yaml:"partyCode,omitempty"`
	PartyName  *string     `json:"partyName,omitempty"  yaml:"partyName,omitempty"`
	StartYear  *int        `json:"startYear,omitempty"  yaml:"startYear,omitempty"`
	StateCode  *string     `json:"stateCode,omitempty"  yaml:"stateCode,omitempty"`
	StateName  *string     `json:"stateName,omitempty"  yaml:"stateName,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type AddressInformation struct {
	City          *string     `json:"city,omitempty"          yaml:"city,omitempty"`
	District      *string     `json:"district,omitempty"      yaml:"district,omitempty"`
	OfficeAddress *string     `json:"officeAddress,omitempty" yaml:"officeAddress,omitempty"`
	PhoneNumber   *string     `json:"phoneNumber,omitempty"   yaml:"phoneNumber,omitempty"`
	ZipCode       *int        `json:"zipCode,omitempty"       yaml:"zipCode,omitempty"`
	Extra         *Structural `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type LeadershipPosition struct {
	Congress *int        `json:"congress,omitempty" yaml:"congress,omitempty"`
	Current  *bool       `json:"current,omitempty"  yaml:"current,omitempty"`
	Type     *string     `json:"type,omitempty"     yaml:"type,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

// SponsoredLegislationResponse lists legislation a member sponsored.
type SponsoredLegislationResponse struct {
	SponsoredLegislation []LegislationItem `json:"sponsoredLegislation" yaml:"sponsoredLegislation" cdg:"required"`
	Pagination           *Pagination       `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request              *Structural       `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra                *Structural       `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CosponsoredLegislationResponse struct {
	CosponsoredLegislation []LegislationItem `json:"cosponsoredLegislation" yaml:"cosponsoredLegislation" cdg:"required"`
	Pagination             *Pagination       `json:"pagination,omitempty"   yaml:"pagination,omitempty"`
	Request                *Structural       `json:"request,omitempty"      yaml:"request,omitempty"`
	Extra                  *Structural       `json:"-"                      yaml:"-"                      cdg:"extra"`
}

// LegislationItem is a bill or amendment in a member's legislation list.
type LegislationItem struct {
	AmendmentNumber *string       `json:"amendmentNumber,omitempty" yaml:"amendmentNumber,omitempty"`
	Congress        *int          `json:"congress,omitempty"        yaml:"congress,omitempty"`
	IntroducedDate  *string       `json:"introducedDate,omitempty"  yaml:"introducedDate,omitempty"`
	LatestAction    *LatestAction `json:"latestAction,omitempty"    yaml:"latestAction,omitempty"`
	Number          *string       `json:"number,omitempty"          yaml:"number,omitempty"`
	PolicyArea      *PolicyArea   `json:"policyArea,omitempty"      yaml:"policyArea,omitempty"`
	Title           *string       `json:"title,omitempty"           yaml:"title,omitempty"`
	Type            *string       `json:"type,omitempty"            yaml:"type,omitempty"`
	URL             *string       `json:"url,omitempty"             yaml:"url,omitempty"`
	Extra           *Structural   `json:"-"                         yaml:"-"                         cdg:"extra"`
}
