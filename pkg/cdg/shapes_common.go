package cdg

// Pagination is attached to every list response.
type Pagination struct {
	Count *int        `json:"count,omitempty" yaml:"count,omitempty"`
	Next  *string     `json:"next,omitempty"  yaml:"next,omitempty"`
	Prev  *string     `json:"prev,omitempty"  yaml:"prev,omitempty"`
	Extra *Structural `json:"-"               yaml:"-"               cdg:"extra"`
}

// LatestAction is the most recent action on a bill, amendment or nomination.
type LatestAction struct {
	ActionDate *string     `json:"actionDate,omitempty" yaml:"actionDate,omitempty"`
	ActionTime *string     `json:"actionTime,omitempty" yaml:"actionTime,omitempty"`
	Text       *string     `json:"text,omitempty"       yaml:"text,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// ResourceReference points at a sub-resource and counts its entries.
type ResourceReference struct {
	Count *int        `json:"count,omitempty" yaml:"count,omitempty"`
	URL   *string     `json:"url,omitempty"   yaml:"url,omitempty"`
	Extra *Structural `json:"-"               yaml:"-"               cdg:"extra"`
}

type CosponsorsReference struct {
	Count                             *int        `json:"count,omitempty"                             yaml:"count,omitempty"`
	CountIncludingWithdrawnCosponsors *int        `json:"countIncludingWithdrawnCosponsors,omitempty" yaml:"countIncludingWithdrawnCosponsors,omitempty"`
	URL                               *string     `json:"url,omitempty"                               yaml:"url,omitempty"`
	Extra                             *Structural `json:"-"                                           yaml:"-"                                           cdg:"extra"`
}

// MemberReference identifies a sponsor or member within another resource.
type MemberReference struct {
	BioguideID  *string     `json:"bioguideId,omitempty"  yaml:"bioguideId,omitempty"`
	District    *int        `json:"district,omitempty"    yaml:"district,omitempty"`
	FirstName   *string     `json:"firstName,omitempty"   yaml:"firstName,omitempty"`
	FullName    *string     `json:"fullName,omitempty"    yaml:"fullName,omitempty"`
	IsByRequest *string     `json:"isByRequest,omitempty" yaml:"isByRequest,omitempty"`
	LastName    *string     `json:"lastName,omitempty"    yaml:"lastName,omitempty"`
	MiddleName  *string     `json:"middleName,omitempty"  yaml:"middleName,omitempty"`
	Party       *string     `json:"party,omitempty"       yaml:"party,omitempty"`
	State       *string     `json:"state,omitempty"       yaml:"state,omitempty"`
	URL         *string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Extra       *Structural `json:"-"                     yaml:"-"                     cdg:"extra"`
}

// TextVersion is one published version of a document and its formats.
type TextVersion struct {
	Date    *string      `json:"date,omitempty"    yaml:"date,omitempty"`
	Formats []TextFormat `json:"formats,omitempty" yaml:"formats,omitempty"`
	Type    *string      `json:"type,omitempty"    yaml:"type,omitempty"`
	Extra   *Structural  `json:"-"                 yaml:"-"                 cdg:"extra"`
}

type TextFormat struct {
	Type     *string     `json:"type,omitempty"     yaml:"type,omitempty"`
	URL      *string     `json:"url,omitempty"      yaml:"url,omitempty"`
	IsErrata *string     `json:"isErrata,omitempty" yaml:"isErrata,omitempty"`
	Extra    *Structural `json:"-"                  yaml:"-"                  cdg:"extra"`
}

// SourceSystem names the system that recorded an action.
type SourceSystem struct {
	Code  *int        `json:"code,omitempty" yaml:"code,omitempty"`
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

type RecordedVote struct {
	Chamber       *string     `json:"chamber,omitempty"       yaml:"chamber,omitempty"`
	Congress      *int        `json:"congress,omitempty"      yaml:"congress,omitempty"`
	Date          *string     `json:"date,omitempty"          yaml:"date,omitempty"`
	RollNumber    *int        `json:"rollNumber,omitempty"    yaml:"rollNumber,omitempty"`
	SessionNumber *int        `json:"sessionNumber,omitempty" yaml:"sessionNumber,omitempty"`
	URL           *string     `json:"url,omitempty"           yaml:"url,omitempty"`
	Extra         *Structural `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type PolicyArea struct {
	Name  *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

// CommitteeReference names a committee within another resource.
type CommitteeReference struct {
	Chamber    *string     `json:"chamber,omitempty"    yaml:"chamber,omitempty"`
	Name       *string     `json:"name,omitempty"       yaml:"name,omitempty"`
	SystemCode *string     `json:"systemCode,omitempty" yaml:"systemCode,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}
