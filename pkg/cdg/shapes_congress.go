package cdg

// CongressesResponse is the body of the congress list endpoint.
type CongressesResponse struct {
	Congresses []CongressSummary `json:"congresses"           yaml:"congresses"           cdg:"required"`
	Pagination *Pagination       `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural       `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural       `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type CongressSummary struct {
	EndYear   *string     `json:"endYear,omitempty"   yaml:"endYear,omitempty"`
	Name      *string     `json:"name,omitempty"      yaml:"name,omitempty"`
	Sessions  []Session   `json:"sessions,omitempty"  yaml:"sessions,omitempty"`
	StartYear *string     `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	URL       *string     `json:"url,omitempty"       yaml:"url,omitempty"`
	Extra     *Structural `json:"-"                   yaml:"-"                   cdg:"extra"`
}

// Session is one session of a congress in one chamber.
type Session struct {
	Chamber   *string     `json:"chamber,omitempty"   yaml:"chamber,omitempty"`
	EndDate   *string     `json:"endDate,omitempty"   yaml:"endDate,omitempty"`
	Number    *int        `json:"number,omitempty"    yaml:"number,omitempty"`
	StartDate *string     `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Type      *string     `json:"type,omitempty"      yaml:"type,omitempty"`
	Extra     *Structural `json:"-"                   yaml:"-"                   cdg:"extra"`
}

type CongressDetailsResponse struct {
	Congress   Congress    `json:"congress"             yaml:"congress"             cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type Congress struct {
	EndYear    *string     `json:"endYear,omitempty"    yaml:"endYear,omitempty"`
	Name       *string     `json:"name,omitempty"       yaml:"name,omitempty"`
	Number     *int        `json:"number,omitempty"     yaml:"number,omitempty"`
	Sessions   []Session   `json:"sessions,omitempty"   yaml:"sessions,omitempty"`
	StartYear  *string     `json:"startYear,omitempty"  yaml:"startYear,omitempty"`
	UpdateDate *string     `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        *string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}
