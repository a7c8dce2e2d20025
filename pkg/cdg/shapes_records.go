package cdg

// CongressionalRecordResponse is the body of the congressional-record endpoint,
// which capitalizes its keys.
type CongressionalRecordResponse struct {
	Results    RecordResults `json:"Results"              yaml:"Results"              cdg:"required"`
	Pagination *Pagination   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural   `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type RecordResults struct {
	IndexStart *int          `json:"IndexStart,omitempty" yaml:"IndexStart,omitempty"`
	Issues     []RecordIssue `json:"Issues,omitempty"     yaml:"Issues,omitempty"`
	TotalCount *int          `json:"TotalCount,omitempty" yaml:"TotalCount,omitempty"`
	Extra      *Structural   `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type RecordIssue struct {
	Congress    *string      `json:"Congress,omitempty"    yaml:"Congress,omitempty"`
	ID          *int         `json:"Id,omitempty"          yaml:"Id,omitempty"`
	Issue       *string      `json:"Issue,omitempty"       yaml:"Issue,omitempty"`
	Links       *RecordLinks `json:"Links,omitempty"       yaml:"Links,omitempty"`
	PublishDate *string      `json:"PublishDate,omitempty" yaml:"PublishDate,omitempty"`
	Session     *string      `json:"Session,omitempty"     yaml:"Session,omitempty"`
	Volume      *string      `json:"Volume,omitempty"      yaml:"Volume,omitempty"`
	Extra       *Structural  `json:"-"                     yaml:"-"                     cdg:"extra"`
}

type RecordLinks struct {
	Digest     *RecordSection `json:"Digest,omitempty"     yaml:"Digest,omitempty"`
	FullRecord *RecordSection `json:"FullRecord,omitempty" yaml:"FullRecord,omitempty"`
	House      *RecordSection `json:"House,omitempty"      yaml:"House,omitempty"`
	Remarks    *RecordSection `json:"Remarks,omitempty"    yaml:"Remarks,omitempty"`
	Senate     *RecordSection `json:"Senate,omitempty"     yaml:"Senate,omitempty"`
	Extra      *Structural    `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type RecordSection struct {
	Label   *string     `json:"Label,omitempty"   yaml:"Label,omitempty"`
	Ordinal *int        `json:"Ordinal,omitempty" yaml:"Ordinal,omitempty"`
	PDF     []RecordPDF `json:"PDF,omitempty"     yaml:"PDF,omitempty"`
	Extra   *Structural `json:"-"                 yaml:"-"                 cdg:"extra"`
}

type RecordPDF struct {
	Part  *string     `json:"Part,omitempty" yaml:"Part,omitempty"`
	URL   *string     `json:"Url,omitempty"  yaml:"Url,omitempty"`
	Extra *Structural `json:"-"              yaml:"-"              cdg:"extra"`
}

// DailyRecordsResponse lists daily Congressional Record issues.
type DailyRecordsResponse struct {
	DailyCongressionalRecord []DailyIssue `json:"dailyCongressionalRecord" yaml:"dailyCongressionalRecord" cdg:"required"`
	Pagination               *Pagination  `json:"pagination,omitempty"     yaml:"pagination,omitempty"`
	Request                  *Structural  `json:"request,omitempty"        yaml:"request,omitempty"`
	Extra                    *Structural  `json:"-"                        yaml:"-"                        cdg:"extra"`
}

type DailyIssue struct {
	Congress      *int        `json:"congress,omitempty"      yaml:"congress,omitempty"`
	FullIssue     *FullIssue  `json:"fullIssue,omitempty"     yaml:"fullIssue,omitempty"`
	IssueDate     *string     `json:"issueDate,omitempty"     yaml:"issueDate,omitempty"`
	IssueNumber   *string     `json:"issueNumber,omitempty"   yaml:"issueNumber,omitempty"`
	SessionNumber *int        `json:"sessionNumber,omitempty" yaml:"sessionNumber,omitempty"`
	UpdateDate    *string     `json:"updateDate,omitempty"    yaml:"updateDate,omitempty"`
	URL           *string     `json:"url,omitempty"           yaml:"url,omitempty"`
	VolumeNumber  *int        `json:"volumeNumber,omitempty"  yaml:"volumeNumber,omitempty"`
	Extra         *Structural `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type FullIssue struct {
	Articles    *ResourceReference `json:"articles,omitempty"    yaml:"articles,omitempty"`
	EntireIssue []TextFormat       `json:"entireIssue,omitempty" yaml:"entireIssue,omitempty"`
	Sections    []IssueSection     `json:"sections,omitempty"    yaml:"sections,omitempty"`
	Extra       *Structural        `json:"-"                     yaml:"-"                     cdg:"extra"`
}

// IssueSection is one part of a daily issue, such as the Senate section.
type IssueSection struct {
	EndPage   *string      `json:"endPage,omitempty"   yaml:"endPage,omitempty"`
	Name      *string      `json:"name,omitempty"      yaml:"name,omitempty"`
	StartPage *string      `json:"startPage,omitempty" yaml:"startPage,omitempty"`
	Text      []TextFormat `json:"text,omitempty"      yaml:"text,omitempty"`
	Extra     *Structural  `json:"-"                   yaml:"-"                   cdg:"extra"`
}

type DailyRecordIssueResponse struct {
	Issue      DailyIssue  `json:"issue"                yaml:"issue"                cdg:"required"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural `json:"-"                    yaml:"-"                    cdg:"extra"`
}

type DailyRecordArticlesResponse struct {
	Articles   []ArticleSection `json:"articles"             yaml:"articles"             cdg:"required"`
	Pagination *Pagination      `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Request    *Structural      `json:"request,omitempty"    yaml:"request,omitempty"`
	Extra      *Structural      `json:"-"                    yaml:"-"                    cdg:"extra"`
}

// ArticleSection groups the articles printed in one section of an issue.
type ArticleSection struct {
	Name            *string     `json:"name,omitempty"            yaml:"name,omitempty"`
	SectionArticles []Article   `json:"sectionArticles,omitempty" yaml:"sectionArticles,omitempty"`
	Extra           *Structural `json:"-"                         yaml:"-"                         cdg:"extra"`
}

type Article struct {
	EndPage   *string      `json:"endPage,omitempty"   yaml:"endPage,omitempty"`
	StartPage *string      `json:"startPage,omitempty" yaml:"startPage,omitempty"`
	Text      []TextFormat `json:"text,omitempty"      yaml:"text,omitempty"`
	Title     *string      `json:"title,omitempty"     yaml:"title,omitempty"`
	Extra     *Structural  `json:"-"                   yaml:"-"                   cdg:"extra"`
}

// BoundRecordsResponse lists days of the bound Congressional Record.
type BoundRecordsResponse struct {
	BoundCongressionalRecord []BoundRecord `json:"boundCongressionalRecord" yaml:"boundCongressionalRecord" cdg:"required"`
	Pagination               *Pagination   `json:"pagination,omitempty"     yaml:"pagination,omitempty"`
	Request                  *Structural   `json:"request,omitempty"        yaml:"request,omitempty"`
	Extra                    *Structural   `json:"-"                        yaml:"-"                        cdg:"extra"`
}

type BoundRecord struct {
	Congress      *int                 `json:"congress,omitempty"      yaml:"congress,omitempty"`
	DailyDigest   *Structural          `json:"dailyDigest,omitempty"   yaml:"dailyDigest,omitempty"`
	Date          *string              `json:"date,omitempty"          yaml:"date,omitempty"`
	Sections      []BoundRecordSection `json:"sections,omitempty"      yaml:"sections,omitempty"`
	SessionNumber *int                 `json:"sessionNumber,omitempty" yaml:"sessionNumber,omitempty"`
	UpdateDate    *string              `json:"updateDate,omitempty"    yaml:"updateDate,omitempty"`
	URL           *string              `json:"url,omitempty"           yaml:"url,omitempty"`
	VolumeNumber  *int                 `json:"volumeNumber,omitempty"  yaml:"volumeNumber,omitempty"`
	Extra         *Structural          `json:"-"                       yaml:"-"                       cdg:"extra"`
}

type BoundRecordSection struct {
	EndPage   *int        `json:"endPage,omitempty"   yaml:"endPage,omitempty"`
	Name      *string     `json:"name,omitempty"      yaml:"name,omitempty"`
	StartPage *int        `json:"startPage,omitempty" yaml:"startPage,omitempty"`
	Extra     *Structural `json:"-"                   yaml:"-"                   cdg:"extra"`
}
