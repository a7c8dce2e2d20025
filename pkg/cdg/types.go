package cdg

import (
	"fmt"
	"strings"
)

// FormatType selects the response body encoding requested from the API.
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatXML  FormatType = "xml"
)

// SortType orders list results by update date.
type SortType string

const (
	SortUpdateDateAsc  SortType = "updateDate asc"
	SortUpdateDateDesc SortType = "updateDate desc"
)

// BillType identifies the kind of a bill or resolution.
type BillType string

const (
	BillTypeHR      BillType = "hr"
	BillTypeS       BillType = "s"
	BillTypeHJRes   BillType = "hjres"
	BillTypeSJRes   BillType = "sjres"
	BillTypeHConRes BillType = "hconres"
	BillTypeSConRes BillType = "sconres"
	BillTypeHRes    BillType = "hres"
	BillTypeSRes    BillType = "sres"
)

// AmendmentType identifies House, Senate or Senate unprinted amendments.
type AmendmentType string

const (
	AmendmentTypeHAmdt  AmendmentType = "hamdt"
	AmendmentTypeSAmdt  AmendmentType = "samdt"
	AmendmentTypeSUAmdt AmendmentType = "suamdt"
)

// LawType distinguishes public and private laws.
type LawType string

const (
	LawTypePublic  LawType = "pub"
	LawTypePrivate LawType = "priv"
)

// ChamberType names a chamber of Congress.
type ChamberType string

const (
	ChamberHouse     ChamberType = "house"
	ChamberSenate    ChamberType = "senate"
	ChamberJoint     ChamberType = "joint"
	ChamberNoChamber ChamberType = "nochamber"
)

// CommunicationType classifies house and senate communications.
type CommunicationType string

const (
	CommunicationExecutive    CommunicationType = "ec"
	CommunicationMemorial     CommunicationType = "ml"
	CommunicationPresidential CommunicationType = "pm"
	CommunicationPetition     CommunicationType = "pt"
)

// CommitteeReportType classifies committee reports and documents.
type CommitteeReportType string

const (
	ReportTypeHRpt CommitteeReportType = "hrpt"
	ReportTypeSRpt CommitteeReportType = "srpt"
	ReportTypeHDoc CommitteeReportType = "hdoc"
	ReportTypeSDoc CommitteeReportType = "sdoc"
	ReportTypeCRpt CommitteeReportType = "crpt"
)

var (
	billTypes           = []BillType{BillTypeHR, BillTypeS, BillTypeHJRes, BillTypeSJRes, BillTypeHConRes, BillTypeSConRes, BillTypeHRes, BillTypeSRes}
	amendmentTypes      = []AmendmentType{AmendmentTypeHAmdt, AmendmentTypeSAmdt, AmendmentTypeSUAmdt}
	lawTypes            = []LawType{LawTypePublic, LawTypePrivate}
	chamberTypes        = []ChamberType{ChamberHouse, ChamberSenate, ChamberJoint, ChamberNoChamber}
	communicationTypes  = []CommunicationType{CommunicationExecutive, CommunicationMemorial, CommunicationPresidential, CommunicationPetition}
	committeeReportKind = []CommitteeReportType{ReportTypeHRpt, ReportTypeSRpt, ReportTypeHDoc, ReportTypeSDoc, ReportTypeCRpt}
)

// String implements fmt.Stringer.
func (f FormatType) String() string { return string(f) }

// Valid reports whether f is a known format.
func (f FormatType) Valid() bool { return f == FormatJSON || f == FormatXML }

// String implements fmt.Stringer.
func (s SortType) String() string { return string(s) }

// Valid reports whether s is a known sort order.
func (s SortType) Valid() bool { return s == SortUpdateDateAsc || s == SortUpdateDateDesc }

// String implements fmt.Stringer.
func (b BillType) String() string { return string(b) }

// Valid reports whether b is a known bill type.
func (b BillType) Valid() bool { return contains(billTypes, b) }

// String implements fmt.Stringer.
func (a AmendmentType) String() string { return string(a) }

// Valid reports whether a is a known amendment type.
func (a AmendmentType) Valid() bool { return contains(amendmentTypes, a) }

// String implements fmt.Stringer.
func (l LawType) String() string { return string(l) }

// Valid reports whether l is a known law type.
func (l LawType) Valid() bool { return contains(lawTypes, l) }

// String implements fmt.Stringer.
func (c ChamberType) String() string { return string(c) }

// Valid reports whether c is a known chamber.
func (c ChamberType) Valid() bool { return contains(chamberTypes, c) }

// String implements fmt.Stringer.
func (c CommunicationType) String() string { return string(c) }

// Valid reports whether c is a known communication type.
func (c CommunicationType) Valid() bool { return contains(communicationTypes, c) }

// String implements fmt.Stringer.
func (r CommitteeReportType) String() string { return string(r) }

// Valid reports whether r is a known report type.
func (r CommitteeReportType) Valid() bool { return contains(committeeReportKind, r) }

// ParseFormatType parses a format name, ignoring case.
func ParseFormatType(s string) (FormatType, error) {
	return parseEnum(s, []FormatType{FormatJSON, FormatXML}, "format")
}

// ParseSortType accepts "asc", "desc" or the full "updateDate asc" form.
func ParseSortType(s string) (SortType, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "+", " "))) {
	case "asc", "updatedate asc":
		return SortUpdateDateAsc, nil
	case "desc", "updatedate desc":
		return SortUpdateDateDesc, nil
	}

	return "", fmt.Errorf("%w: sort %q", ErrUnknownEnumValue, s)
}

// ParseBillType parses a bill type such as "HR" or "sjres", ignoring case.
func ParseBillType(s string) (BillType, error) {
	return parseEnum(s, billTypes, "bill type")
}

// ParseAmendmentType parses an amendment type, ignoring case.
func ParseAmendmentType(s string) (AmendmentType, error) {
	return parseEnum(s, amendmentTypes, "amendment type")
}

// ParseLawType parses a law type, ignoring case.
func ParseLawType(s string) (LawType, error) {
	return parseEnum(s, lawTypes, "law type")
}

// ParseChamberType parses a chamber name, ignoring case.
func ParseChamberType(s string) (ChamberType, error) {
	return parseEnum(s, chamberTypes, "chamber")
}

// ParseCommunicationType parses a communication type, ignoring case.
func ParseCommunicationType(s string) (CommunicationType, error) {
	return parseEnum(s, communicationTypes, "communication type")
}

// ParseCommitteeReportType parses a committee report type, ignoring case.
func ParseCommitteeReportType(s string) (CommitteeReportType, error) {
	return parseEnum(s, committeeReportKind, "committee report type")
}

func parseEnum[T ~string](s string, known []T, what string) (T, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, candidate := range known {
		if string(candidate) == needle {
			return candidate, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, what, s)
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}

	return false
}
