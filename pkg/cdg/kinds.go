package cdg

// Kind names one logical endpoint of the catalog. The set is closed apart from KindCustom,
// which carries a caller-supplied path.
type Kind int

const (
	kindUnset Kind = iota

	KindBillList
	KindBillByCongress
	KindBillByType
	KindBillDetails
	KindBillActions
	KindBillAmendments
	KindBillCommittees
	KindBillCosponsors
	KindBillRelatedBills
	KindBillSubjects
	KindBillSummaries
	KindBillText
	KindBillTitles

	KindLawByCongress
	KindLawByType
	KindLawDetails

	KindAmendmentList
	KindAmendmentByCongress
	KindAmendmentByType
	KindAmendmentDetails
	KindAmendmentActions
	KindAmendmentCosponsors
	KindAmendmentAmendments
	KindAmendmentText

	KindSummaryList
	KindSummaryByCongress
	KindSummaryByType

	KindCongressList
	KindCongressDetails
	KindCongressCurrent

	KindMemberList
	KindMemberByCongress
	KindMemberByState
	KindMemberByStateDistrict
	KindMemberByCongressStateDistrict
	KindMemberDetails
	KindMemberSponsoredLegislation
	KindMemberCosponsoredLegislation

	KindCommitteeList
	KindCommitteeByChamber
	KindCommitteeByCongress
	KindCommitteeByCongressChamber
	KindCommitteeDetails
	KindCommitteeBills
	KindCommitteeReports
	KindCommitteeNominations
	KindCommitteeHouseCommunications
	KindCommitteeSenateCommunications

	KindCommitteeReportList
	KindCommitteeReportByCongress
	KindCommitteeReportByType
	KindCommitteeReportDetails
	KindCommitteeReportText

	KindCommitteePrintList
	KindCommitteePrintByCongress
	KindCommitteePrintByCongressChamber
	KindCommitteePrintDetails
	KindCommitteePrintText

	KindCommitteeMeetingList
	KindCommitteeMeetingByCongress
	KindCommitteeMeetingByCongressChamber
	KindCommitteeMeetingDetails

	KindHearingList
	KindHearingByCongress
	KindHearingByCongressChamber
	KindHearingDetails

	KindCongressionalRecordList
	KindDailyRecordList
	KindDailyRecordByVolume
	KindDailyRecordIssue
	KindDailyRecordArticles
	KindBoundRecordList
	KindBoundRecordByYear
	KindBoundRecordByMonth
	KindBoundRecordByDay

	KindHouseCommunicationList
	KindHouseCommunicationByCongress
	KindHouseCommunicationByType
	KindHouseCommunicationDetails
	KindSenateCommunicationList
	KindSenateCommunicationByCongress
	KindSenateCommunicationByType
	KindSenateCommunicationDetails

	KindHouseRequirementList
	KindHouseRequirementDetails
	KindHouseRequirementMatching

	KindNominationList
	KindNominationByCongress
	KindNominationDetails
	KindNominationNominees
	KindNominationActions
	KindNominationCommittees
	KindNominationHearings

	KindTreatyList
	KindTreatyByCongress
	KindTreatyDetails
	KindTreatyPartitioned
	KindTreatyCommittees
	KindTreatyActions
	KindTreatyPartitionedActions

	KindCustom

	kindCount
)

type kindInfo struct {
	name  string
	shape ShapeTag
}

var kindTable = [kindCount]kindInfo{
	kindUnset: {"unset", ShapeGeneric},

	KindBillList:         {"bill-list", ShapeBills},
	KindBillByCongress:   {"bill-by-congress", ShapeBills},
	KindBillByType:       {"bill-by-type", ShapeBills},
	KindBillDetails:      {"bill-details", ShapeBillDetails},
	KindBillActions:      {"bill-actions", ShapeBillActions},
	KindBillAmendments:   {"bill-amendments", ShapeBillAmendments},
	KindBillCommittees:   {"bill-committees", ShapeBillCommittees},
	KindBillCosponsors:   {"bill-cosponsors", ShapeBillCosponsors},
	KindBillRelatedBills: {"bill-related-bills", ShapeBillRelatedBills},
	KindBillSubjects:     {"bill-subjects", ShapeBillSubjects},
	KindBillSummaries:    {"bill-summaries", ShapeBillSummaries},
	KindBillText:         {"bill-text", ShapeBillText},
	KindBillTitles:       {"bill-titles", ShapeBillTitles},

	KindLawByCongress: {"law-by-congress", ShapeLaws},
	KindLawByType:     {"law-by-type", ShapeLaws},
	KindLawDetails:    {"law-details", ShapeLawDetails},

	KindAmendmentList:       {"amendment-list", ShapeAmendments},
	KindAmendmentByCongress: {"amendment-by-congress", ShapeAmendments},
	KindAmendmentByType:     {"amendment-by-type", ShapeAmendments},
	KindAmendmentDetails:    {"amendment-details", ShapeAmendmentDetails},
	KindAmendmentActions:    {"amendment-actions", ShapeAmendmentActions},
	KindAmendmentCosponsors: {"amendment-cosponsors", ShapeAmendmentCosponsors},
	KindAmendmentAmendments: {"amendment-amendments", ShapeAmendmentAmendments},
	KindAmendmentText:       {"amendment-text", ShapeAmendmentText},

	KindSummaryList:       {"summary-list", ShapeSummaries},
	KindSummaryByCongress: {"summary-by-congress", ShapeSummaries},
	KindSummaryByType:     {"summary-by-type", ShapeSummaries},

	KindCongressList:    {"congress-list", ShapeCongresses},
	KindCongressDetails: {"congress-details", ShapeCongressDetails},
	KindCongressCurrent: {"congress-current", ShapeCongressDetails},

	KindMemberList:                    {"member-list", ShapeMembers},
	KindMemberByCongress:              {"member-by-congress", ShapeMembers},
	KindMemberByState:                 {"member-by-state", ShapeMembers},
	KindMemberByStateDistrict:         {"member-by-state-district", ShapeMembers},
	KindMemberByCongressStateDistrict: {"member-by-congress-state-district", ShapeMembers},
	KindMemberDetails:                 {"member-details", ShapeMemberDetails},
	KindMemberSponsoredLegislation:    {"member-sponsored-legislation", ShapeSponsoredLegislation},
	KindMemberCosponsoredLegislation:  {"member-cosponsored-legislation", ShapeCosponsoredLegislation},

	KindCommitteeList:                 {"committee-list", ShapeCommittees},
	KindCommitteeByChamber:            {"committee-by-chamber", ShapeCommittees},
	KindCommitteeByCongress:           {"committee-by-congress", ShapeCommittees},
	KindCommitteeByCongressChamber:    {"committee-by-congress-chamber", ShapeCommittees},
	KindCommitteeDetails:              {"committee-details", ShapeCommitteeDetails},
	KindCommitteeBills:                {"committee-bills", ShapeCommitteeBills},
	KindCommitteeReports:              {"committee-reports", ShapeCommitteeReports},
	KindCommitteeNominations:          {"committee-nominations", ShapeNominations},
	KindCommitteeHouseCommunications:  {"committee-house-communications", ShapeHouseCommunications},
	KindCommitteeSenateCommunications: {"committee-senate-communications", ShapeSenateCommunications},

	KindCommitteeReportList:       {"committee-report-list", ShapeCommitteeReports},
	KindCommitteeReportByCongress: {"committee-report-by-congress", ShapeCommitteeReports},
	KindCommitteeReportByType:     {"committee-report-by-type", ShapeCommitteeReports},
	KindCommitteeReportDetails:    {"committee-report-details", ShapeCommitteeReportDetails},
	KindCommitteeReportText:       {"committee-report-text", ShapeCommitteeReportText},

	KindCommitteePrintList:              {"committee-print-list", ShapeCommitteePrints},
	KindCommitteePrintByCongress:        {"committee-print-by-congress", ShapeCommitteePrints},
	KindCommitteePrintByCongressChamber: {"committee-print-by-congress-chamber", ShapeCommitteePrints},
	KindCommitteePrintDetails:           {"committee-print-details", ShapeCommitteePrintDetails},
	KindCommitteePrintText:              {"committee-print-text", ShapeCommitteePrintText},

	KindCommitteeMeetingList:              {"committee-meeting-list", ShapeCommitteeMeetings},
	KindCommitteeMeetingByCongress:        {"committee-meeting-by-congress", ShapeCommitteeMeetings},
	KindCommitteeMeetingByCongressChamber: {"committee-meeting-by-congress-chamber", ShapeCommitteeMeetings},
	KindCommitteeMeetingDetails:           {"committee-meeting-details", ShapeCommitteeMeetingDetails},

	KindHearingList:              {"hearing-list", ShapeHearings},
	KindHearingByCongress:        {"hearing-by-congress", ShapeHearings},
	KindHearingByCongressChamber: {"hearing-by-congress-chamber", ShapeHearings},
	KindHearingDetails:           {"hearing-details", ShapeHearingDetails},

	KindCongressionalRecordList: {"congressional-record-list", ShapeCongressionalRecord},
	KindDailyRecordList:         {"daily-record-list", ShapeDailyRecords},
	KindDailyRecordByVolume:     {"daily-record-by-volume", ShapeDailyRecords},
	KindDailyRecordIssue:        {"daily-record-issue", ShapeDailyRecordIssue},
	KindDailyRecordArticles:     {"daily-record-articles", ShapeDailyRecordArticles},
	KindBoundRecordList:         {"bound-record-list", ShapeBoundRecords},
	KindBoundRecordByYear:       {"bound-record-by-year", ShapeBoundRecords},
	KindBoundRecordByMonth:      {"bound-record-by-month", ShapeBoundRecords},
	KindBoundRecordByDay:        {"bound-record-by-day", ShapeBoundRecords},

	KindHouseCommunicationList:        {"house-communication-list", ShapeHouseCommunications},
	KindHouseCommunicationByCongress:  {"house-communication-by-congress", ShapeHouseCommunications},
	KindHouseCommunicationByType:      {"house-communication-by-type", ShapeHouseCommunications},
	KindHouseCommunicationDetails:     {"house-communication-details", ShapeHouseCommunicationDetails},
	KindSenateCommunicationList:       {"senate-communication-list", ShapeSenateCommunications},
	KindSenateCommunicationByCongress: {"senate-communication-by-congress", ShapeSenateCommunications},
	KindSenateCommunicationByType:     {"senate-communication-by-type", ShapeSenateCommunications},
	KindSenateCommunicationDetails:    {"senate-communication-details", ShapeSenateCommunicationDetails},

	KindHouseRequirementList:     {"house-requirement-list", ShapeHouseRequirements},
	KindHouseRequirementDetails:  {"house-requirement-details", ShapeHouseRequirementDetails},
	KindHouseRequirementMatching: {"house-requirement-matching", ShapeHouseRequirementMatching},

	KindNominationList:       {"nomination-list", ShapeNominations},
	KindNominationByCongress: {"nomination-by-congress", ShapeNominations},
	KindNominationDetails:    {"nomination-details", ShapeNominationDetails},
	KindNominationNominees:   {"nomination-nominees", ShapeNominees},
	KindNominationActions:    {"nomination-actions", ShapeNominationActions},
	KindNominationCommittees: {"nomination-committees", ShapeNominationCommittees},
	KindNominationHearings:   {"nomination-hearings", ShapeNominationHearings},

	KindTreatyList:               {"treaty-list", ShapeTreaties},
	KindTreatyByCongress:         {"treaty-by-congress", ShapeTreaties},
	KindTreatyDetails:            {"treaty-details", ShapeTreatyDetails},
	KindTreatyPartitioned:        {"treaty-partitioned", ShapeTreatyDetails},
	KindTreatyCommittees:         {"treaty-committees", ShapeTreatyCommittees},
	KindTreatyActions:            {"treaty-actions", ShapeTreatyActions},
	KindTreatyPartitionedActions: {"treaty-partitioned-actions", ShapeTreatyActions},

	KindCustom: {"custom", ShapeGeneric},
}

// String returns the kebab-case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}

	return kindTable[k].name
}

// Shape returns the response shape the endpoint usually answers with.
func (k Kind) Shape() ShapeTag {
	if k < 0 || k >= kindCount {
		return ShapeGeneric
	}

	return kindTable[k].shape
}

// Kinds lists every catalogued kind, KindCustom last.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := kindUnset + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// ParseKind looks a kind up by its String name.
func ParseKind(name string) (Kind, bool) {
	for k := kindUnset + 1; k < kindCount; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}

	return kindUnset, false
}
