package cdg

// Endpoint describes one request: which resource, which identifiers and which query
// parameters. Endpoints are built only by the constructors below, are immutable, and are
// validated when their URL is built rather than when they are constructed.
type Endpoint struct {
	kind     Kind
	segments []segment
	params   Params
}

// Kind returns the catalog entry the endpoint was built from.
func (e Endpoint) Kind() Kind { return e.kind }

// Shape returns the default response shape for the endpoint.
func (e Endpoint) Shape() ShapeTag { return e.kind.Shape() }

// Params returns the query parameters, or nil for an endpoint that was not constructed.
func (e Endpoint) Params() Params { return e.params }

func newEndpoint(kind Kind, params Params, segments ...segment) Endpoint {
	return Endpoint{kind: kind, segments: segments, params: params}
}

// Bills

// BillList lists bills across all congresses, most recently updated first.
func BillList(p ListParams) Endpoint {
	return newEndpoint(KindBillList, p, literal("bill"))
}

// BillByCongress lists bills introduced in one congress.
func BillByCongress(congress int, p ListParams) Endpoint {
	return newEndpoint(KindBillByCongress, p, literal("bill"), number("congress", congress))
}

// BillByType lists bills of one type within a congress.
func BillByType(congress int, billType BillType, p ListParams) Endpoint {
	return newEndpoint(KindBillByType, p, literal("bill"), number("congress", congress), enum("billType", billType))
}

// BillDetails returns a single bill.
func BillDetails(congress int, billType BillType, billNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindBillDetails, p, billPath(congress, billType, billNumber)...)
}

// BillActions lists the actions taken on a bill.
func BillActions(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillActions, p, billPath(congress, billType, billNumber, "actions")...)
}

// BillAmendments lists the amendments to a bill.
func BillAmendments(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillAmendments, p, billPath(congress, billType, billNumber, "amendments")...)
}

// BillCommittees lists the committees a bill was referred to.
func BillCommittees(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillCommittees, p, billPath(congress, billType, billNumber, "committees")...)
}

// BillCosponsors lists a bill's cosponsors.
func BillCosponsors(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillCosponsors, p, billPath(congress, billType, billNumber, "cosponsors")...)
}

// BillRelatedBills lists bills related to a bill.
func BillRelatedBills(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillRelatedBills, p, billPath(congress, billType, billNumber, "relatedbills")...)
}

// BillSubjects lists the legislative subjects of a bill.
func BillSubjects(congress int, billType BillType, billNumber int, p WindowParams) Endpoint {
	return newEndpoint(KindBillSubjects, p, billPath(congress, billType, billNumber, "subjects")...)
}

// BillSummaries lists the CRS summaries of a bill.
func BillSummaries(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillSummaries, p, billPath(congress, billType, billNumber, "summaries")...)
}

// BillText lists the text versions of a bill.
func BillText(congress int, billType BillType, billNumber int, p PageParams) Endpoint {
	return newEndpoint(KindBillText, p, billPath(congress, billType, billNumber, "text")...)
}

// BillTitles lists the titles of a bill.
func BillTitles(congress int, billType BillType, billNumber int, p WindowParams) Endpoint {
	return newEndpoint(KindBillTitles, p, billPath(congress, billType, billNumber, "titles")...)
}

func billPath(congress int, billType BillType, billNumber int, sub ...string) []segment {
	segments := []segment{literal("bill"), number("congress", congress), enum("billType", billType), number("billNumber", billNumber)}
	for _, s := range sub {
		segments = append(segments, literal(s))
	}

	return segments
}

// Laws

// LawByCongress lists the laws enacted by a congress.
func LawByCongress(congress int, p PageParams) Endpoint {
	return newEndpoint(KindLawByCongress, p, literal("law"), number("congress", congress))
}

// LawByType lists public or private laws enacted by a congress.
func LawByType(congress int, lawType LawType, p PageParams) Endpoint {
	return newEndpoint(KindLawByType, p, literal("law"), number("congress", congress), enum("lawType", lawType))
}

// LawDetails returns a single law.
func LawDetails(congress int, lawType LawType, lawNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindLawDetails, p,
		literal("law"), number("congress", congress), enum("lawType", lawType), number("lawNumber", lawNumber))
}

// Amendments

// AmendmentList lists amendments across all congresses.
func AmendmentList(p ListParams) Endpoint {
	return newEndpoint(KindAmendmentList, p, literal("amendment"))
}

// AmendmentByCongress lists amendments offered in a congress.
func AmendmentByCongress(congress int, p ListParams) Endpoint {
	return newEndpoint(KindAmendmentByCongress, p, literal("amendment"), number("congress", congress))
}

// AmendmentByType lists amendments of one type within a congress.
func AmendmentByType(congress int, amendmentType AmendmentType, p ListParams) Endpoint {
	return newEndpoint(KindAmendmentByType, p,
		literal("amendment"), number("congress", congress), enum("amendmentType", amendmentType))
}

// AmendmentDetails returns a single amendment.
func AmendmentDetails(congress int, amendmentType AmendmentType, amendmentNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindAmendmentDetails, p, amendmentPath(congress, amendmentType, amendmentNumber)...)
}

// AmendmentActions lists the actions taken on an amendment.
func AmendmentActions(congress int, amendmentType AmendmentType, amendmentNumber int, p PageParams) Endpoint {
	return newEndpoint(KindAmendmentActions, p, amendmentPath(congress, amendmentType, amendmentNumber, "actions")...)
}

// AmendmentCosponsors lists an amendment's cosponsors.
func AmendmentCosponsors(congress int, amendmentType AmendmentType, amendmentNumber int, p PageParams) Endpoint {
	return newEndpoint(KindAmendmentCosponsors, p, amendmentPath(congress, amendmentType, amendmentNumber, "cosponsors")...)
}

// AmendmentAmendments lists amendments to an amendment.
func AmendmentAmendments(congress int, amendmentType AmendmentType, amendmentNumber int, p PageParams) Endpoint {
	return newEndpoint(KindAmendmentAmendments, p, amendmentPath(congress, amendmentType, amendmentNumber, "amendments")...)
}

// AmendmentText lists the text versions of an amendment.
func AmendmentText(congress int, amendmentType AmendmentType, amendmentNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindAmendmentText, p, amendmentPath(congress, amendmentType, amendmentNumber, "text")...)
}

func amendmentPath(congress int, amendmentType AmendmentType, amendmentNumber int, sub ...string) []segment {
	segments := []segment{
		literal("amendment"), number("congress", congress),
		enum("amendmentType", amendmentType), number("amendmentNumber", amendmentNumber),
	}
	for _, s := range sub {
		segments = append(segments, literal(s))
	}

	return segments
}

// Summaries

// SummaryList lists bill summaries across all congresses.
func SummaryList(p ListParams) Endpoint {
	return newEndpoint(KindSummaryList, p, literal("summaries"))
}

// SummaryByCongress lists bill summaries for a congress.
func SummaryByCongress(congress int, p ListParams) Endpoint {
	return newEndpoint(KindSummaryByCongress, p, literal("summaries"), number("congress", congress))
}

// SummaryByType lists summaries of one bill type within a congress.
func SummaryByType(congress int, billType BillType, p ListParams) Endpoint {
	return newEndpoint(KindSummaryByType, p, literal("summaries"), number("congress", congress), enum("billType", billType))
}

// Congresses

// CongressList lists congresses and their sessions.
func CongressList(p PageParams) Endpoint {
	return newEndpoint(KindCongressList, p, literal("congress"))
}

// CongressDetails returns a single congress.
func CongressDetails(congress int, p DetailParams) Endpoint {
	return newEndpoint(KindCongressDetails, p, literal("congress"), number("congress", congress))
}

// CongressCurrent returns the congress currently in session.
func CongressCurrent(p DetailParams) Endpoint {
	return newEndpoint(KindCongressCurrent, p, literal("congress"), literal("current"))
}

// Members

// MemberList lists members of Congress.
func MemberList(p MemberListParams) Endpoint {
	return newEndpoint(KindMemberList, p, literal("member"))
}

// MemberByCongress lists the members who served in a congress.
func MemberByCongress(congress int, p MemberParams) Endpoint {
	return newEndpoint(KindMemberByCongress, p, literal("member"), literal("congress"), number("congress", congress))
}

// MemberByState lists members from a state, given as a two-letter code.
func MemberByState(stateCode string, p MemberParams) Endpoint {
	return newEndpoint(KindMemberByState, p, literal("member"), text("stateCode", stateCode))
}

// MemberByStateDistrict lists members from a congressional district.
func MemberByStateDistrict(stateCode string, district int, p MemberParams) Endpoint {
	return newEndpoint(KindMemberByStateDistrict, p, literal("member"), text("stateCode", stateCode), number("district", district))
}

// MemberByCongressStateDistrict lists members from a district during one congress.
func MemberByCongressStateDistrict(congress int, stateCode string, district int, p MemberParams) Endpoint {
	return newEndpoint(KindMemberByCongressStateDistrict, p,
		literal("member"), literal("congress"), number("congress", congress),
		text("stateCode", stateCode), number("district", district))
}

// MemberDetails returns a single member by bioguide identifier.
func MemberDetails(bioguideID string, p DetailParams) Endpoint {
	return newEndpoint(KindMemberDetails, p, literal("member"), text("bioguideId", bioguideID))
}

// MemberSponsoredLegislation lists legislation sponsored by a member.
func MemberSponsoredLegislation(bioguideID string, p PageParams) Endpoint {
	return newEndpoint(KindMemberSponsoredLegislation, p,
		literal("member"), text("bioguideId", bioguideID), literal("sponsored-legislation"))
}

// MemberCosponsoredLegislation lists legislation cosponsored by a member.
func MemberCosponsoredLegislation(bioguideID string, p PageParams) Endpoint {
	return newEndpoint(KindMemberCosponsoredLegislation, p,
		literal("member"), text("bioguideId", bioguideID), literal("cosponsored-legislation"))
}

// Committees

// CommitteeList lists committees and subcommittees.
func CommitteeList(p WindowParams) Endpoint {
	return newEndpoint(KindCommitteeList, p, literal("committee"))
}

// CommitteeByChamber lists the committees of one chamber.
func CommitteeByChamber(chamber ChamberType, p WindowParams) Endpoint {
	return newEndpoint(KindCommitteeByChamber, p, literal("committee"), enum("chamber", chamber))
}

// CommitteeByCongress lists the committees of a congress.
func CommitteeByCongress(congress int, p WindowParams) Endpoint {
	return newEndpoint(KindCommitteeByCongress, p, literal("committee"), number("congress", congress))
}

// CommitteeByCongressChamber lists the committees of one chamber during a congress.
func CommitteeByCongressChamber(congress int, chamber ChamberType, p WindowParams) Endpoint {
	return newEndpoint(KindCommitteeByCongressChamber, p,
		literal("committee"), number("congress", congress), enum("chamber", chamber))
}

// CommitteeDetails returns a single committee by system code, e.g. "hsag00".
func CommitteeDetails(chamber ChamberType, committeeCode string, p DetailParams) Endpoint {
	return newEndpoint(KindCommitteeDetails, p, committeePath(chamber, committeeCode)...)
}

// CommitteeBills lists legislation referred to a committee.
func CommitteeBills(chamber ChamberType, committeeCode string, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeBills, p, committeePath(chamber, committeeCode, "bills")...)
}

// CommitteeReports lists the reports issued by a committee.
func CommitteeReports(chamber ChamberType, committeeCode string, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeReports, p, committeePath(chamber, committeeCode, "reports")...)
}

// CommitteeNominations lists nominations referred to a Senate committee.
func CommitteeNominations(chamber ChamberType, committeeCode string, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeNominations, p, committeePath(chamber, committeeCode, "nominations")...)
}

// CommitteeHouseCommunications lists house communications referred to a committee.
func CommitteeHouseCommunications(chamber ChamberType, committeeCode string, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeHouseCommunications, p, committeePath(chamber, committeeCode, "house-communication")...)
}

// CommitteeSenateCommunications lists senate communications referred to a committee.
func CommitteeSenateCommunications(chamber ChamberType, committeeCode string, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeSenateCommunications, p, committeePath(chamber, committeeCode, "senate-communication")...)
}

func committeePath(chamber ChamberType, committeeCode string, sub ...string) []segment {
	segments := []segment{literal("committee"), enum("chamber", chamber), text("committeeCode", committeeCode)}
	for _, s := range sub {
		segments = append(segments, literal(s))
	}

	return segments
}

// Committee reports

// CommitteeReportList lists committee reports.
func CommitteeReportList(p ReportParams) Endpoint {
	return newEndpoint(KindCommitteeReportList, p, literal("committee-report"))
}

// CommitteeReportByCongress lists the committee reports of a congress.
func CommitteeReportByCongress(congress int, p ReportParams) Endpoint {
	return newEndpoint(KindCommitteeReportByCongress, p, literal("committee-report"), number("congress", congress))
}

// CommitteeReportByType lists committee reports of one type within a congress.
func CommitteeReportByType(congress int, reportType CommitteeReportType, p ReportParams) Endpoint {
	return newEndpoint(KindCommitteeReportByType, p,
		literal("committee-report"), number("congress", congress), enum("reportType", reportType))
}

// CommitteeReportDetails returns a single committee report.
func CommitteeReportDetails(congress int, reportType CommitteeReportType, reportNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindCommitteeReportDetails, p,
		literal("committee-report"), number("congress", congress), enum("reportType", reportType), number("reportNumber", reportNumber))
}

// CommitteeReportText lists the text versions of a committee report.
func CommitteeReportText(congress int, reportType CommitteeReportType, reportNumber int, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeReportText, p,
		literal("committee-report"), number("congress", congress), enum("reportType", reportType),
		number("reportNumber", reportNumber), literal("text"))
}

// Committee prints

// CommitteePrintList lists committee prints.
func CommitteePrintList(p WindowParams) Endpoint {
	return newEndpoint(KindCommitteePrintList, p, literal("committee-print"))
}

// CommitteePrintByCongress lists the committee prints of a congress.
func CommitteePrintByCongress(congress int, p WindowParams) Endpoint {
	return newEndpoint(KindCommitteePrintByCongress, p, literal("committee-print"), number("congress", congress))
}

// CommitteePrintByCongressChamber lists committee prints of one chamber within a congress.
func CommitteePrintByCongressChamber(congress int, chamber ChamberType, p WindowParams) Endpoint {
	return newEndpoint(KindCommitteePrintByCongressChamber, p,
		literal("committee-print"), number("congress", congress), enum("chamber", chamber))
}

// CommitteePrintDetails returns a single committee print by jacket number.
func CommitteePrintDetails(congress int, chamber ChamberType, jacketNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindCommitteePrintDetails, p,
		literal("committee-print"), number("congress", congress), enum("chamber", chamber), number("jacketNumber", jacketNumber))
}

// CommitteePrintText lists the text versions of a committee print.
func CommitteePrintText(congress int, chamber ChamberType, jacketNumber int, p PageParams) Endpoint {
	return newEndpoint(KindCommitteePrintText, p,
		literal("committee-print"), number("congress", congress), enum("chamber", chamber),
		number("jacketNumber", jacketNumber), literal("text"))
}

// Committee meetings

// CommitteeMeetingList lists committee meetings.
func CommitteeMeetingList(p PageParams) Endpoint {
	return newEndpoint(KindCommitteeMeetingList, p, literal("committee-meeting"))
}

// CommitteeMeetingByCongress lists the committee meetings of a congress.
func CommitteeMeetingByCongress(congress int, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeMeetingByCongress, p, literal("committee-meeting"), number("congress", congress))
}

// CommitteeMeetingByCongressChamber lists committee meetings of one chamber within a congress.
func CommitteeMeetingByCongressChamber(congress int, chamber ChamberType, p PageParams) Endpoint {
	return newEndpoint(KindCommitteeMeetingByCongressChamber, p,
		literal("committee-meeting"), number("congress", congress), enum("chamber", chamber))
}

// CommitteeMeetingDetails returns a single committee meeting by event identifier.
func CommitteeMeetingDetails(congress int, chamber ChamberType, eventID string, p DetailParams) Endpoint {
	return newEndpoint(KindCommitteeMeetingDetails, p,
		literal("committee-meeting"), number("congress", congress), enum("chamber", chamber), text("eventId", eventID))
}

// Hearings

// HearingList lists published hearings.
func HearingList(p PageParams) Endpoint {
	return newEndpoint(KindHearingList, p, literal("hearing"))
}

// HearingByCongress lists the hearings of a congress.
func HearingByCongress(congress int, p PageParams) Endpoint {
	return newEndpoint(KindHearingByCongress, p, literal("hearing"), number("congress", congress))
}

// HearingByCongressChamber lists hearings of one chamber within a congress.
func HearingByCongressChamber(congress int, chamber ChamberType, p PageParams) Endpoint {
	return newEndpoint(KindHearingByCongressChamber, p, literal("hearing"), number("congress", congress), enum("chamber", chamber))
}

// HearingDetails returns a single hearing by jacket number.
func HearingDetails(congress int, chamber ChamberType, jacketNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindHearingDetails, p,
		literal("hearing"), number("congress", congress), enum("chamber", chamber), number("jacketNumber", jacketNumber))
}

// Congressional Record

// CongressionalRecordList lists Congressional Record issues, optionally narrowed by date.
func CongressionalRecordList(p RecordParams) Endpoint {
	return newEndpoint(KindCongressionalRecordList, p, literal("congressional-record"))
}

// DailyRecordList lists daily Congressional Record issues.
func DailyRecordList(p PageParams) Endpoint {
	return newEndpoint(KindDailyRecordList, p, literal("daily-congressional-record"))
}

// DailyRecordByVolume lists the daily issues of one volume.
func DailyRecordByVolume(volume int, p PageParams) Endpoint {
	return newEndpoint(KindDailyRecordByVolume, p, literal("daily-congressional-record"), number("volumeNumber", volume))
}

// DailyRecordIssue returns one daily issue.
func DailyRecordIssue(volume, issue int, p PageParams) Endpoint {
	return newEndpoint(KindDailyRecordIssue, p,
		literal("daily-congressional-record"), number("volumeNumber", volume), number("issueNumber", issue))
}

// DailyRecordArticles lists the articles of one daily issue.
func DailyRecordArticles(volume, issue int, p PageParams) Endpoint {
	return newEndpoint(KindDailyRecordArticles, p,
		literal("daily-congressional-record"), number("volumeNumber", volume), number("issueNumber", issue), literal("articles"))
}

// BoundRecordList lists bound Congressional Record days.
func BoundRecordList(p PageParams) Endpoint {
	return newEndpoint(KindBoundRecordList, p, literal("bound-congressional-record"))
}

// BoundRecordByYear lists the bound record for a year.
func BoundRecordByYear(year int, p PageParams) Endpoint {
	return newEndpoint(KindBoundRecordByYear, p, literal("bound-congressional-record"), number("year", year))
}

// BoundRecordByMonth lists the bound record for a month.
func BoundRecordByMonth(year, month int, p PageParams) Endpoint {
	return newEndpoint(KindBoundRecordByMonth, p, literal("bound-congressional-record"), number("year", year), number("month", month))
}

// BoundRecordByDay returns the bound record for a day.
func BoundRecordByDay(year, month, day int, p PageParams) Endpoint {
	return newEndpoint(KindBoundRecordByDay, p,
		literal("bound-congressional-record"), number("year", year), number("month", month), number("day", day))
}

// Communications

// HouseCommunicationList lists House communications.
func HouseCommunicationList(p PageParams) Endpoint {
	return newEndpoint(KindHouseCommunicationList, p, literal("house-communication"))
}

// HouseCommunicationByCongress lists the House communications of a congress.
func HouseCommunicationByCongress(congress int, p PageParams) Endpoint {
	return newEndpoint(KindHouseCommunicationByCongress, p, literal("house-communication"), number("congress", congress))
}

// HouseCommunicationByType lists House communications of one type within a congress.
func HouseCommunicationByType(congress int, communicationType CommunicationType, p PageParams) Endpoint {
	return newEndpoint(KindHouseCommunicationByType, p,
		literal("house-communication"), number("congress", congress), enum("communicationType", communicationType))
}

// HouseCommunicationDetails returns a single House communication.
func HouseCommunicationDetails(congress int, communicationType CommunicationType, communicationNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindHouseCommunicationDetails, p,
		literal("house-communication"), number("congress", congress),
		enum("communicationType", communicationType), number("communicationNumber", communicationNumber))
}

// SenateCommunicationList lists Senate communications.
func SenateCommunicationList(p PageParams) Endpoint {
	return newEndpoint(KindSenateCommunicationList, p, literal("senate-communication"))
}

// SenateCommunicationByCongress lists the Senate communications of a congress.
func SenateCommunicationByCongress(congress int, p PageParams) Endpoint {
	return newEndpoint(KindSenateCommunicationByCongress, p, literal("senate-communication"), number("congress", congress))
}

// SenateCommunicationByType lists Senate communications of one type within a congress.
func SenateCommunicationByType(congress int, communicationType CommunicationType, p PageParams) Endpoint {
	return newEndpoint(KindSenateCommunicationByType, p,
		literal("senate-communication"), number("congress", congress), enum("communicationType", communicationType))
}

// SenateCommunicationDetails returns a single Senate communication.
func SenateCommunicationDetails(congress int, communicationType CommunicationType, communicationNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindSenateCommunicationDetails, p,
		literal("senate-communication"), number("congress", congress),
		enum("communicationType", communicationType), number("communicationNumber", communicationNumber))
}

// House requirements

// HouseRequirementList lists House reporting requirements.
func HouseRequirementList(p PageParams) Endpoint {
	return newEndpoint(KindHouseRequirementList, p, literal("house-requirement"))
}

// HouseRequirementDetails returns a single House requirement.
func HouseRequirementDetails(requirementNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindHouseRequirementDetails, p, literal("house-requirement"), number("requirementNumber", requirementNumber))
}

// HouseRequirementMatching lists the communications matching a House requirement.
func HouseRequirementMatching(requirementNumber int, p PageParams) Endpoint {
	return newEndpoint(KindHouseRequirementMatching, p,
		literal("house-requirement"), number("requirementNumber", requirementNumber), literal("matching"))
}

// Nominations

// NominationList lists nominations.
func NominationList(p ListParams) Endpoint {
	return newEndpoint(KindNominationList, p, literal("nomination"))
}

// NominationByCongress lists the nominations of a congress.
func NominationByCongress(congress int, p ListParams) Endpoint {
	return newEndpoint(KindNominationByCongress, p, literal("nomination"), number("congress", congress))
}

// NominationDetails returns a single nomination. Partitioned nominations use numbers such
// as "2467-1".
func NominationDetails(congress int, nominationNumber string, p DetailParams) Endpoint {
	return newEndpoint(KindNominationDetails, p, nominationPath(congress, nominationNumber)...)
}

// NominationNominees lists the nominees of one position within a nomination.
func NominationNominees(congress int, nominationNumber string, ordinal int, p PageParams) Endpoint {
	segments := append(nominationPath(congress, nominationNumber), number("ordinal", ordinal))

	return newEndpoint(KindNominationNominees, p, segments...)
}

// NominationActions lists the actions taken on a nomination.
func NominationActions(congress int, nominationNumber string, p PageParams) Endpoint {
	return newEndpoint(KindNominationActions, p, nominationPath(congress, nominationNumber, "actions")...)
}

// NominationCommittees lists the committees a nomination was referred to.
func NominationCommittees(congress int, nominationNumber string, p PageParams) Endpoint {
	return newEndpoint(KindNominationCommittees, p, nominationPath(congress, nominationNumber, "committees")...)
}

// NominationHearings lists the printed hearings on a nomination.
func NominationHearings(congress int, nominationNumber string, p PageParams) Endpoint {
	return newEndpoint(KindNominationHearings, p, nominationPath(congress, nominationNumber, "hearings")...)
}

func nominationPath(congress int, nominationNumber string, sub ...string) []segment {
	segments := []segment{literal("nomination"), number("congress", congress), text("nominationNumber", nominationNumber)}
	for _, s := range sub {
		segments = append(segments, literal(s))
	}

	return segments
}

// Treaties

// TreatyList lists treaties.
func TreatyList(p ListParams) Endpoint {
	return newEndpoint(KindTreatyList, p, literal("treaty"))
}

// TreatyByCongress lists the treaties received in a congress.
func TreatyByCongress(congress int, p ListParams) Endpoint {
	return newEndpoint(KindTreatyByCongress, p, literal("treaty"), number("congress", congress))
}

// TreatyDetails returns a single treaty.
func TreatyDetails(congress, treatyNumber int, p DetailParams) Endpoint {
	return newEndpoint(KindTreatyDetails, p, treatyPath(congress, treatyNumber)...)
}

// TreatyPartitioned returns one part of a partitioned treaty, e.g. suffix "A".
func TreatyPartitioned(congress, treatyNumber int, suffix string, p DetailParams) Endpoint {
	segments := append(treatyPath(congress, treatyNumber), text("treatySuffix", suffix))

	return newEndpoint(KindTreatyPartitioned, p, segments...)
}

// TreatyCommittees lists the committees a treaty was referred to.
func TreatyCommittees(congress, treatyNumber int, p PageParams) Endpoint {
	segments := append(treatyPath(congress, treatyNumber), literal("committees"))

	return newEndpoint(KindTreatyCommittees, p, segments...)
}

// TreatyActions lists the actions taken on a treaty.
func TreatyActions(congress, treatyNumber int, p PageParams) Endpoint {
	segments := append(treatyPath(congress, treatyNumber), literal("actions"))

	return newEndpoint(KindTreatyActions, p, segments...)
}

// TreatyPartitionedActions lists the actions taken on one part of a partitioned treaty.
func TreatyPartitionedActions(congress, treatyNumber int, suffix string, p PageParams) Endpoint {
	segments := append(treatyPath(congress, treatyNumber), text("treatySuffix", suffix), literal("actions"))

	return newEndpoint(KindTreatyPartitionedActions, p, segments...)
}

func treatyPath(congress, treatyNumber int) []segment {
	return []segment{literal("treaty"), number("congress", congress), number("treatyNumber", treatyNumber)}
}

// Custom

// Custom addresses any path below the API root, such as "bill/118/hr/1/text", for
// endpoints the catalog does not model by name. Its response materializes as ShapeGeneric.
func Custom(path string, p GenericParams) Endpoint {
	return newEndpoint(KindCustom, p, freePath("path", path))
}
