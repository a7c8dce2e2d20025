package cdg

import (
	"fmt"
	"sort"
)

// ShapeTag names a specific response shape.
type ShapeTag string

// Response shapes. ShapeGeneric is the structural form itself.
const (
	ShapeGeneric ShapeTag = "generic"

	ShapeBills            ShapeTag = "bills"
	ShapeBillDetails      ShapeTag = "bill-details"
	ShapeBillActions      ShapeTag = "bill-actions"
	ShapeBillAmendments   ShapeTag = "bill-amendments"
	ShapeBillCommittees   ShapeTag = "bill-committees"
	ShapeBillCosponsors   ShapeTag = "bill-cosponsors"
	ShapeBillRelatedBills ShapeTag = "bill-related-bills"
	ShapeBillSubjects     ShapeTag = "bill-subjects"
	ShapeBillSummaries    ShapeTag = "bill-summaries"
	ShapeBillText         ShapeTag = "bill-text"
	ShapeBillTitles       ShapeTag = "bill-titles"
	ShapeLaws             ShapeTag = "laws"
	ShapeLawDetails       ShapeTag = "law-details"
	ShapeSummaries        ShapeTag = "summaries"

	ShapeAmendments          ShapeTag = "amendments"
	ShapeAmendmentDetails    ShapeTag = "amendment-details"
	ShapeAmendmentActions    ShapeTag = "amendment-actions"
	ShapeAmendmentCosponsors ShapeTag = "amendment-cosponsors"
	ShapeAmendmentAmendments ShapeTag = "amendment-amendments"
	ShapeAmendmentText       ShapeTag = "amendment-text"

	ShapeCongresses      ShapeTag = "congresses"
	ShapeCongressDetails ShapeTag = "congress-details"

	ShapeMembers                ShapeTag = "members"
	ShapeMemberDetails          ShapeTag = "member-details"
	ShapeSponsoredLegislation   ShapeTag = "sponsored-legislation"
	ShapeCosponsoredLegislation ShapeTag = "cosponsored-legislation"

	ShapeCommittees       ShapeTag = "committees"
	ShapeCommitteeDetails ShapeTag = "committee-details"
	ShapeCommitteeBills   ShapeTag = "committee-bills"

	ShapeCommitteeReports        ShapeTag = "committee-reports"
	ShapeCommitteeReportDetails  ShapeTag = "committee-report-details"
	ShapeCommitteeReportText     ShapeTag = "committee-report-text"
	ShapeCommitteePrints         ShapeTag = "committee-prints"
	ShapeCommitteePrintDetails   ShapeTag = "committee-print-details"
	ShapeCommitteePrintText      ShapeTag = "committee-print-text"
	ShapeCommitteeMeetings       ShapeTag = "committee-meetings"
	ShapeCommitteeMeetingDetails ShapeTag = "committee-meeting-details"

	ShapeHearings       ShapeTag = "hearings"
	ShapeHearingDetails ShapeTag = "hearing-details"

	ShapeCongressionalRecord ShapeTag = "congressional-record"
	ShapeDailyRecords        ShapeTag = "daily-records"
	ShapeDailyRecordIssue    ShapeTag = "daily-record-issue"
	ShapeDailyRecordArticles ShapeTag = "daily-record-articles"
	ShapeBoundRecords        ShapeTag = "bound-records"

	ShapeHouseCommunications        ShapeTag = "house-communications"
	ShapeHouseCommunicationDetails  ShapeTag = "house-communication-details"
	ShapeSenateCommunications       ShapeTag = "senate-communications"
	ShapeSenateCommunicationDetails ShapeTag = "senate-communication-details"
	ShapeHouseRequirements          ShapeTag = "house-requirements"
	ShapeHouseRequirementDetails    ShapeTag = "house-requirement-details"
	ShapeHouseRequirementMatching   ShapeTag = "house-requirement-matching"

	ShapeNominations          ShapeTag = "nominations"
	ShapeNominationDetails    ShapeTag = "nomination-details"
	ShapeNominees             ShapeTag = "nominees"
	ShapeNominationActions    ShapeTag = "nomination-actions"
	ShapeNominationCommittees ShapeTag = "nomination-committees"
	ShapeNominationHearings   ShapeTag = "nomination-hearings"

	ShapeTreaties         ShapeTag = "treaties"
	ShapeTreatyDetails    ShapeTag = "treaty-details"
	ShapeTreatyCommittees ShapeTag = "treaty-committees"
	ShapeTreatyActions    ShapeTag = "treaty-actions"
)

var shapeRegistry = map[ShapeTag]func() any{
	ShapeBills:            func() any { return new(BillsResponse) },
	ShapeBillDetails:      func() any { return new(BillDetailsResponse) },
	ShapeBillActions:      func() any { return new(BillActionsResponse) },
	ShapeBillAmendments:   func() any { return new(BillAmendmentsResponse) },
	ShapeBillCommittees:   func() any { return new(BillCommitteesResponse) },
	ShapeBillCosponsors:   func() any { return new(BillCosponsorsResponse) },
	ShapeBillRelatedBills: func() any { return new(BillRelatedBillsResponse) },
	ShapeBillSubjects:     func() any { return new(BillSubjectsResponse) },
	ShapeBillSummaries:    func() any { return new(BillSummariesResponse) },
	ShapeBillText:         func() any { return new(BillTextResponse) },
	ShapeBillTitles:       func() any { return new(BillTitlesResponse) },
	ShapeLaws:             func() any { return new(LawsResponse) },
	ShapeLawDetails:       func() any { return new(LawDetailsResponse) },
	ShapeSummaries:        func() any { return new(SummariesResponse) },

	ShapeAmendments:          func() any { return new(AmendmentsResponse) },
	ShapeAmendmentDetails:    func() any { return new(AmendmentDetailsResponse) },
	ShapeAmendmentActions:    func() any { return new(AmendmentActionsResponse) },
	ShapeAmendmentCosponsors: func() any { return new(AmendmentCosponsorsResponse) },
	ShapeAmendmentAmendments: func() any { return new(AmendmentAmendmentsResponse) },
	ShapeAmendmentText:       func() any { return new(AmendmentTextResponse) },

	ShapeCongresses:      func() any { return new(CongressesResponse) },
	ShapeCongressDetails: func() any { return new(CongressDetailsResponse) },

	ShapeMembers:                func() any { return new(MembersResponse) },
	ShapeMemberDetails:          func() any { return new(MemberDetailsResponse) },
	ShapeSponsoredLegislation:   func() any { return new(SponsoredLegislationResponse) },
	ShapeCosponsoredLegislation: func() any { return new(CosponsoredLegislationResponse) },

	ShapeCommittees:       func() any { return new(CommitteesResponse) },
	ShapeCommitteeDetails: func() any { return new(CommitteeDetailsResponse) },
	ShapeCommitteeBills:   func() any { return new(CommitteeBillsResponse) },

	ShapeCommitteeReports:        func() any { return new(CommitteeReportsResponse) },
	ShapeCommitteeReportDetails:  func() any { return new(CommitteeReportDetailsResponse) },
	ShapeCommitteeReportText:     func() any { return new(CommitteeReportTextResponse) },
	ShapeCommitteePrints:         func() any { return new(CommitteePrintsResponse) },
	ShapeCommitteePrintDetails:   func() any { return new(CommitteePrintDetailsResponse) },
	ShapeCommitteePrintText:      func() any { return new(CommitteePrintTextResponse) },
	ShapeCommitteeMeetings:       func() any { return new(CommitteeMeetingsResponse) },
	ShapeCommitteeMeetingDetails: func() any { return new(CommitteeMeetingDetailsResponse) },

	ShapeHearings:       func() any { return new(HearingsResponse) },
	ShapeHearingDetails: func() any { return new(HearingDetailsResponse) },

	ShapeCongressionalRecord: func() any { return new(CongressionalRecordResponse) },
	ShapeDailyRecords:        func() any { return new(DailyRecordsResponse) },
	ShapeDailyRecordIssue:    func() any { return new(DailyRecordIssueResponse) },
	ShapeDailyRecordArticles: func() any { return new(DailyRecordArticlesResponse) },
	ShapeBoundRecords:        func() any { return new(BoundRecordsResponse) },

	ShapeHouseCommunications:        func() any { return new(HouseCommunicationsResponse) },
	ShapeHouseCommunicationDetails:  func() any { return new(HouseCommunicationDetailsResponse) },
	ShapeSenateCommunications:       func() any { return new(SenateCommunicationsResponse) },
	ShapeSenateCommunicationDetails: func() any { return new(SenateCommunicationDetailsResponse) },
	ShapeHouseRequirements:          func() any { return new(HouseRequirementsResponse) },
	ShapeHouseRequirementDetails:    func() any { return new(HouseRequirementDetailsResponse) },
	ShapeHouseRequirementMatching:   func() any { return new(HouseRequirementMatchingResponse) },

	ShapeNominations:          func() any { return new(NominationsResponse) },
	ShapeNominationDetails:    func() any { return new(NominationDetailsResponse) },
	ShapeNominees:             func() any { return new(NomineesResponse) },
	ShapeNominationActions:    func() any { return new(NominationActionsResponse) },
	ShapeNominationCommittees: func() any { return new(NominationCommitteesResponse) },
	ShapeNominationHearings:   func() any { return new(NominationHearingsResponse) },

	ShapeTreaties:         func() any { return new(TreatiesResponse) },
	ShapeTreatyDetails:    func() any { return new(TreatyDetailsResponse) },
	ShapeTreatyCommittees: func() any { return new(TreatyCommitteesResponse) },
	ShapeTreatyActions:    func() any { return new(TreatyActionsResponse) },
}

// String implements fmt.Stringer.
func (t ShapeTag) String() string { return string(t) }

// Known reports whether t names a registered shape.
func (t ShapeTag) Known() bool {
	if t == ShapeGeneric {
		return true
	}

	_, ok := shapeRegistry[t]

	return ok
}

// New returns a pointer to a zero value of the shape, or nil for an unknown tag. The
// generic shape is *Structural.
func (t ShapeTag) New() any {
	if t == ShapeGeneric {
		return &Structural{}
	}

	constructor, ok := shapeRegistry[t]
	if !ok {
		return nil
	}

	return constructor()
}

// ShapeTags lists every registered tag in name order, ShapeGeneric included.
func ShapeTags() []ShapeTag {
	tags := make([]ShapeTag, 0, len(shapeRegistry)+1)
	tags = append(tags, ShapeGeneric)

	for tag := range shapeRegistry {
		tags = append(tags, tag)
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	return tags
}

// MaterializeTag converts s into the shape named by tag and returns a pointer to it, e.g.
// *BillsResponse for ShapeBills. ShapeGeneric returns s itself.
func MaterializeTag(s *Structural, tag ShapeTag) (any, error) {
	if tag == ShapeGeneric {
		if s == nil {
			return &Structural{}, nil
		}

		return s, nil
	}

	target := tag.New()
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, tag)
	}

	if err := MaterializeInto(s, target); err != nil {
		return nil, err
	}

	return target, nil
}

// MaterializeEndpoint converts s into the default shape of the endpoint that produced it.
func MaterializeEndpoint(s *Structural, e Endpoint) (any, error) {
	return MaterializeTag(s, e.Shape())
}
