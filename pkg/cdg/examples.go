package cdg

// ExamplePath pairs a sample endpoint of one kind with its built path.
type ExamplePath struct {
	Kind     Kind
	Shape    ShapeTag
	Endpoint Endpoint
	Path     string
}

// ExampleEndpoints returns one representative endpoint per catalogued kind, in Kinds order.
//
//nolint:funlen // one line per catalog entry
func ExampleEndpoints() []Endpoint {
	list, page, window, detail := NewListParams(), NewPageParams(), NewWindowParams(), NewDetailParams()

	return []Endpoint{
		BillList(list),
		BillByCongress(118, list),
		BillByType(118, BillTypeHR, list),
		BillDetails(118, BillTypeHR, 3076, detail),
		BillActions(118, BillTypeHR, 3076, page),
		BillAmendments(117, BillTypeHR, 3076, page),
		BillCommittees(117, BillTypeHR, 3076, page),
		BillCosponsors(117, BillTypeHR, 3076, page),
		BillRelatedBills(117, BillTypeHR, 3076, page),
		BillSubjects(117, BillTypeHR, 3076, window),
		BillSummaries(117, BillTypeHR, 3076, page),
		BillText(117, BillTypeHR, 3076, page),
		BillTitles(117, BillTypeHR, 3076, window),

		LawByCongress(118, page),
		LawByType(118, LawTypePublic, page),
		LawDetails(118, LawTypePublic, 108, detail),

		AmendmentList(list),
		AmendmentByCongress(117, list),
		AmendmentByType(117, AmendmentTypeSAmdt, list),
		AmendmentDetails(117, AmendmentTypeSAmdt, 2137, detail),
		AmendmentActions(117, AmendmentTypeSAmdt, 2137, page),
		AmendmentCosponsors(117, AmendmentTypeSAmdt, 2137, page),
		AmendmentAmendments(117, AmendmentTypeSAmdt, 2137, page),
		AmendmentText(117, AmendmentTypeHAmdt, 287, detail),

		SummaryList(list),
		SummaryByCongress(117, list),
		SummaryByType(117, BillTypeHR, list),

		CongressList(page),
		CongressDetails(117, detail),
		CongressCurrent(detail),

		MemberList(NewMemberListParams()),
		MemberByCongress(118, NewMemberParams()),
		MemberByState("MI", NewMemberParams()),
		MemberByStateDistrict("MI", 10, NewMemberParams()),
		MemberByCongressStateDistrict(97, "TX", 10, NewMemberParams()),
		MemberDetails("L000174", detail),
		MemberSponsoredLegislation("L000174", page),
		MemberCosponsoredLegislation("L000174", page),

		CommitteeList(window),
		CommitteeByChamber(ChamberHouse, window),
		CommitteeByCongress(117, window),
		CommitteeByCongressChamber(117, ChamberHouse, window),
		CommitteeDetails(ChamberHouse, "hspw00", detail),
		CommitteeBills(ChamberHouse, "hspw00", page),
		CommitteeReports(ChamberHouse, "hspw00", page),
		CommitteeNominations(ChamberSenate, "ssas00", page),
		CommitteeHouseCommunications(ChamberHouse, "hspw00", page),
		CommitteeSenateCommunications(ChamberSenate, "ssas00", page),

		CommitteeReportList(NewReportParams()),
		CommitteeReportByCongress(116, NewReportParams()),
		CommitteeReportByType(116, ReportTypeHRpt, NewReportParams()),
		CommitteeReportDetails(116, ReportTypeHRpt, 617, detail),
		CommitteeReportText(116, ReportTypeHRpt, 617, page),

		CommitteePrintList(window),
		CommitteePrintByCongress(117, window),
		CommitteePrintByCongressChamber(117, ChamberHouse, window),
		CommitteePrintDetails(117, ChamberHouse, 48144, detail),
		CommitteePrintText(117, ChamberHouse, 48144, page),

		CommitteeMeetingList(page),
		CommitteeMeetingByCongress(118, page),
		CommitteeMeetingByCongressChamber(118, ChamberHouse, page),
		CommitteeMeetingDetails(118, ChamberHouse, "115538", detail),

		HearingList(page),
		HearingByCongress(116, page),
		HearingByCongressChamber(116, ChamberHouse, page),
		HearingDetails(116, ChamberHouse, 41365, detail),

		CongressionalRecordList(NewRecordParams()),
		DailyRecordList(page),
		DailyRecordByVolume(166, page),
		DailyRecordIssue(168, 153, page),
		DailyRecordArticles(168, 153, page),
		BoundRecordList(page),
		BoundRecordByYear(1990, page),
		BoundRecordByMonth(1990, 5, page),
		BoundRecordByDay(1948, 5, 19, page),

		HouseCommunicationList(page),
		HouseCommunicationByCongress(117, page),
		HouseCommunicationByType(117, CommunicationExecutive, page),
		HouseCommunicationDetails(117, CommunicationExecutive, 3324, detail),
		SenateCommunicationList(page),
		SenateCommunicationByCongress(117, page),
		SenateCommunicationByType(117, CommunicationExecutive, page),
		SenateCommunicationDetails(117, CommunicationExecutive, 2561, detail),

		HouseRequirementList(page),
		HouseRequirementDetails(8070, detail),
		HouseRequirementMatching(8070, page),

		NominationList(list),
		NominationByCongress(117, list),
		NominationDetails(117, "2467", detail),
		NominationNominees(117, "2467", 1, page),
		NominationActions(117, "2467", page),
		NominationCommittees(117, "2467", page),
		NominationHearings(116, "389", page),

		TreatyList(list),
		TreatyByCongress(117, list),
		TreatyDetails(117, 3, detail),
		TreatyPartitioned(114, 13, "A", detail),
		TreatyCommittees(116, 3, page),
		TreatyActions(117, 3, page),
		TreatyPartitionedActions(114, 13, "A", page),

		Custom("bill/118/hr/1/text", NewGenericParams()),
	}
}

// ExamplePaths builds the path of every example endpoint.
func ExamplePaths() ([]ExamplePath, error) {
	endpoints := ExampleEndpoints()
	paths := make([]ExamplePath, 0, len(endpoints))

	for _, endpoint := range endpoints {
		path, err := endpoint.Path()
		if err != nil {
			return nil, err
		}

		paths = append(paths, ExamplePath{Kind: endpoint.Kind(), Shape: endpoint.Shape(), Endpoint: endpoint, Path: path})
	}

	return paths, nil
}
