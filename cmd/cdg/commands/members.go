package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// defaultCurrentMembersMax caps how many members "members current --all" collects.
const defaultCurrentMembersMax = 1000

// NewMembersCommand creates the members command group
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Browse members of Congress",
		Long:    "List members of Congress and show their biographies and service records",
	}

	cmd.AddCommand(newMembersListCommand())
	cmd.AddCommand(newMembersGetCommand())
	cmd.AddCommand(newMembersCurrentCommand())
	cmd.AddCommand(newMembersLegislationCommand("sponsored", "List legislation a member sponsored", cdg.MemberSponsoredLegislation))
	cmd.AddCommand(newMembersLegislationCommand("cosponsored", "List legislation a member cosponsored", cdg.MemberCosponsoredLegislation))

	return cmd
}

func newMembersListCommand() *cobra.Command {
	var (
		flags    listFlags
		congress int
		state    string
		district int
		current  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Long:  "List members of Congress, optionally narrowed to a congress, state or district",
		Example: `  cdg members list --current
  cdg members list --congress 118 --state MI
  cdg members list --state TX --district 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validatePage(); err != nil {
				return err
			}

			if district != 0 && state == "" {
				return ErrDistrictNeedsState
			}

			currentSet := cmd.Flags().Changed("current")

			var endpoint cdg.Endpoint

			if congress == 0 && state == "" {
				params, err := memberListParams(&flags)
				if err != nil {
					return err
				}

				if currentSet {
					params = params.WithCurrentMember(current)
				}

				endpoint = cdg.MemberList(params)
			} else {
				params := cdg.NewMemberParams().WithLimit(flags.limit)
				if flags.offset > 0 {
					params = params.WithOffset(flags.offset)
				}

				if currentSet {
					params = params.WithCurrentMember(current)
				}

				stateCode := strings.ToUpper(state)

				switch {
				case congress != 0 && district != 0:
					endpoint = cdg.MemberByCongressStateDistrict(congress, stateCode, district, params)
				case district != 0:
					endpoint = cdg.MemberByStateDistrict(stateCode, district, params)
				case state != "":
					endpoint = cdg.MemberByState(stateCode, params)
				default:
					endpoint = cdg.MemberByCongress(congress, params)
				}
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, members *cdg.MembersResponse) error {
				if err := r.table(memberHeaders, memberRows(members.Members)); err != nil {
					return err
				}

				r.paginationNote(len(members.Members), members.Pagination, flags.offset)

				return nil
			})
		},
	}

	addWindowFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number")
	cmd.Flags().StringVar(&state, "state", "", "two-letter state code")
	cmd.Flags().IntVar(&district, "district", 0, "congressional district (requires --state)")
	cmd.Flags().BoolVar(&current, "current", false, "only members currently serving")

	return cmd
}

func memberListParams(flags *listFlags) (cdg.MemberListParams, error) {
	params := cdg.NewMemberListParams().WithLimit(flags.limit)
	if flags.offset > 0 {
		params = params.WithOffset(flags.offset)
	}

	from, to, err := flags.window()
	if err != nil {
		return cdg.MemberListParams{}, err
	}

	if !from.IsZero() {
		params = params.WithFromDateTime(from)
	}

	if !to.IsZero() {
		params = params.WithToDateTime(to)
	}

	return params, nil
}

func newMembersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get BIOGUIDE_ID",
		Short:   "Get member details",
		Long:    "Display the biography, party history and terms of service of a member",
		Example: "  cdg members get L000174",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := cdg.MemberDetails(strings.ToUpper(args[0]), cdg.NewDetailParams())

			return fetchShaped(cmd, endpoint, func(r *renderer, details *cdg.MemberDetailsResponse) error {
				member := details.Member

				currentMember := ""
				if member.CurrentMember != nil {
					currentMember = strconv.FormatBool(*member.CurrentMember)
				}

				parties := make([]string, 0, len(member.PartyHistory))
				for _, party := range member.PartyHistory {
					parties = append(parties, fmt.Sprintf("%s (%s)", str(party.PartyName), yearRange(party.StartYear, party.EndYear)))
				}

				_, _ = fmt.Fprintf(r.out, "Member Details:\n\n")

				err := r.properties([][2]string{
					{"name", firstNonEmpty(str(member.DirectOrderName), strings.TrimSpace(str(member.FirstName)+" "+str(member.LastName)))},
					{"bioguide id", str(member.BioguideID)},
					{"state", str(member.State)},
					{"district", num(member.District)},
					{"current member", currentMember},
					{"born", str(member.BirthYear)},
					{"died", str(member.DeathYear)},
					{"party history", strings.Join(parties, ", ")},
					{"website", str(member.OfficialWebsiteURL)},
				})
				if err != nil {
					return err
				}

				if len(member.Terms) == 0 {
					return nil
				}

				rows := make([][]string, 0, len(member.Terms))
				for _, term := range member.Terms {
					rows = append(rows, []string{
						num(term.Congress),
						titleCase(strings.ToLower(str(term.Chamber))),
						str(term.StateCode),
						num(term.District),
						str(term.PartyName),
						yearRange(term.StartYear, term.EndYear),
					})
				}

				_, _ = fmt.Fprintf(r.out, "\nTerms:\n")

				return r.table([]string{"Congress", "Chamber", "State", "District", "Party", "Years"}, rows)
			})
		},
	}
}

func newMembersCurrentCommand() *cobra.Command {
	var (
		flags      listFlags
		all        bool
		maxMembers int
	)

	cmd := &cobra.Command{
		Use:   "current",
		Short: "List members currently serving",
		Long:  "List the members currently serving in Congress. With --all, every page is fetched up to --max members",
		Example: `  cdg members current
  cdg members current --all -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validatePage(); err != nil {
				return err
			}

			if !all {
				endpoint := cdg.MemberList(cdg.NewMemberListParams().WithCurrentMember(true).WithLimit(flags.limit).WithOffset(flags.offset))

				return fetchShaped(cmd, endpoint, func(r *renderer, members *cdg.MembersResponse) error {
					if err := r.table(memberHeaders, memberRows(members.Members)); err != nil {
						return err
					}

					r.paginationNote(len(members.Members), members.Pagination, flags.offset)

					return nil
				})
			}

			return collectCurrentMembers(cmd, flags, maxMembers)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&flags.limit, "limit", constants.MaxPageLimit, fmt.Sprintf("results per page (1-%d)", constants.MaxPageLimit))
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxMembers, "max", defaultCurrentMembersMax, "stop after this many members when --all is set")

	return cmd
}

// collectCurrentMembers walks the current-member listing page by page.
func collectCurrentMembers(cmd *cobra.Command, flags listFlags, maxMembers int) error {
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cmd)
	if err != nil {
		return err
	}

	var (
		collected []cdg.MemberSummary
		total     *int
	)

	offset := flags.offset

	for len(collected) < maxMembers {
		limit := min(flags.limit, maxMembers-len(collected))
		endpoint := cdg.MemberList(cdg.NewMemberListParams().WithCurrentMember(true).WithLimit(limit).WithOffset(offset))

		page, _, err := cdg.FetchAs[cdg.MembersResponse](commandContext(cmd), client, endpoint)
		if err != nil {
			return fmt.Errorf("failed to fetch members at offset %d: %w", offset, err)
		}

		collected = append(collected, page.Members...)

		if page.Pagination != nil && page.Pagination.Count != nil {
			total = page.Pagination.Count
		}

		offset += len(page.Members)

		if len(page.Members) < limit || (total != nil && offset >= *total) {
			break
		}
	}

	if r.format == constants.FormatTable {
		if err := r.table(memberHeaders, memberRows(collected)); err != nil {
			return err
		}

		if total != nil {
			r.note("\nFetched %d of %d current members.", len(collected), *total)
		}

		return nil
	}

	count := len(collected)

	structural, err := cdg.ToStructural(&cdg.MembersResponse{
		Members:    collected,
		Pagination: &cdg.Pagination{Count: &count},
	})
	if err != nil {
		return fmt.Errorf("failed to render members: %w", err)
	}

	return r.structural(structural)
}

func newMembersLegislationCommand(name, short string, endpoint func(string, cdg.PageParams) cdg.Endpoint) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   name + " BIOGUIDE_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.pageParams()
			if err != nil {
				return err
			}

			return fetchStructural(cmd, endpoint(strings.ToUpper(args[0]), params))
		},
	}

	addPageFlags(cmd, &flags)

	return cmd
}

var memberHeaders = []string{"Bioguide ID", "Name", "Party", "State", "District", "Chamber"}

func memberRows(members []cdg.MemberSummary) [][]string {
	rows := make([][]string, 0, len(members))

	for _, member := range members {
		chamber := ""
		if member.Terms != nil && len(member.Terms.Item) > 0 {
			chamber = str(member.Terms.Item[len(member.Terms.Item)-1].Chamber)
		}

		rows = append(rows, []string{
			str(member.BioguideID),
			str(member.Name),
			str(member.PartyName),
			str(member.State),
			num(member.District),
			chamber,
		})
	}

	return rows
}

func yearRange(start, end *int) string {
	switch {
	case start == nil && end == nil:
		return ""
	case end == nil:
		return num(start) + "-present"
	default:
		return num(start) + "-" + num(end)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
