package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewBillsCommand creates the bills command group
func NewBillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bills",
		Aliases: []string{"bill"},
		Short:   "Browse bills and resolutions",
		Long:    "List bills and resolutions and show their details and related records",
	}

	cmd.AddCommand(newBillsListCommand())
	cmd.AddCommand(newBillsGetCommand())

	for _, sub := range billSubResources {
		cmd.AddCommand(newBillSubResourceCommand(sub))
	}

	return cmd
}

func newBillsListCommand() *cobra.Command {
	var (
		flags    listFlags
		congress int
		billType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Long:  "List bills, most recently updated first, optionally narrowed to a congress and bill type",
		Example: `  cdg bills list --limit 5
  cdg bills list --congress 118 --type hr --sort asc
  cdg bills list --from 2024-01-01 --to 2024-01-31 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.listParams()
			if err != nil {
				return err
			}

			var endpoint cdg.Endpoint

			switch {
			case billType != "" && congress == 0:
				return ErrTypeNeedsCongress
			case billType != "":
				parsed, err := cdg.ParseBillType(billType)
				if err != nil {
					return fmt.Errorf("invalid --type: %w", err)
				}

				endpoint = cdg.BillByType(congress, parsed, params)
			case congress != 0:
				endpoint = cdg.BillByCongress(congress, params)
			default:
				endpoint = cdg.BillList(params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, bills *cdg.BillsResponse) error {
				rows := make([][]string, 0, len(bills.Bills))
				for _, bill := range bills.Bills {
					date, action := latestAction(bill.LatestAction)
					rows = append(rows, []string{
						num(bill.Congress),
						billLabel(bill.Type, bill.Number),
						truncate(str(bill.Title), r.titleLength()),
						date,
						truncate(action, r.titleLength()),
					})
				}

				if err := r.table([]string{"Congress", "Bill", "Title", "Action Date", "Latest Action"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), bills.Pagination, flags.offset)

				return nil
			})
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number, such as 118")
	cmd.Flags().StringVar(&billType, "type", "", "bill type (hr, s, hjres, sjres, hconres, sconres, hres, sres)")

	return cmd
}

func newBillsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get CONGRESS TYPE NUMBER",
		Short:   "Get bill details",
		Long:    "Display detailed information about a specific bill or resolution",
		Example: "  cdg bills get 117 hr 3076",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, billType, number, err := parseBillArgs(args)
			if err != nil {
				return err
			}

			endpoint := cdg.BillDetails(congress, billType, number, cdg.NewDetailParams())

			return fetchShaped(cmd, endpoint, func(r *renderer, details *cdg.BillDetailsResponse) error {
				bill := details.Bill
				date, action := latestAction(bill.LatestAction)

				policyArea := ""
				if bill.PolicyArea != nil {
					policyArea = str(bill.PolicyArea.Name)
				}

				laws := make([]string, 0, len(bill.Laws))
				for _, law := range bill.Laws {
					laws = append(laws, strings.TrimSpace(str(law.Type)+" "+str(law.Number)))
				}

				_, _ = fmt.Fprintf(r.out, "Bill Details:\n\n")

				err := r.properties([][2]string{
					{"bill", billLabel(bill.Type, bill.Number)},
					{"congress", num(bill.Congress)},
					{"title", str(bill.Title)},
					{"introduced", str(bill.IntroducedDate)},
					{"origin chamber", str(bill.OriginChamber)},
					{"policy area", policyArea},
					{"latest action date", date},
					{"latest action", action},
					{"became law", strings.Join(laws, ", ")},
					{"updated", str(bill.UpdateDate)},
				})
				if err != nil {
					return err
				}

				if len(bill.Sponsors) == 0 {
					return nil
				}

				rows := make([][]string, 0, len(bill.Sponsors))
				for _, sponsor := range bill.Sponsors {
					rows = append(rows, []string{str(sponsor.FullName), str(sponsor.Party), str(sponsor.State), str(sponsor.BioguideID)})
				}

				_, _ = fmt.Fprintf(r.out, "\nSponsors:\n")

				return r.table([]string{"Name", "Party", "State", "Bioguide ID"}, rows)
			})
		},
	}
}

type billSubResource struct {
	name     string
	short    string
	endpoint func(congress int, billType cdg.BillType, number int, offset, limit int) cdg.Endpoint
}

func pageOf(offset, limit int) cdg.PageParams {
	params := cdg.NewPageParams().WithLimit(limit)
	if offset > 0 {
		params = params.WithOffset(offset)
	}

	return params
}

func windowOf(offset, limit int) cdg.WindowParams {
	params := cdg.NewWindowParams().WithLimit(limit)
	if offset > 0 {
		params = params.WithOffset(offset)
	}

	return params
}

var billSubResources = []billSubResource{
	{"actions", "List the actions taken on a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillActions(c, t, n, pageOf(o, l))
	}},
	{"amendments", "List the amendments to a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillAmendments(c, t, n, pageOf(o, l))
	}},
	{"committees", "List the committees a bill was referred to", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillCommittees(c, t, n, pageOf(o, l))
	}},
	{"cosponsors", "List the cosponsors of a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillCosponsors(c, t, n, pageOf(o, l))
	}},
	{"related", "List bills related to a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillRelatedBills(c, t, n, pageOf(o, l))
	}},
	{"subjects", "List the legislative subjects of a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillSubjects(c, t, n, windowOf(o, l))
	}},
	{"summaries", "List the summaries of a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillSummaries(c, t, n, pageOf(o, l))
	}},
	{"text", "List the text versions of a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillText(c, t, n, pageOf(o, l))
	}},
	{"titles", "List the titles of a bill", func(c int, t cdg.BillType, n, o, l int) cdg.Endpoint {
		return cdg.BillTitles(c, t, n, windowOf(o, l))
	}},
}

// newBillSubResourceCommand renders one of a bill's related listings as returned by the API.
func newBillSubResourceCommand(sub billSubResource) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   sub.name + " CONGRESS TYPE NUMBER",
		Short: sub.short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validatePage(); err != nil {
				return err
			}

			congress, billType, number, err := parseBillArgs(args)
			if err != nil {
				return err
			}

			return fetchStructural(cmd, sub.endpoint(congress, billType, number, flags.offset, flags.limit))
		},
	}

	addPageFlags(cmd, &flags)

	return cmd
}

func parseBillArgs(args []string) (int, cdg.BillType, int, error) {
	congress, err := parseCount("congress", args[0])
	if err != nil {
		return 0, "", 0, err
	}

	billType, err := cdg.ParseBillType(args[1])
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid bill type: %w", err)
	}

	number, err := parseCount("bill number", args[2])
	if err != nil {
		return 0, "", 0, err
	}

	return congress, billType, number, nil
}

// billLabel formats a bill as "HR 3076".
func billLabel(billType, number *string) string {
	return strings.TrimSpace(strings.ToUpper(str(billType)) + " " + str(number))
}
